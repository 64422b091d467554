package tui

import (
	"time"

	"github.com/alexisbeaulieu97/folio/internal/content"
)

// ContentReloadedMsg replaces the content shown by a running program.
type ContentReloadedMsg struct {
	Content *content.Content
}

// frameMsg drives menu and page transitions.
type frameMsg time.Time

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	Text string
	Err  error
}

// statusTimeoutMsg clears the status line if it still shows message id.
type statusTimeoutMsg struct {
	id int
}
