package tui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrClipboardUnavailable is returned by the disabled clipboard.
var ErrClipboardUnavailable = errors.New("clipboard not available in this session")

// Clipboard receives the URLs of activated links.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the local system clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// NoClipboard rejects every write. SSH sessions use it.
type NoClipboard struct{}

// WriteAll implements Clipboard.
func (NoClipboard) WriteAll(string) error {
	return ErrClipboardUnavailable
}

const statusTTL = 4 * time.Second

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func copyCmd(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{Text: text, Err: cb.WriteAll(text)}
	}
}

func statusTimeoutCmd(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusTimeoutMsg{id: id}
	})
}
