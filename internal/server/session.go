package server

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

// sessionOptions derives one visitor's model options from the template.
// The remote terminal has no reachable clipboard.
func sessionOptions(template tui.Options, r *lipgloss.Renderer, log *logger.Logger) tui.Options {
	opts := template
	opts.Renderer = r
	opts.Clipboard = tui.NoClipboard{}
	opts.Logger = log
	return opts
}
