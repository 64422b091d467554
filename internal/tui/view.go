package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	if m.unmounted || m.width == 0 || m.height == 0 {
		return ""
	}

	if m.tooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d", m.width, m.height, MinWidth, MinHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Banner.Width(min(m.width, 40)).Render(msg))
	}

	parts := []string{m.layout.navbar}
	if m.layout.drawer != "" {
		parts = append(parts, m.layout.drawer)
	}
	parts = append(parts, m.viewport.View())
	if m.layout.popover != "" {
		parts = append(parts, m.layout.popover)
	}
	parts = append(parts, m.layout.footer, m.layout.bottom)

	return strings.Join(parts, "\n")
}
