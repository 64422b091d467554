package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type markdownKey struct {
	source  string
	style   string
	width   int
	profile termenv.Profile
}

// markdownCache memoizes glamour output. Rendering the bio on every frame
// is too slow for the transition loop.
type markdownCache struct {
	entries map[markdownKey]string
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{entries: make(map[markdownKey]string)}
}

func (c *markdownCache) render(source, style string, width int, profile termenv.Profile) string {
	if width < 10 {
		width = 10
	}
	k := markdownKey{source: source, style: style, width: width, profile: profile}
	if out, ok := c.entries[k]; ok {
		return out
	}

	out, err := renderMarkdown(source, style, width, profile)
	if err != nil {
		out = lipgloss.NewStyle().Width(width).Render(source)
	}

	// Bounded by the number of widths a session goes through; reset rather
	// than track recency.
	if len(c.entries) > 32 {
		c.entries = make(map[markdownKey]string)
	}
	c.entries[k] = out
	return out
}

func renderMarkdown(source, style string, width int, profile termenv.Profile) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(profile),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(source)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
