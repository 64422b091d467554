package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/navigation"
)

// linkSpot is a clickable URL inside rendered page content. Coordinates are
// relative to the block that owns it.
type linkSpot struct {
	rect navigation.Rect
	url  string
}

// block is rendered text plus the link spots it contains. Composing blocks
// shifts the spots so they stay aligned with the text.
type block struct {
	view  string
	links []linkSpot
}

func textBlock(s string) block {
	return block{view: s}
}

func (b block) empty() bool {
	return b.view == ""
}

func (b block) height() int {
	if b.empty() {
		return 0
	}
	return lipgloss.Height(b.view)
}

func (b block) width() int {
	return lipgloss.Width(b.view)
}

func (b block) shifted(dx, dy int) []linkSpot {
	out := make([]linkSpot, len(b.links))
	for i, l := range b.links {
		l.rect.X += dx
		l.rect.Y += dy
		out[i] = l
	}
	return out
}

// column stacks blocks top to bottom, skipping empty ones.
func column(blocks ...block) block {
	var (
		views []string
		links []linkSpot
		y     int
	)
	for _, b := range blocks {
		if b.empty() {
			continue
		}
		views = append(views, b.view)
		links = append(links, b.shifted(0, y)...)
		y += b.height()
	}
	return block{view: strings.Join(views, "\n"), links: links}
}

// row places blocks side by side, top aligned, gap cells apart.
func row(gap int, blocks ...block) block {
	var (
		views []string
		links []linkSpot
		x     int
	)
	spacer := strings.Repeat(" ", gap)
	for _, b := range blocks {
		if b.empty() {
			continue
		}
		if len(views) > 0 && gap > 0 {
			views = append(views, spacer)
			x += gap
		}
		views = append(views, b.view)
		links = append(links, b.shifted(x, 0)...)
		x += b.width()
	}
	if len(views) == 0 {
		return block{}
	}
	return block{view: lipgloss.JoinHorizontal(lipgloss.Top, views...), links: links}
}

// indent offsets b by left columns and top blank rows.
func (b block) indent(left, top int) block {
	if b.empty() && top == 0 {
		return b
	}
	pad := strings.Repeat(" ", left)
	lines := strings.Split(b.view, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	view := strings.Repeat("\n", top) + strings.Join(lines, "\n")
	return block{view: view, links: b.shifted(left, top)}
}

// spacer is n blank rows.
func spacer(n int) block {
	if n <= 0 {
		return block{}
	}
	return block{view: strings.Repeat("\n", n-1) + " "}
}
