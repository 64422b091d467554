package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/navigation"
)

type action int

const (
	actionNone action = iota
	actionRoute
	actionDrawerRoute
	actionTheme
	actionDrawer
	actionSocial
	actionSocialLink
)

// zone is a clickable screen area recorded by the layout pass.
type zone struct {
	rect   navigation.Rect
	action action
	index  int
}

// segment is one piece of a chrome row.
type segment struct {
	text   string
	action action
	index  int
}

// placed is a segment with its final column.
type placed struct {
	segment
	x     int
	width int
}

// placeRow lays left segments from x0 and right segments flush against
// x0+width. It returns the row text and each segment's position.
func placeRow(left, right []segment, x0, width int) (string, []placed) {
	var out []placed
	var line string

	x := x0
	for _, s := range left {
		w := lipgloss.Width(s.text)
		out = append(out, placed{segment: s, x: x, width: w})
		line += s.text
		x += w
	}

	rightWidth := 0
	for _, s := range right {
		rightWidth += lipgloss.Width(s.text)
	}

	gap := x0 + width - x - rightWidth
	if gap < 1 {
		gap = 1
	}
	line += spaces(gap)
	x += gap

	for _, s := range right {
		w := lipgloss.Width(s.text)
		out = append(out, placed{segment: s, x: x, width: w})
		line += s.text
		x += w
	}

	return line, out
}

func zonesFor(row []placed, y int) []zone {
	var zs []zone
	for _, p := range row {
		if p.action == actionNone {
			continue
		}
		zs = append(zs, zone{
			rect:   navigation.Rect{X: p.x, Y: y, Width: p.width, Height: 1},
			action: p.action,
			index:  p.index,
		})
	}
	return zs
}

func findPlaced(row []placed, a action) (placed, bool) {
	for _, p := range row {
		if p.action == a {
			return p, true
		}
	}
	return placed{}, false
}

// hit returns the top-most zone containing (x, y).
func hit(zones []zone, x, y int) (zone, bool) {
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].rect.Contains(x, y) {
			return zones[i], true
		}
	}
	return zone{}, false
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
