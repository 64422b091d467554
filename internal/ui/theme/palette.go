package theme

import "github.com/charmbracelet/lipgloss"

const shadeCount = 10

// Shade indexes a Tailwind-style scale from 50 (lightest) to 900 (darkest).
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// Scale is a ten-step color scale.
type Scale struct {
	colors [shadeCount]lipgloss.Color
}

// NewScale creates a scale from colors ordered lightest to darkest. Extra
// colors are ignored.
func NewScale(colors ...lipgloss.Color) Scale {
	var s Scale
	for i := 0; i < shadeCount && i < len(colors); i++ {
		s.colors[i] = colors[i]
	}
	return s
}

// Color returns the color at shade, or an empty color when out of range.
func (s Scale) Color(shade Shade) lipgloss.Color {
	if shade < 0 || int(shade) >= shadeCount {
		return ""
	}
	return s.colors[shade]
}

// Palette holds the color families the site uses.
type Palette struct {
	Green Scale
	Gray  Scale
	Blue  Scale
	Red   Scale
}

// DefaultPalette is the site's green-on-gray scheme.
var DefaultPalette = Palette{
	Green: NewScale(
		"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
		"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
	),
	Gray: NewScale(
		"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af",
		"#6b7280", "#4b5563", "#374151", "#1f2937", "#111827",
	),
	Blue: NewScale(
		"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
		"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
	),
	Red: NewScale(
		"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
		"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
	),
}
