// Package theme builds the lipgloss styles for the light and dark modes.
package theme

import "github.com/charmbracelet/lipgloss"

// Semantic maps roles to palette colors for one mode.
type Semantic struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentSoft lipgloss.Color
	Border     lipgloss.Color
	Link       lipgloss.Color
	Error      lipgloss.Color
}

// LightSemantic returns the roles for light mode.
func LightSemantic(p Palette) Semantic {
	return Semantic{
		Background: p.Green.Color(Shade50),
		Surface:    p.Green.Color(Shade100),
		Text:       p.Gray.Color(Shade800),
		Muted:      p.Gray.Color(Shade500),
		Accent:     p.Green.Color(Shade600),
		AccentSoft: p.Green.Color(Shade200),
		Border:     p.Green.Color(Shade300),
		Link:       p.Blue.Color(Shade600),
		Error:      p.Red.Color(Shade600),
	}
}

// DarkSemantic returns the roles for dark mode.
func DarkSemantic(p Palette) Semantic {
	return Semantic{
		Background: p.Gray.Color(Shade900),
		Surface:    p.Gray.Color(Shade800),
		Text:       p.Gray.Color(Shade100),
		Muted:      p.Gray.Color(Shade400),
		Accent:     p.Green.Color(Shade400),
		AccentSoft: p.Green.Color(Shade800),
		Border:     p.Gray.Color(Shade700),
		Link:       p.Green.Color(Shade300),
		Error:      p.Red.Color(Shade400),
	}
}

// Styles is the full style set for one renderer and mode.
type Styles struct {
	Dark   bool
	Colors Semantic

	Navbar        lipgloss.Style
	NavbarCompact lipgloss.Style
	Brand         lipgloss.Style
	NavLink       lipgloss.Style
	NavLinkActive lipgloss.Style
	Button        lipgloss.Style

	Drawer           lipgloss.Style
	DrawerLink       lipgloss.Style
	DrawerLinkActive lipgloss.Style

	HeroTitle    lipgloss.Style
	HeroSubtitle lipgloss.Style
	Section      lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardBody  lipgloss.Style
	Badge     lipgloss.Style
	Link      lipgloss.Style
	Muted     lipgloss.Style

	Footer      lipgloss.Style
	Popover     lipgloss.Style
	PopoverItem lipgloss.Style

	Label        lipgloss.Style
	FieldError   lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
	Banner      lipgloss.Style
}

// New builds styles on r for the given mode. A nil renderer uses the
// lipgloss default renderer.
func New(r *lipgloss.Renderer, dark bool) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	c := LightSemantic(DefaultPalette)
	if dark {
		c = DarkSemantic(DefaultPalette)
	}

	base := r.NewStyle().Foreground(c.Text)

	s := Styles{Dark: dark, Colors: c}

	s.Navbar = base.Padding(1, 2)
	s.NavbarCompact = base.Padding(0, 2).Background(c.Surface)
	s.Brand = r.NewStyle().Bold(true).Foreground(c.Accent)
	s.NavLink = r.NewStyle().Foreground(c.Muted).Padding(0, 1)
	s.NavLinkActive = r.NewStyle().Foreground(c.Accent).Bold(true).Underline(true).Padding(0, 1)
	s.Button = r.NewStyle().Foreground(c.Accent).Padding(0, 1)

	s.Drawer = base.Padding(0, 2).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(c.Border)
	s.DrawerLink = r.NewStyle().Foreground(c.Text)
	s.DrawerLinkActive = r.NewStyle().Foreground(c.Accent).Bold(true)

	s.HeroTitle = r.NewStyle().Bold(true).Foreground(c.Accent)
	s.HeroSubtitle = r.NewStyle().Foreground(c.Muted).Italic(true)
	s.Section = r.NewStyle().Bold(true).Foreground(c.Accent).MarginTop(1)

	s.Card = base.Border(lipgloss.RoundedBorder()).BorderForeground(c.Border).Padding(0, 1)
	s.CardTitle = r.NewStyle().Bold(true).Foreground(c.Text)
	s.CardBody = r.NewStyle().Foreground(c.Muted)
	s.Badge = r.NewStyle().Foreground(c.Accent).Background(c.AccentSoft).Padding(0, 1)
	s.Link = r.NewStyle().Foreground(c.Link).Underline(true)
	s.Muted = r.NewStyle().Foreground(c.Muted)

	s.Footer = base.Padding(0, 2).Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(c.Border)
	s.Popover = base.Border(lipgloss.RoundedBorder()).BorderForeground(c.Accent).Padding(0, 1)
	s.PopoverItem = r.NewStyle().Foreground(c.Link)

	s.Label = r.NewStyle().Bold(true).Foreground(c.Text)
	s.FieldError = r.NewStyle().Foreground(c.Error)
	s.Input = r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(c.Border)
	s.InputFocused = s.Input.BorderForeground(c.Accent)

	s.Status = r.NewStyle().Foreground(c.Accent)
	s.StatusError = r.NewStyle().Foreground(c.Error).Bold(true)
	s.Banner = r.NewStyle().Bold(true).Foreground(c.Error).Padding(1, 2)

	return s
}

// GlamourStyle names the glamour standard style matching the mode.
func (s Styles) GlamourStyle() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}
