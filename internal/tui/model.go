// Package tui is the bubbletea program that renders the portfolio: the
// navbar and footer chrome, the pages, and the contact form.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/navigation"
	"github.com/alexisbeaulieu97/folio/internal/ui/theme"
)

// Minimum terminal size the layout supports.
const (
	MinWidth  = 40
	MinHeight = 12
)

const (
	defaultMobileBreakpoint = 100
	defaultFPS              = 60
)

// Options configures a Model. Zero values fall back to defaults, except
// TransitionDuration where zero turns animation off.
type Options struct {
	Content    *content.Content
	Renderer   *lipgloss.Renderer
	Preference navigation.PreferenceSource
	Clipboard  Clipboard
	Logger     *logger.Logger

	CompactThreshold   int
	MobileBreakpoint   int
	TransitionDuration time.Duration
	FPS                int
	StartPath          string
}

// Model is the portfolio program state.
type Model struct {
	content   *content.Content
	renderer  *lipgloss.Renderer
	styles    theme.Styles
	clipboard Clipboard
	log       *logger.Logger
	keys      keyMap
	help      help.Model
	markdown  *markdownCache

	hub        *navigation.Hub
	scroll     *navigation.ScrollMonitor
	drawer     *navigation.Menu
	social     *navigation.Menu
	theme      *navigation.ThemeController
	transition *navigation.PageTransition

	viewport  viewport.Model
	form      contactForm
	filter    textinput.Model
	filtering bool
	query     string

	mobileBreakpoint int
	frameInterval    time.Duration
	ticking          bool
	lastFrame        time.Time

	width    int
	height   int
	tooSmall bool
	shownKey string
	layout   layout
	links    []linkSpot

	status    string
	statusErr bool
	statusID  int
	unmounted bool
}

// New builds a model and mounts its chrome: the scroll monitor and both
// menus subscribe to the model's event hub and the theme reads the
// preference once.
func New(opts Options) Model {
	if opts.Content == nil {
		opts.Content = content.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Preference == nil {
		r := opts.Renderer
		opts.Preference = navigation.PreferenceFunc(r.HasDarkBackground)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = NoClipboard{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.CompactThreshold <= 0 {
		opts.CompactThreshold = navigation.DefaultCompactThreshold
	}
	if opts.MobileBreakpoint <= 0 {
		opts.MobileBreakpoint = defaultMobileBreakpoint
	}
	if opts.TransitionDuration < 0 {
		opts.TransitionDuration = 0
	}
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if navigation.ActiveIndex(opts.StartPath, Links) < 0 {
		opts.StartPath = pathWork
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter cards"
	filter.CharLimit = 64

	m := Model{
		content:   opts.Content,
		renderer:  opts.Renderer,
		clipboard: opts.Clipboard,
		log:       opts.Logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		markdown:  newMarkdownCache(),

		hub:        navigation.NewHub(),
		scroll:     navigation.NewScrollMonitor(opts.CompactThreshold),
		drawer:     navigation.NewMenu("drawer", opts.TransitionDuration),
		social:     navigation.NewMenu("social", opts.TransitionDuration),
		theme:      navigation.NewThemeController(opts.Preference),
		transition: navigation.NewPageTransition(opts.StartPath, opts.TransitionDuration, opts.FPS),

		viewport: viewport.New(0, 0),
		form:     newContactForm(),
		filter:   filter,

		mobileBreakpoint: opts.MobileBreakpoint,
		frameInterval:    time.Second / time.Duration(opts.FPS),
	}

	m.mount()
	m.styles = theme.New(m.renderer, m.theme.IsDark())
	m.ticking = m.animating()

	return m
}

func (m *Model) mount() {
	m.scroll.Mount(m.hub)
	m.drawer.Mount(m.hub)
	m.social.Mount(m.hub)
	m.theme.Mount()

	for _, menu := range []*navigation.Menu{m.drawer, m.social} {
		menuLog := m.log.With("menu", menu.Name())
		menu.OnChange = func(s navigation.MenuState) {
			menuLog.Debug("menu changed", "state", s.String())
		}
	}
	log := m.log
	m.scroll.OnChange = func(compact bool) {
		log.Debug("navbar compact changed", "compact", compact)
	}
}

// Unmount releases every subscription the chrome holds. Events dispatched
// afterwards reach no one.
func (m *Model) Unmount() {
	m.scroll.Unmount()
	m.drawer.Unmount()
	m.social.Unmount()
	m.unmounted = true
}

// Init starts the frame loop for the first page's enter transition.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return frameCmd(m.frameInterval)
	}
	return nil
}

// CurrentPath is the route the user navigated to last.
func (m Model) CurrentPath() string {
	return m.transition.Target()
}

// IsDark reports the session's theme mode.
func (m Model) IsDark() bool {
	return m.theme.IsDark()
}

// Compact reports whether the navbar is in compact mode.
func (m Model) Compact() bool {
	return m.scroll.Compact()
}

// Drawer exposes the mobile navigation menu.
func (m Model) Drawer() *navigation.Menu {
	return m.drawer
}

// Social exposes the footer's social links popover.
func (m Model) Social() *navigation.Menu {
	return m.social
}

// Hub exposes the event hub the chrome listens on.
func (m Model) Hub() *navigation.Hub {
	return m.hub
}

func (m Model) animating() bool {
	return m.transition.Animating() ||
		m.drawer.Presence().Animating() ||
		m.social.Presence().Animating()
}

func (m Model) mobile() bool {
	return m.width < m.mobileBreakpoint
}
