package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/folio/internal/navigation"
)

// layout is the result of the last layout pass: the rendered chrome, the
// row each part starts on, and the click zones.
type layout struct {
	navbar  string
	drawer  string
	popover string
	footer  string
	bottom  string

	viewportY int
	zones     []zone
}

// relayout renders the chrome for the current state, sizes the page
// viewport and attaches every region that is drawn. Regions of parts that
// are not drawn are detached.
func (m *Model) relayout() {
	if m.unmounted || m.width == 0 || m.height == 0 {
		return
	}

	m.tooSmall = m.width < MinWidth || m.height < MinHeight
	if m.tooSmall {
		m.layout = layout{}
		m.links = nil
		m.detachAll()
		return
	}

	frame := m.transition.Visible()
	if frame.Key != m.shownKey {
		m.shownKey = frame.Key
		m.viewport.GotoTop()
		m.syncScroll()
	}

	// A compact flip changes the navbar height, which resizes the viewport
	// and may clamp its offset, so a second pass settles it.
	for i := 0; i < 2; i++ {
		compact := m.scroll.Compact()
		m.layoutPass(frame)
		if m.scroll.Compact() == compact {
			break
		}
	}
}

func (m *Model) layoutPass(frame navigation.Frame) {
	var l layout

	navbar, navZones := m.renderNavbar()
	l.navbar = navbar
	l.zones = append(l.zones, navZones...)
	y := lipgloss.Height(navbar)

	if drawer, zs := m.renderDrawer(y); drawer != "" {
		l.drawer = drawer
		l.zones = append(l.zones, zs...)
		y += lipgloss.Height(drawer)
	} else {
		m.drawer.Panel().Detach()
	}
	l.viewportY = y

	l.bottom = m.renderBottom()
	footerHeight := 2
	bottomHeight := lipgloss.Height(l.bottom)
	popoverHeight := 0
	if m.social.PanelVisible() {
		popoverHeight = len(m.content.Social) + 2
	}

	vpHeight := m.height - y - popoverHeight - footerHeight - bottomHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight

	popY := y + vpHeight
	if popover, zs := m.renderPopover(popY); popover != "" {
		l.popover = popover
		l.zones = append(l.zones, zs...)
	} else {
		m.social.Panel().Detach()
	}

	footer, footZones := m.renderFooter(popY + popoverHeight)
	l.footer = footer
	l.zones = append(l.zones, footZones...)

	m.layout = l
	m.form.setWidth(min(m.width-2*pagePadding, 72))

	page := renderPage(frame.Key, m.pageContext()).indent(0, frame.OffsetY)
	m.viewport.SetContent(page.view)
	m.links = page.links
	m.viewport.SetYOffset(m.viewport.YOffset)
	m.syncScroll()
}

func (m *Model) pageContext() pageContext {
	ctx := pageContext{
		styles:   m.styles,
		content:  m.content,
		width:    m.width,
		markdown: m.markdown,
		profile:  m.renderer.ColorProfile(),
	}
	if m.shownKey == m.transition.Target() {
		ctx.query = m.query
	}
	if m.shownKey == pathContact {
		ctx.form = &m.form
	}
	return ctx
}

// syncScroll publishes the viewport offset when it differs from the last
// one the scroll monitor saw.
func (m *Model) syncScroll() {
	if m.viewport.YOffset != m.scroll.Offset() {
		m.hub.DispatchScroll(m.viewport.YOffset)
	}
}

func (m *Model) detachAll() {
	m.drawer.Trigger().Detach()
	m.drawer.Panel().Detach()
	m.social.Trigger().Detach()
	m.social.Panel().Detach()
}

func (m *Model) renderNavbar() (string, []zone) {
	s := m.styles
	compact := m.scroll.Compact()

	style, top := s.Navbar, 1
	if compact {
		style, top = s.NavbarCompact, 0
	}
	inner := m.width - 4

	left := []segment{{text: s.Brand.Render(m.content.Owner.Initials), action: actionRoute, index: 0}}

	toggle := "☾"
	if m.theme.IsDark() {
		toggle = "☀"
	}
	themeSeg := segment{text: s.Button.Render(toggle), action: actionTheme}

	var right []segment
	if m.mobile() {
		glyph := "≡"
		if m.drawer.IsOpen() {
			glyph = "✕"
		}
		right = []segment{themeSeg, {text: s.Button.Render(glyph), action: actionDrawer}}
	} else {
		current := m.transition.Target()
		for i, link := range Links {
			ls := s.NavLink
			if navigation.IsActive(current, link.Path) {
				ls = s.NavLinkActive
			}
			right = append(right, segment{text: ls.Render(link.Name), action: actionRoute, index: i})
		}
		right = append(right, segment{text: " "}, themeSeg)
	}

	line, placedRow := placeRow(left, right, 2, inner)
	view := style.Width(m.width).Render(line)

	if p, ok := findPlaced(placedRow, actionDrawer); ok {
		m.drawer.Trigger().Attach(navigation.Rect{X: p.x, Y: top, Width: p.width, Height: 1})
	} else {
		m.drawer.Trigger().Detach()
	}

	return view, zonesFor(placedRow, top)
}

func (m *Model) renderDrawer(y int) (string, []zone) {
	if !m.mobile() || !m.drawer.PanelVisible() {
		return "", nil
	}
	s := m.styles
	current := m.transition.Target()

	rows := int(math.Ceil(m.drawer.Presence().Opacity() * float64(len(Links))))
	rows = max(1, min(rows, len(Links)))

	lines := make([]string, 0, rows)
	var zs []zone
	for i, link := range Links[:rows] {
		ls := s.DrawerLink
		if navigation.IsActive(current, link.Path) {
			ls = s.DrawerLinkActive
		}
		lines = append(lines, s.Muted.Render(fmt.Sprintf("%d ", i+1))+ls.Render(link.Name))
		if m.drawer.IsOpen() {
			zs = append(zs, zone{
				rect:   navigation.Rect{X: 0, Y: y + i, Width: m.width, Height: 1},
				action: actionDrawerRoute,
				index:  i,
			})
		}
	}

	view := s.Drawer.Width(m.width).Render(strings.Join(lines, "\n"))
	m.drawer.Panel().Attach(navigation.Rect{X: 0, Y: y, Width: m.width, Height: lipgloss.Height(view)})

	return view, zs
}

func (m *Model) renderPopover(y int) (string, []zone) {
	if !m.social.PanelVisible() {
		return "", nil
	}
	s := m.styles
	settled := m.social.Presence().Opacity() >= 1

	items := make([]string, len(m.content.Social))
	for i, link := range m.content.Social {
		is := s.PopoverItem
		if !settled {
			is = s.Muted
		}
		items[i] = s.Muted.Render(fmt.Sprintf("%d ", i+1)) + is.Render(link.Name)
	}

	box := s.Popover.Render(strings.Join(items, "\n"))
	boxWidth := lipgloss.Width(box)
	x := max(0, m.width-boxWidth-2)

	lines := strings.Split(box, "\n")
	for i, line := range lines {
		lines[i] = spaces(x) + line
	}

	m.social.Panel().Attach(navigation.Rect{X: x, Y: y, Width: boxWidth, Height: len(lines)})

	var zs []zone
	if m.social.IsOpen() {
		for i := range items {
			zs = append(zs, zone{
				rect:   navigation.Rect{X: x + 2, Y: y + 1 + i, Width: max(boxWidth-4, 1), Height: 1},
				action: actionSocialLink,
				index:  i,
			})
		}
	}

	return strings.Join(lines, "\n"), zs
}

func (m *Model) renderFooter(y int) (string, []zone) {
	s := m.styles
	inner := m.width - 4

	button := segment{text: s.Button.Render("Elsewhere ▴"), action: actionSocial}
	var right []segment
	room := inner
	if lipgloss.Width(button.text) < inner {
		right = []segment{button}
		room = inner - lipgloss.Width(button.text) - 1
	}
	owner := m.content.Owner
	copyright := fmt.Sprintf("© %d Portfolio by %s. All Rights Reserved", owner.CopyrightYear, owner.Name)
	left := []segment{{text: s.Muted.Render(ansi.Truncate(copyright, max(room, 0), "…"))}}

	line, placedRow := placeRow(left, right, 2, inner)
	view := s.Footer.Width(m.width).Render(line)

	// The footer's top border takes the first row.
	rowY := y + 1
	if p, ok := findPlaced(placedRow, actionSocial); ok {
		m.social.Trigger().Attach(navigation.Rect{X: p.x, Y: rowY, Width: p.width, Height: 1})
	} else {
		m.social.Trigger().Detach()
	}

	return view, zonesFor(placedRow, rowY)
}

func (m *Model) renderBottom() string {
	switch {
	case m.filtering:
		return m.filter.View()
	case m.status != "":
		if m.statusErr {
			return m.styles.StatusError.Render(ansi.Truncate(m.status, m.width, "…"))
		}
		return m.styles.Status.Render(ansi.Truncate(m.status, m.width, "…"))
	default:
		m.help.Width = m.width
		return m.help.View(m.keys)
	}
}
