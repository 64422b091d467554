package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/navigation"
	"github.com/alexisbeaulieu97/folio/internal/ui/theme"
)

const wheelStep = 3

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.unmounted {
		return m, nil
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			m.log.Info("session closed", "path", m.CurrentPath())
			m.Unmount()
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case frameMsg:
		cmds = append(cmds, m.handleFrame(time.Time(msg)))

	case clipboardMsg:
		if msg.Err != nil {
			m.log.Warn("copy failed", "url", msg.Text, "error", msg.Err.Error())
			cmds = append(cmds, m.setStatus(fmt.Sprintf("%s (%v)", msg.Text, msg.Err), true))
		} else {
			cmds = append(cmds, m.setStatus("Copied "+msg.Text, false))
		}

	case statusTimeoutMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}

	case ContentReloadedMsg:
		if msg.Content != nil {
			m.content = msg.Content
			m.log.Info("content reloaded")
			cmds = append(cmds, m.setStatus("Content reloaded", false))
		}

	default:
		// Cursor blinks and other widget-internal messages.
		if m.form.editing {
			cmds = append(cmds, m.form.update(msg))
		}
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.relayout()
	cmds = append(cmds, m.startFrames())

	return m, tea.Batch(cmds...)
}

// handleKey routes a key press. Text entry captures keys first, then the
// menus, then page navigation, and whatever is left scrolls the page.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return nil, true
	}

	if m.filtering {
		return m.handleFilterKey(msg), false
	}
	if m.form.editing {
		return m.handleFormKey(msg), false
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.escape()
		return nil, false

	case key.Matches(msg, m.keys.Quit):
		return nil, true

	case key.Matches(msg, m.keys.Jump):
		i, _ := jumpIndex(msg.String())
		return m.jump(i), false

	case key.Matches(msg, m.keys.Next):
		m.step(1)
		return nil, false

	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
		return nil, false

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return nil, false

	case key.Matches(msg, m.keys.Menu):
		if m.mobile() {
			m.drawer.Toggle()
		}
		return nil, false

	case key.Matches(msg, m.keys.Social):
		m.social.Toggle()
		return nil, false

	case key.Matches(msg, m.keys.Filter):
		if filterable(m.CurrentPath()) {
			m.filtering = true
			m.filter.SetValue(m.query)
			m.filter.CursorEnd()
			return m.filter.Focus(), false
		}
		return nil, false

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, false

	case key.Matches(msg, m.keys.Edit):
		if m.shownKey == pathContact && m.CurrentPath() == pathContact {
			return m.form.startEditing(), false
		}
		return nil, false
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.syncScroll()
	return cmd, false
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.query = ""
		m.filter.Reset()
		m.filter.Blur()
		return nil
	case key.Matches(msg, m.keys.Accept):
		m.filtering = false
		m.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.query = m.filter.Value()
	m.viewport.GotoTop()
	m.syncScroll()
	return cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.stopEditing()
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitContact()
	case key.Matches(msg, m.keys.NextField):
		return m.form.move(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.form.move(-1)
	case key.Matches(msg, m.keys.Accept) && m.form.focus != fieldMessage:
		return m.form.move(1)
	}
	return m.form.update(msg)
}

func (m *Model) submitContact() tea.Cmd {
	req, err := m.form.submit()
	if err != nil {
		m.log.Debug("contact form rejected", "error", err.Error())
		return m.setStatus("Please fix the highlighted fields", true)
	}
	m.log.Info("contact form submitted", "name", req.Name, "email", req.Email, "message", req.Message)
	return m.setStatus("Thanks "+req.Name+", your message was received", false)
}

// escape is the keyboard form of an outside press: it closes open menus.
// With no menu open it clears the filter, then the status line.
func (m *Model) escape() {
	if m.drawer.IsOpen() || m.social.IsOpen() {
		m.drawer.Dismiss()
		m.social.Dismiss()
		return
	}
	if m.query != "" {
		m.query = ""
		m.filter.Reset()
		return
	}
	m.status = ""
	m.statusErr = false
}

// jump handles a digit: it activates the matching drawer or popover entry
// when one of them is open and otherwise goes to that page.
func (m *Model) jump(i int) tea.Cmd {
	switch {
	case m.drawer.IsOpen() && m.mobile():
		if i < len(Links) {
			m.drawer.Navigate()
			m.navigate(i)
		}
		return nil
	case m.social.IsOpen():
		return m.activateSocial(i)
	case i < len(Links):
		m.navigate(i)
	}
	return nil
}

func (m *Model) step(delta int) {
	i := navigation.ActiveIndex(m.CurrentPath(), Links)
	n := len(Links)
	m.navigate(((i+delta)%n + n) % n)
}

// navigate changes the route. A route change closes both menus.
func (m *Model) navigate(i int) {
	if i < 0 || i >= len(Links) {
		return
	}
	m.drawer.Dismiss()
	m.social.Dismiss()

	from := m.CurrentPath()
	to := Links[i].Path
	if !m.transition.Navigate(to) {
		return
	}

	m.log.Debug("navigate", "from", from, "to", to)
	m.filtering = false
	m.query = ""
	m.filter.Reset()
	m.filter.Blur()
	m.form.stopEditing()
}

func (m *Model) activateSocial(i int) tea.Cmd {
	if i < 0 || i >= len(m.content.Social) {
		return nil
	}
	link := m.content.Social[i]
	m.social.Navigate()
	m.log.Debug("social link activated", "name", link.Name, "url", link.URL)
	return copyCmd(m.clipboard, link.URL)
}

func (m *Model) toggleTheme() {
	m.theme.Toggle()
	m.styles = theme.New(m.renderer, m.theme.IsDark())
	m.log.Debug("theme toggled", "dark", m.theme.IsDark())
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.tooSmall {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - wheelStep)
		m.syncScroll()
		return nil
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + wheelStep)
		m.syncScroll()
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	// Pointer-down reaches the menus before the click is resolved, so a
	// press outside an open menu closes it even when it also hits a target.
	m.hub.DispatchPointerDown(msg.X, msg.Y)
	return m.click(msg.X, msg.Y)
}

func (m *Model) click(x, y int) tea.Cmd {
	if z, ok := hit(m.layout.zones, x, y); ok {
		switch z.action {
		case actionRoute:
			m.navigate(z.index)
		case actionDrawerRoute:
			m.drawer.Navigate()
			m.navigate(z.index)
		case actionTheme:
			m.toggleTheme()
		case actionDrawer:
			m.drawer.Toggle()
		case actionSocial:
			m.social.Toggle()
		case actionSocialLink:
			return m.activateSocial(z.index)
		}
		return nil
	}

	top := m.layout.viewportY
	if y < top || y >= top+m.viewport.Height {
		return nil
	}
	cy := y - top + m.viewport.YOffset
	for _, l := range m.links {
		if l.rect.Contains(x, cy) {
			m.log.Debug("link activated", "url", l.url)
			return copyCmd(m.clipboard, l.url)
		}
	}
	return nil
}

func (m *Model) handleFrame(now time.Time) tea.Cmd {
	dt := m.frameInterval
	if !m.lastFrame.IsZero() {
		if d := now.Sub(m.lastFrame); d > 0 && d < 10*m.frameInterval {
			dt = d
		}
	}
	m.lastFrame = now

	m.drawer.Advance(dt)
	m.social.Advance(dt)
	m.transition.Advance(dt)

	if m.animating() {
		return frameCmd(m.frameInterval)
	}
	m.ticking = false
	m.lastFrame = time.Time{}
	return nil
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.frameInterval)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	m.status = text
	m.statusErr = isErr
	return statusTimeoutCmd(m.statusID)
}
