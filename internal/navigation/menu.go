package navigation

import "time"

// MenuState is the open/closed state of an overlay menu.
type MenuState int

// Menu states. A new menu is closed.
const (
	MenuClosed MenuState = iota
	MenuOpen
)

// String returns "open" or "closed".
func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Menu is a popover that opens from a trigger control and closes on a
// second toggle, on a press outside both trigger and panel, or when a link
// inside it is activated.
//
// The outside-press listener exists only while the menu is open; Unmount
// releases it along with everything else.
type Menu struct {
	name     string
	state    MenuState
	trigger  Region
	panel    Region
	presence *Presence

	pointer PointerSource
	sub     *Subscription

	// OnChange, when set, is called after every state transition.
	OnChange func(MenuState)
}

// NewMenu creates a closed menu whose panel animates for transition.
func NewMenu(name string, transition time.Duration) *Menu {
	return &Menu{
		name:     name,
		presence: NewPresence(transition),
	}
}

// Name identifies the menu in logs.
func (m *Menu) Name() string {
	return m.name
}

// Mount connects the menu to its host's pointer events.
func (m *Menu) Mount(source PointerSource) {
	m.release()
	m.pointer = source
	if m.state == MenuOpen {
		m.listen()
	}
}

// Unmount closes the menu without animation and drops every subscription
// and region it holds.
func (m *Menu) Unmount() {
	m.release()
	m.pointer = nil
	m.state = MenuClosed
	m.presence.Remove()
	m.trigger.Detach()
	m.panel.Detach()
}

// Toggle opens a closed menu and closes an open one.
func (m *Menu) Toggle() {
	if m.state == MenuOpen {
		m.close()
		return
	}
	m.open()
}

// Dismiss closes the menu. It does nothing when the menu is closed.
func (m *Menu) Dismiss() {
	if m.state == MenuClosed {
		return
	}
	m.close()
}

// Navigate records that a link inside the panel was activated.
func (m *Menu) Navigate() {
	m.Dismiss()
}

// State returns the current state.
func (m *Menu) State() MenuState {
	return m.state
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.state == MenuOpen
}

// PanelVisible reports whether the panel should be drawn. A closed panel
// stays visible until its exit transition finishes.
func (m *Menu) PanelVisible() bool {
	return m.presence.Visible()
}

// Presence exposes the panel's enter/exit lifecycle.
func (m *Menu) Presence() *Presence {
	return m.presence
}

// Advance moves the panel transition forward.
func (m *Menu) Advance(dt time.Duration) bool {
	changed := m.presence.Advance(dt)
	if !m.presence.Visible() {
		m.panel.Detach()
	}
	return changed
}

// Trigger is the region of the control that toggles the menu.
func (m *Menu) Trigger() *Region {
	return &m.trigger
}

// Panel is the region of the popover body.
func (m *Menu) Panel() *Region {
	return &m.panel
}

// Listening reports whether the outside-press listener is registered.
func (m *Menu) Listening() bool {
	return m.sub.Active()
}

func (m *Menu) open() {
	m.state = MenuOpen
	m.presence.Enter()
	m.listen()
	m.changed()
}

func (m *Menu) close() {
	m.state = MenuClosed
	m.presence.Exit()
	if !m.presence.Visible() {
		m.panel.Detach()
	}
	m.release()
	m.changed()
}

func (m *Menu) listen() {
	if m.pointer == nil || m.sub.Active() {
		return
	}
	m.sub = m.pointer.OnPointerDown(m.handlePointerDown)
}

func (m *Menu) release() {
	m.sub.Unsubscribe()
	m.sub = nil
}

func (m *Menu) handlePointerDown(e PointerEvent) {
	if DetectOutside(e, &m.trigger, &m.panel) == Dismiss {
		m.Dismiss()
	}
}

func (m *Menu) changed() {
	if m.OnChange != nil {
		m.OnChange(m.state)
	}
}
