package navigation

// ScrollEvent reports the vertical offset of the page viewport in rows.
type ScrollEvent struct {
	Offset int
}

// PointerEvent reports a pointer press at a terminal cell.
type PointerEvent struct {
	X int
	Y int
}

// ScrollSource publishes scroll offset changes.
type ScrollSource interface {
	OnScroll(fn func(ScrollEvent)) *Subscription
}

// PointerSource publishes pointer-down events.
type PointerSource interface {
	OnPointerDown(fn func(PointerEvent)) *Subscription
}

// Subscription is the handle returned for a registered listener.
// Unsubscribe is idempotent and safe on a nil handle.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the listener.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// Active reports whether the listener is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

type listener[E any] struct {
	fn     func(E)
	active bool
}

type channel[E any] struct {
	listeners []*listener[E]
}

func (c *channel[E]) add(fn func(E)) *Subscription {
	l := &listener[E]{fn: fn, active: true}
	c.listeners = append(c.listeners, l)
	return &Subscription{cancel: func() { c.remove(l) }}
}

func (c *channel[E]) remove(target *listener[E]) {
	target.active = false
	for i, l := range c.listeners {
		if l == target {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// dispatch calls listeners in registration order. Listeners removed by an
// earlier handler during the same dispatch are skipped.
func (c *channel[E]) dispatch(event E) {
	snapshot := make([]*listener[E], len(c.listeners))
	copy(snapshot, c.listeners)
	for _, l := range snapshot {
		if l.active {
			l.fn(event)
		}
	}
}

// Hub is the host environment seen by the navigation components. The TUI
// owns one Hub per session and dispatches viewport and mouse events into it.
type Hub struct {
	scroll  channel[ScrollEvent]
	pointer channel[PointerEvent]
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{}
}

// OnScroll registers fn for scroll events.
func (h *Hub) OnScroll(fn func(ScrollEvent)) *Subscription {
	return h.scroll.add(fn)
}

// OnPointerDown registers fn for pointer-down events.
func (h *Hub) OnPointerDown(fn func(PointerEvent)) *Subscription {
	return h.pointer.add(fn)
}

// DispatchScroll delivers a scroll offset to every scroll listener.
func (h *Hub) DispatchScroll(offset int) {
	h.scroll.dispatch(ScrollEvent{Offset: offset})
}

// DispatchPointerDown delivers a pointer press to every pointer listener.
func (h *Hub) DispatchPointerDown(x, y int) {
	h.pointer.dispatch(PointerEvent{X: x, Y: y})
}

// ListenerCount returns the number of registered scroll and pointer listeners.
func (h *Hub) ListenerCount() (scroll, pointer int) {
	return len(h.scroll.listeners), len(h.pointer.listeners)
}

var (
	_ ScrollSource  = (*Hub)(nil)
	_ PointerSource = (*Hub)(nil)
)
