package navigation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultSlideRows is how far an entering page slides up into place.
const DefaultSlideRows = 2

// Frame describes what the page area should draw right now.
type Frame struct {
	Key     string
	Phase   Phase
	Opacity float64
	OffsetY int
}

// PageTransition swaps page content keyed by route. The outgoing page
// finishes its exit before the incoming page starts entering, so exactly one
// page is drawn at any moment.
type PageTransition struct {
	duration time.Duration
	slide    float64

	current  string
	presence *Presence

	pending    string
	hasPending bool

	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewPageTransition mounts key as the first page and starts its enter
// transition. fps controls the spring time step.
func NewPageTransition(key string, duration time.Duration, fps int) *PageTransition {
	if fps <= 0 {
		fps = 60
	}
	t := &PageTransition{
		duration: duration,
		slide:    DefaultSlideRows,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
	t.mount(key)
	return t
}

func (t *PageTransition) mount(key string) {
	t.current = key
	t.presence = NewPresence(t.duration)
	t.presence.Enter()
	t.pos = t.slide
	t.vel = 0
	if !t.presence.Animating() {
		t.pos = 0
	}
}

// Navigate requests key. It returns false when key is already the page
// being shown or already queued.
func (t *PageTransition) Navigate(key string) bool {
	if t.hasPending {
		switch key {
		case t.pending:
			return false
		case t.current:
			t.hasPending = false
			t.pending = ""
			t.presence.Enter()
			return true
		}
		t.pending = key
		return true
	}
	if key == t.current {
		return false
	}
	t.pending = key
	t.hasPending = true
	t.presence.Exit()
	t.swapIfDone()
	return true
}

// Advance moves the running transition forward by dt.
func (t *PageTransition) Advance(dt time.Duration) {
	t.presence.Advance(dt)
	t.swapIfDone()

	target := 0.0
	if t.presence.Phase() == PhaseExiting {
		target = t.slide
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, target)
}

func (t *PageTransition) swapIfDone() {
	if t.hasPending && !t.presence.Visible() {
		next := t.pending
		t.pending = ""
		t.hasPending = false
		t.mount(next)
	}
}

// Visible returns the frame to draw.
func (t *PageTransition) Visible() Frame {
	offset := 0
	if t.presence.Animating() {
		offset = int(math.Round(math.Max(0, math.Min(t.slide, t.pos))))
	}
	return Frame{
		Key:     t.current,
		Phase:   t.presence.Phase(),
		Opacity: t.presence.Opacity(),
		OffsetY: offset,
	}
}

// Current returns the key of the page being drawn.
func (t *PageTransition) Current() string {
	return t.current
}

// Target returns the key the transition is heading to.
func (t *PageTransition) Target() string {
	if t.hasPending {
		return t.pending
	}
	return t.current
}

// Animating reports whether the transition still needs frames.
func (t *PageTransition) Animating() bool {
	return t.hasPending || t.presence.Animating()
}
