package navigation

import "time"

// Phase is a step in an element's enter/exit lifecycle.
type Phase int

// Phases in lifecycle order. PhaseRemoved is both the start and the end.
const (
	PhaseRemoved Phase = iota
	PhaseEntering
	PhaseEntered
	PhaseExiting
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseEntered:
		return "entered"
	case PhaseExiting:
		return "exiting"
	default:
		return "removed"
	}
}

// Presence models an element that animates in when shown and animates out
// before it is removed. Time only moves through Advance.
type Presence struct {
	phase    Phase
	elapsed  time.Duration
	duration time.Duration
}

// NewPresence creates a removed element whose transitions last duration.
func NewPresence(duration time.Duration) *Presence {
	if duration < 0 {
		duration = 0
	}
	return &Presence{duration: duration}
}

// Enter starts (or reverses into) the enter transition.
func (p *Presence) Enter() {
	switch p.phase {
	case PhaseEntering, PhaseEntered:
		return
	case PhaseExiting:
		p.elapsed = p.duration - p.elapsed
	default:
		p.elapsed = 0
	}
	p.phase = PhaseEntering
	p.settle()
}

// Exit starts (or reverses into) the exit transition.
func (p *Presence) Exit() {
	switch p.phase {
	case PhaseExiting, PhaseRemoved:
		return
	case PhaseEntering:
		p.elapsed = p.duration - p.elapsed
	default:
		p.elapsed = 0
	}
	p.phase = PhaseExiting
	p.settle()
}

// Remove drops the element immediately, skipping any exit transition.
func (p *Presence) Remove() {
	p.phase = PhaseRemoved
	p.elapsed = 0
}

// Advance moves the running transition forward by dt and reports whether
// the phase changed.
func (p *Presence) Advance(dt time.Duration) bool {
	if !p.Animating() {
		return false
	}
	p.elapsed += dt
	return p.settle()
}

func (p *Presence) settle() bool {
	if p.elapsed < p.duration {
		return false
	}
	p.elapsed = 0
	switch p.phase {
	case PhaseEntering:
		p.phase = PhaseEntered
		return true
	case PhaseExiting:
		p.phase = PhaseRemoved
		return true
	}
	return false
}

// Phase returns the current phase.
func (p *Presence) Phase() Phase {
	return p.phase
}

// Visible reports whether the element should be drawn.
func (p *Presence) Visible() bool {
	return p.phase != PhaseRemoved
}

// Animating reports whether a transition is running.
func (p *Presence) Animating() bool {
	return p.phase == PhaseEntering || p.phase == PhaseExiting
}

// Progress is how far the running transition has come, from 0 to 1.
// Settled phases report 1 (entered) or 0 (removed).
func (p *Presence) Progress() float64 {
	switch p.phase {
	case PhaseEntered:
		return 1
	case PhaseRemoved:
		return 0
	}
	if p.duration <= 0 {
		return 1
	}
	return float64(p.elapsed) / float64(p.duration)
}

// Opacity maps the lifecycle onto a 0..1 visibility level.
func (p *Presence) Opacity() float64 {
	switch p.phase {
	case PhaseEntering:
		return p.Progress()
	case PhaseExiting:
		return 1 - p.Progress()
	case PhaseEntered:
		return 1
	default:
		return 0
	}
}
