package navigation

// Verdict is the outcome of an outside-interaction check.
type Verdict int

const (
	// Ignore leaves the popover as it is.
	Ignore Verdict = iota
	// Dismiss asks the popover to close.
	Dismiss
)

// String returns "ignore" or "dismiss".
func (v Verdict) String() string {
	if v == Dismiss {
		return "dismiss"
	}
	return "ignore"
}

// DetectOutside decides whether a pointer press landed outside both the
// trigger control and the popover panel. Until both regions are attached the
// answer is always Ignore.
func DetectOutside(event PointerEvent, trigger, panel *Region) Verdict {
	if !trigger.Attached() || !panel.Attached() {
		return Ignore
	}
	if trigger.Contains(event.X, event.Y) || panel.Contains(event.X, event.Y) {
		return Ignore
	}
	return Dismiss
}
