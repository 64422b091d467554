package navigation

// DefaultCompactThreshold is the scroll offset past which the navbar
// switches to compact mode.
const DefaultCompactThreshold = 20

// ScrollMonitor derives the navbar's compact flag from the page scroll offset.
type ScrollMonitor struct {
	threshold int
	offset    int
	compact   bool
	sub       *Subscription

	// OnChange, when set, is called each time the compact flag flips.
	OnChange func(compact bool)
}

// NewScrollMonitor creates a monitor that turns compact once the offset
// exceeds threshold. Negative thresholds are clamped to zero.
func NewScrollMonitor(threshold int) *ScrollMonitor {
	if threshold < 0 {
		threshold = 0
	}
	return &ScrollMonitor{threshold: threshold}
}

// Mount subscribes to source. A monitor already mounted is re-subscribed.
func (s *ScrollMonitor) Mount(source ScrollSource) {
	s.sub.Unsubscribe()
	s.sub = source.OnScroll(func(e ScrollEvent) {
		s.Observe(e.Offset)
	})
}

// Unmount drops the scroll subscription.
func (s *ScrollMonitor) Unmount() {
	s.sub.Unsubscribe()
	s.sub = nil
}

// Mounted reports whether the monitor is subscribed.
func (s *ScrollMonitor) Mounted() bool {
	return s.sub.Active()
}

// Observe records a new offset and reports whether the compact flag changed.
func (s *ScrollMonitor) Observe(offset int) bool {
	s.offset = offset
	compact := offset > s.threshold
	if compact == s.compact {
		return false
	}
	s.compact = compact
	if s.OnChange != nil {
		s.OnChange(compact)
	}
	return true
}

// Compact reports whether the last observed offset exceeded the threshold.
func (s *ScrollMonitor) Compact() bool {
	return s.compact
}

// Offset returns the last observed offset.
func (s *ScrollMonitor) Offset() int {
	return s.offset
}

// Threshold returns the configured threshold.
func (s *ScrollMonitor) Threshold() int {
	return s.threshold
}
