package navigation

// PreferenceSource reports the host's preferred color scheme.
type PreferenceSource interface {
	PrefersDark() bool
}

// PreferenceFunc adapts a function to PreferenceSource.
type PreferenceFunc func() bool

// PrefersDark calls f.
func (f PreferenceFunc) PrefersDark() bool {
	return f()
}

// FixedPreference always reports the same scheme.
type FixedPreference bool

// PrefersDark returns the fixed value.
func (p FixedPreference) PrefersDark() bool {
	return bool(p)
}

// ThemeController holds the session's light/dark mode. It is seeded from
// the preference source once, on Mount, and never written back.
type ThemeController struct {
	source  PreferenceSource
	dark    bool
	mounted bool
}

// NewThemeController creates a controller reading from source. A nil source
// seeds light mode.
func NewThemeController(source PreferenceSource) *ThemeController {
	return &ThemeController{source: source}
}

// Mount reads the preference. Later calls are no-ops.
func (t *ThemeController) Mount() {
	if t.mounted {
		return
	}
	t.mounted = true
	if t.source != nil {
		t.dark = t.source.PrefersDark()
	}
}

// Toggle flips between light and dark.
func (t *ThemeController) Toggle() {
	t.dark = !t.dark
}

// IsDark reports whether dark mode is active.
func (t *ThemeController) IsDark() bool {
	return t.dark
}
