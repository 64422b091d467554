package navigation

// NavLink is a named destination in a navigation list.
type NavLink struct {
	Name string `yaml:"name" validate:"required"`
	Path string `yaml:"path" validate:"required,startswith=/"`
}

// IsActive reports whether link should be highlighted for the current path.
// Paths are compared verbatim: "/about/" does not match "/about".
func IsActive(currentPath, linkPath string) bool {
	return currentPath == linkPath
}

// ActiveIndex returns the index of the first link matching currentPath, or -1.
func ActiveIndex(currentPath string, links []NavLink) int {
	for i, link := range links {
		if IsActive(currentPath, link.Path) {
			return i
		}
	}
	return -1
}
