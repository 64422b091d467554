package navigation

// Rect is a rectangle of terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside r. Empty rectangles
// contain nothing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Region is a handle to the screen bounds of a rendered element. It is
// attached by the layout pass that drew the element and detached once the
// element stops being drawn.
type Region struct {
	bounds   Rect
	attached bool
}

// Attach records the bounds the element was drawn at.
func (r *Region) Attach(bounds Rect) {
	r.bounds = bounds
	r.attached = true
}

// Detach marks the element as not rendered.
func (r *Region) Detach() {
	r.bounds = Rect{}
	r.attached = false
}

// Bounds returns the last attached bounds.
func (r *Region) Bounds() (Rect, bool) {
	if r == nil || !r.attached {
		return Rect{}, false
	}
	return r.bounds, true
}

// Attached reports whether the region currently has bounds.
func (r *Region) Attached() bool {
	return r != nil && r.attached
}

// Contains reports whether the region is attached and covers (x, y).
func (r *Region) Contains(x, y int) bool {
	bounds, ok := r.Bounds()
	return ok && bounds.Contains(x, y)
}
