package common

// Rect is an axis-aligned rectangle in playfield pixels. X/Y is the top-left
// corner.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r and other share a positive area. Rects that
// only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Intersects is the free-function form of Rect.Intersects.
func Intersects(a, b Rect) bool {
	return a.Intersects(b)
}

// Expand grows the rect by margin on every side.
func (r Rect) Expand(margin int) Rect {
	return Rect{
		X: r.X - margin,
		Y: r.Y - margin,
		W: r.W + margin*2,
		H: r.H + margin*2,
	}
}

// MoveTo returns a copy of r positioned at x, y.
func (r Rect) MoveTo(x, y int) Rect {
	r.X = x
	r.Y = y
	return r
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
