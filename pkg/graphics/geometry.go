package graphics

// Point is a window position in integer pixel coordinates.
type Point struct {
	X int
	Y int
}

// Size is a window extent in integer pixels.
type Size struct {
	Width  int
	Height int
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is a window rectangle in x, y, width, height form. Whether the
// coordinates are device pixels or logical pixels depends on context: the
// persisted frame record stores device space, everything downstream of display
// mapping is logical.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectOf constructs a Rect from position and extent.
func RectOf(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles, or an empty rect if
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Area returns the rectangle's area, or 0 when empty.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Scale returns the rect with all coordinates multiplied by factor, rounded
// toward zero. Used to move between device and logical pixel spaces.
func (r Rect) Scale(factor float64) Rect {
	return Rect{
		X:      int(float64(r.X) * factor),
		Y:      int(float64(r.Y) * factor),
		Width:  int(float64(r.Width) * factor),
		Height: int(float64(r.Height) * factor),
	}
}

// FitInto returns the rect shrunk and shifted so it lies entirely within
// bounds. Size is clamped first, then the origin is pushed back inside. An
// empty bounds returns the rect unchanged.
func (r Rect) FitInto(bounds Rect) Rect {
	if bounds.IsEmpty() {
		return r
	}
	fitted := r
	if fitted.Width > bounds.Width {
		fitted.Width = bounds.Width
	}
	if fitted.Height > bounds.Height {
		fitted.Height = bounds.Height
	}
	if fitted.X < bounds.X {
		fitted.X = bounds.X
	}
	if fitted.Y < bounds.Y {
		fitted.Y = bounds.Y
	}
	if fitted.Right() > bounds.Right() {
		fitted.X = bounds.Right() - fitted.Width
	}
	if fitted.Bottom() > bounds.Bottom() {
		fitted.Y = bounds.Bottom() - fitted.Height
	}
	return fitted
}
