package swayimg

// Point represents a position in window coordinates.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size represents non-negative pixel dimensions.
type Size struct {
	Width, Height int
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Rect is an axis-aligned rectangle in window coordinates. The origin
// may be negative; Width and Height are always >= 0.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of two rectangles, or a zero Rect when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
