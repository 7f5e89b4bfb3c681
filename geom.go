package layout

import "math"

// Point represents a 2D point or offset.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size represents a 2D extent. Negative extents never occur in layout
// results; a zero Size is the result of laying out empty content.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsZero reports whether both extents are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// IsFinite reports whether both extents are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Axis returns the extent along the given axis.
func (s Size) Axis(a Axis) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the extent across the given axis.
func (s Size) Cross(a Axis) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Inflate returns the size grown by the given insets.
func (s Size) Inflate(in EdgeInsets) Size {
	return Size{
		Width:  s.Width + in.Horizontal(),
		Height: s.Height + in.Vertical(),
	}
}

// Rect represents an axis-aligned rectangle positioned at (X, Y).
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromSize returns a rectangle of the given size at origin.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Size returns the extent of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rectangle containing both r and q.
// An empty rectangle (zero width and height at origin) acts as identity.
func (r Rect) Union(q Rect) Rect {
	if r == (Rect{}) {
		return q
	}
	if q == (Rect{}) {
		return r
	}
	x1 := math.Min(r.X, q.X)
	y1 := math.Min(r.Y, q.Y)
	x2 := math.Max(r.Right(), q.Right())
	y2 := math.Max(r.Bottom(), q.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Inset returns the rectangle shrunk by the given insets.
// Extents are clamped at zero.
func (r Rect) Inset(in EdgeInsets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  math.Max(0, r.Width-in.Horizontal()),
		Height: math.Max(0, r.Height-in.Vertical()),
	}
}

// EdgeInsets describes padding around the four edges of a box.
type EdgeInsets struct {
	Top, Right, Bottom, Left float64
}

// InsetsAll returns insets with the same value on every edge.
func InsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Right: v, Bottom: v, Left: v}
}

// InsetsSymmetric returns insets with the given horizontal and vertical values.
func InsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the combined left and right insets.
func (in EdgeInsets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns the combined top and bottom insets.
func (in EdgeInsets) Vertical() float64 { return in.Top + in.Bottom }

// TopLeft returns the top-left inset corner as an offset.
func (in EdgeInsets) TopLeft() Point { return Point{X: in.Left, Y: in.Top} }

// IsZero reports whether all four insets are zero.
func (in EdgeInsets) IsZero() bool {
	return in.Top == 0 && in.Right == 0 && in.Bottom == 0 && in.Left == 0
}
