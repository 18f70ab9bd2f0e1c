package pageink

import "math"

// Point is a location in device space. The origin is the top-left
// corner of the surface; X grows right, Y grows down.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle in device space, half-open on the
// right and bottom edges.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a rectangle from an origin and a size. Negative sizes
// produce an empty rectangle.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Empty reports whether the rectangle contains no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Union returns the smallest rectangle containing both r and o.
// An empty rectangle does not grow the result.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// Intersect returns the overlap of r and o, empty if they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: math.Max(r.X0, o.X0),
		Y0: math.Max(r.Y0, o.Y0),
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// IsFinite reports whether all four coordinates are finite numbers.
// Degenerate geometry with NaN or infinite coordinates is skipped by
// the compositor rather than rasterized.
func (r Rect) IsFinite() bool {
	return !math.IsNaN(r.X0) && !math.IsInf(r.X0, 0) &&
		!math.IsNaN(r.Y0) && !math.IsInf(r.Y0, 0) &&
		!math.IsNaN(r.X1) && !math.IsInf(r.X1, 0) &&
		!math.IsNaN(r.Y1) && !math.IsInf(r.Y1, 0)
}
