package pageink

import (
	"math"

	"github.com/pageink/pageink/internal/raster"
)

// FillRule selects how a path's winding converts to coverage.
type FillRule uint8

const (
	// FillNonZero fills where the winding number is non-zero.
	FillNonZero FillRule = iota
	// FillEvenOdd fills where the crossing count is odd.
	FillEvenOdd
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// LineCap selects how stroked subpath ends are drawn.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects how stroked segment corners are drawn.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Verb is one path construction step.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// pointCount returns how many points the verb consumes.
func (v Verb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// PathData is device-space path geometry: a verb stream plus its
// points. Producers build it once; the renderer only reads it, so a
// PathData may be shared between primitives and across scenes.
type PathData struct {
	verbs  []Verb
	points []Point
}

// NewPath returns an empty path.
func NewPath() *PathData {
	return &PathData{}
}

// MoveTo starts a new subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{x, y})
	return p
}

// LineTo appends a straight segment.
func (p *PathData) LineTo(x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{x, y})
	return p
}

// QuadTo appends a quadratic Bezier with control point (cx, cy).
func (p *PathData) QuadTo(cx, cy, x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{cx, cy}, Point{x, y})
	return p
}

// CubicTo appends a cubic Bezier with control points (c1x, c1y) and
// (c2x, c2y).
func (p *PathData) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
	return p
}

// Close closes the current subpath back to its starting point.
func (p *PathData) Close() *PathData {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// Rect appends a closed rectangle subpath.
func (p *PathData) Rect(x, y, w, h float64) *PathData {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Ellipse appends a closed ellipse subpath centered at (cx, cy),
// built from four cubic arcs.
func (p *PathData) Ellipse(cx, cy, rx, ry float64) *PathData {
	// Cubic arc constant for a quarter circle.
	const k = 0.5522847498307936
	return p.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry).
		CubicTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy).
		CubicTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry).
		CubicTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy).
		Close()
}

// Empty reports whether the path has no segments.
func (p *PathData) Empty() bool {
	return p == nil || len(p.verbs) == 0
}

// Bounds returns the control-point bounding box. Curve control points
// may overestimate the tight bounds; the compositor only uses this for
// degeneracy checks and clip sizing, where overestimation is safe.
func (p *PathData) Bounds() Rect {
	if p.Empty() || len(p.points) == 0 {
		return Rect{}
	}
	b := Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	for _, pt := range p.points {
		b.X0 = math.Min(b.X0, pt.X)
		b.Y0 = math.Min(b.Y0, pt.Y)
		b.X1 = math.Max(b.X1, pt.X)
		b.Y1 = math.Max(b.Y1, pt.Y)
	}
	return b
}

// IsFinite reports whether every coordinate is a finite number.
func (p *PathData) IsFinite() bool {
	for _, pt := range p.points {
		if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) ||
			math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			return false
		}
	}
	return true
}

// writeTo feeds the path into a rasterizer, which flattens curves
// itself.
func (p *PathData) writeTo(r *raster.Rasterizer) {
	i := 0
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			r.MoveTo(p.points[i].X, p.points[i].Y)
		case VerbLineTo:
			r.LineTo(p.points[i].X, p.points[i].Y)
		case VerbQuadTo:
			r.QuadTo(p.points[i].X, p.points[i].Y, p.points[i+1].X, p.points[i+1].Y)
		case VerbCubicTo:
			r.CubicTo(p.points[i].X, p.points[i].Y, p.points[i+1].X, p.points[i+1].Y,
				p.points[i+2].X, p.points[i+2].Y)
		case VerbClose:
			r.ClosePath()
		}
		i += v.pointCount()
	}
}

// polyline is one flattened subpath, used by the stroke expander.
type polyline struct {
	pts    []Point
	closed bool
}

// flattenTolerance is the curve flattening tolerance for stroking, in
// device pixels. Matches the fill rasterizer's tolerance so a stroked
// outline hugs the filled shape it outlines.
const flattenTolerance = 0.05

// flatten converts the path to polylines with curves subdivided.
func (p *PathData) flatten() []polyline {
	var out []polyline
	var cur polyline
	flush := func(closed bool) {
		if len(cur.pts) > 0 {
			cur.closed = closed
			out = append(out, cur)
			cur = polyline{}
		}
	}
	i := 0
	var pen Point
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			flush(false)
			pen = p.points[i]
			cur.pts = append(cur.pts, pen)
		case VerbLineTo:
			pen = p.points[i]
			cur.pts = append(cur.pts, pen)
		case VerbQuadTo:
			c, e := p.points[i], p.points[i+1]
			cur.pts = appendQuad(cur.pts, pen, c, e)
			pen = e
		case VerbCubicTo:
			c1, c2, e := p.points[i], p.points[i+1], p.points[i+2]
			cur.pts = appendCubic(cur.pts, pen, c1, c2, e)
			pen = e
		case VerbClose:
			if len(cur.pts) > 0 {
				pen = cur.pts[0]
			}
			flush(true)
			cur.pts = append(cur.pts, pen)
		}
		i += v.pointCount()
	}
	flush(false)

	// A lone move-to after a close leaves a one-point polyline behind;
	// drop those, they draw nothing.
	n := out[:0]
	for _, pl := range out {
		if len(pl.pts) >= 2 || pl.closed {
			n = append(n, pl)
		}
	}
	return n
}

func appendQuad(dst []Point, p0, c, p1 Point) []Point {
	ex := (p0.X - 2*c.X + p1.X) / 4
	ey := (p0.Y - 2*c.Y + p1.Y) / 4
	n := 1
	if errDev := math.Hypot(ex, ey); errDev > flattenTolerance {
		n = int(math.Ceil(math.Sqrt(errDev / flattenTolerance)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		dst = append(dst, Point{
			X: omt*omt*p0.X + 2*omt*t*c.X + t*t*p1.X,
			Y: omt*omt*p0.Y + 2*omt*t*c.Y + t*t*p1.Y,
		})
	}
	return dst
}

func appendCubic(dst []Point, p0, c1, c2, p1 Point) []Point {
	d1 := math.Hypot(p0.X-2*c1.X+c2.X, p0.Y-2*c1.Y+c2.Y)
	d2 := math.Hypot(c1.X-2*c2.X+p1.X, c1.Y-2*c2.Y+p1.Y)
	m := math.Max(d1, d2)
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flattenTolerance)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		dst = append(dst, Point{
			X: omt2*omt*p0.X + 3*omt2*t*c1.X + 3*omt*t2*c2.X + t2*t*p1.X,
			Y: omt2*omt*p0.Y + 3*omt2*t*c1.Y + 3*omt*t2*c2.Y + t2*t*p1.Y,
		})
	}
	return dst
}
