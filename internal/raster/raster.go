// Package raster computes anti-aliased scanline coverage for filled paths.
//
// Coverage is exact (analytic): for every edge crossing a scanline the
// rasterizer accumulates the signed vertical extent (cover) and its
// horizontal position weighting (area) per pixel column, then integrates
// each row left to right. No supersampling is involved, and the result
// depends only on the input geometry, which is what makes render output
// reproducible across runs regardless of pausing.
//
// Usage:
//
//	r := raster.New(width, height)
//	r.MoveTo(10, 10)
//	r.LineTo(90, 10)
//	r.LineTo(50, 80)
//	r.Fill(raster.FillNonZero, func(y, x0 int, alpha []uint8) {
//	    // blend alpha[i] at pixel (x0+i, y)
//	})
package raster

import (
	"math"
	"slices"
)

// FillRule selects how winding numbers convert to coverage.
type FillRule uint8

const (
	// FillNonZero fills where the winding number is non-zero.
	FillNonZero FillRule = iota
	// FillEvenOdd fills where the crossing count is odd.
	FillEvenOdd
)

// SpanFunc receives one row of coverage: alpha[i] applies to pixel
// (x0+i, y). The slice is only valid for the duration of the callback.
type SpanFunc func(y, x0 int, alpha []uint8)

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	// Flattening inscribes polylines, which biases curved fills toward
	// under-coverage by roughly perimeter times the average deviation;
	// 0.05 keeps that bias well under the accuracy the tests assert.
	defaultFlatness = 0.05

	// horizontalEps rejects edges with no vertical extent; they cannot
	// change coverage and would divide by zero in the slope.
	horizontalEps = 1e-10
)

type edge struct {
	x0, y0, x1, y1 float64
	dxdy           float64
	ymin, ymax     float64
}

// Rasterizer accumulates a path in device coordinates and converts it
// to per-row coverage spans. The zero value is not usable; call New.
// Buffers are reused across Fill calls, so a single Rasterizer per
// render target avoids per-path allocation.
type Rasterizer struct {
	width, height int

	edges     []edge
	crossings []float64

	cover []float32
	area  []float32
	alpha []uint8

	// current subpath state
	startX, startY float64
	penX, penY     float64
	open           bool
}

// New creates a Rasterizer clipped to a width x height device area.
func New(width, height int) *Rasterizer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Rasterizer{width: width, height: height}
}

// Reset discards all accumulated geometry, keeping buffers for reuse.
func (r *Rasterizer) Reset() {
	r.edges = r.edges[:0]
	r.open = false
}

// Size returns the device dimensions the rasterizer clips to.
func (r *Rasterizer) Size() (w, h int) {
	return r.width, r.height
}

// MoveTo starts a new subpath. An open subpath is implicitly closed
// first; fills always treat subpaths as closed loops.
func (r *Rasterizer) MoveTo(x, y float64) {
	r.closeSubpath()
	r.startX, r.startY = x, y
	r.penX, r.penY = x, y
	r.open = true
}

// LineTo appends a straight edge from the current point.
func (r *Rasterizer) LineTo(x, y float64) {
	if !r.open {
		r.MoveTo(x, y)
		return
	}
	r.addEdge(r.penX, r.penY, x, y)
	r.penX, r.penY = x, y
}

// QuadTo appends a quadratic Bezier, flattened to line segments.
func (r *Rasterizer) QuadTo(cx, cy, x, y float64) {
	if !r.open {
		r.MoveTo(r.penX, r.penY)
	}
	p0x, p0y := r.penX, r.penY

	// Error vector e = (P0 - 2*P1 + P2) / 4 bounds the chord deviation.
	ex := (p0x - 2*cx + x) / 4
	ey := (p0y - 2*cy + y) / 4
	n := 1
	if errDev := math.Hypot(ex, ey); errDev > defaultFlatness {
		n = int(math.Ceil(math.Sqrt(errDev / defaultFlatness)))
	}

	px, py := p0x, p0y
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		qx := omt*omt*p0x + 2*omt*t*cx + t*t*x
		qy := omt*omt*p0y + 2*omt*t*cy + t*t*y
		r.addEdge(px, py, qx, qy)
		px, py = qx, qy
	}
	r.penX, r.penY = x, y
}

// CubicTo appends a cubic Bezier, flattened to line segments using
// Wang's formula for the segment count.
func (r *Rasterizer) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !r.open {
		r.MoveTo(r.penX, r.penY)
	}
	p0x, p0y := r.penX, r.penY

	d1 := math.Hypot(p0x-2*c1x+c2x, p0y-2*c1y+c2y)
	d2 := math.Hypot(c1x-2*c2x+x, c1y-2*c2y+y)
	m := math.Max(d1, d2)
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * defaultFlatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	px, py := p0x, p0y
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		qx := omt2*omt*p0x + 3*omt2*t*c1x + 3*omt*t2*c2x + t2*t*x
		qy := omt2*omt*p0y + 3*omt2*t*c1y + 3*omt*t2*c2y + t2*t*y
		r.addEdge(px, py, qx, qy)
		px, py = qx, qy
	}
	r.penX, r.penY = x, y
}

// ClosePath closes the current subpath with a straight edge back to
// its starting point.
func (r *Rasterizer) ClosePath() {
	r.closeSubpath()
}

func (r *Rasterizer) closeSubpath() {
	if r.open && (r.penX != r.startX || r.penY != r.startY) {
		r.addEdge(r.penX, r.penY, r.startX, r.startY)
		r.penX, r.penY = r.startX, r.startY
	}
	r.open = false
}

func (r *Rasterizer) addEdge(x0, y0, x1, y1 float64) {
	dy := y1 - y0
	if dy > -horizontalEps && dy < horizontalEps {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0, x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
		ymin: math.Min(y0, y1),
		ymax: math.Max(y0, y1),
	})
}

// Empty reports whether no coverage-producing edges were accumulated.
func (r *Rasterizer) Empty() bool {
	return len(r.edges) == 0
}

// Fill converts the accumulated path to coverage rows and emits them
// through span. The path is implicitly closed. Geometry is kept after
// the call; use Reset before building the next path.
func (r *Rasterizer) Fill(rule FillRule, span SpanFunc) {
	r.closeSubpath()
	if len(r.edges) == 0 || r.width == 0 || r.height == 0 {
		return
	}

	xMin, xMax, yMin, yMax := r.bounds()
	if xMin >= xMax || yMin >= yMax {
		return
	}

	bw := xMax - xMin
	if cap(r.cover) < bw {
		r.cover = make([]float32, bw)
		r.area = make([]float32, bw)
		r.alpha = make([]uint8, bw)
	}
	cover := r.cover[:bw]
	area := r.area[:bw]

	// Edges sorted by top y; stable keeps accumulation order, and with
	// it the float rounding, identical run to run.
	slices.SortStableFunc(r.edges, func(a, b edge) int {
		switch {
		case a.ymin < b.ymin:
			return -1
		case a.ymin > b.ymin:
			return 1
		default:
			return 0
		}
	})

	active := make([]*edge, 0, 16)
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		// Retire finished edges, keeping order.
		live := active[:0]
		for _, e := range active {
			if e.ymax > yTop {
				live = append(live, e)
			}
		}
		active = live

		for next < len(r.edges) && r.edges[next].ymin < yBot {
			active = append(active, &r.edges[next])
			next++
		}
		if len(active) == 0 {
			continue
		}

		for i := range cover {
			cover[i] = 0
			area[i] = 0
		}
		for _, e := range active {
			r.accumulate(e, yTop, yBot, cover, area, xMin, xMax)
		}

		integrate(rule, cover, area)
		r.emitRow(y, xMin, cover, span)
	}
}

// bounds returns the integer pixel bounding box of all edges, clamped
// to the device area.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int) {
	fx0, fy0 := math.Inf(1), math.Inf(1)
	fx1, fy1 := math.Inf(-1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		fx0 = math.Min(fx0, math.Min(e.x0, e.x1))
		fx1 = math.Max(fx1, math.Max(e.x0, e.x1))
		fy0 = math.Min(fy0, e.ymin)
		fy1 = math.Max(fy1, e.ymax)
	}
	if math.IsInf(fx0, 1) {
		return 0, 0, 0, 0
	}

	xMin = clampInt(int(math.Floor(fx0)), 0, r.width)
	xMax = clampInt(int(math.Ceil(fx1))+1, 0, r.width)
	yMin = clampInt(int(math.Floor(fy0)), 0, r.height)
	yMax = clampInt(int(math.Ceil(fy1)), 0, r.height)
	return xMin, xMax, yMin, yMax
}

// accumulate adds one edge's contribution to the cover and area rows
// for the scanline [yTop, yBot). Buffers are indexed by x - xMin.
//
// An edge crossing a pixel contributes cover = sign*dy and
// area = cover*(1 - xFrac), attributed by the midpoint x of the
// crossing. Crossings left of the buffer contribute full cover and
// area at index 0, so off-screen geometry still winds correctly.
func (r *Rasterizer) accumulate(e *edge, yTop, yBot float64, cover, area []float32, xMin, xMax int) {
	yt := math.Max(yTop, e.ymin)
	yb := math.Min(yBot, e.ymax)
	if yb <= yt {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xAtTop := e.x0 + e.dxdy*(yt-e.y0)
	xAtBot := e.x0 + e.dxdy*(yb-e.y0)
	xLeft, xRight := xAtTop, xAtBot
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < xMin {
		v := sign * float32(yb-yt)
		cover[0] += v
		area[0] += v
		return
	}
	if pixLeft >= xMax {
		return
	}

	if pixLeft == pixRight {
		r.addCell(e, yt, yb, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// The edge crosses pixel columns: split at integer x boundaries and
	// attribute each piece to the column holding its midpoint.
	dydx := 1 / e.dxdy
	r.crossings = r.crossings[:0]
	r.crossings = append(r.crossings, yt, yb)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yAtX := e.y0 + dydx*(float64(x)-e.x0)
		if yAtX > yt && yAtX < yb {
			r.crossings = append(r.crossings, yAtX)
		}
	}
	slices.Sort(r.crossings)

	for i := 0; i+1 < len(r.crossings); i++ {
		segTop := r.crossings[i]
		segBot := r.crossings[i+1]
		if segBot <= segTop {
			continue
		}
		r.addCell(e, segTop, segBot, sign, -1, cover, area, xMin, xMax)
	}
}

// addCell accumulates one single-column piece of an edge. pix < 0 means
// the column is derived from the piece's midpoint.
func (r *Rasterizer) addCell(e *edge, yt, yb float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	v := sign * float32(yb-yt)
	yMid := (yt + yb) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	if pix < 0 {
		pix = int(math.Floor(xMid))
	}

	if pix < xMin {
		cover[0] += v
		area[0] += v
		return
	}
	if pix >= xMax {
		return
	}

	xFrac := xMid - float64(pix)
	idx := pix - xMin
	cover[idx] += v
	area[idx] += v * float32(1-xFrac)
}

// integrate converts accumulated cover/area rows to coverage in place
// (result left in cover).
func integrate(rule FillRule, cover, area []float32) {
	var accum float32
	if rule == FillEvenOdd {
		for i := range cover {
			raw := accum + area[i]
			accum += cover[i]
			if raw < 0 {
				raw = -raw
			}
			mod := raw - 2*float32(int(raw/2))
			cov := mod
			if cov > 1 {
				cov = 2 - cov
			}
			cover[i] = cov
		}
		return
	}
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// emitRow quantizes one coverage row to alpha bytes, trims zero runs at
// both ends, and invokes the callback.
func (r *Rasterizer) emitRow(y, xMin int, cov []float32, span SpanFunc) {
	lo := 0
	for lo < len(cov) && cov[lo] == 0 {
		lo++
	}
	if lo == len(cov) {
		return
	}
	hi := len(cov) - 1
	for hi > lo && cov[hi] == 0 {
		hi--
	}

	alpha := r.alpha[:hi-lo+1]
	for i := range alpha {
		c := cov[lo+i]
		if c < 0 {
			c = 0
		} else if c > 1 {
			c = 1
		}
		alpha[i] = uint8(c*255 + 0.5)
	}
	span(y, xMin+lo, alpha)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
