// Package stroke expands stroked path outlines into fillable polygons.
//
// The expander offsets each flattened subpath by half the stroke width
// on both sides, inserting cap and join geometry, and returns closed
// loops meant to be filled with the non-zero rule. Overlap at joins is
// deliberate: under non-zero winding, overdraw from same-orientation
// loops fills exactly the stroked region.
//
// Everything here is plain float math with a fixed angular step for
// round geometry, so expansion is deterministic run to run.
package stroke

import "math"

// Point is a device-space coordinate.
type Point struct {
	X, Y float64
}

// Cap selects the end-of-subpath geometry.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join selects the corner geometry between segments.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Subpath is one polyline; Closed subpaths connect the last point back
// to the first.
type Subpath struct {
	Pts    []Point
	Closed bool
}

// roundStep is the angular step for round joins and caps, in radians.
const roundStep = 0.25

// coincidentEps rejects degenerate segments shorter than this.
const coincidentEps = 1e-9

// Expand converts subpaths into closed outline loops for a stroke of
// the given width. Degenerate input (width <= 0, empty subpaths)
// yields no loops. A single-point subpath produces a dot for round and
// square caps and nothing for butt caps.
func Expand(subs []Subpath, width float64, capStyle Cap, join Join, miterLimit float64) []Subpath {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil
	}
	hw := width / 2
	if miterLimit < 1 {
		miterLimit = 1
	}

	var out []Subpath
	for _, sub := range subs {
		pts := dedupe(sub.Pts, sub.Closed)
		switch {
		case len(pts) == 0:
			continue
		case len(pts) == 1:
			if loop := capDot(pts[0], hw, capStyle); len(loop) > 0 {
				out = append(out, Subpath{Pts: loop, Closed: true})
			}
		case sub.Closed:
			a := offsetSide(pts, true, hw, join, miterLimit, nil)
			b := offsetSide(reversed(pts), true, hw, join, miterLimit, nil)
			if len(a) >= 3 {
				out = append(out, Subpath{Pts: a, Closed: true})
			}
			if len(b) >= 3 {
				out = append(out, Subpath{Pts: b, Closed: true})
			}
		default:
			loop := offsetSide(pts, false, hw, join, miterLimit, nil)
			loop = appendCap(loop, pts[len(pts)-1], dir(pts[len(pts)-2], pts[len(pts)-1]), hw, capStyle)
			loop = offsetSide(reversed(pts), false, hw, join, miterLimit, loop)
			loop = appendCap(loop, pts[0], dir(pts[1], pts[0]), hw, capStyle)
			if len(loop) >= 3 {
				out = append(out, Subpath{Pts: loop, Closed: true})
			}
		}
	}
	return out
}

// dedupe drops consecutive coincident points, and for closed subpaths
// a trailing point equal to the first.
func dedupe(pts []Point, closed bool) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if math.Abs(p.X-last.X) > coincidentEps || math.Abs(p.Y-last.Y) > coincidentEps {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 {
		first, last := out[0], out[len(out)-1]
		if math.Abs(first.X-last.X) <= coincidentEps && math.Abs(first.Y-last.Y) <= coincidentEps {
			out = out[:len(out)-1]
		}
	}
	return out
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// dir returns the unit direction from a to b.
func dir(a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return Point{1, 0}
	}
	return Point{dx / l, dy / l}
}

// normal returns the left-hand unit normal of a direction.
func normal(d Point) Point {
	return Point{d.Y, -d.X}
}

// offsetSide walks pts forward and appends the left-hand offset
// polyline, with join geometry at every interior vertex (and at every
// vertex for closed subpaths). The caller passes the reversed points
// to get the other side.
func offsetSide(pts []Point, closed bool, hw float64, join Join, miterLimit float64, out []Point) []Point {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	for i := 0; i < segs; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		d := dir(a, b)
		u := normal(d)
		out = append(out,
			Point{a.X + hw*u.X, a.Y + hw*u.Y},
			Point{b.X + hw*u.X, b.Y + hw*u.Y})

		// Join to the next segment, if any.
		last := i == segs-1
		if last && !closed {
			break
		}
		c := pts[(i+2)%n]
		d2 := dir(b, c)
		u2 := normal(d2)
		out = appendJoin(out, b, d, d2, u, u2, hw, join, miterLimit)
	}
	return out
}

// appendJoin bridges the gap between the two offset segments meeting
// at vertex v. Convex corners (the offset side is the outside of the
// turn) get the requested join shape; concave corners route through
// the vertex itself, which keeps every loop's winding one-signed.
func appendJoin(out []Point, v, d1, d2, u1, u2 Point, hw float64, join Join, miterLimit float64) []Point {
	cross := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(cross) < coincidentEps {
		return out
	}
	if cross < 0 {
		// Concave on the left-offset side.
		return append(out, v)
	}
	switch join {
	case JoinRound:
		return appendArc(out, v, hw, math.Atan2(u1.Y, u1.X), math.Atan2(u2.Y, u2.X), true)
	case JoinMiter:
		mx, my := u1.X+u2.X, u1.Y+u2.Y
		l := math.Hypot(mx, my)
		if l > coincidentEps {
			bx, by := mx/l, my/l
			cosHalf := bx*u1.X + by*u1.Y
			if cosHalf > 0 && 1/cosHalf <= miterLimit {
				ml := hw / cosHalf
				return append(out, Point{v.X + ml*bx, v.Y + ml*by})
			}
		}
		// Over the limit or degenerate: bevel.
		return out
	default: // JoinBevel
		return out
	}
}

// appendArc appends points along the circle of radius r around c, from
// angle a0 to a1. positive selects the increasing-angle direction.
func appendArc(out []Point, c Point, r, a0, a1 float64, positive bool) []Point {
	delta := a1 - a0
	if positive {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	} else {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	}
	steps := int(math.Ceil(math.Abs(delta) / roundStep))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i < steps; i++ {
		a := a0 + delta*float64(i)/float64(steps)
		out = append(out, Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)})
	}
	return out
}

// appendCap draws the cap at endpoint e with outgoing unit direction
// d. The loop arrives at e + hw*normal(d) and must leave at
// e - hw*normal(d); butt caps rely on the implicit polygon edge.
func appendCap(out []Point, e, d Point, hw float64, capStyle Cap) []Point {
	u := normal(d)
	switch capStyle {
	case CapSquare:
		out = append(out,
			Point{e.X + hw*u.X + hw*d.X, e.Y + hw*u.Y + hw*d.Y},
			Point{e.X - hw*u.X + hw*d.X, e.Y - hw*u.Y + hw*d.Y})
	case CapRound:
		a0 := math.Atan2(u.Y, u.X)
		out = appendArc(out, e, hw, a0, a0+math.Pi, true)
	}
	return out
}

// capDot is the outline of a zero-length stroked subpath.
func capDot(p Point, hw float64, capStyle Cap) []Point {
	switch capStyle {
	case CapRound:
		var out []Point
		steps := int(math.Ceil(2 * math.Pi / roundStep))
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			out = append(out, Point{p.X + hw*math.Cos(a), p.Y + hw*math.Sin(a)})
		}
		return out
	case CapSquare:
		return []Point{
			{p.X - hw, p.Y - hw},
			{p.X + hw, p.Y - hw},
			{p.X + hw, p.Y + hw},
			{p.X - hw, p.Y + hw},
		}
	default:
		return nil
	}
}
