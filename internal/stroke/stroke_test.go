package stroke

import (
	"math"
	"testing"
)

// winding accumulates the winding number of p over every loop, the same
// quantity the non-zero fill rule evaluates.
func winding(loops []Subpath, p Point) int {
	w := 0
	for _, loop := range loops {
		n := len(loop.Pts)
		for i := 0; i < n; i++ {
			a := loop.Pts[i]
			b := loop.Pts[(i+1)%n]
			if a.Y <= p.Y {
				if b.Y > p.Y && cross(a, b, p) > 0 {
					w++
				}
			} else if b.Y <= p.Y && cross(a, b, p) < 0 {
				w--
			}
		}
	}
	return w
}

func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

func bounds(loops []Subpath) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, loop := range loops {
		for _, p := range loop.Pts {
			x0 = math.Min(x0, p.X)
			y0 = math.Min(y0, p.Y)
			x1 = math.Max(x1, p.X)
			y1 = math.Max(y1, p.Y)
		}
	}
	return
}

func TestExpandInvalidWidth(t *testing.T) {
	sub := []Subpath{{Pts: []Point{{0, 0}, {10, 0}}}}
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := Expand(sub, w, CapButt, JoinMiter, 10); got != nil {
			t.Errorf("Expand(width=%v) = %v, want nil", w, got)
		}
	}
}

func TestExpandSegmentButt(t *testing.T) {
	loops := Expand([]Subpath{{Pts: []Point{{0, 0}, {10, 0}}}}, 2, CapButt, JoinMiter, 10)
	if len(loops) != 1 {
		t.Fatalf("Expand() returned %d loops, want 1", len(loops))
	}
	if !loops[0].Closed {
		t.Error("stroke outline loop must be closed")
	}
	x0, y0, x1, y1 := bounds(loops)
	const eps = 1e-9
	if math.Abs(x0) > eps || math.Abs(y0+1) > eps || math.Abs(x1-10) > eps || math.Abs(y1-1) > eps {
		t.Errorf("butt stroke bounds = (%v,%v)-(%v,%v), want (0,-1)-(10,1)", x0, y0, x1, y1)
	}
	if w := winding(loops, Point{5, 0}); w == 0 {
		t.Error("point on the spine is outside the outline")
	}
	if w := winding(loops, Point{5, 2}); w != 0 {
		t.Errorf("point beside the stroke has winding %d, want 0", w)
	}
	if w := winding(loops, Point{-0.5, 0}); w != 0 {
		t.Errorf("butt cap extends past the endpoint: winding %d", w)
	}
}

func TestExpandSegmentSquareCap(t *testing.T) {
	loops := Expand([]Subpath{{Pts: []Point{{0, 0}, {10, 0}}}}, 2, CapSquare, JoinMiter, 10)
	x0, _, x1, _ := bounds(loops)
	const eps = 1e-9
	if math.Abs(x0+1) > eps || math.Abs(x1-11) > eps {
		t.Errorf("square caps reach x %v..%v, want -1..11", x0, x1)
	}
	if w := winding(loops, Point{-0.5, 0}); w == 0 {
		t.Error("square cap should cover past the endpoint")
	}
}

func TestExpandSegmentRoundCap(t *testing.T) {
	loops := Expand([]Subpath{{Pts: []Point{{0, 0}, {10, 0}}}}, 2, CapRound, JoinMiter, 10)
	if w := winding(loops, Point{-0.5, 0}); w == 0 {
		t.Error("round cap should cover past the endpoint")
	}
	if w := winding(loops, Point{-0.95, 0.95}); w != 0 {
		t.Error("round cap corner should stay inside the half-width circle")
	}
	// Every outline point stays within half a width of the segment.
	for _, loop := range loops {
		for _, p := range loop.Pts {
			cx := math.Max(0, math.Min(10, p.X))
			if d := math.Hypot(p.X-cx, p.Y); d > 1+1e-6 {
				t.Fatalf("outline point %v is %v from the spine, want <= 1", p, d)
			}
		}
	}
}

func TestExpandClosedSquare(t *testing.T) {
	square := []Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}
	loops := Expand([]Subpath{{Pts: square, Closed: true}}, 4, CapButt, JoinMiter, 10)
	if len(loops) != 2 {
		t.Fatalf("closed stroke produced %d loops, want outer and inner", len(loops))
	}
	// Non-zero evaluation: on the edge covered, in the hole not.
	if w := winding(loops, Point{20, 10}); w == 0 {
		t.Error("edge midpoint not covered")
	}
	if w := winding(loops, Point{10, 10}); w == 0 {
		t.Error("corner vertex not covered")
	}
	if w := winding(loops, Point{20, 20}); w != 0 {
		t.Errorf("square interior has winding %d, want 0 (hole)", w)
	}
	if w := winding(loops, Point{5, 5}); w != 0 {
		t.Errorf("outside the square has winding %d, want 0", w)
	}
	x0, y0, x1, y1 := bounds(loops)
	const eps = 1e-9
	if math.Abs(x0-8) > eps || math.Abs(y0-8) > eps || math.Abs(x1-32) > eps || math.Abs(y1-32) > eps {
		t.Errorf("outer bounds = (%v,%v)-(%v,%v), want (8,8)-(32,32)", x0, y0, x1, y1)
	}
}

// distToSegment returns the distance from p to the segment a-b.
func distToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// maxSpineDist returns how far the outline strays from the polyline.
func maxSpineDist(loops []Subpath, spine []Point) float64 {
	max := 0.0
	for _, loop := range loops {
		for _, p := range loop.Pts {
			best := math.Inf(1)
			for i := 0; i+1 < len(spine); i++ {
				best = math.Min(best, distToSegment(p, spine[i], spine[i+1]))
			}
			if best > max {
				max = best
			}
		}
	}
	return max
}

func TestJoinShapes(t *testing.T) {
	// A right-angle corner at (10,0), half-width 1.
	spine := []Point{{0, 0}, {10, 0}, {10, 10}}
	corner := []Subpath{{Pts: spine}}

	miter := Expand(corner, 2, CapButt, JoinMiter, 10)
	bevel := Expand(corner, 2, CapButt, JoinBevel, 10)
	round := Expand(corner, 2, CapButt, JoinRound, 10)

	const eps = 1e-6
	// The right-angle miter tip strays hw*sqrt(2) from the spine.
	if got, want := maxSpineDist(miter, spine), math.Sqrt2; math.Abs(got-want) > eps {
		t.Errorf("miter tip distance = %v, want %v", got, want)
	}
	if got := maxSpineDist(bevel, spine); got > 1+eps {
		t.Errorf("bevel join strays %v from the spine, want <= 1", got)
	}
	if got := maxSpineDist(round, spine); got > 1+eps {
		t.Errorf("round join strays %v from the spine, want <= 1", got)
	}
}

func TestMiterLimitFallsBackToBevel(t *testing.T) {
	// A near-reversal: the miter length would far exceed the limit.
	spine := []Point{{0, 0}, {10, 0}, {0, 0.5}}
	loops := Expand([]Subpath{{Pts: spine}}, 2, CapButt, JoinMiter, 4)
	if got := maxSpineDist(loops, spine); got > 1+1e-6 {
		t.Errorf("limited miter strays %v from the spine, want bevel fallback <= 1", got)
	}
}

func TestExpandDot(t *testing.T) {
	dot := []Subpath{{Pts: []Point{{5, 5}}}}

	if loops := Expand(dot, 2, CapButt, JoinMiter, 10); len(loops) != 0 {
		t.Errorf("butt-capped dot produced %d loops, want none", len(loops))
	}

	round := Expand(dot, 2, CapRound, JoinMiter, 10)
	if len(round) != 1 {
		t.Fatalf("round dot produced %d loops, want 1", len(round))
	}
	for _, p := range round[0].Pts {
		if d := math.Hypot(p.X-5, p.Y-5); math.Abs(d-1) > 1e-9 {
			t.Errorf("round dot point %v at radius %v, want 1", p, d)
		}
	}

	square := Expand(dot, 2, CapSquare, JoinMiter, 10)
	if len(square) != 1 || len(square[0].Pts) != 4 {
		t.Fatalf("square dot = %+v, want one 4-point loop", square)
	}
	if w := winding(square, Point{5, 5}); w == 0 {
		t.Error("square dot does not cover its center")
	}
}

func TestExpandDedupesCoincidentPoints(t *testing.T) {
	clean := Expand([]Subpath{{Pts: []Point{{0, 0}, {10, 0}, {10, 10}}}}, 2, CapButt, JoinMiter, 10)
	noisy := Expand([]Subpath{{
		Pts: []Point{{0, 0}, {0, 0}, {10, 0}, {10, 0}, {10, 10}},
	}}, 2, CapButt, JoinMiter, 10)
	if len(clean) != len(noisy) {
		t.Fatalf("dedupe changed loop count: %d vs %d", len(clean), len(noisy))
	}
	for i := range clean {
		if len(clean[i].Pts) != len(noisy[i].Pts) {
			t.Errorf("loop %d: %d points clean vs %d noisy", i, len(clean[i].Pts), len(noisy[i].Pts))
		}
	}
	// A subpath that collapses to nothing is dropped.
	if loops := Expand([]Subpath{{Pts: nil}}, 2, CapButt, JoinMiter, 10); len(loops) != 0 {
		t.Errorf("empty subpath produced %d loops", len(loops))
	}
}
