package pageink

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatrixIdentity(t *testing.T) {
	p := Identity().TransformPoint(Pt(3, 4))
	if !approxEq(p.X, 3) || !approxEq(p.Y, 4) {
		t.Errorf("Identity transform moved point to %v", p)
	}
}

func TestMatrixCompose(t *testing.T) {
	// Translate then scale: scale applies first in m.Multiply(other).
	m := Translate(10, 20).Multiply(Scale(2, 3))
	p := m.TransformPoint(Pt(1, 1))
	if !approxEq(p.X, 12) || !approxEq(p.Y, 23) {
		t.Errorf("TransformPoint = %v, want (12, 23)", p)
	}
}

func TestMatrixRotate(t *testing.T) {
	p := Rotate(math.Pi / 2).TransformPoint(Pt(1, 0))
	if !approxEq(p.X, 0) || !approxEq(p.Y, 1) {
		t.Errorf("Rotate(90deg)(1,0) = %v, want (0, 1)", p)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Scale(2, 4))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular for an invertible matrix")
	}
	p := inv.TransformPoint(m.TransformPoint(Pt(7, 11)))
	if !approxEq(p.X, 7) || !approxEq(p.Y, 11) {
		t.Errorf("round trip = %v, want (7, 11)", p)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert() succeeded for a singular matrix")
	}
}

func TestMatrixIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("Identity should be finite")
	}
	if (Matrix{A: math.NaN()}).IsFinite() {
		t.Error("NaN matrix should not be finite")
	}
}
