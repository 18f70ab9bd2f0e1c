package clip

import "github.com/pageink/pageink/internal/blend"

// Rect is an integer pixel rectangle, half-open on the right and
// bottom. Empty when X1 <= X0 or Y1 <= Y0.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(o Rect) Rect {
	if o.X0 > r.X0 {
		r.X0 = o.X0
	}
	if o.Y0 > r.Y0 {
		r.Y0 = o.Y0
	}
	if o.X1 < r.X1 {
		r.X1 = o.X1
	}
	if o.Y1 < r.Y1 {
		r.Y1 = o.Y1
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

type entry struct {
	prevRect Rect
	mask     *Mask
}

// Stack is the live clip state. Rectangle pushes tighten a running
// intersection; mask pushes stack coverage rasters. Pop undoes the
// most recent push of either kind.
type Stack struct {
	device  Rect
	rect    Rect
	entries []entry
	masks   []*Mask
}

// New returns a stack clipped only by the device bounds.
func New(width, height int) *Stack {
	d := Rect{X1: width, Y1: height}
	return &Stack{device: d, rect: d}
}

// PushRect intersects a pixel-aligned rectangle into the region.
func (s *Stack) PushRect(r Rect) {
	s.entries = append(s.entries, entry{prevRect: s.rect})
	s.rect = s.rect.Intersect(r)
}

// PushMask stacks a coverage mask. The running rectangle also tightens
// to the mask's bounds, since coverage outside them is zero.
func (s *Stack) PushMask(m *Mask) {
	s.entries = append(s.entries, entry{prevRect: s.rect, mask: m})
	s.masks = append(s.masks, m)
	s.rect = s.rect.Intersect(Rect{X0: m.X, Y0: m.Y, X1: m.X + m.W, Y1: m.Y + m.H})
}

// Pop undoes the most recent push. Popping an empty stack is a no-op;
// the scene producer is responsible for balanced push/pop pairs.
func (s *Stack) Pop() {
	if len(s.entries) == 0 {
		return
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.rect = top.prevRect
	if top.mask != nil {
		s.masks = s.masks[:len(s.masks)-1]
	}
}

// Depth returns the number of live pushes.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Bounds returns the current rectangle intersection. Spans outside it
// need no per-pixel work.
func (s *Stack) Bounds() Rect {
	return s.rect
}

// Apply modulates one coverage row in place: alpha[i] applies to pixel
// (x0+i, y). Pixels outside the region become 0; pixels under masks
// are scaled by each mask's coverage.
func (s *Stack) Apply(y, x0 int, alpha []uint8) {
	if y < s.rect.Y0 || y >= s.rect.Y1 {
		for i := range alpha {
			alpha[i] = 0
		}
		return
	}
	for i := range alpha {
		x := x0 + i
		if x < s.rect.X0 || x >= s.rect.X1 {
			alpha[i] = 0
			continue
		}
		a := alpha[i]
		for _, m := range s.masks {
			if a == 0 {
				break
			}
			a = blend.MulDiv255(a, m.At(x, y))
		}
		alpha[i] = a
	}
}
