// Package clip tracks the active clip region during a scene walk.
//
// The region is the intersection of pixel-aligned rectangles and
// anti-aliased path masks. Rectangles are tracked as a single running
// intersection; masks stack and multiply. The stack itself is plain
// data, so a paused render session carries it across suspension
// untouched.
package clip

// Mask is an 8-bit coverage raster positioned in device space.
// 255 means fully inside the clip path, 0 fully outside.
type Mask struct {
	X, Y int
	W, H int
	Pix  []uint8
}

// NewMask returns a zeroed mask covering the given device rectangle.
func NewMask(x, y, w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{X: x, Y: y, W: w, H: h, Pix: make([]uint8, w*h)}
}

// WriteSpan stores one coverage row, in the device coordinates used by
// the rasterizer. Pixels outside the mask rectangle are dropped.
// Shaped as a raster.SpanFunc so a mask can be filled directly.
func (m *Mask) WriteSpan(y, x0 int, alpha []uint8) {
	if y < m.Y || y >= m.Y+m.H {
		return
	}
	for i, a := range alpha {
		x := x0 + i
		if x < m.X || x >= m.X+m.W {
			continue
		}
		m.Pix[(y-m.Y)*m.W+(x-m.X)] = a
	}
}

// At returns the coverage at device pixel (x, y).
func (m *Mask) At(x, y int) uint8 {
	if x < m.X || y < m.Y || x >= m.X+m.W || y >= m.Y+m.H {
		return 0
	}
	return m.Pix[(y-m.Y)*m.W+(x-m.X)]
}
