package pageink

import "fmt"

// Color is a packed 32-bit ARGB color, alpha in the top byte.
// Components are not premultiplied; call Premultiply before handing
// them to the compositing math.
type Color uint32

// Named colors used throughout the package and its tests.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
)

// ARGB packs four components into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(a)<<24 | c&0x00FFFFFF
}

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool { return c.A() == 0xFF }

// IsTransparent reports whether alpha is 0.
func (c Color) IsTransparent() bool { return c.A() == 0 }

// Premultiply returns the premultiplied component bytes expected by the
// blend functions. The rounding matches internal/blend exactly; the
// determinism contract makes this arithmetic observable behavior.
func (c Color) Premultiply() (r, g, b, a uint8) {
	a = c.A()
	if a == 0xFF {
		return c.R(), c.G(), c.B(), a
	}
	if a == 0 {
		return 0, 0, 0, 0
	}
	mul := func(v uint8) uint8 {
		return uint8((uint16(v)*uint16(a) + 127) / 255)
	}
	return mul(c.R()), mul(c.G()), mul(c.B()), a
}

// Luma returns the BT.601 luma of the color, ignoring alpha.
func (c Color) Luma() uint8 {
	v := (299*uint32(c.R()) + 587*uint32(c.G()) + 114*uint32(c.B()) + 500) / 1000
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Grayscale returns the color with R, G and B replaced by its luma,
// alpha preserved.
func (c Color) Grayscale() Color {
	y := c.Luma()
	return ARGB(c.A(), y, y, y)
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
