package pageink

import (
	"image"

	"golang.org/x/crypto/blake2b"
)

// Format describes the pixel layout of a Surface.
type Format uint8

const (
	// FormatRGBX is an opaque surface: four bytes per pixel with the
	// alpha byte forced to 0xFF.
	FormatRGBX Format = iota

	// FormatRGBA carries a real alpha channel; pixel bytes are
	// premultiplied.
	FormatRGBA
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGBX:
		return "RGBX"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// Surface is an owned pixel buffer, the render target of a Session.
// Pixels are stored premultiplied in R, G, B, A byte order, rows
// top to bottom.
//
// A surface is exclusively held by at most one live session: Start
// acquires it and Close releases it. A second Start on a held surface
// fails rather than race.
type Surface struct {
	width  int
	height int
	format Format
	pix    []uint8

	// held marks exclusive ownership by a live session. Sessions are
	// single-threaded, so a plain bool suffices.
	held bool
}

// NewSurface allocates an opaque surface filled with white.
// Returns nil when either dimension is not positive.
func NewSurface(width, height int) *Surface {
	s := newSurface(width, height, FormatRGBX)
	if s != nil {
		s.Fill(White)
	}
	return s
}

// NewSurfaceAlpha allocates a surface with an alpha channel, fully
// transparent. Returns nil when either dimension is not positive.
func NewSurfaceAlpha(width, height int) *Surface {
	return newSurface(width, height, FormatRGBA)
}

func newSurface(width, height int, format Format) *Surface {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Surface{
		width:  width,
		height: height,
		format: format,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Format returns the pixel format.
func (s *Surface) Format() Format { return s.format }

// HasAlpha reports whether the surface carries a real alpha channel.
func (s *Surface) HasAlpha() bool { return s.format == FormatRGBA }

// Fill overwrites every pixel with c, without blending.
func (s *Surface) Fill(c Color) {
	s.FillRect(0, 0, s.width, s.height, c)
}

// FillRect overwrites the pixels of a rectangle with c, without
// blending. The rectangle is clamped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c Color) {
	x0, y0, x1, y1 := clampRect(x, y, w, h, s.width, s.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	pr, pg, pb, pa := c.Premultiply()
	if s.format == FormatRGBX {
		pa = 0xFF
	}
	for yy := y0; yy < y1; yy++ {
		row := s.pix[(yy*s.width+x0)*4 : (yy*s.width+x1)*4]
		for i := 0; i < len(row); i += 4 {
			row[i] = pr
			row[i+1] = pg
			row[i+2] = pb
			row[i+3] = pa
		}
	}
}

// At returns the color of one pixel, unmultiplied. Out-of-bounds
// coordinates return Transparent.
func (s *Surface) At(x, y int) Color {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	r, g, b, a := s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]
	if a == 0 {
		return Transparent
	}
	if a != 0xFF {
		un := func(v uint8) uint8 {
			q := (uint16(v)*255 + uint16(a)/2) / uint16(a)
			if q > 255 {
				q = 255
			}
			return uint8(q)
		}
		r, g, b = un(r), un(g), un(b)
	}
	return ARGB(a, r, g, b)
}

// setPixel writes premultiplied bytes; the compositor's span painters
// go through this. Bounds are the caller's responsibility.
func (s *Surface) setPixel(i int, r, g, b, a uint8) {
	if s.format == FormatRGBX {
		a = 0xFF
	}
	s.pix[i] = r
	s.pix[i+1] = g
	s.pix[i+2] = b
	s.pix[i+3] = a
}

// Clone returns a deep copy with the same pixels and format.
// The copy is not held by any session.
func (s *Surface) Clone() *Surface {
	out := newSurface(s.width, s.height, s.format)
	copy(out.pix, s.pix)
	return out
}

// ToImage copies the surface into a standard premultiplied image.RGBA.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// Digest returns a BLAKE2b-256 hash over the dimensions, format and
// pixel bytes. Conformance tests compare digests between runs of this
// implementation to assert exact pixel equality; the digest is not a
// persisted format and carries no cross-version guarantee.
func (s *Surface) Digest() [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// New256 with a nil key cannot fail.
		panic(err)
	}
	var hdr [9]byte
	putUint32(hdr[0:4], uint32(s.width))
	putUint32(hdr[4:8], uint32(s.height))
	hdr[8] = byte(s.format)
	h.Write(hdr[:])
	h.Write(s.pix)
	var sum [32]byte
	h.Sum(sum[:0])
	return sum
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// acquire takes exclusive ownership for a session.
func (s *Surface) acquire() bool {
	if s.held {
		return false
	}
	s.held = true
	return true
}

// release returns ownership to the caller.
func (s *Surface) release() {
	s.held = false
}

func clampRect(x, y, w, h, maxW, maxH int) (x0, y0, x1, y1 int) {
	x0, y0 = x, y
	x1, y1 = x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > maxW {
		x1 = maxW
	}
	if y1 > maxH {
		y1 = maxH
	}
	return x0, y0, x1, y1
}
