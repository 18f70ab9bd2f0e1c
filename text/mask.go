package text

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/pageink/pageink/internal/raster"
)

// maskKey identifies a cached glyph mask: one glyph at one quantized
// size. Positions are quantized to whole pixels before placement, so
// the mask itself is position-independent.
type maskKey struct {
	gid  uint16
	size fixed.Int26_6
}

// glyphMask is a rasterized glyph outline. The alpha image origin is
// the mask's top-left; dx and dy place it relative to the glyph
// origin on the baseline.
type glyphMask struct {
	img    *image.Alpha
	dx, dy int
}

// mask returns the rasterized coverage of one glyph, from the cache
// when possible. Glyphs with no outline (spaces) return nil, nil.
func (s *Source) mask(gid uint16, size float64) (*glyphMask, error) {
	key := maskKey{gid: gid, size: ppem(size)}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.masks[key]; ok {
		return m, nil
	}

	segs, err := s.sf.LoadGlyph(&s.buf, sfnt.GlyphIndex(gid), key.size, nil)
	if err != nil {
		return nil, err
	}
	m := rasterizeSegments(segs)
	s.masks[key] = m
	return m, nil
}

// rasterizeSegments fills a glyph outline into an alpha mask using the
// same scanline rasterizer the renderer uses for paths. Returns nil
// for an empty outline.
func rasterizeSegments(segs sfnt.Segments) *glyphMask {
	if len(segs) == 0 {
		return nil
	}

	// Control-point bounds overestimate curve bounds, which only pads
	// the mask.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range segs {
		pts := segPointCount(seg.Op)
		for i := 0; i < pts; i++ {
			x := fixedToFloat(seg.Args[i].X)
			y := fixedToFloat(seg.Args[i].Y)
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}
	if minX > maxX {
		return nil
	}

	dx := int(math.Floor(minX))
	dy := int(math.Floor(minY))
	w := int(math.Ceil(maxX)) - dx + 1
	h := int(math.Ceil(maxY)) - dy + 1
	if w <= 0 || h <= 0 {
		return nil
	}

	r := raster.New(w, h)
	fdx, fdy := float64(dx), float64(dy)
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(fixedToFloat(seg.Args[0].X)-fdx, fixedToFloat(seg.Args[0].Y)-fdy)
		case sfnt.SegmentOpLineTo:
			r.LineTo(fixedToFloat(seg.Args[0].X)-fdx, fixedToFloat(seg.Args[0].Y)-fdy)
		case sfnt.SegmentOpQuadTo:
			r.QuadTo(
				fixedToFloat(seg.Args[0].X)-fdx, fixedToFloat(seg.Args[0].Y)-fdy,
				fixedToFloat(seg.Args[1].X)-fdx, fixedToFloat(seg.Args[1].Y)-fdy)
		case sfnt.SegmentOpCubeTo:
			r.CubicTo(
				fixedToFloat(seg.Args[0].X)-fdx, fixedToFloat(seg.Args[0].Y)-fdy,
				fixedToFloat(seg.Args[1].X)-fdx, fixedToFloat(seg.Args[1].Y)-fdy,
				fixedToFloat(seg.Args[2].X)-fdx, fixedToFloat(seg.Args[2].Y)-fdy)
		}
	}
	if r.Empty() {
		return nil
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Fill(raster.FillNonZero, func(y, x0 int, alpha []uint8) {
		row := img.Pix[y*img.Stride:]
		copy(row[x0:x0+len(alpha)], alpha)
	})
	return &glyphMask{img: img, dx: dx, dy: dy}
}

func segPointCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}
