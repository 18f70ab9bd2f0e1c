package text

import (
	"math"

	"github.com/pageink/pageink"
)

// Layout shapes a string and rasterizes it into positioned glyph
// masks. (x, y) is the baseline origin in device space. Glyphs with
// no outline, such as spaces, contribute advance but no mask.
func Layout(face Face, s string, x, y float64) ([]pageink.GlyphMask, error) {
	if face.Source() == nil {
		return nil, ErrEmptyFont
	}
	shaped, _ := shape(face, s)
	if len(shaped) == 0 {
		return nil, nil
	}

	masks := make([]pageink.GlyphMask, 0, len(shaped))
	for _, g := range shaped {
		m, err := face.src.mask(g.gid, face.size)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		masks = append(masks, pageink.GlyphMask{
			Mask: m.img,
			X:    int(math.Round(x+g.x)) + m.dx,
			Y:    int(math.Round(y+g.y)) + m.dy,
		})
	}
	return masks, nil
}

// Run shapes a string into a ready glyph-run primitive.
func Run(face Face, s string, x, y float64, color pageink.Color, mode pageink.TextMode) (*pageink.GlyphRunPrim, error) {
	masks, err := Layout(face, s, x, y)
	if err != nil {
		return nil, err
	}
	return &pageink.GlyphRunPrim{
		Glyphs: masks,
		Color:  color,
		Mode:   mode,
		Blend:  pageink.BlendNormal,
	}, nil
}

// Advance returns the total shaped pen advance of a string at the
// face's size, useful for right-aligning or centering a run before
// layout. Kerning and ligatures are accounted for, since the same
// shaping pass positions the glyphs.
func Advance(face Face, s string) (float64, error) {
	if face.Source() == nil {
		return 0, ErrEmptyFont
	}
	_, adv := shape(face, s)
	return adv, nil
}
