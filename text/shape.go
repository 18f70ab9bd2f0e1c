package text

import (
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// shapedGlyph is one positioned glyph: pen-relative offsets in pixels,
// horizontal left-to-right layout.
type shapedGlyph struct {
	gid  uint16
	x, y float64
}

// bidiRun is one directionally uniform slice of a paragraph.
type bidiRun struct {
	text string
	rtl  bool
}

// segment splits a string into bidi runs in visual order. Plain
// left-to-right text comes back as a single run.
func segment(s string) []bidiRun {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return []bidiRun{{text: s}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []bidiRun{{text: s}}
	}
	n := ordering.NumRuns()
	if n <= 1 {
		rtl := false
		if n == 1 {
			run := ordering.Run(0)
			rtl = run.Direction() == bidi.RightToLeft
		}
		return []bidiRun{{text: s, rtl: rtl}}
	}
	runs := make([]bidiRun, 0, n)
	for i := 0; i < n; i++ {
		r := ordering.Run(i)
		runs = append(runs, bidiRun{
			text: r.String(),
			rtl:  r.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts within one bidi run shape with the first run's script; the
// shaper still substitutes correctly for the common cases.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// shape converts a string into positioned glyphs at the face's size,
// returning the total pen advance as well. The pen starts at (0, 0)
// on the baseline and advances left to right through the visual-order
// bidi runs; HarfBuzz reverses glyphs within right-to-left runs
// itself.
func shape(face Face, s string) ([]shapedGlyph, float64) {
	if s == "" || face.src == nil {
		return nil, 0
	}
	shaper := shaping.HarfbuzzShaper{}
	gtFace := gtfont.NewFace(face.src.gt)

	var out []shapedGlyph
	var penX, penY float64
	for _, run := range segment(s) {
		runes := []rune(run.text)
		if len(runes) == 0 {
			continue
		}
		dir := di.DirectionLTR
		if run.rtl {
			dir = di.DirectionRTL
		}
		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      gtFace,
			Size:      ppem(face.size),
			Script:    detectScript(runes),
			Language:  language.DefaultLanguage(),
		}
		output := shaper.Shape(input)
		for _, g := range output.Glyphs {
			out = append(out, shapedGlyph{
				gid: uint16(g.GlyphID),
				x:   penX + fixedToFloat(g.XOffset),
				y:   penY - fixedToFloat(g.YOffset),
			})
			penX += fixedToFloat(g.XAdvance)
			penY -= fixedToFloat(g.YAdvance)
		}
	}
	return out, penX
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
