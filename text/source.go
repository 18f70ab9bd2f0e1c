package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Source is one loaded font file. The data is parsed twice at load
// time: once by go-text/typesetting for shaping and once by
// x/image/font/sfnt for glyph outlines and metrics. A Source is
// heavyweight and meant to be shared; Faces created from it are
// cheap values.
//
// Source is safe for concurrent use.
type Source struct {
	data []byte
	sf   *sfnt.Font
	gt   *gtfont.Font
	name string

	mu    sync.Mutex
	buf   sfnt.Buffer
	masks map[maskKey]*glyphMask
}

// NewSource parses TTF or OTF font data. The slice is copied, so the
// caller may reuse it.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	sf, err := sfnt.Parse(cp)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font outlines: %w", err)
	}
	gtFace, err := gtfont.ParseTTF(bytes.NewReader(cp))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}

	s := &Source{
		data:  cp,
		sf:    sf,
		gt:    gtFace.Font,
		masks: make(map[maskKey]*glyphMask),
	}
	if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewSourceFromFile loads a font file from disk.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: reading font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font family name, empty when the font does not
// carry one.
func (s *Source) Name() string { return s.name }

// Face returns a Face of this source at the given size in pixels.
func (s *Source) Face(size float64) Face {
	return Face{src: s, size: size}
}

// ppem converts a pixel size to the fixed-point value the sfnt and
// shaping APIs expect.
func ppem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
