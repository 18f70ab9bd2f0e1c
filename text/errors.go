package text

import "errors"

var (
	// ErrEmptyFont is returned for zero-length font data.
	ErrEmptyFont = errors.New("text: empty font data")

	// ErrNoGlyph is returned when a glyph has no outline to rasterize.
	ErrNoGlyph = errors.New("text: glyph has no outline")
)
