package text

import (
	"fmt"

	xfont "golang.org/x/image/font"
)

// Face is a Source at a size. It is a small value type; create as
// many as needed.
type Face struct {
	src  *Source
	size float64
}

// Source returns the underlying font source.
func (f Face) Source() *Source { return f.src }

// Size returns the face size in pixels.
func (f Face) Size() float64 { return f.size }

// Metrics are the face's vertical metrics in pixels. Ascent and
// Descent are positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Metrics returns the face's vertical metrics.
func (f Face) Metrics() (Metrics, error) {
	if f.src == nil {
		return Metrics{}, ErrEmptyFont
	}
	f.src.mu.Lock()
	m, err := f.src.sf.Metrics(&f.src.buf, ppem(f.size), xfont.HintingNone)
	f.src.mu.Unlock()
	if err != nil {
		return Metrics{}, fmt.Errorf("text: reading metrics: %w", err)
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}, nil
}
