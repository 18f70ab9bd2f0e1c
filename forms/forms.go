// Package forms models interactive form fields and implements the
// forms overlay that pageink invokes at session close.
//
// A Model is the externally supplied forms handle of a render: page
// content carries form field markers (highlights painted with the
// page), and the widget appearances themselves are drawn once, on top
// of the finished content, when the session closes. The overlay builds
// its widget geometry through the public SceneBuilder and composites
// it with the one-shot renderer in overlay mode, so widget painting
// honors the same flags as the page (grayscale, no-smooth).
package forms

import (
	"errors"

	"github.com/pageink/pageink"
)

// ErrDrawFailed is returned when the overlay's compositing pass does
// not complete. The renderer treats it as a content error: logged,
// never fatal to the session.
var ErrDrawFailed = errors.New("forms: overlay render failed")

// Field is one interactive widget.
type Field struct {
	Type pageink.FieldType

	// Rect is the widget footprint in device space. Fields with an
	// empty rect are skipped.
	Rect pageink.Rect

	// Background fills the widget; Transparent leaves the page
	// content showing through.
	Background pageink.Color

	// Border strokes the widget outline with BorderWidth; a zero
	// width or transparent color draws no border.
	Border      pageink.Color
	BorderWidth float64

	// Checked draws the check mark or radio dot for checkbox and
	// radio fields.
	Checked bool

	// Highlight tints the field's footprint in page content when the
	// producer places markers; the overlay itself does not paint it.
	Highlight pageink.Color
}

// Model is an ordered collection of fields, the forms handle of a
// render session. The zero value is usable and draws nothing.
type Model struct {
	fields []Field
}

// NewModel returns an empty model.
func NewModel() *Model { return &Model{} }

// Add appends a field. Fields draw in insertion order.
func (m *Model) Add(f Field) *Model {
	m.fields = append(m.fields, f)
	return m
}

// Len returns the number of fields.
func (m *Model) Len() int { return len(m.fields) }

// Markers returns the form field markers for page content, one per
// field with a non-empty rect. Producers hand these to
// SceneBuilder.FormField so field footprints highlight with the page.
func (m *Model) Markers() []pageink.FormFieldPrim {
	out := make([]pageink.FormFieldPrim, 0, len(m.fields))
	for _, f := range m.fields {
		if f.Rect.Empty() {
			continue
		}
		out = append(out, pageink.FormFieldPrim{
			Bounds:    f.Rect,
			Field:     f.Type,
			Highlight: f.Highlight,
		})
	}
	return out
}

// DrawForms implements pageink.FormsHandle. It composites every
// field's widget appearance over the finished surface, honoring the
// session's flags.
func (m *Model) DrawForms(surface *pageink.Surface, flags pageink.RenderFlags) error {
	if m == nil || len(m.fields) == 0 || surface == nil {
		return nil
	}
	b := pageink.NewSceneBuilder()
	for _, f := range m.fields {
		if f.Rect.Empty() || !f.Rect.IsFinite() {
			continue
		}
		appendWidget(b, f)
	}
	if b.Len() == 0 {
		return nil
	}
	if status := pageink.Render(surface, b.Build(), flags, pageink.WithOverlay()); status != pageink.StatusDone {
		return ErrDrawFailed
	}
	return nil
}

var _ pageink.FormsHandle = (*Model)(nil)

// appendWidget emits one field's appearance ops: background, border,
// then the state mark.
func appendWidget(b *pageink.SceneBuilder, f Field) {
	r := f.Rect
	if !f.Background.IsTransparent() {
		b.FillRect(r.X0, r.Y0, r.Width(), r.Height(), f.Background)
	}
	if f.BorderWidth > 0 && !f.Border.IsTransparent() {
		border := pageink.NewPath().Rect(r.X0, r.Y0, r.Width(), r.Height())
		b.StrokePath(border, f.Border, f.BorderWidth)
	}
	if !f.Checked {
		return
	}
	mark := f.Border
	if mark.IsTransparent() {
		mark = pageink.Black
	}
	switch f.Type {
	case pageink.FieldCheckbox:
		// Check mark: two strokes inset by a quarter of the rect.
		w, h := r.Width(), r.Height()
		check := pageink.NewPath().
			MoveTo(r.X0+0.2*w, r.Y0+0.55*h).
			LineTo(r.X0+0.45*w, r.Y0+0.8*h).
			LineTo(r.X0+0.8*w, r.Y0+0.25*h)
		b.SetStrokeStyle(pageink.CapRound, pageink.JoinRound, 10)
		b.StrokePath(check, mark, maxF(1, 0.12*minF(w, h)))
		b.SetStrokeStyle(pageink.CapButt, pageink.JoinMiter, 10)
	case pageink.FieldRadio:
		cx := (r.X0 + r.X1) / 2
		cy := (r.Y0 + r.Y1) / 2
		rr := 0.28 * minF(r.Width(), r.Height())
		dot := pageink.NewPath().Ellipse(cx, cy, rr, rr)
		b.FillPath(dot, mark, pageink.FillNonZero)
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
