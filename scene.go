package pageink

import "image"

// Kind discriminates the closed set of scene operations. The
// compositor switches over it exhaustively; an unknown kind is a
// content error, logged and skipped.
type Kind uint8

const (
	// KindPath is a filled and/or stroked vector path.
	KindPath Kind = iota
	// KindGlyphRun is a run of positioned glyph coverage masks.
	KindGlyphRun
	// KindImage is a transformed raster image.
	KindImage
	// KindFormField marks an interactive form widget's footprint; the
	// compositor paints only its highlight, the widget appearance is
	// the forms overlay's job at Close.
	KindFormField
	// KindPushClipRect intersects a rectangle into the clip region.
	KindPushClipRect
	// KindPushClipPath intersects a path's coverage into the clip
	// region.
	KindPushClipPath
	// KindPopClip undoes the most recent clip push.
	KindPopClip
)

// String returns the op kind name.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "Path"
	case KindGlyphRun:
		return "GlyphRun"
	case KindImage:
		return "Image"
	case KindFormField:
		return "FormField"
	case KindPushClipRect:
		return "PushClipRect"
	case KindPushClipPath:
		return "PushClipPath"
	case KindPopClip:
		return "PopClip"
	default:
		return "Unknown"
	}
}

// TextMode selects whether a glyph run paints with the fill or the
// stroke role of the color scheme.
type TextMode uint8

const (
	TextFill TextMode = iota
	TextStroke
)

// FieldType classifies a form widget.
type FieldType uint8

const (
	FieldUnknown FieldType = iota
	FieldText
	FieldCheckbox
	FieldRadio
	FieldButton
)

// String returns the field type name.
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "Text"
	case FieldCheckbox:
		return "Checkbox"
	case FieldRadio:
		return "Radio"
	case FieldButton:
		return "Button"
	default:
		return "Unknown"
	}
}

// PathPrim is a vector path primitive. Geometry is device-space; the
// producer applies any page transform before building the scene.
type PathPrim struct {
	Path *PathData

	Fill      bool
	FillColor Color
	FillRule  FillRule

	Stroke      bool
	StrokeColor Color
	StrokeWidth float64
	Cap         LineCap
	Join        LineJoin
	MiterLimit  float64

	Blend BlendMode
}

// GlyphMask is one rasterized glyph placed in device space. The mask
// is 8-bit coverage; X and Y position its top-left corner.
type GlyphMask struct {
	Mask *image.Alpha
	X, Y int
}

// GlyphRunPrim is a run of glyph masks painted with one color.
type GlyphRunPrim struct {
	Glyphs []GlyphMask
	Color  Color
	Mode   TextMode
	Blend  BlendMode
}

// ImagePrim is a raster image primitive. Transform maps the unit
// square to the destination quad in device space. Src pixels are
// premultiplied. Alpha scales the whole image.
type ImagePrim struct {
	Src       *image.RGBA
	Transform Matrix
	Alpha     uint8
	Blend     BlendMode
}

// FormFieldPrim marks a form widget's footprint in page content.
// Highlight with zero alpha paints nothing.
type FormFieldPrim struct {
	Bounds    Rect
	Field     FieldType
	Highlight Color
}

// ClipPathPrim is the payload of a KindPushClipPath op.
type ClipPathPrim struct {
	Path *PathData
	Rule FillRule
}

// Op is one entry of a scene's paint stream. Exactly one payload
// pointer is set, matching Kind. Annotation marks ops sourced from
// annotations, which the walk skips unless FlagAnnotations is set.
type Op struct {
	Kind       Kind
	Annotation bool

	Path     *PathPrim
	Glyphs   *GlyphRunPrim
	Image    *ImagePrim
	Field    *FormFieldPrim
	ClipRect Rect
	ClipPath *ClipPathPrim
}

// isPrimitive reports whether the op paints pixels. Only primitive
// ops are pause boundaries; clip ops never pause.
func (o *Op) isPrimitive() bool {
	switch o.Kind {
	case KindPushClipRect, KindPushClipPath, KindPopClip:
		return false
	default:
		return true
	}
}

// Scene is one page's ordered paint stream. It is read-only to the
// renderer: the op order is the paint order and a session walks it in
// a single forward pass. Build scenes with SceneBuilder.
type Scene struct {
	ops         []Op
	transparent bool
}

// Len returns the number of ops in the stream, clip ops included.
func (s *Scene) Len() int { return len(s.ops) }

// IsTransparent reports whether the page signals transparency support.
// A transparent scene on an alpha surface starts from a fully
// transparent background unless an explicit background is supplied.
func (s *Scene) IsTransparent() bool { return s.transparent }
