package pageink

import "strings"

// RenderFlags is a bitmask of rendering options. Unknown bits are
// ignored, so new flags can be added without breaking callers.
type RenderFlags uint32

const (
	// FlagAnnotations includes annotation-sourced primitives in the
	// walk. Without it they are skipped in place, preserving order.
	FlagAnnotations RenderFlags = 1 << iota

	// FlagConvertFillToStroke renders filled paths as stroked outlines
	// using the color scheme's path-stroke color. Only meaningful when
	// a ColorScheme is supplied; text fills are unaffected.
	FlagConvertFillToStroke

	// FlagGrayscale replaces every resolved paint color by its BT.601
	// gray before compositing.
	FlagGrayscale

	// FlagNoSmoothPaths disables path anti-aliasing: coverage is
	// thresholded at one half before compositing.
	FlagNoSmoothPaths

	// FlagNoSmoothText applies the same thresholding to glyph masks.
	FlagNoSmoothText
)

// Has reports whether all bits in f are set.
func (f RenderFlags) Has(bits RenderFlags) bool {
	return f&bits == bits
}

// String renders the set bits pipe-separated, "0" when none are set.
func (f RenderFlags) String() string {
	if f == 0 {
		return "0"
	}
	names := []struct {
		bit  RenderFlags
		name string
	}{
		{FlagAnnotations, "Annotations"},
		{FlagConvertFillToStroke, "ConvertFillToStroke"},
		{FlagGrayscale, "Grayscale"},
		{FlagNoSmoothPaths, "NoSmoothPaths"},
		{FlagNoSmoothText, "NoSmoothText"},
	}
	var parts []string
	for _, n := range names {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Status is the tri-state result of Start and Continue.
type Status int

const (
	// StatusReady is the zero value; no render has been attempted.
	StatusReady Status = iota

	// StatusToBeContinued means the pause predicate interrupted the
	// walk; call Continue to resume.
	StatusToBeContinued

	// StatusDone means the scene is fully painted; call Close to take
	// the surface.
	StatusDone

	// StatusFailed means a precondition was violated; the session did
	// not start or the call left state unchanged.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusToBeContinued:
		return "ToBeContinued"
	case StatusDone:
		return "Done"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// State is the lifecycle state of a Session.
type State int

const (
	// StateNotStarted is the zero value before Start runs.
	StateNotStarted State = iota

	// StateSuspended means the walk is paused mid-scene; only Continue
	// is valid.
	StateSuspended

	// StateComplete means every primitive is painted; only Close is
	// valid.
	StateComplete

	// StateClosed is terminal; the surface has been handed back.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateSuspended:
		return "Suspended"
	case StateComplete:
		return "Complete"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// BlendMode selects the compositing operator for a primitive.
// The mode is part of the primitive, not the session: a color scheme
// override never changes it.
type BlendMode uint8

const (
	// BlendNormal is Porter-Duff source-over.
	BlendNormal BlendMode = iota

	// BlendMultiply darkens the backdrop by the source; highlight
	// annotations use it.
	BlendMultiply
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}
