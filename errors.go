package pageink

import "errors"

// Configuration errors. All are reported synchronously to the caller;
// none of them abort a walk that has already painted pixels.
var (
	// ErrNilSurface is returned when a nil surface is supplied.
	ErrNilSurface = errors.New("pageink: nil surface")

	// ErrEmptySurface is returned for a surface with no pixels.
	ErrEmptySurface = errors.New("pageink: surface has zero width or height")

	// ErrNilScene is returned when a nil scene is supplied.
	ErrNilScene = errors.New("pageink: nil scene")

	// ErrSurfaceHeld is returned when Start is called on a surface
	// already owned by a live session.
	ErrSurfaceHeld = errors.New("pageink: surface held by another session")

	// ErrNotSuspended is returned by Continue outside StateSuspended.
	ErrNotSuspended = errors.New("pageink: session is not suspended")

	// ErrNotComplete is returned by Close before the walk finished.
	ErrNotComplete = errors.New("pageink: render not complete")

	// ErrClosed is returned by Close on an already closed session.
	ErrClosed = errors.New("pageink: session closed")
)
