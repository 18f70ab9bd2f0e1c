package pageink

// FormsHandle is the forms-overlay entry point invoked once at Close,
// after all page content is painted. Implementations draw interactive
// form widget appearances over the finished surface; the forms package
// provides one. A nil handle skips the overlay.
type FormsHandle interface {
	DrawForms(surface *Surface, flags RenderFlags) error
}

// Session is a progressive render over one scene onto one surface.
//
// A session is a resumable state machine:
//
//	NotStarted -> Suspended <-> (Continue) -> Complete -> Closed
//
// with the Suspended stage skipped entirely when no pause occurs.
// Continuation state is plain data, a cursor index into the scene plus
// the live clip stack, so pausing never re-executes or skips a
// primitive: the sequence of pixel mutations is identical no matter
// how often the walk is interrupted.
//
// Sessions are single-threaded; the caller drives suspension through
// the pause predicate, and exactly one session may hold a surface at a
// time.
type Session struct {
	surf   *Surface
	scene  *Scene
	flags  RenderFlags
	comp   *compositor
	state  State
	cursor int

	step       int
	sinceCheck int
	painted    int
}

// Start begins rendering scene onto surface and walks primitives in
// document order until the scene is exhausted or pause asks to stop.
//
// The surface is filled with the configured background first: the
// WithBackground color when supplied, otherwise transparent for a
// transparent scene on an alpha surface, otherwise white. Start takes
// exclusive ownership of the surface; it is returned by Close.
//
// Returns StatusDone or StatusToBeContinued together with the session.
// Precondition violations (nil or empty surface, nil scene, surface
// already held) return (nil, StatusFailed) without touching pixels.
func Start(surface *Surface, scene *Scene, flags RenderFlags, pause PauseFunc, opts ...Option) (*Session, Status) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case surface == nil:
		Logger().Error("pageink: start rejected", "err", ErrNilSurface)
		return nil, StatusFailed
	case surface.width <= 0 || surface.height <= 0 || len(surface.pix) == 0:
		Logger().Error("pageink: start rejected", "err", ErrEmptySurface)
		return nil, StatusFailed
	case scene == nil:
		Logger().Error("pageink: start rejected", "err", ErrNilScene)
		return nil, StatusFailed
	}
	if !surface.acquire() {
		Logger().Error("pageink: start rejected", "err", ErrSurfaceHeld)
		return nil, StatusFailed
	}

	s := &Session{
		surf:  surface,
		scene: scene,
		flags: flags,
		comp:  newCompositor(surface, flags, cfg.scheme, cfg.fieldHighlight),
		step:  cfg.stepInterval,
	}

	if !cfg.overlay {
		s.surf.Fill(s.background(&cfg))
	}
	return s, s.run(pause)
}

// background resolves the initial fill color.
func (s *Session) background(cfg *sessionConfig) Color {
	if cfg.background != nil {
		return *cfg.background
	}
	if s.surf.HasAlpha() && s.scene.IsTransparent() {
		return Transparent
	}
	return White
}

// Continue resumes a suspended walk at the exact next unpainted
// primitive, with the clip stack as it was at suspension. Valid only
// in StateSuspended; any other state returns StatusFailed and leaves
// the session unchanged.
func (s *Session) Continue(pause PauseFunc) Status {
	if s.state != StateSuspended {
		Logger().Error("pageink: continue rejected", "err", ErrNotSuspended, "state", s.state.String())
		return StatusFailed
	}
	return s.run(pause)
}

// Close finalizes the render: the forms overlay (if any) draws over
// the finished content with the session's flags, then ownership of
// the surface transfers back to the caller and the session becomes
// Closed.
//
// Valid only in StateComplete. Closing while Suspended or NotStarted
// returns ErrNotComplete; closing twice returns ErrClosed. An overlay
// draw failure is a content error: logged, and the surface is still
// handed back.
func (s *Session) Close(forms FormsHandle) (*Surface, error) {
	switch s.state {
	case StateClosed:
		Logger().Error("pageink: close rejected", "err", ErrClosed)
		return nil, ErrClosed
	case StateComplete:
	default:
		Logger().Error("pageink: close rejected", "err", ErrNotComplete, "state", s.state.String())
		return nil, ErrNotComplete
	}

	s.state = StateClosed
	surf := s.surf
	surf.release()
	if forms != nil {
		if err := forms.DrawForms(surf, s.flags); err != nil {
			Logger().Warn("pageink: forms overlay draw failed", "err", err)
		}
	}
	return surf, nil
}

// run is the single forward pass over the scene. Each primitive is
// atomic with respect to suspension; clip ops mutate the stack as they
// pass and never pause.
func (s *Session) run(pause PauseFunc) Status {
	ops := s.scene.ops
	for s.cursor < len(ops) {
		op := &ops[s.cursor]
		s.cursor++

		if !op.isPrimitive() {
			s.comp.clipOp(op)
			continue
		}
		if op.Annotation && !s.flags.Has(FlagAnnotations) {
			continue
		}
		s.comp.paint(op)
		s.painted++
		s.sinceCheck++

		if pause != nil && s.sinceCheck >= s.step {
			s.sinceCheck = 0
			if pause() {
				s.state = StateSuspended
				return StatusToBeContinued
			}
		}
	}
	s.state = StateComplete
	return StatusDone
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Cursor returns the index of the next op to execute.
func (s *Session) Cursor() int { return s.cursor }

// Flags returns the session's render flags.
func (s *Session) Flags() RenderFlags { return s.flags }

// Progress reports ops executed so far against the scene total, clip
// ops included.
func (s *Session) Progress() (done, total int) {
	return s.cursor, len(s.scene.ops)
}

// Render is the one-shot, non-progressive entry point: Start without a
// pause predicate, then Close with the WithForms handle. The surface
// is never left held on failure.
func Render(surface *Surface, scene *Scene, flags RenderFlags, opts ...Option) Status {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s, status := Start(surface, scene, flags, nil, opts...)
	if status != StatusDone {
		return status
	}
	if _, err := s.Close(cfg.forms); err != nil {
		return StatusFailed
	}
	return StatusDone
}
