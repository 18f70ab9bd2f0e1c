package pageink

// Option configures a render session at Start.
//
// Example:
//
//	session, status := pageink.Start(surf, scene, 0, nil,
//	    pageink.WithBackground(pageink.White),
//	    pageink.WithColorScheme(&pageink.ColorScheme{...}),
//	)
type Option func(*sessionConfig)

// sessionConfig holds the optional knobs of a session.
type sessionConfig struct {
	background     *Color
	scheme         *ColorScheme
	stepInterval   int
	fieldHighlight *Color
	overlay        bool
	forms          FormsHandle
}

func defaultConfig() sessionConfig {
	return sessionConfig{stepInterval: 1}
}

// WithBackground sets an explicit background color for the initial
// fill. Without it the background is transparent for a transparent
// scene on an alpha surface, white otherwise.
func WithBackground(c Color) Option {
	return func(o *sessionConfig) {
		bg := c
		o.background = &bg
	}
}

// WithColorScheme forces paint colors by role for the whole session.
// Pass nil to render with native colors (the default).
func WithColorScheme(s *ColorScheme) Option {
	return func(o *sessionConfig) {
		o.scheme = s
	}
}

// WithStepInterval consults the pause predicate only every n painted
// primitives. n < 1 is treated as 1. The rendered pixels are identical
// for every interval; only the pause cadence changes.
func WithStepInterval(n int) Option {
	return func(o *sessionConfig) {
		if n < 1 {
			n = 1
		}
		o.stepInterval = n
	}
}

// WithFormsHighlight overrides the highlight color of every form field
// marker in the scene, the way a viewer highlights fillable fields.
func WithFormsHighlight(c Color) Option {
	return func(o *sessionConfig) {
		hl := c
		o.fieldHighlight = &hl
	}
}

// WithOverlay skips the initial background fill and composites the
// scene onto the surface's existing content. The forms overlay uses
// this to draw widgets over a finished page.
func WithOverlay() Option {
	return func(o *sessionConfig) {
		o.overlay = true
	}
}

// WithForms supplies the forms handle for the one-shot Render, which
// invokes it the way Close does. Start ignores this option; pass the
// handle to Close instead.
func WithForms(h FormsHandle) Option {
	return func(o *sessionConfig) {
		o.forms = h
	}
}
