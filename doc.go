// Package pageink renders a fixed-layout page's drawable content into
// a pixel buffer, progressively.
//
// # Overview
//
// A page is represented as a Scene: an ordered stream of drawable
// primitives (vector paths, glyph runs, images, form field markers)
// interleaved with clip operations, produced externally by a page
// parser through SceneBuilder. A Session walks the stream in document
// order, painting each primitive onto a Surface, and can be suspended
// by the caller between primitives and resumed later without altering
// the final image.
//
// # Quick start
//
//	surf := pageink.NewSurface(595, 842)
//	scene := pageink.NewSceneBuilder().
//	    FillRect(36, 36, 200, 120, pageink.RGB(220, 40, 40)).
//	    Build()
//
//	session, status := pageink.Start(surf, scene, 0, pauseFn)
//	for status == pageink.StatusToBeContinued {
//	    status = session.Continue(pauseFn)
//	}
//	surf, _ = session.Close(nil)
//
// # Determinism
//
// The sequence of pixel mutations for a given scene, flags, color
// scheme and background is identical no matter how many times the
// walk pauses. Suspension only changes when control returns to the
// caller, never what gets painted or in what order; each primitive is
// atomic with respect to pausing. Conformance tests compare Surface
// digests between runs to assert this.
//
// # Color schemes
//
// An optional ColorScheme substitutes paint colors by semantic role
// (path fill, path stroke, text fill, text stroke), for forced-color
// and night-mode rendering. The scheme never alters blend modes: a
// Multiply-blended highlight keeps darkening the backdrop under an
// override.
//
// # Collaborator packages
//
// The text package shapes and rasterizes strings into glyph-run
// primitives; the forms package models interactive form fields and
// implements the forms overlay drawn at Close. The renderer core
// depends on neither.
package pageink

// Version is the current version of the library.
const Version = "0.2.0"
