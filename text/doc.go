// Package text turns strings into glyph-run primitives for the
// renderer.
//
// It is a producer-side collaborator: the renderer core consumes
// prebuilt glyph coverage masks and never depends on this package.
// A Source wraps one font file, parsed once for both shaping
// (go-text/typesetting's HarfBuzz port) and outline extraction
// (x/image/font/sfnt); a Face is a Source at a size. Layout shapes a
// string, with bidi paragraph segmentation for mixed-direction text,
// and rasterizes each glyph's outline into an alpha mask through the
// same scanline rasterizer the renderer uses for paths, so text and
// vector coverage are computed identically.
//
//	src, err := text.NewSource(fontBytes)
//	face := src.Face(14)
//	run, err := text.Run(face, "Hello", 72, 100, pageink.Black, pageink.TextFill)
//	builder.GlyphRunPrim(run)
//
// Masks are cached per Source, keyed by glyph and size; positions are
// quantized to whole pixels before placement so mask reuse is exact.
package text
