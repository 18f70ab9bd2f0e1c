package pageink

import "image"

// SceneBuilder assembles a Scene in paint order. It is the producer
// side of the renderer: a page parser walks its content stream and
// emits one builder call per drawable object.
//
// The builder carries two scoped settings that apply to subsequently
// added primitives: the blend mode (default Normal) and the annotation
// mark (default off). Clip pushes and pops nest; the builder does not
// enforce balance, the clip stack treats an excess pop as a no-op.
type SceneBuilder struct {
	ops         []Op
	transparent bool
	blend       BlendMode
	annotation  bool

	cap        LineCap
	join       LineJoin
	miterLimit float64
}

// NewSceneBuilder returns an empty builder with Normal blending,
// butt caps, miter joins and a miter limit of 10.
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{miterLimit: 10}
}

// SetTransparent marks the page as supporting transparency.
func (b *SceneBuilder) SetTransparent(v bool) *SceneBuilder {
	b.transparent = v
	return b
}

// Blend sets the blend mode for subsequent primitives.
func (b *SceneBuilder) Blend(m BlendMode) *SceneBuilder {
	b.blend = m
	return b
}

// Annotation marks subsequent primitives as annotation-sourced.
func (b *SceneBuilder) Annotation(v bool) *SceneBuilder {
	b.annotation = v
	return b
}

// SetStrokeStyle sets the cap, join and miter limit for subsequent
// stroked paths.
func (b *SceneBuilder) SetStrokeStyle(c LineCap, j LineJoin, miterLimit float64) *SceneBuilder {
	b.cap = c
	b.join = j
	b.miterLimit = miterLimit
	return b
}

func (b *SceneBuilder) push(op Op) *SceneBuilder {
	op.Annotation = b.annotation
	b.ops = append(b.ops, op)
	return b
}

// FillPath adds a filled path.
func (b *SceneBuilder) FillPath(p *PathData, c Color, rule FillRule) *SceneBuilder {
	return b.push(Op{Kind: KindPath, Path: &PathPrim{
		Path: p, Fill: true, FillColor: c, FillRule: rule, Blend: b.blend,
	}})
}

// StrokePath adds a stroked path using the builder's stroke style.
func (b *SceneBuilder) StrokePath(p *PathData, c Color, width float64) *SceneBuilder {
	return b.push(Op{Kind: KindPath, Path: &PathPrim{
		Path: p, Stroke: true, StrokeColor: c, StrokeWidth: width,
		Cap: b.cap, Join: b.join, MiterLimit: b.miterLimit, Blend: b.blend,
	}})
}

// FillStrokePath adds a path that is filled and then stroked.
func (b *SceneBuilder) FillStrokePath(p *PathData, fill, stroke Color, rule FillRule, width float64) *SceneBuilder {
	return b.push(Op{Kind: KindPath, Path: &PathPrim{
		Path: p, Fill: true, FillColor: fill, FillRule: rule,
		Stroke: true, StrokeColor: stroke, StrokeWidth: width,
		Cap: b.cap, Join: b.join, MiterLimit: b.miterLimit, Blend: b.blend,
	}})
}

// FillRect adds an axis-aligned filled rectangle.
func (b *SceneBuilder) FillRect(x, y, w, h float64, c Color) *SceneBuilder {
	return b.FillPath(NewPath().Rect(x, y, w, h), c, FillNonZero)
}

// GlyphRun adds a run of positioned glyph masks.
func (b *SceneBuilder) GlyphRun(glyphs []GlyphMask, c Color, mode TextMode) *SceneBuilder {
	return b.push(Op{Kind: KindGlyphRun, Glyphs: &GlyphRunPrim{
		Glyphs: glyphs, Color: c, Mode: mode, Blend: b.blend,
	}})
}

// GlyphRunPrim adds a prebuilt glyph run, as produced by the text
// package. The run's own blend mode is overridden by the builder's
// current mode.
func (b *SceneBuilder) GlyphRunPrim(run *GlyphRunPrim) *SceneBuilder {
	if run == nil {
		return b
	}
	cp := *run
	cp.Blend = b.blend
	return b.push(Op{Kind: KindGlyphRun, Glyphs: &cp})
}

// Image adds a transformed image. transform maps the unit square to
// the destination quad; alpha scales the whole image.
func (b *SceneBuilder) Image(src *image.RGBA, transform Matrix, alpha uint8) *SceneBuilder {
	return b.push(Op{Kind: KindImage, Image: &ImagePrim{
		Src: src, Transform: transform, Alpha: alpha, Blend: b.blend,
	}})
}

// FormField adds a form widget footprint marker.
func (b *SceneBuilder) FormField(bounds Rect, typ FieldType, highlight Color) *SceneBuilder {
	return b.push(Op{Kind: KindFormField, Field: &FormFieldPrim{
		Bounds: bounds, Field: typ, Highlight: highlight,
	}})
}

// PushClipRect intersects a rectangle into the clip region for
// subsequent ops.
func (b *SceneBuilder) PushClipRect(r Rect) *SceneBuilder {
	return b.push(Op{Kind: KindPushClipRect, ClipRect: r})
}

// PushClipPath intersects a path's coverage into the clip region.
func (b *SceneBuilder) PushClipPath(p *PathData, rule FillRule) *SceneBuilder {
	return b.push(Op{Kind: KindPushClipPath, ClipPath: &ClipPathPrim{Path: p, Rule: rule}})
}

// PopClip undoes the most recent clip push.
func (b *SceneBuilder) PopClip() *SceneBuilder {
	return b.push(Op{Kind: KindPopClip})
}

// Len returns the number of ops added so far.
func (b *SceneBuilder) Len() int { return len(b.ops) }

// Build returns the finished scene. The builder keeps its ops, so a
// Build followed by further adds would alias the returned scene;
// builders are intended to be used once per page.
func (b *SceneBuilder) Build() *Scene {
	return &Scene{ops: b.ops, transparent: b.transparent}
}
