package pageink

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/pageink/pageink/internal/blend"
	"github.com/pageink/pageink/internal/clip"
	"github.com/pageink/pageink/internal/raster"
	"github.com/pageink/pageink/internal/stroke"
)

// blendFunc maps a primitive's blend mode to its compositing function.
// Unknown modes fall back to Normal.
func blendFunc(m BlendMode) blend.Func {
	if m == BlendMultiply {
		return blend.Multiply
	}
	return blend.Normal
}

// compositor rasterizes one primitive at a time onto the surface,
// honoring the live clip stack, the resolved paint color and the
// primitive's blend mode. It owns the rasterizer and scratch buffers
// so a whole session shares one allocation set.
//
// Malformed primitives are content errors: logged at Debug and
// skipped, never surfaced as a session failure.
type compositor struct {
	surf   *Surface
	clip   *clip.Stack
	ras    *raster.Rasterizer
	flags  RenderFlags
	scheme *ColorScheme

	// fieldHighlight, when set, overrides every form field marker's
	// own highlight color.
	fieldHighlight *Color

	rowBuf []uint8
}

func newCompositor(surf *Surface, flags RenderFlags, scheme *ColorScheme, fieldHighlight *Color) *compositor {
	return &compositor{
		surf:           surf,
		clip:           clip.New(surf.width, surf.height),
		ras:            raster.New(surf.width, surf.height),
		flags:          flags,
		scheme:         scheme,
		fieldHighlight: fieldHighlight,
	}
}

// paint dispatches one primitive op. The switch is exhaustive over the
// closed Kind set; anything else is an unknown-op content error.
func (c *compositor) paint(op *Op) {
	switch op.Kind {
	case KindPath:
		c.paintPath(op.Path)
	case KindGlyphRun:
		c.paintGlyphRun(op.Glyphs)
	case KindImage:
		c.paintImage(op.Image)
	case KindFormField:
		c.paintFormField(op.Field)
	case KindPushClipRect, KindPushClipPath, KindPopClip:
		c.clipOp(op)
	default:
		Logger().Warn("pageink: unknown op kind, skipping", "kind", uint8(op.Kind))
	}
}

// clipOp mutates the clip stack. Degenerate clip geometry still
// pushes an entry, so the matching pop stays balanced.
func (c *compositor) clipOp(op *Op) {
	switch op.Kind {
	case KindPushClipRect:
		r := op.ClipRect
		if !r.IsFinite() || r.Empty() {
			c.clip.PushRect(clip.Rect{})
			return
		}
		c.clip.PushRect(clip.Rect{
			X0: int(math.Round(r.X0)),
			Y0: int(math.Round(r.Y0)),
			X1: int(math.Round(r.X1)),
			Y1: int(math.Round(r.Y1)),
		})
	case KindPushClipPath:
		c.pushClipPath(op.ClipPath)
	case KindPopClip:
		c.clip.Pop()
	}
}

func (c *compositor) pushClipPath(p *ClipPathPrim) {
	if p == nil || p.Path.Empty() || !p.Path.IsFinite() {
		c.clip.PushRect(clip.Rect{})
		return
	}
	b := p.Path.Bounds()
	x0 := clampInt(int(math.Floor(b.X0)), 0, c.surf.width)
	y0 := clampInt(int(math.Floor(b.Y0)), 0, c.surf.height)
	x1 := clampInt(int(math.Ceil(b.X1)), 0, c.surf.width)
	y1 := clampInt(int(math.Ceil(b.Y1)), 0, c.surf.height)
	if x0 >= x1 || y0 >= y1 {
		c.clip.PushRect(clip.Rect{})
		return
	}
	mask := clip.NewMask(x0, y0, x1-x0, y1-y0)
	c.ras.Reset()
	p.Path.writeTo(c.ras)
	c.ras.Fill(fillRule(p.Rule), mask.WriteSpan)
	c.clip.PushMask(mask)
}

func fillRule(r FillRule) raster.FillRule {
	if r == FillEvenOdd {
		return raster.FillEvenOdd
	}
	return raster.FillNonZero
}

func strokeCap(c LineCap) stroke.Cap {
	switch c {
	case CapRound:
		return stroke.CapRound
	case CapSquare:
		return stroke.CapSquare
	default:
		return stroke.CapButt
	}
}

func strokeJoin(j LineJoin) stroke.Join {
	switch j {
	case JoinRound:
		return stroke.JoinRound
	case JoinBevel:
		return stroke.JoinBevel
	default:
		return stroke.JoinMiter
	}
}

// paintPath fills and/or strokes one vector path. With a color scheme
// and FlagConvertFillToStroke, a fill becomes an outline stroke; a
// path carrying both fill and stroke paints its outline once.
func (c *compositor) paintPath(p *PathPrim) {
	if p == nil || p.Path.Empty() {
		return
	}
	if !p.Path.IsFinite() {
		Logger().Debug("pageink: skipping path with non-finite coordinates")
		return
	}
	b := p.Path.Bounds()
	if b.Intersect(NewRect(0, 0, float64(c.surf.width), float64(c.surf.height))).Empty() &&
		!p.Stroke && p.Fill {
		// Entirely off-surface fills cannot touch pixels. Strokes may
		// still reach in by half their width, so they go through.
		return
	}

	if p.Fill {
		col, convert := resolvePaint(rolePathFill, p.FillColor, c.scheme, c.flags)
		switch {
		case convert && p.Stroke:
			// The stroke pass below already paints the outline with
			// the scheme's stroke color; painting it twice would
			// double-composite under Multiply.
		case convert:
			w := p.StrokeWidth
			if w <= 0 {
				w = 1
			}
			c.strokePath(p.Path, col, w, p.Cap, p.Join, p.MiterLimit, p.Blend)
		default:
			c.fillPath(p.Path, col, p.FillRule, p.Blend)
		}
	}
	if p.Stroke {
		col, _ := resolvePaint(rolePathStroke, p.StrokeColor, c.scheme, c.flags)
		c.strokePath(p.Path, col, p.StrokeWidth, p.Cap, p.Join, p.MiterLimit, p.Blend)
	}
}

func (c *compositor) fillPath(p *PathData, col Color, rule FillRule, mode BlendMode) {
	if col.IsTransparent() {
		return
	}
	c.ras.Reset()
	p.writeTo(c.ras)
	if c.ras.Empty() {
		Logger().Debug("pageink: skipping zero-area path fill")
		return
	}
	c.ras.Fill(fillRule(rule), c.spanPainter(col, mode, !c.flags.Has(FlagNoSmoothPaths)))
}

func (c *compositor) strokePath(p *PathData, col Color, width float64, lc LineCap, lj LineJoin, miter float64, mode BlendMode) {
	if col.IsTransparent() {
		return
	}
	if width <= 0 {
		Logger().Debug("pageink: skipping stroke with non-positive width", "width", width)
		return
	}
	subs := toStrokeSubpaths(p.flatten())
	loops := stroke.Expand(subs, width, strokeCap(lc), strokeJoin(lj), miter)
	if len(loops) == 0 {
		return
	}
	c.ras.Reset()
	for _, loop := range loops {
		if len(loop.Pts) < 3 {
			continue
		}
		c.ras.MoveTo(loop.Pts[0].X, loop.Pts[0].Y)
		for _, pt := range loop.Pts[1:] {
			c.ras.LineTo(pt.X, pt.Y)
		}
		c.ras.ClosePath()
	}
	if c.ras.Empty() {
		return
	}
	c.ras.Fill(raster.FillNonZero, c.spanPainter(col, mode, !c.flags.Has(FlagNoSmoothPaths)))
}

func toStrokeSubpaths(pls []polyline) []stroke.Subpath {
	subs := make([]stroke.Subpath, 0, len(pls))
	for _, pl := range pls {
		pts := make([]stroke.Point, len(pl.pts))
		for i, p := range pl.pts {
			pts[i] = stroke.Point{X: p.X, Y: p.Y}
		}
		subs = append(subs, stroke.Subpath{Pts: pts, Closed: pl.closed})
	}
	return subs
}

// paintGlyphRun tints each glyph's coverage mask with the resolved
// text color. Empty runs and nil masks are skipped.
func (c *compositor) paintGlyphRun(g *GlyphRunPrim) {
	if g == nil || len(g.Glyphs) == 0 {
		return
	}
	role := roleTextFill
	if g.Mode == TextStroke {
		role = roleTextStroke
	}
	col, _ := resolvePaint(role, g.Color, c.scheme, c.flags)
	if col.IsTransparent() {
		return
	}
	pr, pg, pb, pa := col.Premultiply()
	fn := blendFunc(g.Blend)
	smooth := !c.flags.Has(FlagNoSmoothText)
	cb := c.clip.Bounds()

	for _, gm := range g.Glyphs {
		if gm.Mask == nil {
			continue
		}
		mb := gm.Mask.Bounds()
		mw, mh := mb.Dx(), mb.Dy()
		if mw == 0 || mh == 0 {
			continue
		}
		x0 := maxInt(gm.X, cb.X0)
		y0 := maxInt(gm.Y, cb.Y0)
		x1 := minInt(gm.X+mw, cb.X1)
		y1 := minInt(gm.Y+mh, cb.Y1)
		if x0 >= x1 || y0 >= y1 {
			continue
		}
		buf := c.row(x1 - x0)
		for y := y0; y < y1; y++ {
			mrow := gm.Mask.Pix[(y-gm.Y)*gm.Mask.Stride:]
			for i := range buf {
				buf[i] = mrow[x0-gm.X+i]
			}
			if !smooth {
				threshold(buf)
			}
			c.clip.Apply(y, x0, buf)
			c.blendRow(y, x0, buf, pr, pg, pb, pa, fn)
		}
	}
}

// paintImage resamples the source through its unit-square transform
// and blends the result. Non-invertible transforms and degenerate
// destination boxes are skipped.
func (c *compositor) paintImage(p *ImagePrim) {
	if p == nil || p.Src == nil || p.Alpha == 0 {
		return
	}
	if !p.Transform.IsFinite() {
		Logger().Debug("pageink: skipping image with non-finite transform")
		return
	}
	if _, ok := p.Transform.Invert(); !ok {
		Logger().Debug("pageink: skipping image with singular transform")
		return
	}
	sb := p.Src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return
	}

	// Destination box: transform of the unit square corners, clamped
	// to the clip bounds.
	var bx0, by0 = math.Inf(1), math.Inf(1)
	var bx1, by1 = math.Inf(-1), math.Inf(-1)
	for _, corner := range [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		q := p.Transform.TransformPoint(corner)
		bx0 = math.Min(bx0, q.X)
		by0 = math.Min(by0, q.Y)
		bx1 = math.Max(bx1, q.X)
		by1 = math.Max(by1, q.Y)
	}
	cb := c.clip.Bounds()
	x0 := maxInt(int(math.Floor(bx0)), cb.X0)
	y0 := maxInt(int(math.Floor(by0)), cb.Y0)
	x1 := minInt(int(math.Ceil(bx1)), cb.X1)
	y1 := minInt(int(math.Ceil(by1)), cb.Y1)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	// Source pixel -> device transform: unit-square transform composed
	// with the scale down to source dimensions, shifted to the source
	// bounds origin.
	aff := p.Transform.
		Multiply(Scale(1/float64(sw), 1/float64(sh))).
		Multiply(Translate(float64(-sb.Min.X), float64(-sb.Min.Y)))
	scratch := image.NewRGBA(image.Rect(x0, y0, x1, y1))
	xdraw.ApproxBiLinear.Transform(scratch,
		f64.Aff3{aff.A, aff.B, aff.C, aff.D, aff.E, aff.F},
		p.Src, sb, xdraw.Src, nil)

	fn := blendFunc(p.Blend)
	buf := c.row(x1 - x0)
	for y := y0; y < y1; y++ {
		for i := range buf {
			buf[i] = 0xFF
		}
		c.clip.Apply(y, x0, buf)
		srow := scratch.Pix[(y-y0)*scratch.Stride:]
		base := (y*c.surf.width + x0) * 4
		for i, cov := range buf {
			if cov == 0 {
				continue
			}
			si := i * 4
			sr, sg, sbb, sa := srow[si], srow[si+1], srow[si+2], srow[si+3]
			if sa == 0 && p.Blend == BlendNormal {
				continue
			}
			f := blend.MulDiv255(p.Alpha, cov)
			if f != 0xFF {
				sr = blend.MulDiv255(sr, f)
				sg = blend.MulDiv255(sg, f)
				sbb = blend.MulDiv255(sbb, f)
				sa = blend.MulDiv255(sa, f)
			}
			di := base + i*4
			r, g, b, a := fn(sr, sg, sbb, sa,
				c.surf.pix[di], c.surf.pix[di+1], c.surf.pix[di+2], c.surf.pix[di+3])
			c.surf.setPixel(di, r, g, b, a)
		}
	}
}

// paintFormField paints a marker's translucent highlight. The widget
// appearance itself is drawn by the forms overlay at Close.
func (c *compositor) paintFormField(f *FormFieldPrim) {
	if f == nil {
		return
	}
	col := f.Highlight
	if c.fieldHighlight != nil {
		col = *c.fieldHighlight
	}
	if col.IsTransparent() || f.Bounds.Empty() || !f.Bounds.IsFinite() {
		return
	}
	c.fillPath(NewPath().Rect(f.Bounds.X0, f.Bounds.Y0, f.Bounds.Width(), f.Bounds.Height()),
		col, FillNonZero, BlendNormal)
}

// spanPainter returns a SpanFunc that blends coverage spans of one
// solid color. The rasterizer's span buffer is copied before the clip
// modulates it.
func (c *compositor) spanPainter(col Color, mode BlendMode, smooth bool) raster.SpanFunc {
	pr, pg, pb, pa := col.Premultiply()
	fn := blendFunc(mode)
	return func(y, x0 int, alpha []uint8) {
		buf := c.row(len(alpha))
		copy(buf, alpha)
		if !smooth {
			threshold(buf)
		}
		c.clip.Apply(y, x0, buf)
		c.blendRow(y, x0, buf, pr, pg, pb, pa, fn)
	}
}

// blendRow composites one coverage row of a solid premultiplied color.
func (c *compositor) blendRow(y, x0 int, cov []uint8, pr, pg, pb, pa uint8, fn blend.Func) {
	base := (y*c.surf.width + x0) * 4
	for i, a := range cov {
		if a == 0 {
			continue
		}
		sr, sg, sb, sa := pr, pg, pb, pa
		if a != 0xFF {
			sr = blend.MulDiv255(sr, a)
			sg = blend.MulDiv255(sg, a)
			sb = blend.MulDiv255(sb, a)
			sa = blend.MulDiv255(sa, a)
		}
		di := base + i*4
		r, g, b, aa := fn(sr, sg, sb, sa,
			c.surf.pix[di], c.surf.pix[di+1], c.surf.pix[di+2], c.surf.pix[di+3])
		c.surf.setPixel(di, r, g, b, aa)
	}
}

// row returns a scratch coverage row of at least n bytes.
func (c *compositor) row(n int) []uint8 {
	if cap(c.rowBuf) < n {
		c.rowBuf = make([]uint8, n)
	}
	return c.rowBuf[:n]
}

// threshold snaps anti-aliased coverage to hard edges at one half.
func threshold(buf []uint8) {
	for i, a := range buf {
		if a >= 128 {
			buf[i] = 0xFF
		} else {
			buf[i] = 0
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
