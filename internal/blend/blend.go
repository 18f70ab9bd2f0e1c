package blend

// Func composites one source pixel onto one destination pixel.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Normal is Porter-Duff source-over, the default compositing operator.
//
// Formula: S + D*(1-Sa)
func Normal(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// Multiply is the W3C separable multiply blend mode. Highlight-style
// annotations composite with it; the darkening against the backdrop is
// what visually distinguishes a highlight from an opaque fill, so the
// result must stay distinct from Normal even when a color scheme
// overrides the source color.
//
// Formula: (1-Sa)*D + (1-Da)*S + Sa*Da*B(Sc,Dc), with B(Cb,Cs) = Cb*Cs
// applied per channel on unmultiplied values.
func Multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	sur := unmul(sr, sa)
	sug := unmul(sg, sa)
	sub := unmul(sb, sa)
	dur := unmul(dr, da)
	dug := unmul(dg, da)
	dub := unmul(db, da)

	invSa := 255 - sa
	invDa := 255 - da
	saDa := MulDiv255(sa, da)

	r := addClamp(addClamp(MulDiv255(dr, invSa), MulDiv255(sr, invDa)), MulDiv255(saDa, MulDiv255(sur, dur)))
	g := addClamp(addClamp(MulDiv255(dg, invSa), MulDiv255(sg, invDa)), MulDiv255(saDa, MulDiv255(sug, dug)))
	b := addClamp(addClamp(MulDiv255(db, invSa), MulDiv255(sb, invDa)), MulDiv255(saDa, MulDiv255(sub, dub)))
	a := addClamp(sa, MulDiv255(da, invSa))

	return r, g, b, a
}
