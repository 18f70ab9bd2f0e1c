package pageink

// ColorScheme forces paint colors by semantic role. A nil scheme
// leaves every primitive's native colors untouched. The scheme only
// substitutes colors; blend modes always pass through unchanged, so a
// Multiply-blended highlight stays a highlight under an override.
type ColorScheme struct {
	PathFill   Color
	PathStroke Color
	TextFill   Color
	TextStroke Color
}

// paintRole is the semantic role of a paint operation, the key the
// scheme maps by.
type paintRole uint8

const (
	rolePathFill paintRole = iota
	rolePathStroke
	roleTextFill
	roleTextStroke
)

// resolvePaint maps a primitive's native color through the optional
// scheme and the render flags. It is pure: same inputs, same output.
//
// convert is true only for a path fill that FlagConvertFillToStroke
// turns into an outline stroke; the returned color is then the
// scheme's path-stroke color and the caller strokes instead of
// filling. Stroke roles and text roles never convert.
func resolvePaint(role paintRole, native Color, scheme *ColorScheme, flags RenderFlags) (c Color, convert bool) {
	c = native
	if scheme != nil {
		switch role {
		case rolePathFill:
			if flags.Has(FlagConvertFillToStroke) {
				c = scheme.PathStroke
				convert = true
			} else {
				c = scheme.PathFill
			}
		case rolePathStroke:
			c = scheme.PathStroke
		case roleTextFill:
			c = scheme.TextFill
		case roleTextStroke:
			c = scheme.TextStroke
		}
	}
	if flags.Has(FlagGrayscale) {
		c = c.Grayscale()
	}
	return c, convert
}
