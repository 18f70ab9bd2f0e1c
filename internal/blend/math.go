// Package blend implements the pixel compositing math for the renderer.
//
// All operations work on premultiplied alpha bytes in the range 0-255.
// The renderer's determinism contract makes this arithmetic part of the
// public behavior: two runs over the same scene must produce identical
// bytes, so every helper here uses exact integer rounding rather than
// shift approximations.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// MulDiv255 multiplies two bytes and divides by 255, rounding to nearest.
//
// Formula: (a*b + 127) / 255
func MulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two bytes, clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unmul recovers an unmultiplied channel from a premultiplied one.
// alpha must be non-zero.
func unmul(c, alpha byte) byte {
	v := (uint16(c)*255 + uint16(alpha)/2) / uint16(alpha)
	if v > 255 {
		return 255
	}
	return byte(v)
}
