// Package color implements color values in five interchangeable color spaces.
//
// A Color is created in one space (its native space) from a string, a typed
// record or a transform of another Color. Channels of every other space are
// derived on first access and memoized on the value, so reading two channels of
// the same foreign space runs the conversion once.
//
// # Color Spaces
//
// Channel ranges per space:
//   - CMYK: cyan, magenta, yellow, key in [0, 1]
//   - HSL: hue in [0, 360), saturation and lightness in [0, 1]
//   - HSV: hue in [0, 360), saturation and value (brightness) in [0, 1]
//   - HWB: hue in [0, 360), whiteness and blackness in [0, 1]
//   - RGB: red, green, blue in [0, 255]
//
// Hue arithmetic wraps modulo 360 instead of clamping.
//
// # Precision
//
// Values are kept at full float64 precision internally. Rounding is applied once,
// by the accessors: ratio channels to two decimal places, hue and RGB channels to
// the nearest integer.
//
// # String Grammar
//
// Parse accepts the notations below (case-sensitive):
//
//	cmyk(0%, 100%, 100%, 0%)
//	hsl(240, 100%, 50%)
//	hsv(240, 100%, 100%)
//	hwb(240, 0%, 0%)
//	rgb(0, 0, 255)
//	#00f
//	#0000ff
//	blue
//
// # Thread Safety
//
// A Color is immutable from the caller's point of view. The derived-channel memo
// is guarded by a mutex, so a Color may be shared between goroutines.
//
// # Errors
//
// Failures wrap one of ErrParse, ErrRange or ErrInvalidGroup and can be tested
// with errors.Is.
package color
