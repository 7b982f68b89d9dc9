package color

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrParse is returned when a string or record matches no known color notation.
	ErrParse = errors.New("invalid color")

	// ErrRange is returned when a channel value, delta, factor or weight lies
	// outside its legal domain.
	ErrRange = errors.New("value out of range")

	// ErrInvalidGroup is returned when a transform receives channels that cannot
	// be applied together, such as red and hue in the same call.
	ErrInvalidGroup = errors.New("invalid channel group")
)

// checkRange fails with ErrRange unless lo <= v <= hi.
func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%w: %s %v must be between %v and %v inclusive", ErrRange, name, v, lo, hi)
	}
	return nil
}

// checkFinite fails with ErrRange for NaN and infinities.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s %v is not a finite number", ErrRange, name, v)
	}
	return nil
}
