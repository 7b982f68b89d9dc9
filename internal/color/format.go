package color

import (
	"fmt"
	"math"
)

// CMYKObject is the record form of a CMYK color.
type CMYKObject struct {
	Cyan    float64 `json:"cyan"`
	Magenta float64 `json:"magenta"`
	Yellow  float64 `json:"yellow"`
	Key     float64 `json:"key"`
}

// HSLObject is the record form of an HSL color.
type HSLObject struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// HSVObject is the record form of an HSV color.
type HSVObject struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// HWBObject is the record form of an HWB color.
type HWBObject struct {
	Hue       float64 `json:"hue"`
	Whiteness float64 `json:"whiteness"`
	Blackness float64 `json:"blackness"`
}

// RGBObject is the record form of an RGB color.
type RGBObject struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// Array returns the native channels in space order, e.g. [r, g, b] for RGB
// and [c, m, y, k] for CMYK.
func (c *Color) Array() []float64 {
	return c.rounded(c.space)
}

// Object returns the native channels keyed by the same field names the record
// constructors use ("red", "hue", "value", ...).
func (c *Color) Object() map[string]float64 {
	values := c.Array()
	obj := make(map[string]float64, len(values))
	for i, name := range fields[c.space] {
		obj[name] = values[i]
	}
	return obj
}

// String renders the native channels in the space's notation, the inverse of
// Parse.
func (c *Color) String() string {
	v := c.Array()
	switch c.space {
	case CMYK:
		return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)",
			percent(v[0]), percent(v[1]), percent(v[2]), percent(v[3]))
	case HSL, HSV, HWB:
		return fmt.Sprintf("%s(%d, %d%%, %d%%)", c.space, int(v[0]), percent(v[1]), percent(v[2]))
	case RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", int(v[0]), int(v[1]), int(v[2]))
	}
	panic(fmt.Sprintf("color: unknown space %d", int(c.space)))
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

// Description holds a color in every representation.
//
// It mirrors what a tool caller usually wants to see at once: the native
// notation, the hex string and the channel arrays of all five spaces.
type Description struct {
	Space  string    `json:"space"`  // Native space name
	String string    `json:"string"` // Native notation, e.g. "hsl(240, 100%, 50%)"
	Hex    string    `json:"hex"`    // "#rrggbb"
	CMYK   []float64 `json:"cmyk"`   // [c, m, y, k]
	HSL    []float64 `json:"hsl"`    // [h, s, l]
	HSV    []float64 `json:"hsv"`    // [h, s, v]
	HWB    []float64 `json:"hwb"`    // [h, w, b]
	RGB    []float64 `json:"rgb"`    // [r, g, b]
}

// Describe returns every representation of c.
func (c *Color) Describe() Description {
	return Description{
		Space:  c.space.String(),
		String: c.String(),
		Hex:    c.Hex(),
		CMYK:   c.rounded(CMYK),
		HSL:    c.rounded(HSL),
		HSV:    c.rounded(HSV),
		HWB:    c.rounded(HWB),
		RGB:    c.rounded(RGB),
	}
}
