package color

import (
	"fmt"
	"sync"
)

// Color is an immutable color value with a native color space.
//
// Only the native space's channels are known at construction. Channels of other
// spaces are derived through the conversion kernel on first access; the whole
// group is cached, so the conversion for a given space runs at most once per
// value. Use the constructors, Parse or New to obtain a Color; the zero value is
// not usable.
type Color struct {
	space Space

	mu    sync.Mutex
	cache [spaceCount][]float64
	hex   string
}

// build creates a Color from native channel values without range checks.
// Hues are wrapped into [0, 360) and an achromatic HSL or HSV color gets hue 0.
func build(space Space, values ...float64) *Color {
	v := make([]float64, len(values))
	copy(v, values)

	switch space {
	case HSL, HSV:
		if v[1] == 0 {
			v[0] = 0
		} else {
			v[0] = wrapHue(v[0])
		}
	case HWB:
		v[0] = wrapHue(v[0])
	}

	c := &Color{space: space}
	c.cache[space] = v
	return c
}

// NewCMYK returns a CMYK color. Each channel must be in [0, 1].
func NewCMYK(c, m, y, k float64) (*Color, error) {
	if err := checkChannels(CMYK, c, m, y, k); err != nil {
		return nil, err
	}
	return build(CMYK, c, m, y, k), nil
}

// NewHSL returns an HSL color. Saturation and lightness must be in [0, 1];
// the hue may be any finite angle and is wrapped into [0, 360).
func NewHSL(h, s, l float64) (*Color, error) {
	if err := checkChannels(HSL, h, s, l); err != nil {
		return nil, err
	}
	return build(HSL, h, s, l), nil
}

// NewHSV returns an HSV color. Saturation and value must be in [0, 1].
func NewHSV(h, s, v float64) (*Color, error) {
	if err := checkChannels(HSV, h, s, v); err != nil {
		return nil, err
	}
	return build(HSV, h, s, v), nil
}

// NewHWB returns an HWB color. Whiteness and blackness must be in [0, 1].
// A sum above 1 is allowed and normalized during conversion.
func NewHWB(h, w, b float64) (*Color, error) {
	if err := checkChannels(HWB, h, w, b); err != nil {
		return nil, err
	}
	return build(HWB, h, w, b), nil
}

// NewRGB returns an RGB color. Each channel must be in [0, 255]; fractional
// values are kept and rounded by the accessors.
func NewRGB(r, g, b float64) (*Color, error) {
	if err := checkChannels(RGB, r, g, b); err != nil {
		return nil, err
	}
	return build(RGB, r, g, b), nil
}

// FromRGB8 returns an RGB color from 8-bit components.
func FromRGB8(r, g, b uint8) *Color {
	return build(RGB, float64(r), float64(g), float64(b))
}

func checkChannels(space Space, values ...float64) error {
	for i, v := range values {
		name := fields[space][i]
		var err error
		switch {
		case space == RGB:
			err = checkRange(name, v, 0, 255)
		case i == 0 && space != CMYK:
			err = checkFinite(name, v)
		default:
			err = checkRange(name, v, 0, 1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Space returns the native color space.
func (c *Color) Space() Space { return c.space }

// raw returns the full-precision channels of space s, deriving and caching
// them on first use.
func (c *Color) raw(s Space) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.derive(s)
}

// derive must be called with c.mu held. Each space is reached by a fixed path:
//
//	RGB:  cmyk->rgb | hsl->rgb | (hsv, hwb->hsv)->rgb
//	HSL:  (rgb, cmyk->rgb)->hsl | (hsv, hwb->hsv)->hsl
//	HSV:  (rgb, cmyk->rgb)->hsv | hsl->hsv | hwb->hsv
//	HWB:  (rgb, cmyk->rgb)->hwb | (hsv, hsl->hsv)->hwb
//	CMYK: rgb->cmyk
func (c *Color) derive(s Space) []float64 {
	if v := c.cache[s]; v != nil {
		return v
	}

	var v []float64
	switch s {
	case RGB:
		switch c.space {
		case CMYK:
			n := c.cache[CMYK]
			v = triple(cmykToRGB(n[0], n[1], n[2], n[3]))
		case HSL:
			n := c.cache[HSL]
			v = triple(hslToRGB(n[0], n[1], n[2]))
		default:
			n := c.derive(HSV)
			v = triple(hsvToRGB(n[0], n[1], n[2]))
		}
	case HSL:
		switch c.space {
		case RGB, CMYK:
			n := c.derive(RGB)
			v = triple(rgbToHSL(n[0], n[1], n[2]))
		default:
			n := c.derive(HSV)
			v = triple(hsvToHSL(n[0], n[1], n[2]))
		}
	case HSV:
		switch c.space {
		case HSL:
			n := c.cache[HSL]
			v = triple(hslToHSV(n[0], n[1], n[2]))
		case HWB:
			n := c.cache[HWB]
			v = triple(hwbToHSV(n[0], n[1], n[2]))
		default:
			n := c.derive(RGB)
			v = triple(rgbToHSV(n[0], n[1], n[2]))
		}
	case HWB:
		switch c.space {
		case RGB, CMYK:
			n := c.derive(RGB)
			v = triple(rgbToHWB(n[0], n[1], n[2]))
		default:
			n := c.derive(HSV)
			v = triple(hsvToHWB(n[0], n[1], n[2]))
		}
	case CMYK:
		n := c.derive(RGB)
		cy, m, y, k := rgbToCMYK(n[0], n[1], n[2])
		v = []float64{cy, m, y, k}
	default:
		panic(fmt.Sprintf("color: unknown space %d", int(s)))
	}

	c.cache[s] = v
	return v
}

func triple(a, b, c float64) []float64 {
	return []float64{a, b, c}
}

// rounded returns the channels of space s with the accessor precision applied.
func (c *Color) rounded(s Space) []float64 {
	raw := c.raw(s)
	out := make([]float64, len(raw))
	for i, v := range raw {
		switch {
		case s == RGB:
			out[i] = roundByte(v)
		case i == 0 && s != CMYK:
			out[i] = roundHue(v)
		default:
			out[i] = roundRatio(v)
		}
	}
	return out
}

// hueSpace is the space the hue accessor reads from: the native space when it
// carries a hue, HSL otherwise.
func (c *Color) hueSpace() Space {
	switch c.space {
	case HSL, HSV, HWB:
		return c.space
	}
	return HSL
}

func (c *Color) Cyan() float64    { return c.rounded(CMYK)[0] }
func (c *Color) Magenta() float64 { return c.rounded(CMYK)[1] }
func (c *Color) Yellow() float64  { return c.rounded(CMYK)[2] }
func (c *Color) Key() float64     { return c.rounded(CMYK)[3] }

// Hue returns the hue in whole degrees, in [0, 360).
func (c *Color) Hue() float64 { return c.rounded(c.hueSpace())[0] }

// Saturation returns the HSL saturation.
func (c *Color) Saturation() float64 { return c.rounded(HSL)[1] }

func (c *Color) Lightness() float64 { return c.rounded(HSL)[2] }

// HSVSaturation returns the HSV saturation, which differs from the HSL one
// for everything but fully saturated and achromatic colors.
func (c *Color) HSVSaturation() float64 { return c.rounded(HSV)[1] }

// Brightness returns the HSV value channel.
func (c *Color) Brightness() float64 { return c.rounded(HSV)[2] }

func (c *Color) Whiteness() float64 { return c.rounded(HWB)[1] }
func (c *Color) Blackness() float64 { return c.rounded(HWB)[2] }

func (c *Color) Red() float64   { return c.rounded(RGB)[0] }
func (c *Color) Green() float64 { return c.rounded(RGB)[1] }
func (c *Color) Blue() float64  { return c.rounded(RGB)[2] }

// Hex returns the color as "#rrggbb" in lower case.
func (c *Color) Hex() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hex == "" {
		rgb := c.derive(RGB)
		c.hex = fmt.Sprintf("#%02x%02x%02x",
			int(roundByte(rgb[0])), int(roundByte(rgb[1])), int(roundByte(rgb[2])))
	}
	return c.hex
}

// To returns the color converted to space s. The result is built from the
// rounded channels of s. Converting to the native space returns c itself.
func (c *Color) To(s Space) *Color {
	if s == c.space {
		return c
	}
	return build(s, c.rounded(s)...)
}

func (c *Color) CMYK() *Color { return c.To(CMYK) }
func (c *Color) HSL() *Color  { return c.To(HSL) }
func (c *Color) HSV() *Color  { return c.To(HSV) }
func (c *Color) HWB() *Color  { return c.To(HWB) }
func (c *Color) RGB() *Color  { return c.To(RGB) }
