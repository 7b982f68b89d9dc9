package color

import (
	"fmt"
	"math"
)

// The conversion kernel. RGB channels are on the 0-255 scale, hue is in degrees,
// every other channel is a ratio in [0, 1]. No function here rounds its result.

// rgbToHSL converts RGB to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	r, g, b = r/255, g/255, b/255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))

	l = (hi + lo) / 2
	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	if l <= 0.5 {
		s = d / (hi + lo)
	} else {
		s = d / (2 - hi - lo)
	}

	switch hi {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s, l
}

// hslToRGB reconstructs RGB from chroma, the intermediate component and the
// lightness match value, picking the component order by 60 degree hue sector.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}

func hslToHSV(h, s, l float64) (float64, float64, float64) {
	v := l + s*math.Min(l, 1-l)
	if v == 0 {
		return h, 0, 0
	}
	return h, 2 - 2*l/v, v
}

func hsvToHSL(h, s, v float64) (float64, float64, float64) {
	l := v - v*s/2
	if l == 0 || l == 1 {
		return h, 0, l
	}
	return h, (v - l) / math.Min(l, 1-l), l
}

func rgbToHSV(r, g, b float64) (float64, float64, float64) {
	return hslToHSV(rgbToHSL(r, g, b))
}

// hsvToRGB uses the sector method with the p, q, t intermediates.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h /= 60
	i := math.Floor(h)
	f := h - i

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	default:
		panic(fmt.Sprintf("color: hue %v outside [0, 360) in HSV to RGB conversion", h*60))
	}

	return r * 255, g * 255, b * 255
}

// rgbToHWB takes the hue from the HSL conversion.
func rgbToHWB(r, g, b float64) (float64, float64, float64) {
	h, _, _ := rgbToHSL(r, g, b)
	w := math.Min(r, math.Min(g, b)) / 255
	bk := 1 - math.Max(r, math.Max(g, b))/255
	return h, w, bk
}

func hsvToHWB(h, s, v float64) (float64, float64, float64) {
	return h, (1 - s) * v, 1 - v
}

// hwbToHSV normalizes whiteness and blackness so their sum never exceeds 1.
func hwbToHSV(h, w, b float64) (float64, float64, float64) {
	if sum := w + b; sum > 1 {
		w /= sum
		b /= sum
	}
	if b == 1 {
		return h, 0, 0
	}
	return h, 1 - w/(1-b), 1 - b
}

func rgbToCMYK(r, g, b float64) (c, m, y, k float64) {
	r, g, b = r/255, g/255, b/255

	k = 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return 0, 0, 0, 1
	}

	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c, m, y, k
}

func cmykToRGB(c, m, y, k float64) (r, g, b float64) {
	return 255 * (1 - c) * (1 - k), 255 * (1 - m) * (1 - k), 255 * (1 - y) * (1 - k)
}

// wrapHue maps any finite angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func roundHue(h float64) float64 {
	h = math.Round(h)
	if h >= 360 || h == 0 {
		return 0
	}
	return h
}

func roundRatio(v float64) float64 {
	v = math.Round(v*100) / 100
	if v == 0 {
		return 0
	}
	return v
}

func roundByte(v float64) float64 {
	v = math.Round(v)
	switch {
	case v <= 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}
