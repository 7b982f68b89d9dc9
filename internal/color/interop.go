package color

import (
	imgcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA implements image/color.Color, so a *Color can be drawn directly.
// The color is always fully opaque.
func (c *Color) RGBA() (r, g, b, a uint32) {
	rgb := c.rounded(RGB)
	r = uint32(rgb[0])
	g = uint32(rgb[1])
	b = uint32(rgb[2])
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// FromImageColor converts any image/color.Color to an RGB Color. Alpha is
// discarded after un-premultiplying; a fully transparent color becomes black.
func FromImageColor(col imgcolor.Color) *Color {
	c, ok := colorful.MakeColor(col)
	if !ok {
		return FromRGB8(0, 0, 0)
	}
	return FromRGB8(c.RGB255())
}

// Distance returns the CIEDE2000 color difference between c and other.
// Identical colors are 0 apart; a just noticeable difference is around 0.01.
// other must not be nil.
func (c *Color) Distance(other *Color) float64 {
	return c.colorful().DistanceCIEDE2000(other.colorful())
}

func (c *Color) colorful() colorful.Color {
	rgb := c.rounded(RGB)
	return colorful.Color{R: rgb[0] / 255, G: rgb[1] / 255, B: rgb[2] / 255}
}
