package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Keywords are the CSS named colors from the SVG 1.1 list, lower case.

func isKeyword(s string) bool {
	_, ok := colornames.Map[s]
	return ok
}

func lookupKeyword(s string) (*Color, bool) {
	rgba, ok := colornames.Map[s]
	if !ok {
		return nil, false
	}
	return FromRGB8(rgba.R, rgba.G, rgba.B), true
}

// Keyword returns the keyword whose RGB value is exactly c, if any. When several
// names share a value (aqua and cyan) the alphabetically first one wins.
func (c *Color) Keyword() (string, bool) {
	r, g, b := uint8(c.Red()), uint8(c.Green()), uint8(c.Blue())
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		if rgba.R == r && rgba.G == g && rgba.B == b {
			return name, true
		}
	}
	return "", false
}

// NearestKeyword returns the keyword perceptually closest to c, measured as
// Euclidean distance in CIE L*a*b*, along with that distance.
func (c *Color) NearestKeyword() (string, float64) {
	ref := c.colorful()

	best, bestDist := "", math.Inf(1)
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		candidate := colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}
		if d := ref.DistanceLab(candidate); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, bestDist
}
