package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// ColorResult is a sampled pixel in every color space.
//
// The embedded Description carries the native RGB notation, the hex string
// and the channel arrays of all five spaces. Alpha is reported separately
// because color values themselves are always opaque.
type ColorResult struct {
	color.Description
	Alpha uint8  `json:"alpha"`          // 0 = fully transparent, 255 = fully opaque
	Name  string `json:"name,omitempty"` // Exact CSS keyword, if the pixel has one
}

func describe(c *color.Color) ColorResult {
	name, _ := c.Keyword()
	return ColorResult{Description: c.Describe(), Alpha: 255, Name: name}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in every color space.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// Premultiplied pixel values are divided by alpha before conversion, so a
// half-transparent red pixel samples as red with Alpha 128. A fully transparent
// pixel samples as black with Alpha 0.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := img.At(x, y)
	_, _, _, a := px.RGBA()

	result := describe(color.FromImageColor(px))
	result.Alpha = uint8(a >> 8)
	return &result, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples from multiple points, in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// If any coordinate is outside the image bounds no partial results are
// returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ColorFrequency is one palette entry and the share of pixels it covers.
type ColorFrequency struct {
	ColorResult
	Percentage float64 `json:"percentage"` // 0-100
	Nearest    string  `json:"nearest"`    // Perceptually closest CSS keyword
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the N most common colors from an image or region.
//
// Pixels are quantized before counting by clearing the low four bits of each
// RGB component, so #F0F0F0 and #FAFAFA fall into the same bucket:
//
//	quantized = (original / 16) * 16
//
// Buckets with the same count are ordered by hex string. Each entry is
// described in every color space and labeled with its nearest CSS keyword.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds, err := resolveRegion(img.Bounds(), region)
	if err != nil {
		return nil, err
	}

	counts := make(map[[3]uint8]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.FromImageColor(img.At(x, y))
			key := [3]uint8{quantize(c.Red()), quantize(c.Green()), quantize(c.Blue())}
			counts[key]++
		}
	}

	total := float64(bounds.Dx() * bounds.Dy())
	colors := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		c := color.FromRGB8(key[0], key[1], key[2])
		nearest, _ := c.NearestKeyword()
		colors = append(colors, ColorFrequency{
			ColorResult: describe(c),
			Percentage:  float64(n) / total * 100,
			Nearest:     nearest,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

func quantize(v float64) uint8 {
	return uint8(v) / 16 * 16
}
