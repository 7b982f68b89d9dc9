package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// JustNoticeable is the CIEDE2000 distance up to which CompareRegions treats
// two pixels as the same color. go-colorful reports CIEDE2000 with L* in
// [0, 1], so this is one unit on the usual 0-100 scale.
const JustNoticeable = 0.01

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns r as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// resolveRegion returns the rectangle to analyze: the whole image when r is
// nil, otherwise r after checking it lies inside bounds and is not empty.
func resolveRegion(bounds image.Rectangle, r *Region) (image.Rectangle, error) {
	if r == nil {
		if bounds.Empty() {
			return image.Rectangle{}, fmt.Errorf("image is empty")
		}
		return bounds, nil
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	rect := r.Rect()
	if !rect.In(bounds) {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return rect, nil
}

// RegionNames lists the names NamedRegion accepts.
var RegionNames = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half",
	"center",
}

// NamedRegion returns a named part of bounds. "center" is the middle 50% in
// each direction.
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}

	o := bounds.Min
	return Region{X1: o.X + x1, Y1: o.Y + y1, X2: o.X + x2, Y2: o.Y + y2}, nil
}

// AverageColorResult is the mean color of a region.
type AverageColorResult struct {
	Region  Region      `json:"region"`
	Pixels  int         `json:"pixels"`
	Color   ColorResult `json:"color"`
	Nearest string      `json:"nearest"` // Perceptually closest CSS keyword
}

// AverageColor returns the mean color of region, or of the whole image when
// region is nil.
//
// Channels are averaged weighted by alpha, so transparent pixels do not pull
// the result towards black. Alpha is the plain mean of all pixels. A fully
// transparent region averages to black with Alpha 0.
func AverageColor(img image.Image, region *Region) (*AverageColorResult, error) {
	rect, err := resolveRegion(img.Bounds(), region)
	if err != nil {
		return nil, err
	}
	c, alpha, err := average(img, rect)
	if err != nil {
		return nil, err
	}
	return averageResult(rect, c, alpha), nil
}

func average(img image.Image, rect image.Rectangle) (*color.Color, uint8, error) {
	// Crop copies the region into a zero-origin NRGBA with straight alpha.
	cropped := imaging.Crop(img, rect)

	var sumR, sumG, sumB, sumA float64
	pix := cropped.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		a := float64(pix[i+3])
		sumR += float64(pix[i]) * a
		sumG += float64(pix[i+1]) * a
		sumB += float64(pix[i+2]) * a
		sumA += a
	}

	alpha := uint8(math.Round(sumA / float64(rect.Dx()*rect.Dy())))
	if sumA == 0 {
		return color.FromRGB8(0, 0, 0), alpha, nil
	}
	c, err := color.NewRGB(sumR/sumA, sumG/sumA, sumB/sumA)
	if err != nil {
		return nil, 0, err
	}
	return c, alpha, nil
}

func averageResult(rect image.Rectangle, c *color.Color, alpha uint8) *AverageColorResult {
	result := describe(c)
	result.Alpha = alpha
	nearest, _ := c.NearestKeyword()

	return &AverageColorResult{
		Region:  Region{X1: rect.Min.X, Y1: rect.Min.Y, X2: rect.Max.X, Y2: rect.Max.Y},
		Pixels:  rect.Dx() * rect.Dy(),
		Color:   result,
		Nearest: nearest,
	}
}

// RegionComparison compares two regions of an image by color.
type RegionComparison struct {
	Region1 AverageColorResult `json:"region1"`
	Region2 AverageColorResult `json:"region2"`

	// Distance is the CIEDE2000 difference of the two average colors.
	Distance float64 `json:"distance"`

	SameSize        bool    `json:"same_size"`
	PixelsCompared  int     `json:"pixels_compared"`
	PixelsDifferent int     `json:"pixels_different"`
	Similarity      float64 `json:"similarity"` // share of compared pixels within JustNoticeable, 0-1
}

// CompareRegions compares two regions of img.
//
// The average colors are compared as a whole. Pixels are compared pairwise
// over the overlap of both regions' sizes, anchored at their top-left corners;
// a pair counts as different when its CIEDE2000 distance exceeds
// JustNoticeable.
func CompareRegions(img image.Image, r1, r2 Region) (*RegionComparison, error) {
	rect1, err := resolveRegion(img.Bounds(), &r1)
	if err != nil {
		return nil, fmt.Errorf("region1: %w", err)
	}
	rect2, err := resolveRegion(img.Bounds(), &r2)
	if err != nil {
		return nil, fmt.Errorf("region2: %w", err)
	}

	avg1, alpha1, err := average(img, rect1)
	if err != nil {
		return nil, err
	}
	avg2, alpha2, err := average(img, rect2)
	if err != nil {
		return nil, err
	}

	c1 := imaging.Crop(img, rect1)
	c2 := imaging.Crop(img, rect2)

	minW := rect1.Dx()
	if rect2.Dx() < minW {
		minW = rect2.Dx()
	}
	minH := rect1.Dy()
	if rect2.Dy() < minH {
		minH = rect2.Dy()
	}

	compared := minW * minH
	different := 0
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			p1 := color.FromImageColor(c1.NRGBAAt(x, y))
			p2 := color.FromImageColor(c2.NRGBAAt(x, y))
			if p1.Distance(p2) > JustNoticeable {
				different++
			}
		}
	}

	return &RegionComparison{
		Region1:         *averageResult(rect1, avg1, alpha1),
		Region2:         *averageResult(rect2, avg2, alpha2),
		Distance:        math.Round(avg1.Distance(avg2)*10000) / 10000,
		SameSize:        rect1.Size() == rect2.Size(),
		PixelsCompared:  compared,
		PixelsDifferent: different,
		Similarity:      math.Round((1-float64(different)/float64(compared))*1000) / 1000,
	}, nil
}
