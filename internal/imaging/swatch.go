package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Limits for rendered swatches.
const (
	MaxSwatchSize  = 1024
	MaxStripColors = 64
)

// SwatchResult is a rendered PNG and the colors painted on it, left to right.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Colors      []string `json:"colors"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// Swatch renders a single color as a solid width x height PNG.
func Swatch(c *color.Color, width, height int) (*SwatchResult, error) {
	return Palette([]*color.Color{c}, width, height)
}

// Palette renders colors as adjacent cells, each cellWidth x height pixels.
func Palette(colors []*color.Color, cellWidth, height int) (*SwatchResult, error) {
	return renderPalette(colors, cellWidth, height, false)
}

func renderPalette(colors []*color.Color, cellWidth, height int, labels bool) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette needs at least one color")
	}
	if len(colors) > MaxStripColors {
		return nil, fmt.Errorf("palette has %d colors, at most %d allowed", len(colors), MaxStripColors)
	}
	if err := checkSize(cellWidth, height); err != nil {
		return nil, err
	}
	if err := checkSize(cellWidth*len(colors), height); err != nil {
		return nil, err
	}

	canvas := imaging.New(cellWidth*len(colors), height, image.Transparent)
	hexes := make([]string, len(colors))
	for i, c := range colors {
		cell := imaging.New(cellWidth, height, c)
		canvas = imaging.Paste(canvas, cell, image.Pt(i*cellWidth, 0))
		hexes[i] = c.Hex()
	}
	if labels {
		drawLabels(canvas, colors, cellWidth)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		Colors:      hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// MixSteps returns steps colors blending from a to b. The first is a, the last
// is b, and the ones in between are a.Mix(b, w) with w falling evenly from 1
// to 0. Every step is in a's space.
func MixSteps(a, b *color.Color, steps int) ([]*color.Color, error) {
	if steps < 2 || steps > MaxStripColors {
		return nil, fmt.Errorf("steps must be between 2 and %d, got %d", MaxStripColors, steps)
	}

	out := make([]*color.Color, steps)
	for i := range out {
		w := 1 - float64(i)/float64(steps-1)
		c, err := a.Mix(b, w)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// MixStrip renders the MixSteps gradient from a to b as a PNG strip.
func MixStrip(a, b *color.Color, steps, cellWidth, height int) (*SwatchResult, error) {
	colors, err := MixSteps(a, b, steps)
	if err != nil {
		return nil, err
	}
	return Palette(colors, cellWidth, height)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("swatch size %dx%d must be positive", width, height)
	}
	if width > MaxSwatchSize || height > MaxSwatchSize {
		return fmt.Errorf("swatch size %dx%d exceeds %dx%d", width, height, MaxSwatchSize, MaxSwatchSize)
	}
	return nil
}
