package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// labelFace draws cell labels. Every label is a 7-character hex string.
var labelFace = basicfont.Face7x13

// labelMargin is the free space kept around a label inside its cell.
const labelMargin = 2

// LabelCellSize returns the smallest cell that fits a hex label.
func LabelCellSize() (width, height int) {
	w := font.MeasureString(labelFace, "#000000").Ceil()
	h := labelFace.Metrics().Height.Ceil()
	return w + 2*labelMargin, h + 2*labelMargin
}

// LabeledPalette is Palette with each cell's hex code drawn near its bottom
// edge, in black on light colors and white on dark ones.
func LabeledPalette(colors []*color.Color, cellWidth, height int) (*SwatchResult, error) {
	minW, minH := LabelCellSize()
	if cellWidth < minW || height < minH {
		return nil, fmt.Errorf("cells must be at least %dx%d pixels to fit labels, got %dx%d",
			minW, minH, cellWidth, height)
	}
	return renderPalette(colors, cellWidth, height, true)
}

// drawLabels writes each color's hex code centered at the bottom of its cell.
func drawLabels(canvas *image.NRGBA, colors []*color.Color, cellWidth int) {
	baseline := canvas.Bounds().Dy() - labelMargin - labelFace.Metrics().Descent.Ceil()

	for i, c := range colors {
		text := c.Hex()
		width := font.MeasureString(labelFace, text).Ceil()
		x := i*cellWidth + (cellWidth-width)/2

		d := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(inkFor(c)),
			Face: labelFace,
			Dot:  fixed.P(x, baseline),
		}
		d.DrawString(text)
	}
}

// inkFor picks the label color that contrasts with c.
func inkFor(c *color.Color) *color.Color {
	if c.Lightness() > 0.5 {
		return color.FromRGB8(0, 0, 0)
	}
	return color.FromRGB8(255, 255, 255)
}
