package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// colorArg is a color argument given either as a string in any supported
// notation ("hsl(240, 100%, 50%)", "#00f", "blue") or as a channel record
// such as {"hue": 240, "saturation": 1, "lightness": 0.5}.
type colorArg struct {
	c *color.Color
}

func (a *colorArg) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c, err := color.Parse(s)
		if err != nil {
			return err
		}
		a.c = c
		return nil
	}

	var obj map[string]float64
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: expected a color string or an object of channel values", color.ErrParse)
	}
	c, err := color.FromObject(obj)
	if err != nil {
		return err
	}
	a.c = c
	return nil
}

// require returns the parsed color or an errInvalidArgs naming the missing field.
func (a colorArg) require(field string) (*color.Color, error) {
	if a.c == nil {
		return nil, fmt.Errorf("%w: %s is required", errInvalidArgs, field)
	}
	return a.c, nil
}

// decodeColorArgs is decodeArgs for arguments containing colors. Color
// syntax and range errors keep their own kind instead of errInvalidArgs, so
// callers see "invalid color" or "value out of range".
func decodeColorArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	err := json.Unmarshal(args, v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, color.ErrParse), errors.Is(err, color.ErrRange):
		return err
	}
	return fmt.Errorf("%w: %v", errInvalidArgs, err)
}

// colorResult is what every color tool returns: the color in all notations,
// plus its CSS keyword when it has one.
type colorResult struct {
	color.Description
	Keyword string `json:"keyword,omitempty"`
}

func describe(c *color.Color) colorResult {
	name, _ := c.Keyword()
	return colorResult{Description: c.Describe(), Keyword: name}
}

// === Color Value Handlers ===

type singleColorArgs struct {
	Color colorArg `json:"color"`
}

func (s *Server) singleColor(args json.RawMessage) (*color.Color, error) {
	var a singleColorArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	return a.Color.require("color")
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	c, err := s.singleColor(args)
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

type colorConvertArgs struct {
	Color colorArg `json:"color"`
	Space string   `json:"space"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.require("color")
	if err != nil {
		return nil, err
	}
	space, err := color.ParseSpace(a.Space)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return describe(c.To(space)), nil
}

// === Transform Handlers ===

type colorValuesArgs struct {
	Color  colorArg           `json:"color"`
	Values map[string]float64 `json:"values"`
}

// transform decodes {color, values} and applies op to them.
func (s *Server) transform(args json.RawMessage, op func(*color.Color, color.Values) (*color.Color, error)) (interface{}, error) {
	var a colorValuesArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.require("color")
	if err != nil {
		return nil, err
	}
	if len(a.Values) == 0 {
		return nil, fmt.Errorf("%w: values must name at least one channel", errInvalidArgs)
	}
	v, err := color.ValuesFromMap(a.Values)
	if err != nil {
		return nil, err
	}

	out, err := op(c, v)
	if err != nil {
		return nil, err
	}
	return describe(out), nil
}

func (s *Server) handleColorAdjust(args json.RawMessage) (interface{}, error) {
	return s.transform(args, (*color.Color).Adjust)
}

func (s *Server) handleColorChange(args json.RawMessage) (interface{}, error) {
	return s.transform(args, (*color.Color).Change)
}

func (s *Server) handleColorScale(args json.RawMessage) (interface{}, error) {
	return s.transform(args, (*color.Color).Scale)
}

func (s *Server) handleColorComplement(args json.RawMessage) (interface{}, error) {
	c, err := s.singleColor(args)
	if err != nil {
		return nil, err
	}
	return describe(c.Complement()), nil
}

func (s *Server) handleColorGrayscale(args json.RawMessage) (interface{}, error) {
	c, err := s.singleColor(args)
	if err != nil {
		return nil, err
	}
	return describe(c.Grayscale()), nil
}

func (s *Server) handleColorInvert(args json.RawMessage) (interface{}, error) {
	c, err := s.singleColor(args)
	if err != nil {
		return nil, err
	}
	return describe(c.Invert()), nil
}

type colorPairArgs struct {
	Color colorArg `json:"color"`
	Other colorArg `json:"other"`
}

func (a colorPairArgs) colors() (*color.Color, *color.Color, error) {
	c, err := a.Color.require("color")
	if err != nil {
		return nil, nil, err
	}
	other, err := a.Other.require("other")
	if err != nil {
		return nil, nil, err
	}
	return c, other, nil
}

type colorMixArgs struct {
	colorPairArgs
	Weight *float64 `json:"weight,omitempty"`
}

func (s *Server) handleColorMix(args json.RawMessage) (interface{}, error) {
	var a colorMixArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	c, other, err := a.colors()
	if err != nil {
		return nil, err
	}
	weight := 0.5
	if a.Weight != nil {
		weight = *a.Weight
	}

	out, err := c.Mix(other, weight)
	if err != nil {
		return nil, err
	}
	return describe(out), nil
}

// === Comparison Handlers ===

// DistanceResult is the perceptual difference between two colors.
type DistanceResult struct {
	Color    string  `json:"color"`
	Other    string  `json:"other"`
	Distance float64 `json:"distance"` // CIEDE2000; 0 for identical colors
}

func (s *Server) handleColorDistance(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	c, other, err := a.colors()
	if err != nil {
		return nil, err
	}
	return &DistanceResult{
		Color:    c.Hex(),
		Other:    other.Hex(),
		Distance: c.Distance(other),
	}, nil
}

// NearestNameResult names the CSS keyword closest to a color.
type NearestNameResult struct {
	Hex      string  `json:"hex"`
	Name     string  `json:"name"`
	Exact    bool    `json:"exact"`
	Distance float64 `json:"distance"` // Euclidean distance in CIE L*a*b*
}

func (s *Server) handleColorNearestName(args json.RawMessage) (interface{}, error) {
	c, err := s.singleColor(args)
	if err != nil {
		return nil, err
	}
	name, d := c.NearestKeyword()
	_, exact := c.Keyword()
	return &NearestNameResult{Hex: c.Hex(), Name: name, Exact: exact, Distance: d}, nil
}

// === Rendering Handlers ===

type colorSwatchArgs struct {
	Color  colorArg `json:"color"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.require("color")
	if err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 64
	}
	if a.Height == 0 {
		a.Height = 64
	}
	return imaging.Swatch(c, a.Width, a.Height)
}

type colorPaletteArgs struct {
	Colors    []colorArg `json:"colors"`
	CellWidth int        `json:"cell_width"`
	Height    int        `json:"height"`
	Labels    bool       `json:"labels"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Colors) == 0 {
		return nil, fmt.Errorf("%w: colors must contain at least one color", errInvalidArgs)
	}
	colors := make([]*color.Color, len(a.Colors))
	for i, arg := range a.Colors {
		c, err := arg.require(fmt.Sprintf("colors[%d]", i))
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	a.defaults()
	if a.Labels {
		return imaging.LabeledPalette(colors, a.CellWidth, a.Height)
	}
	return imaging.Palette(colors, a.CellWidth, a.Height)
}

// defaults fills in the cell size, which is larger when labels are drawn.
func (a *colorPaletteArgs) defaults() {
	w, h := 32, 32
	if a.Labels {
		w, h = imaging.LabelCellSize()
	}
	if a.CellWidth == 0 {
		a.CellWidth = w
	}
	if a.Height == 0 {
		a.Height = h
	}
}

type colorMixStripArgs struct {
	colorPairArgs
	Steps     int  `json:"steps"`
	CellWidth int  `json:"cell_width"`
	Height    int  `json:"height"`
	Labels    bool `json:"labels"`
}

func (s *Server) handleColorMixStrip(args json.RawMessage) (interface{}, error) {
	var a colorMixStripArgs
	if err := decodeColorArgs(args, &a); err != nil {
		return nil, err
	}
	c, other, err := a.colors()
	if err != nil {
		return nil, err
	}
	if a.Steps == 0 {
		a.Steps = 5
	}
	size := colorPaletteArgs{CellWidth: a.CellWidth, Height: a.Height, Labels: a.Labels}
	size.defaults()

	if !a.Labels {
		return imaging.MixStrip(c, other, a.Steps, size.CellWidth, size.Height)
	}
	steps, err := imaging.MixSteps(c, other, a.Steps)
	if err != nil {
		return nil, err
	}
	return imaging.LabeledPalette(steps, size.CellWidth, size.Height)
}
