package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// errInvalidArgs marks tool arguments that are malformed or missing. Such
// failures are reported as -32602 rather than as tool execution errors.
var errInvalidArgs = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "image_sample_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000;
// bad arguments return -32602.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if errors.Is(err, errInvalidArgs) {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color values
	case "color_parse":
		return s.handleColorParse(args)
	case "color_convert":
		return s.handleColorConvert(args)

	// Transforms
	case "color_adjust":
		return s.handleColorAdjust(args)
	case "color_change":
		return s.handleColorChange(args)
	case "color_scale":
		return s.handleColorScale(args)
	case "color_complement":
		return s.handleColorComplement(args)
	case "color_grayscale":
		return s.handleColorGrayscale(args)
	case "color_invert":
		return s.handleColorInvert(args)
	case "color_mix":
		return s.handleColorMix(args)

	// Comparison
	case "color_distance":
		return s.handleColorDistance(args)
	case "color_nearest_name":
		return s.handleColorNearestName(args)

	// Rendering
	case "color_swatch":
		return s.handleColorSwatch(args)
	case "color_palette":
		return s.handleColorPalette(args)
	case "color_mix_strip":
		return s.handleColorMixStrip(args)

	// Images
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, tagging failures with errInvalidArgs.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

// === Image Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (a imagePathArgs) validate() error {
	if a.Path == "" {
		return fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	return nil
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	imagePathArgs
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	imagePathArgs
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

// regionArg is a region given either by name ("top-left", "center", ...) or
// as {"x1": 0, "y1": 0, "x2": 10, "y2": 10}.
type regionArg struct {
	name   string
	region *imaging.Region
}

func (a *regionArg) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &a.name); err == nil {
		return nil
	}
	var r imaging.Region
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("region must be a name or {x1, y1, x2, y2}: %v", err)
	}
	a.region = &r
	return nil
}

// resolve returns the region within img, or nil when none was given.
func (a regionArg) resolve(img image.Image) (*imaging.Region, error) {
	if a.name == "" {
		return a.region, nil
	}
	r, err := imaging.NamedRegion(img.Bounds(), a.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return &r, nil
}

func (a regionArg) require(img image.Image, field string) (imaging.Region, error) {
	r, err := a.resolve(img)
	if err != nil {
		return imaging.Region{}, err
	}
	if r == nil {
		return imaging.Region{}, fmt.Errorf("%w: %s is required", errInvalidArgs, field)
	}
	return *r, nil
}

type imageDominantColorsArgs struct {
	imagePathArgs
	Count  int       `json:"count"`
	Region regionArg `json:"region"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	region, err := a.Region.resolve(img)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, region)
}

type imageAverageColorArgs struct {
	imagePathArgs
	Region regionArg `json:"region"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageAverageColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	region, err := a.Region.resolve(img)
	if err != nil {
		return nil, err
	}
	return imaging.AverageColor(img, region)
}

type imageCompareRegionsArgs struct {
	imagePathArgs
	Region1 regionArg `json:"region1"`
	Region2 regionArg `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	r1, err := a.Region1.require(img, "region1")
	if err != nil {
		return nil, err
	}
	r2, err := a.Region2.require(img, "region2")
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, r1, r2)
}
