package server

import "github.com/ironsheep/color-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

const colorDescription = "Color as a string (\"rgb(0, 0, 255)\", \"hsl(240, 100%, 50%)\", " +
	"\"hsv(240, 100%, 100%)\", \"hwb(240, 0%, 0%)\", \"cmyk(100%, 100%, 0%, 0%)\", \"#00f\", \"blue\") " +
	"or an object of channel values such as {\"hue\": 240, \"saturation\": 1, \"lightness\": 0.5}"

// colorProperty is the schema of a color argument: a string or a channel record.
func colorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"oneOf": []map[string]interface{}{
			{"type": "string"},
			{
				"type":                 "object",
				"additionalProperties": map[string]interface{}{"type": "number"},
			},
		},
	}
}

// valuesProperty is the schema of the channel map taken by the transforms.
func valuesProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"red":        map[string]interface{}{"type": "number"},
			"green":      map[string]interface{}{"type": "number"},
			"blue":       map[string]interface{}{"type": "number"},
			"hue":        map[string]interface{}{"type": "number"},
			"saturation": map[string]interface{}{"type": "number"},
			"lightness":  map[string]interface{}{"type": "number"},
			"whiteness":  map[string]interface{}{"type": "number"},
			"blackness":  map[string]interface{}{"type": "number"},
		},
		"additionalProperties": false,
	}
}

func integerProperty(description string, def int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
		"default":     def,
	}
}

func singleColorSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"color": colorProperty(colorDescription),
		},
		"required": []string{"color"},
	}
}

func transformSchema(values string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"color":  colorProperty(colorDescription),
			"values": valuesProperty(values),
		},
		"required": []string{"color", "values"},
	}
}

func labelsProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Draw each cell's hex code on it. Cells then default to the smallest size that fits a label",
		"default":     false,
	}
}

// regionProperty is the schema of a region argument: a name or a rectangle.
func regionProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"oneOf": []map[string]interface{}{
			{
				"type": "string",
				"enum": imaging.RegionNames,
			},
			{
				"type": "object",
				"properties": map[string]interface{}{
					"x1": map[string]interface{}{"type": "integer"},
					"y1": map[string]interface{}{"type": "integer"},
					"x2": map[string]interface{}{"type": "integer"},
					"y2": map[string]interface{}{"type": "integer"},
				},
				"required": []string{"x1", "y1", "x2", "y2"},
			},
		},
	}
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color values
		{
			Name: "color_parse",
			Description: "Parse a color and return it in every color space (CMYK, HSL, HSV, HWB, RGB) plus hex. " +
				"Ratios are rounded to two decimals; hue and RGB to integers.",
			InputSchema: singleColorSchema(),
		},
		{
			Name:        "color_convert",
			Description: "Convert a color to another color space. The result's native notation is in the target space.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(colorDescription),
					"space": map[string]interface{}{
						"type":        "string",
						"description": "Target color space",
						"enum":        []string{"cmyk", "hsl", "hsv", "hwb", "rgb"},
					},
				},
				"required": []string{"color", "space"},
			},
		},

		// Transforms
		{
			Name: "color_adjust",
			Description: "Add signed deltas to the channels of one group: red/green/blue, hue/saturation/lightness " +
				"or hue/whiteness/blackness. Results are clamped; hue wraps around. The result stays in the input's space.",
			InputSchema: transformSchema("Deltas: RGB in [-255, 255], ratios in [-1, 1], hue any number of degrees. " +
				"Channels from different groups cannot be combined."),
		},
		{
			Name:        "color_change",
			Description: "Set channels of one group (red/green/blue, hue/saturation/lightness or hue/whiteness/blackness) to absolute values.",
			InputSchema: transformSchema("Absolute values: RGB in [0, 255], ratios in [0, 1], hue in degrees."),
		},
		{
			Name: "color_scale",
			Description: "Move channels proportionally: a positive factor moves a channel that fraction of the way to its " +
				"maximum, a negative one towards zero. Hue cannot be scaled.",
			InputSchema: transformSchema("Factors in [-1, 1] for red/green/blue, saturation/lightness or whiteness/blackness."),
		},
		{
			Name:        "color_complement",
			Description: "Rotate a color's hue by 180 degrees.",
			InputSchema: singleColorSchema(),
		},
		{
			Name:        "color_grayscale",
			Description: "Remove a color's saturation, keeping its HSL lightness.",
			InputSchema: singleColorSchema(),
		},
		{
			Name:        "color_invert",
			Description: "Invert a color channel-wise in RGB (255 - x).",
			InputSchema: singleColorSchema(),
		},
		{
			Name:        "color_mix",
			Description: "Blend two colors in RGB: color*weight + other*(1-weight). The result is in the first color's space.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(colorDescription),
					"other": colorProperty("Color to blend with, in any notation"),
					"weight": map[string]interface{}{
						"type":        "number",
						"description": "Share of the first color, 0 to 1. Default 0.5",
						"default":     0.5,
						"minimum":     0,
						"maximum":     1,
					},
				},
				"required": []string{"color", "other"},
			},
		},

		// Comparison
		{
			Name:        "color_distance",
			Description: "Perceptual difference between two colors (CIEDE2000). 0 means identical.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(colorDescription),
					"other": colorProperty("Color to compare with, in any notation"),
				},
				"required": []string{"color", "other"},
			},
		},
		{
			Name:        "color_nearest_name",
			Description: "Find the CSS color keyword closest to a color, and whether it matches exactly.",
			InputSchema: singleColorSchema(),
		},

		// Rendering
		{
			Name:        "color_swatch",
			Description: "Render a color as a solid PNG swatch, returned base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProperty(colorDescription),
					"width":  integerProperty("Swatch width in pixels. Default 64", 64),
					"height": integerProperty("Swatch height in pixels. Default 64", 64),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_palette",
			Description: "Render several colors side by side as a PNG strip, returned base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"description": "Colors to render, left to right",
						"items":       colorProperty(colorDescription),
						"minItems":    1,
					},
					"cell_width": integerProperty("Width of each cell in pixels. Default 32", 32),
					"height":     integerProperty("Strip height in pixels. Default 32", 32),
					"labels":     labelsProperty(),
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "color_mix_strip",
			Description: "Render the blend from one color to another in evenly spaced steps as a PNG strip.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":      colorProperty("Start color"),
					"other":      colorProperty("End color"),
					"steps":      integerProperty("Number of cells including both ends, 2 to 64. Default 5", 5),
					"cell_width": integerProperty("Width of each cell in pixels. Default 32", 32),
					"height":     integerProperty("Strip height in pixels. Default 32", 32),
					"labels":     labelsProperty(),
				},
				"required": []string{"color", "other"},
			},
		},

		// Images
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and color model.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel, in every color space, with its alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at several pixels in one call. Results keep the input order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors of an image or region, each with its nearest CSS keyword.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"count":  integerProperty("Number of colors to return. Default 5", 5),
					"region": regionProperty("Optional region to analyze: a name or a rectangle with (x2, y2) exclusive"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_average_color",
			Description: "Get the mean color of an image or region, weighted by alpha, in every color space " +
				"with its nearest CSS keyword.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty("Optional region to average: a name or a rectangle with (x2, y2) exclusive"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_compare_regions",
			Description: "Compare two regions of an image by color: the CIEDE2000 distance of their averages " +
				"and the share of pixel pairs that look the same.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"region1": regionProperty("First region: a name or a rectangle"),
					"region2": regionProperty("Second region: a name or a rectangle"),
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
