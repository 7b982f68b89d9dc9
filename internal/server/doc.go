// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color package
// and image color sampling through the MCP protocol, so MCP-compatible clients
// can parse, convert, transform and compare colors exactly.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Values:
//   - color_parse: Parse a color and show it in every space
//   - color_convert: Convert a color to another native space
//
// Transforms:
//   - color_adjust: Add deltas to one channel group
//   - color_change: Set channels of one group
//   - color_scale: Move channels proportionally towards their bounds
//   - color_complement, color_grayscale, color_invert
//   - color_mix: Weighted RGB blend of two colors
//
// Comparison:
//   - color_distance: CIEDE2000 difference
//   - color_nearest_name: Closest CSS keyword
//
// Rendering:
//   - color_swatch, color_palette, color_mix_strip: Base64 PNG previews
//
// Images:
//   - image_load, image_dimensions
//   - image_sample_color, image_sample_colors_multi
//   - image_dominant_colors
//
// Color arguments are strings in any supported notation or channel records
// such as {"red": 255, "green": 0, "blue": 0}.
//
// # Image Caching
//
// Decoded images are cached by path and reused across tool calls for the
// lifetime of the server process.
//
// # Error Handling
//
// Failures are returned as JSON-RPC error responses:
//   - -32700: the request line is not JSON
//   - -32601: unknown method
//   - -32602: tool arguments are malformed or missing
//   - -32000: the tool ran and failed (invalid color, value out of range,
//     invalid channel group, unreadable image)
//
// The data field carries the Go error string.
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
