// Package imaging connects the color package to raster images.
//
// It loads and caches image files, samples pixel colors as color.Color
// values, extracts dominant colors, and renders colors back into PNG swatches
// and strips.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless.
//
// # Color Representation
//
// Sampled colors are reported in every color space via color.Description, with
// the pixel's straight (non-premultiplied) alpha alongside. Fully transparent
// pixels carry no color and read as black.
//
// # Memory
//
// Cached images stay in memory until Evict or Clear is called.
package imaging
