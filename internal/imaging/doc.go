// Package imaging implements the pixel-level operations behind the MCP tools:
// color-keyed transparency and visual-center location, plus the raster,
// loading, sampling and encoding helpers around them.
//
// # Coordinate System
//
// (0,0) is the top-left corner, X increases rightward and Y increases
// downward. Two kinds of coordinates appear in this package:
//   - Pixel coordinates (SampleColor): 0..width-1, 0..height-1
//   - Split coordinates (Center): 0..width, 0..height. A split at (x, y)
//     divides the image into rows [0,y) / [y,height) and columns
//     [0,x) / [x,width), so edges and corners are valid splits.
//
// # Rasters
//
// Every decoded image is converted to a Raster: non-premultiplied 8-bit RGBA
// with origin (0,0). Images without an alpha channel become fully opaque.
// Rasters are never modified in place.
//
// # Luminance
//
// Grayscale values use ITU-R BT.601 weights rounded to the nearest integer:
//
//	L = (299*R + 587*G + 114*B + 500) / 1000
//
// Other tools (PIL, browsers, ...) may truncate instead of round, which can
// shift a computed center by a pixel on some images.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. ApplyColorKey and
// LocateVisualCenter are pure: each call allocates its own output and
// intermediate buffers, so concurrent calls on the same cached Raster are
// safe. Internally both split work by rows; every row is owned by exactly one
// goroutine, so results do not depend on the number of CPUs.
//
// # Errors
//
// Failures are reported with three types that callers distinguish with
// errors.As:
//   - *InputError: bad caller input (no image, bad color, no transparency)
//   - *DecodeError: bytes that are not a decodable image
//   - *InternalError: encoder or file system failures while writing output
package imaging
