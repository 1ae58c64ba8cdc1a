package imaging

import (
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MarkerResult contains an image with the visual center drawn on it.
type MarkerResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	CenterX     int    `json:"center_x"`
	CenterY     int    `json:"center_y"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// MarkerOptions controls how MarkCenter draws.
type MarkerOptions struct {
	Radius    int    // Half the side of the square
	Crosshair bool   // Full-width and full-height lines through the point
	Color     string // #RRGGBB or #RRGGBBAA; empty means green
	Label     bool   // Print "x,y" next to the square
}

// MarkCenter draws a visual marker for c on a copy of r: a filled square
// covering [c.X-radius, c.X+radius) x [c.Y-radius, c.Y+radius), plus the
// optional crosshair and coordinate label. Everything is clipped to the
// image.
//
// This is a visualization aid only. The marker replaces pixels outright, so
// the output is not suitable as input for LocateVisualCenter.
func MarkCenter(r *Raster, c Center, opts MarkerOptions) (*MarkerResult, error) {
	if c.X < 0 || c.X > r.Width() || c.Y < 0 || c.Y > r.Height() {
		return nil, inputErrorf("center (%d,%d) outside image bounds %dx%d", c.X, c.Y, r.Width(), r.Height())
	}
	radius := opts.Radius
	if radius < 0 {
		return nil, inputErrorf("radius must not be negative, got %d", radius)
	}

	marker := color.NRGBA{0, 255, 0, 255} // Default: opaque green
	if opts.Color != "" {
		var err error
		if marker, err = parseHexColor(opts.Color); err != nil {
			return nil, inputErrorf("invalid marker color %q: %v", opts.Color, err)
		}
	}

	out := r.clone()
	bounds := out.img.Bounds()

	// A split on the right or bottom edge has no pixel row/column to draw on.
	if opts.Crosshair && c.Y < bounds.Max.Y {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.img.SetNRGBA(x, c.Y, marker)
		}
	}
	if opts.Crosshair && c.X < bounds.Max.X {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			out.img.SetNRGBA(c.X, y, marker)
		}
	}

	square := image.Rect(c.X-radius, c.Y-radius, c.X+radius, c.Y+radius).Intersect(bounds)
	draw.Draw(out.img, square, &image.Uniform{C: marker}, image.Point{}, draw.Src)

	if opts.Label {
		text := fmt.Sprintf("%d,%d", c.X, c.Y)
		w, _ := labelSize(text)
		lx, ly := c.X+radius+2, c.Y+radius+2
		if lx+w > bounds.Max.X {
			lx = c.X - radius - 1 - w
		}
		if ly+labelHeight > bounds.Max.Y {
			ly = c.Y - radius - labelHeight
		}
		drawLabel(out.img, lx, ly, text, marker, color.NRGBA{0, 0, 0, 255})
	}

	data, err := EncodePNG(out)
	if err != nil {
		return nil, err
	}

	return &MarkerResult{
		Width:       out.Width(),
		Height:      out.Height(),
		CenterX:     c.X,
		CenterY:     c.Y,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}

// parseHexColor parses a marker color: "#RRGGBB", or "#RRGGBBAA" with an
// alpha byte. The leading '#' is optional.
func parseHexColor(hex string) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}

	var alpha uint8 = 255
	switch len(hex) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q", hex)
		}
		alpha = uint8(a)
		hex = hex[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length %q", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
