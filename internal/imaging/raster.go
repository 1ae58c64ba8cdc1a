package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Raster is a width x height grid of non-premultiplied 8-bit RGBA pixels.
//
// A Raster always has its origin at (0,0) and is never modified once built;
// operations such as ApplyColorKey return a new Raster. Pixels are stored
// row-major in an *image.NRGBA so a Raster can be handed directly to the
// standard encoders.
type Raster struct {
	img *image.NRGBA
}

// NewRaster converts any decoded image to a 4-channel Raster.
//
// The source image is copied, so later changes to src are not visible
// through the Raster. Images without an alpha channel (JPEG, opaque
// paletted PNG, ...) come out fully opaque (alpha 255). Empty images are
// rejected with an *InputError.
func NewRaster(src image.Image) (*Raster, error) {
	if src == nil {
		return nil, inputErrorf("no image")
	}
	b := src.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, inputErrorf("image is empty (%dx%d)", b.Dx(), b.Dy())
	}
	return &Raster{img: imaging.Clone(src)}, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.img.Rect.Dx() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// At returns the pixel at (x, y). Coordinates must be in range.
func (r *Raster) At(x, y int) color.NRGBA {
	return r.img.NRGBAAt(x, y)
}

// Image exposes the raster as an image.Image for encoding or drawing.
// The returned image must not be modified.
func (r *Raster) Image() image.Image { return r.img }

// HasTransparency reports whether at least one pixel has alpha == 0.
func (r *Raster) HasTransparency() bool {
	pix := r.img.Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] == 0 {
			return true
		}
	}
	return false
}

// clone returns a deep copy of the raster.
func (r *Raster) clone() *Raster {
	dst := image.NewNRGBA(r.img.Rect)
	copy(dst.Pix, r.img.Pix)
	return &Raster{img: dst}
}

// Color is an opaque RGB key color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorFromList builds a Color from a [r, g, b] list as sent by clients.
// The list must contain exactly three values, each within 0-255.
func ColorFromList(vals []int) (Color, error) {
	if len(vals) == 0 {
		return Color{}, inputErrorf("no color selected")
	}
	if len(vals) != 3 {
		return Color{}, inputErrorf("color must have 3 components, got %d", len(vals))
	}
	for i, v := range vals {
		if v < 0 || v > 255 {
			return Color{}, inputErrorf("color component %d out of range: %d", i, v)
		}
	}
	return Color{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2])}, nil
}

// ParseHexColor parses "#RRGGBB" or "#RGB" into a Color.
func ParseHexColor(s string) (Color, error) {
	if s == "" {
		return Color{}, inputErrorf("no color selected")
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, inputErrorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, inputErrorf("invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
