package imaging

import (
	"fmt"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a sampled pixel in several representations.
//
// RGB is the value to pass back as a color key; Key is the same value as a
// [r, g, b] list, which is the shape image_apply_transparency accepts.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  Color     `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
	Luma uint8     `json:"luma"` // BT.601 luminance used by the center locator
	Key  [3]int    `json:"key"`  // RGB as a [r, g, b] list
}

// SampleColor extracts the color of the pixel at (x, y).
//
// Coordinates are 0-based pixel indices with origin at top-left, so valid
// ranges are 0..width-1 and 0..height-1. Out-of-range coordinates return an
// *InputError.
func SampleColor(r *Raster, x, y int) (*ColorResult, error) {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return nil, inputErrorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, r.Width(), r.Height())
	}
	p := r.At(x, y)
	return newColorResult(p.R, p.G, p.B, p.A), nil
}

func newColorResult(r8, g8, b8, a8 uint8) *ColorResult {
	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB:  Color{R: r8, G: g8, B: b8},
		RGBA: RGBAColor{R: r8, G: g8, B: b8, A: a8},
		HSL:  rgbToHSL(r8, g8, b8),
		Luma: Luma(r8, g8, b8),
		Key:  [3]int{int(r8), int(g8), int(b8)},
	}
}

// rgbToHSL converts 8-bit RGB values to HSL with integer degrees and
// percentages.
func rgbToHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	h, s, l := c.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

// ColorCount is an exact RGB color and how many visible pixels carry it.
type ColorCount struct {
	Hex        string  `json:"hex"`
	RGB        Color   `json:"rgb"`
	Pixels     int     `json:"pixels"`
	Percentage float64 `json:"percentage"` // Share of visible pixels (0-100)
}

// KeyCandidatesResult lists the most frequent exact colors of an image.
type KeyCandidatesResult struct {
	Colors        []ColorCount `json:"colors"`
	VisiblePixels int          `json:"visible_pixels"`
}

// KeyCandidates returns up to count of the most frequent exact RGB colors
// among pixels that are not already fully transparent.
//
// Unlike a palette extraction, colors are not quantized: ApplyColorKey
// matches exactly, so only exact colors are useful as keys. Ties are
// ordered by ascending hex value so results are stable.
func KeyCandidates(r *Raster, count int) (*KeyCandidatesResult, error) {
	if count < 1 {
		return nil, inputErrorf("count must be positive, got %d", count)
	}

	counts := make(map[Color]int)
	visible := 0
	pix := r.img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		counts[Color{R: pix[i], G: pix[i+1], B: pix[i+2]}]++
		visible++
	}

	colors := make([]ColorCount, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorCount{
			Hex:        fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
			RGB:        c,
			Pixels:     n,
			Percentage: math.Round(float64(n)/float64(visible)*1000) / 10,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Pixels != colors[j].Pixels {
			return colors[i].Pixels > colors[j].Pixels
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &KeyCandidatesResult{Colors: colors, VisiblePixels: visible}, nil
}
