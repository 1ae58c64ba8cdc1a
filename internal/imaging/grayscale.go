package imaging

import (
	"github.com/anthonynsimon/bild/parallel"
)

// Luma converts an RGB triple to 8-bit luminance using ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B), rounded to the nearest integer.
//
// The same formula is used everywhere in this package; results are not
// guaranteed to match other libraries' grayscale conversions bit for bit.
func Luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000)
}

// GrayscaleField holds one luminance value per pixel, row-major.
//
// Values are stored as int64 so that summed-area tables built from the
// field cannot overflow for any realistic image size.
type GrayscaleField struct {
	Width  int
	Height int
	Values []int64
}

// At returns the value at (x, y).
func (f *GrayscaleField) At(x, y int) int64 {
	return f.Values[y*f.Width+x]
}

// TransparencyMask marks pixels whose alpha is exactly 0, row-major.
type TransparencyMask struct {
	Width  int
	Height int
	Bits   []bool
}

// At reports whether (x, y) is fully transparent.
func (m *TransparencyMask) At(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Grayscale derives the luminance field of r. Alpha is ignored.
func Grayscale(r *Raster) *GrayscaleField {
	w, h := r.Width(), r.Height()
	f := &GrayscaleField{Width: w, Height: h, Values: make([]int64, w*h)}
	pix, stride := r.img.Pix, r.img.Stride

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := pix[y*stride:]
			dst := f.Values[y*w : (y+1)*w]
			for x := range dst {
				i := x * 4
				dst[x] = int64(Luma(row[i], row[i+1], row[i+2]))
			}
		}
	})

	return f
}

// Mask derives the transparency mask of r.
func Mask(r *Raster) *TransparencyMask {
	w, h := r.Width(), r.Height()
	m := &TransparencyMask{Width: w, Height: h, Bits: make([]bool, w*h)}
	pix, stride := r.img.Pix, r.img.Stride

	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			m.Bits[y*w+x] = row[x*4+3] == 0
		}
	}
	return m
}

// ApplyMask zeroes every value of f whose pixel is transparent in m.
// f and m must have the same dimensions.
func (f *GrayscaleField) ApplyMask(m *TransparencyMask) {
	for i, transparent := range m.Bits {
		if transparent {
			f.Values[i] = 0
		}
	}
}
