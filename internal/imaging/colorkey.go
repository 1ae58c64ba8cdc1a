package imaging

import (
	"github.com/anthonynsimon/bild/parallel"
)

// ApplyColorKey returns a copy of r in which every pixel whose RGB equals key
// exactly has its alpha set to 0. RGB channels are left untouched, as is
// every non-matching pixel (including its alpha).
//
// There is no tolerance: (254,255,255) does not match a (255,255,255) key.
// The operation is idempotent and each pixel is decided on its own, so rows
// are processed in parallel without affecting the result.
func ApplyColorKey(r *Raster, key Color) *Raster {
	out := r.clone()
	pix := out.img.Pix
	stride := out.img.Stride
	rowBytes := out.Width() * 4

	parallel.Line(out.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			row := pix[y*stride : y*stride+rowBytes]
			for i := 0; i < len(row); i += 4 {
				if row[i] == key.R && row[i+1] == key.G && row[i+2] == key.B {
					row[i+3] = 0
				}
			}
		}
	})

	return out
}

// CountTransparent returns the number of pixels with alpha == 0.
func CountTransparent(r *Raster) int {
	n := 0
	pix := r.img.Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] == 0 {
			n++
		}
	}
	return n
}
