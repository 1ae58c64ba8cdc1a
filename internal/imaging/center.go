package imaging

// Center is the split point chosen by LocateVisualCenter.
//
// X and Y are split coordinates, not pixel indices: X ranges over 0..width
// and Y over 0..height, so edges and corners are valid results.
type Center struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Imbalance is max-min of the four quadrant luminance sums at (X, Y).
	Imbalance int64 `json:"imbalance"`
}

// LocateVisualCenter finds the point that best balances luminance across the
// four quadrants of an image containing transparency.
//
// # Algorithm
//
//  1. Luminance is derived with Luma (BT.601) and forced to 0 wherever the
//     pixel's alpha is 0.
//  2. Every split point (x, y) with 0 <= x <= width and 0 <= y <= height
//     divides the image into top-left, top-right, bottom-left and
//     bottom-right quadrants. Empty quadrants sum to 0.
//  3. The imbalance of a split is max(sums) - min(sums).
//  4. The split with the smallest imbalance wins. Ties go to the first one
//     met scanning y from 0 upward, and x from 0 upward within a row.
//
// Quadrant sums come from a summed-area table, so the whole search is
// O(width*height).
//
// # Errors
//
// Returns an *InputError if r is nil or no pixel has alpha == 0.
func LocateVisualCenter(r *Raster) (Center, error) {
	if r == nil {
		return Center{}, inputErrorf("no image")
	}
	if !r.HasTransparency() {
		return Center{}, inputErrorf("image has no transparency")
	}

	field := Grayscale(r)
	field.ApplyMask(Mask(r))
	sat := newSummedAreaTable(field)

	w, h := field.Width, field.Height
	total := sat.at(w, h)

	best := Center{Imbalance: -1}
	for y := 0; y <= h; y++ {
		rowTop := sat.at(w, y)
		for x := 0; x <= w; x++ {
			tl := sat.at(x, y)
			tr := rowTop - tl
			bl := sat.at(x, h) - tl
			br := total - tl - tr - bl

			d := spread(tl, tr, bl, br)
			if best.Imbalance < 0 || d < best.Imbalance {
				best = Center{X: x, Y: y, Imbalance: d}
			}
		}
	}

	return best, nil
}

// summedAreaTable stores S(x, y) = sum of field values in rows [0,y) and
// columns [0,x), for 0 <= x <= width and 0 <= y <= height.
type summedAreaTable struct {
	stride int
	sums   []int64
}

func newSummedAreaTable(f *GrayscaleField) *summedAreaTable {
	stride := f.Width + 1
	sums := make([]int64, stride*(f.Height+1))

	for y := 1; y <= f.Height; y++ {
		var rowSum int64
		src := f.Values[(y-1)*f.Width : y*f.Width]
		above := sums[(y-1)*stride : y*stride]
		cur := sums[y*stride : (y+1)*stride]
		for x := 1; x <= f.Width; x++ {
			rowSum += src[x-1]
			cur[x] = above[x] + rowSum
		}
	}

	return &summedAreaTable{stride: stride, sums: sums}
}

func (t *summedAreaTable) at(x, y int) int64 {
	return t.sums[y*t.stride+x]
}

// spread returns the difference between the largest and smallest value.
func spread(a, b, c, d int64) int64 {
	lo, hi := a, a
	for _, v := range [...]int64{b, c, d} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}
