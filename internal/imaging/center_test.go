package imaging

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// locateVisualCenterNaive recomputes the four quadrant sums from scratch for
// every split point. It is the reference LocateVisualCenter must agree with.
func locateVisualCenterNaive(r *Raster) Center {
	field := Grayscale(r)
	field.ApplyMask(Mask(r))
	w, h := field.Width, field.Height

	sum := func(x0, x1, y0, y1 int) int64 {
		var s int64
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				s += field.At(x, y)
			}
		}
		return s
	}

	best := Center{Imbalance: -1}
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			d := spread(sum(0, x, 0, y), sum(x, w, 0, y), sum(0, x, y, h), sum(x, w, y, h))
			if best.Imbalance < 0 || d < best.Imbalance {
				best = Center{X: x, Y: y, Imbalance: d}
			}
		}
	}
	return best
}

var gray100 = color.NRGBA{100, 100, 100, 255}

// rasterWithHoles builds a w x h raster of fill with the listed pixels made
// fully transparent.
func rasterWithHoles(t testing.TB, w, h int, fill color.NRGBA, holes ...[2]int) *Raster {
	t.Helper()
	rows := make([][]color.NRGBA, h)
	for y := range rows {
		rows[y] = make([]color.NRGBA, w)
		for x := range rows[y] {
			rows[y][x] = fill
		}
	}
	for _, p := range holes {
		c := fill
		c.A = 0
		rows[p[1]][p[0]] = c
	}
	return newRasterFromRows(t, rows)
}

func TestLocateVisualCenter_SingleHole4x4(t *testing.T) {
	r := rasterWithHoles(t, 4, 4, gray100, [2]int{2, 2})

	got, err := LocateVisualCenter(r)
	require.NoError(t, err)
	assert.Equal(t, Center{X: 2, Y: 2, Imbalance: 100}, got)
	assert.Equal(t, locateVisualCenterNaive(r), got)
}

func TestLocateVisualCenter_SymmetricHole(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7, 9, 15} {
		t.Run(fmt.Sprintf("%dx%d", n, n), func(t *testing.T) {
			r := rasterWithHoles(t, n, n, gray100, [2]int{n / 2, n / 2})

			got, err := LocateVisualCenter(r)
			require.NoError(t, err)
			assert.Equal(t, n/2, got.X)
			assert.Equal(t, n/2, got.Y)
		})
	}
}

func TestLocateVisualCenter_KnownLayouts(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		fill  color.NRGBA
		holes [][2]int
		want  Center
	}{
		{
			name:  "centered 2x2 hole balances perfectly",
			w:     4,
			h:     4,
			fill:  gray100,
			holes: [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
			want:  Center{X: 2, Y: 2, Imbalance: 0},
		},
		{
			name:  "transparent left column shifts center right",
			w:     4,
			h:     2,
			fill:  color.NRGBA{50, 50, 50, 255},
			holes: [][2]int{{0, 0}, {0, 1}},
			want:  Center{X: 2, Y: 1, Imbalance: 50},
		},
		{
			name:  "white 2x2 with corner hole",
			w:     2,
			h:     2,
			fill:  color.NRGBA{255, 255, 255, 255},
			holes: [][2]int{{0, 0}},
			want:  Center{X: 1, Y: 1, Imbalance: 255},
		},
		{
			name:  "fully transparent image picks first split",
			w:     3,
			h:     2,
			fill:  gray100,
			holes: [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
			want:  Center{X: 0, Y: 0, Imbalance: 0},
		},
		{
			name:  "black opaque pixels weigh nothing",
			w:     3,
			h:     3,
			fill:  color.NRGBA{0, 0, 0, 255},
			holes: [][2]int{{2, 2}},
			want:  Center{X: 0, Y: 0, Imbalance: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rasterWithHoles(t, tt.w, tt.h, tt.fill, tt.holes...)
			got, err := LocateVisualCenter(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateVisualCenter_NoTransparency(t *testing.T) {
	tests := []struct {
		name string
		fill color.NRGBA
	}{
		{"fully opaque", gray100},
		{"semi-transparent only", color.NRGBA{100, 100, 100, 128}},
		{"nearly transparent", color.NRGBA{100, 100, 100, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFilledRaster(t, 5, 4, tt.fill)
			_, err := LocateVisualCenter(r)
			require.Error(t, err)
			assert.True(t, isInputError(err), "want InputError, got %T", err)
			assert.Contains(t, err.Error(), "no transparency")
		})
	}
}

func TestLocateVisualCenter_Nil(t *testing.T) {
	_, err := LocateVisualCenter(nil)
	assert.True(t, isInputError(err))
}

func TestLocateVisualCenter_MatchesNaive(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 3}, {5, 5}, {8, 3}, {9, 7}, {12, 12}}

	for seed := int64(1); seed <= 6; seed++ {
		for _, sz := range sizes {
			r := randomRaster(t, seed, sz[0], sz[1])
			got, err := LocateVisualCenter(r)
			if !r.HasTransparency() {
				assert.True(t, isInputError(err))
				continue
			}
			require.NoError(t, err)

			want := locateVisualCenterNaive(r)
			require.Equal(t, want, got, "seed %d size %dx%d", seed, sz[0], sz[1])

			assert.True(t, got.X >= 0 && got.X <= r.Width(), "x out of range: %d", got.X)
			assert.True(t, got.Y >= 0 && got.Y <= r.Height(), "y out of range: %d", got.Y)
		}
	}
}

func TestLocateVisualCenter_Deterministic(t *testing.T) {
	r := randomRaster(t, 99, 40, 30)
	require.True(t, r.HasTransparency())

	first, err := LocateVisualCenter(r)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := LocateVisualCenter(r)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestSummedAreaTable(t *testing.T) {
	f := &GrayscaleField{Width: 3, Height: 2, Values: []int64{
		1, 2, 3,
		4, 5, 6,
	}}
	sat := newSummedAreaTable(f)

	tests := []struct {
		x, y int
		want int64
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 2, 0},
		{1, 1, 1},
		{3, 1, 6},
		{2, 2, 12},
		{3, 2, 21},
	}
	for _, tt := range tests {
		if got := sat.at(tt.x, tt.y); got != tt.want {
			t.Errorf("S(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func benchmarkLocate(b *testing.B, n int) {
	r := rasterWithHoles(b, n, n, gray100, [2]int{n / 3, n / 2})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := LocateVisualCenter(r); err != nil {
			b.Fatal(err)
		}
	}
}

// Doubling N should roughly quadruple the time per op.
func BenchmarkLocateVisualCenter_128(b *testing.B)  { benchmarkLocate(b, 128) }
func BenchmarkLocateVisualCenter_256(b *testing.B)  { benchmarkLocate(b, 256) }
func BenchmarkLocateVisualCenter_512(b *testing.B)  { benchmarkLocate(b, 512) }
func BenchmarkLocateVisualCenter_1024(b *testing.B) { benchmarkLocate(b, 1024) }

func BenchmarkLocateVisualCenterNaive_32(b *testing.B) {
	r := rasterWithHoles(b, 32, 32, gray100, [2]int{10, 16})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		locateVisualCenterNaive(r)
	}
}

func BenchmarkApplyColorKey_1024(b *testing.B) {
	r := newFilledRaster(b, 1024, 1024, gray100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyColorKey(r, Color{100, 100, 100})
	}
}
