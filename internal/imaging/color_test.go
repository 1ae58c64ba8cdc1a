package imaging

import (
	"image/color"
	"testing"
)

func TestSampleColor(t *testing.T) {
	r := newFilledRaster(t, 100, 100, color.NRGBA{255, 128, 64, 255})

	result, err := SampleColor(r, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (Color{255, 128, 64}) {
		t.Errorf("RGB: got %+v, want (255,128,64)", result.RGB)
	}
	if result.RGBA != (RGBAColor{255, 128, 64, 255}) {
		t.Errorf("RGBA: got %+v, want (255,128,64,255)", result.RGBA)
	}
	if result.Key != [3]int{255, 128, 64} {
		t.Errorf("Key: got %v, want [255 128 64]", result.Key)
	}
	if want := Luma(255, 128, 64); result.Luma != want {
		t.Errorf("Luma: got %d, want %d", result.Luma, want)
	}
}

func TestSampleColor_TransparentPixel(t *testing.T) {
	r := newRasterFromRows(t, [][]color.NRGBA{{{12, 34, 56, 0}}})

	result, err := SampleColor(r, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGBA.A != 0 {
		t.Errorf("alpha: got %d, want 0", result.RGBA.A)
	}
	if result.Hex != "#0C2238" {
		t.Errorf("Hex: got %s, want #0C2238", result.Hex)
	}
}

func TestSampleColor_KnownHues(t *testing.T) {
	tests := []struct {
		name    string
		c       color.NRGBA
		wantHex string
		wantHue int
		wantL   int
	}{
		{"pure red", color.NRGBA{255, 0, 0, 255}, "#FF0000", 0, 50},
		{"pure green", color.NRGBA{0, 255, 0, 255}, "#00FF00", 120, 50},
		{"pure blue", color.NRGBA{0, 0, 255, 255}, "#0000FF", 240, 50},
		{"white", color.NRGBA{255, 255, 255, 255}, "#FFFFFF", 0, 100},
		{"black", color.NRGBA{0, 0, 0, 255}, "#000000", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFilledRaster(t, 3, 3, tt.c)
			result, err := SampleColor(r, 1, 1)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
			if result.HSL.L != tt.wantL {
				t.Errorf("Lightness: got %d, want %d", result.HSL.L, tt.wantL)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	r := newFilledRaster(t, 10, 10, color.NRGBA{0, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x at width", 10, 5},
		{"y at height", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(r, tt.x, tt.y)
			if !isInputError(err) {
				t.Errorf("SampleColor(%d,%d): want InputError, got %v", tt.x, tt.y, err)
			}
		})
	}
}

func TestKeyCandidates(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	gone := color.NRGBA{255, 0, 0, 0}

	r := newRasterFromRows(t, [][]color.NRGBA{
		{white, white, white, red},
		{white, blue, red, gone},
		{white, blue, gone, gone},
	})

	result, err := KeyCandidates(r, 2)
	if err != nil {
		t.Fatalf("KeyCandidates failed: %v", err)
	}

	if result.VisiblePixels != 9 {
		t.Errorf("VisiblePixels: got %d, want 9", result.VisiblePixels)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(result.Colors))
	}

	first := result.Colors[0]
	if first.Hex != "#FFFFFF" || first.Pixels != 5 || first.Percentage != 55.6 {
		t.Errorf("first candidate: got %+v", first)
	}

	// blue and red tie at 2 pixels; ordering falls back to hex
	if result.Colors[1].Hex != "#0000FF" {
		t.Errorf("second candidate: got %s, want #0000FF", result.Colors[1].Hex)
	}
}

func TestKeyCandidates_InvalidCount(t *testing.T) {
	r := newFilledRaster(t, 2, 2, color.NRGBA{0, 0, 0, 255})
	if _, err := KeyCandidates(r, 0); !isInputError(err) {
		t.Errorf("want InputError, got %v", err)
	}
}
