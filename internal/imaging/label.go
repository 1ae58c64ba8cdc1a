package imaging

import (
	"image"
	"image/color"
)

// 3x5 pixel font for the characters a split point label needs.
var glyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

const (
	glyphAdvance = 4
	labelHeight  = 7
)

// labelSize returns the width and height of text including its 1px border.
func labelSize(text string) (int, int) {
	return len(text)*glyphAdvance + 1, labelHeight + 1
}

// drawLabel writes text with its top-left glyph pixel at (x, y) over a
// solid background. Unknown runes leave a blank cell. Pixels outside img
// are skipped.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	w, h := labelSize(text)
	box := image.Rect(x-1, y-1, x-1+w, y-1+h).Intersect(img.Bounds())
	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			img.SetNRGBA(px, py, bg)
		}
	}

	bounds := img.Bounds()
	cx := x
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for row, line := range glyph {
				for col, pixel := range line {
					p := image.Pt(cx+col, y+row)
					if pixel == '1' && p.In(bounds) {
						img.SetNRGBA(p.X, p.Y, fg)
					}
				}
			}
		}
		cx += glyphAdvance
	}
}
