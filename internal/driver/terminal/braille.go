package terminal

import (
	"image"
	"image/color"
)

// Each terminal cell holds a 2x4 braille dot matrix.
const (
	CellWidth  = 2
	CellHeight = 4

	brailleBase = 0x2800
	// minAlpha is the coverage at which a dot lights up.
	minAlpha = 16
)

// brailleBits maps a dot's (x, y) within a cell to its bit in U+2800..U+28FF.
var brailleBits = [CellWidth][CellHeight]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleCell encodes the dots of cell (cx, cy). ok is false for a blank
// cell. The colour is the strongest dot's, dimmed by its coverage so faint
// edges stay darker than points.
func brailleCell(img *image.RGBA, cx, cy int) (r rune, clr color.RGBA, ok bool) {
	var bits rune
	var best color.RGBA
	for dx := 0; dx < CellWidth; dx++ {
		for dy := 0; dy < CellHeight; dy++ {
			x, y := cx*CellWidth+dx, cy*CellHeight+dy
			if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
				continue
			}
			c := img.RGBAAt(x, y)
			if c.A < minAlpha {
				continue
			}
			bits |= brailleBits[dx][dy]
			if c.A > best.A {
				best = c
			}
		}
	}
	if bits == 0 {
		return ' ', color.RGBA{}, false
	}
	return brailleBase + bits, shade(best), true
}

// shade unpremultiplies c and scales it by 0.35 + 0.65*alpha.
func shade(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	k := (0.35 + 0.65*a) / a
	return color.RGBA{
		R: channel(float64(c.R) * k),
		G: channel(float64(c.G) * k),
		B: channel(float64(c.B) * k),
		A: 255,
	}
}

func channel(v float64) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
