package render

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// glyphPatterns contains 3x5 pixel patterns for the characters the
// display labels need. Each glyph is 5 rows of 3 bits, high bit left.
var glyphPatterns = map[rune][5]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b111, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b101, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	'(': {0b001, 0b010, 0b010, 0b010, 0b001},
	')': {0b100, 0b010, 0b010, 0b010, 0b100},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
}

const (
	glyphCols    = 3
	glyphRows    = 5
	glyphAdvance = glyphCols + 1 // one blank column between glyphs
)

// glyphFor returns the pattern for ch, folding lowercase to uppercase.
// Unknown characters come back blank.
func glyphFor(ch rune) [5]uint8 {
	if ch >= 'a' && ch <= 'z' {
		ch = ch - 'a' + 'A'
	}
	return glyphPatterns[ch]
}

// labelWidth returns the rendered width of s at the given scale.
func labelWidth(s string, scale float64) float64 {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return (float64(n*glyphAdvance) - 1) * scale
}

// labelHeight returns the rendered height of any label at the scale.
func labelHeight(scale float64) float64 { return glyphRows * scale }

// drawLabel renders s with its top-left corner at (x, y), one filled
// rectangle per lit glyph bit.
func drawLabel(dc *gg.Context, s string, x, y, scale float64, col color.Color) {
	dc.SetColor(col)
	cx := x
	for _, ch := range s {
		pattern := glyphFor(ch)
		for row := 0; row < glyphRows; row++ {
			bits := pattern[row]
			for c := 0; c < glyphCols; c++ {
				if bits&(1<<(glyphCols-1-c)) == 0 {
					continue
				}
				dc.DrawRectangle(cx+float64(c)*scale, y+float64(row)*scale, scale, scale)
			}
		}
		cx += float64(glyphAdvance) * scale
	}
	_ = dc.Fill()
}

// drawLabelCentered renders s centered horizontally on cx with its top
// edge at y.
func drawLabelCentered(dc *gg.Context, s string, cx, y, scale float64, col color.Color) {
	drawLabel(dc, s, cx-labelWidth(s, scale)/2, y, scale, col)
}

// drawLabelRotated renders s rotated 90 degrees counter-clockwise,
// centered vertically on cy with its left edge at x.
func drawLabelRotated(dc *gg.Context, s string, x, cy, scale float64, col color.Color) {
	dc.Push()
	dc.RotateAbout(-math.Pi/2, x, cy)
	drawLabel(dc, s, x-labelWidth(s, scale)/2, cy, scale, col)
	dc.Pop()
}
