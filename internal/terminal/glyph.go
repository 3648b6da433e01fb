package terminal

import "fmt"

// Glyph - упакованный цветной символ клетки фермы.
//
//	[0:8]  - символ (ASCII)
//	[8:32] - RGB-цвет 0xRRGGBB
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// Цвета клеток
const (
	colorSoil     = 0x8B5A2B
	colorTilled   = 0xA0522D
	colorSeedling = 0x7CFC00
	colorGrowing  = 0x32CD32
	colorRipe     = 0xFFD700
)

// MakeGlyph создает Glyph из RGB-цвета и символа. Лишние биты отбрасываются.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Render возвращает символ, окрашенный ANSI truecolor, или просто символ
func (g Glyph) Render(color bool) string {
	if !color {
		return string([]byte{g.Char()})
	}
	c := g.Color()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%c\033[0m", c>>16&0xFF, c>>8&0xFF, c&0xFF, g.Char())
}

// String реализует fmt.Stringer: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=#%06X}", charStr, g.Color())
}
