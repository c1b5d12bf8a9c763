package domain

import "fmt"

// RGB - цвет из трех байт (R, G, B).
type RGB [3]byte

// Константы для упаковки цвета в 0xRRGGBB
const (
	shiftRed   = 16
	shiftGreen = 8
	maskByte   = 0xFF
)

// HexRGB создает цвет из значения в формате 0xRRGGBB.
// Учитываются только младшие 24 бита.
//
// Пример:
//
//	orange := HexRGB(0xFFA500) // RGB{0xFF, 0xA5, 0x00}
func HexRGB(v uint32) RGB {
	return RGB{
		byte((v >> shiftRed) & maskByte),
		byte((v >> shiftGreen) & maskByte),
		byte(v & maskByte),
	}
}

// Uint32 упаковывает цвет обратно в 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c[0])<<shiftRed | uint32(c[1])<<shiftGreen | uint32(c[2])
}

// Hex возвращает строковое HEX-представление цвета (например, "#00FF00").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06X", c.Uint32())
}

// Graphic - одна клетка консоли: код символа, цвет символа и цвет фона.
type Graphic struct {
	Glyph int32 `json:"ch"`
	FG    RGB   `json:"fg"`
	BG    RGB   `json:"bg"`
}

// Darkness рисуется в клетках, которые ни разу не были видны.
var Darkness = Graphic{Glyph: 0, FG: RGB{}, BG: RGB{}}

// String возвращает человеко-читаемое представление.
// Формат: "Graphic{ch='A', fg=#FFA500, bg=#000000}"
func (g Graphic) String() string {
	ch := string(rune(g.Glyph))
	// Для непечатаемых символов показываем hex
	if g.Glyph < 32 || g.Glyph == 127 {
		ch = fmt.Sprintf("\\x%02X", g.Glyph)
	}
	return fmt.Sprintf("Graphic{ch='%s', fg=%s, bg=%s}", ch, g.FG.Hex(), g.BG.Hex())
}
