package render

import (
	"fmt"
	"strings"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
)

// Frame - буфер экрана фиксированного размера, построчно.
// Принадлежит вызывающему: Render только пишет в него.
type Frame struct {
	width  int
	height int
	cells  []domain.Graphic
}

// NewFrame создает буфер, заполненный темнотой.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		width:  width,
		height: height,
		cells:  make([]domain.Graphic, width*height),
	}
}

func (fr *Frame) Size() domain.Size {
	return domain.Size{Width: fr.width, Height: fr.height}
}

func (fr *Frame) index(x, y int) int {
	if x < 0 || y < 0 || x >= fr.width || y >= fr.height {
		panic(fmt.Sprintf("render: cell (%d,%d) out of %dx%d frame", x, y, fr.width, fr.height))
	}
	return y*fr.width + x
}

// At возвращает клетку буфера. Выход за границы - паника.
func (fr *Frame) At(x, y int) domain.Graphic {
	return fr.cells[fr.index(x, y)]
}

// Set записывает клетку буфера. Выход за границы - паника.
func (fr *Frame) Set(x, y int, g domain.Graphic) {
	fr.cells[fr.index(x, y)] = g
}

// Clear заливает весь буфер темнотой.
func (fr *Frame) Clear() {
	for i := range fr.cells {
		fr.cells[i] = domain.Darkness
	}
}

// Fill заливает буфер одной клеткой.
func (fr *Frame) Fill(g domain.Graphic) {
	for i := range fr.cells {
		fr.cells[i] = g
	}
}

// Clone - независимая копия (для отправки в другие горутины).
func (fr *Frame) Clone() *Frame {
	out := &Frame{width: fr.width, height: fr.height, cells: make([]domain.Graphic, len(fr.cells))}
	copy(out.cells, fr.cells)
	return out
}

// String - ASCII-дамп глифов, строки через '\n'. Пустой глиф - пробел.
func (fr *Frame) String() string {
	var sb strings.Builder
	sb.Grow((fr.width + 1) * fr.height)
	for y := 0; y < fr.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < fr.width; x++ {
			ch := fr.cells[y*fr.width+x].Glyph
			if ch < ' ' {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
