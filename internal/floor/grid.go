package floor

import (
	"fmt"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
)

// Grid - плотная сетка клеток местности фиксированного размера.
// Хранение построчное: cells[y*width+x].
type Grid struct {
	width  int
	height int
	cells  []domain.Tile
}

// NewGrid создает сетку, заполненную fill.
func NewGrid(width, height int, fill domain.Tile) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]domain.Tile, width*height),
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

func (g *Grid) Size() domain.Size {
	return domain.Size{Width: g.width, Height: g.height}
}

// Bounds - прямоугольник всей сетки.
func (g *Grid) Bounds() domain.Rect {
	return domain.Rect{W: g.width, H: g.height}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At - прямой доступ к клетке. Выход за границы - ошибка программиста, паника.
func (g *Grid) At(x, y int) *domain.Tile {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("floor: tile (%d,%d) out of %dx%d grid", x, y, g.width, g.height))
	}
	return &g.cells[y*g.width+x]
}

// Set записывает клетку. За границами ничего не делает.
func (g *Grid) Set(x, y int, t domain.Tile) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = t
	}
}

// Fill заполняет прямоугольник (обрезанный по границам сетки).
func (g *Grid) Fill(r domain.Rect, t domain.Tile) {
	for y := max(0, r.Y); y < min(g.height, r.Y+r.H); y++ {
		for x := max(0, r.X); x < min(g.width, r.X+r.W); x++ {
			g.cells[y*g.width+x] = t
		}
	}
}

// Transparent реализует systems.TransparencyMap. За границами - непрозрачно.
func (g *Grid) Transparent(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x].Transparent
}

// Walkable - проходима ли местность (без учета существ).
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x].Walkable()
}
