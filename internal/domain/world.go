package domain

// Position - клетка в мировых координатах (x - столбец, y - строка).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size - размеры прямоугольной области (карты или экрана) в клетках.
type Size struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Rect - прямоугольник клеток. W/H никогда не бывают отрицательными,
// пустой прямоугольник имеет W == 0 или H == 0.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Empty сообщает, что в прямоугольнике нет ни одной клетки.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains проверяет, лежит ли (x, y) внутри прямоугольника.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Size возвращает размеры прямоугольника.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// Tile - запись одной клетки местности.
type Tile struct {
	// MoveCost == 0 означает непроходимую клетку.
	MoveCost    uint8 `json:"moveCost"`
	Transparent bool  `json:"transparent"`

	// Light рисуется, когда клетка в поле зрения, Dark - когда только исследована.
	Light Graphic `json:"light"`
	Dark  Graphic `json:"dark"`
}

// Walkable - можно ли наступить на клетку (без учета существ).
func (t Tile) Walkable() bool {
	return t.MoveCost > 0
}

// Стандартные клетки для генераторов и тестов.
var (
	FloorTile = Tile{
		MoveCost:    1,
		Transparent: true,
		Light:       Graphic{Glyph: '.', FG: RGB{0xFF, 0xFF, 0xFF}, BG: RGB{0x32, 0x32, 0x96}},
		Dark:        Graphic{Glyph: '.', FG: RGB{0x64, 0x64, 0x64}, BG: RGB{0x00, 0x00, 0x64}},
	}
	WallTile = Tile{
		MoveCost:    0,
		Transparent: false,
		Light:       Graphic{Glyph: '#', FG: RGB{0xFF, 0xFF, 0xFF}, BG: RGB{0x82, 0x6E, 0x32}},
		Dark:        Graphic{Glyph: '#', FG: RGB{0x64, 0x64, 0x64}, BG: RGB{0x00, 0x00, 0x32}},
	}
)
