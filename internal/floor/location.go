package floor

import "github.com/otricadziziusz/roguelike-tutorial/internal/domain"

// Location - координата, привязанная к этажу. Копируется по значению.
type Location struct {
	Floor *Floor
	X, Y  int
}

func (l Location) XY() domain.Position {
	return domain.Position{X: l.X, Y: l.Y}
}

// IJ - форма (строка, столбец).
func (l Location) IJ() (int, int) {
	return l.Y, l.X
}

func (l Location) Shift(dx, dy int) Location {
	return Location{Floor: l.Floor, X: l.X + dx, Y: l.Y + dy}
}

func (l Location) InBounds() bool {
	return l.Floor.Grid.InBounds(l.X, l.Y)
}

// Tile возвращает копию клетки местности. ok == false за границами.
func (l Location) Tile() (domain.Tile, bool) {
	if !l.InBounds() {
		return domain.Tile{}, false
	}
	return *l.Floor.Grid.At(l.X, l.Y), true
}

func (l Location) IsBlocked() bool {
	return l.Floor.IsBlocked(l.X, l.Y)
}

func (l Location) Occupant() (*domain.Actor, bool) {
	return l.Floor.OccupantAt(l.X, l.Y)
}

func (l Location) Items() []*domain.Item {
	return l.Floor.ItemsAt(l.X, l.Y)
}

func (l Location) IsVisible() bool {
	return l.Floor.Vis.IsVisible(l.X, l.Y)
}

func (l Location) IsExplored() bool {
	return l.Floor.Vis.IsExplored(l.X, l.Y)
}
