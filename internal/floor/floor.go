package floor

import (
	"fmt"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Floor - один этаж: местность, видимость, камера, актеры и предметы.
// Все состояние принадлежит одной горутине игрового цикла.
type Floor struct {
	Depth  int16
	Grid   *Grid
	Vis    *Visibility
	Camera Camera

	// Player - якорь поля зрения и камеры. Должен быть добавлен через AddActor.
	Player    *domain.Actor
	FOVRadius int

	actors  []*domain.Actor
	byID    map[domain.EntityID]*domain.Actor
	occ     occupancy
	items   map[domain.Position][]*domain.Item
	itemsID map[domain.EntityID]*domain.Item

	// Порядковый номер добавления, общий для актеров и предметов.
	seq     map[domain.EntityID]uint64
	nextSeq uint64

	nextIndex uint64
}

// New создает этаж, целиком заполненный стенами.
func New(width, height int) *Floor {
	g := NewGrid(width, height, domain.WallTile)
	return &Floor{
		Grid:      g,
		Vis:       NewVisibility(g.Size()),
		FOVRadius: domain.VisionRadius,
		byID:      make(map[domain.EntityID]*domain.Actor),
		occ:       make(occupancy),
		items:     make(map[domain.Position][]*domain.Item),
		itemsID:   make(map[domain.EntityID]*domain.Item),
		seq:       make(map[domain.EntityID]uint64),
	}
}

func (f *Floor) Size() domain.Size {
	return f.Grid.Size()
}

func (f *Floor) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "floor",
		"depth":     f.Depth,
	})
}

func (f *Floor) stamp(id domain.EntityID) {
	f.nextSeq++
	f.seq[id] = f.nextSeq
}

// NewID выдает новый ID сущности для этого этажа.
func (f *Floor) NewID(kind domain.EntityKind) domain.EntityID {
	f.nextIndex++
	return domain.PackEntityID(kind, f.Depth, f.nextIndex)
}

// Seq - порядковый номер добавления сущности на этаж.
// Используется как стабильный тай-брейк при отрисовке.
func (f *Floor) Seq(id domain.EntityID) (uint64, bool) {
	s, ok := f.seq[id]
	return s, ok
}

// --- АКТЕРЫ ---

// AddActor регистрирует актера. Если a.Placed, он сразу занимает клетку a.Pos.
func (f *Floor) AddActor(a *domain.Actor) error {
	if _, exists := f.byID[a.ID]; exists {
		return fmt.Errorf("add %s: %w", a.ID, ErrDuplicateActor)
	}
	if a.Placed {
		if err := f.checkFree(a.Pos); err != nil {
			return fmt.Errorf("add %s: %w", a.ID, err)
		}
		f.occ.add(a, a.Pos)
	}

	f.actors = append(f.actors, a)
	f.byID[a.ID] = a
	f.stamp(a.ID)

	f.log().WithFields(logrus.Fields{
		"actor_id": a.ID,
		"name":     a.Name,
		"pos":      a.Pos,
		"placed":   a.Placed,
	}).Debug("Actor added to floor.")
	return nil
}

// MoveActor ставит актера в клетку p. Отсутствующий актер появляется на карте.
// Проходимость местности не проверяется, только границы и занятость.
func (f *Floor) MoveActor(id domain.EntityID, p domain.Position) error {
	a, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("move %s: %w", id, ErrUnknownActor)
	}
	if a.Placed && a.Pos == p {
		return nil
	}
	if err := f.checkFree(p); err != nil {
		return fmt.Errorf("move %s to %v: %w", id, p, err)
	}

	if a.Placed {
		f.occ.remove(a, a.Pos)
	}
	a.Pos = p
	a.Placed = true
	f.occ.add(a, p)
	return nil
}

// LiftActor убирает актера с карты, не удаляя его с этажа.
func (f *Floor) LiftActor(id domain.EntityID) error {
	a, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("lift %s: %w", id, ErrUnknownActor)
	}
	if a.Placed {
		f.occ.remove(a, a.Pos)
		a.Placed = false
	}
	return nil
}

// RemoveActor удаляет актера с этажа и освобождает его клетку.
func (f *Floor) RemoveActor(id domain.EntityID) error {
	a, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrUnknownActor)
	}
	if a.Placed {
		f.occ.remove(a, a.Pos)
	}
	for i, other := range f.actors {
		if other == a {
			f.actors = append(f.actors[:i], f.actors[i+1:]...)
			break
		}
	}
	delete(f.byID, id)
	delete(f.seq, id)

	f.log().WithField("actor_id", id).Debug("Actor removed from floor.")
	return nil
}

// Actor ищет актера по ID.
func (f *Floor) Actor(id domain.EntityID) (*domain.Actor, bool) {
	a, ok := f.byID[id]
	return a, ok
}

// Actors - копия списка актеров в порядке добавления.
func (f *Floor) Actors() []*domain.Actor {
	out := make([]*domain.Actor, len(f.actors))
	copy(out, f.actors)
	return out
}

func (f *Floor) checkFree(p domain.Position) error {
	if !f.Grid.InBounds(p.X, p.Y) {
		return ErrOutOfBounds
	}
	if len(f.occ.at(p)) > 0 {
		return ErrCellOccupied
	}
	return nil
}

// --- ПРЕДМЕТЫ ---

// AddItem кладет предмет на пол в клетку item.Pos.
func (f *Floor) AddItem(item *domain.Item) error {
	if _, exists := f.itemsID[item.ID]; exists {
		return fmt.Errorf("add item %s: %w", item.ID, ErrDuplicateItem)
	}
	if !f.Grid.InBounds(item.Pos.X, item.Pos.Y) {
		return fmt.Errorf("add item %s: %w", item.ID, ErrOutOfBounds)
	}
	f.items[item.Pos] = append(f.items[item.Pos], item)
	f.itemsID[item.ID] = item
	f.stamp(item.ID)
	return nil
}

// RemoveItem поднимает предмет с пола.
func (f *Floor) RemoveItem(id domain.EntityID) (*domain.Item, error) {
	item, ok := f.itemsID[id]
	if !ok {
		return nil, fmt.Errorf("remove item %s: %w", id, ErrUnknownItem)
	}
	list := f.items[item.Pos]
	for i, other := range list {
		if other == item {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(f.items, item.Pos)
	} else {
		f.items[item.Pos] = list
	}
	delete(f.itemsID, id)
	delete(f.seq, id)
	return item, nil
}

// ItemsAt - предметы в клетке в порядке появления.
func (f *Floor) ItemsAt(x, y int) []*domain.Item {
	list := f.items[domain.Position{X: x, Y: y}]
	if len(list) == 0 {
		return nil
	}
	out := make([]*domain.Item, len(list))
	copy(out, list)
	return out
}

// Items - все предметы на полу в порядке добавления.
func (f *Floor) Items() []*domain.Item {
	out := make([]*domain.Item, 0, len(f.itemsID))
	for _, list := range f.items {
		out = append(out, list...)
	}
	// Карта не упорядочена, восстанавливаем порядок добавления
	sortBySeq(out, func(it *domain.Item) uint64 { return f.seq[it.ID] })
	return out
}

// --- ЗАПРОСЫ ---

// Walkable - проходима ли местность в клетке (актеры не учитываются).
func (f *Floor) Walkable(x, y int) bool {
	return f.Grid.Walkable(x, y)
}

// IsBlocked: за границами, непроходимая местность или занято актером.
// Погибший игрок остается на карте и тоже блокирует клетку.
func (f *Floor) IsBlocked(x, y int) bool {
	if !f.Grid.InBounds(x, y) {
		return true
	}
	if !f.Grid.At(x, y).Walkable() {
		return true
	}
	return len(f.occ.at(domain.Position{X: x, Y: y})) > 0
}

// OccupantAt возвращает актера в клетке.
// Если актеров несколько (индекс заполнен в обход API), выигрывает
// добавленный на этаж раньше всех.
func (f *Floor) OccupantAt(x, y int) (*domain.Actor, bool) {
	list := f.occ.at(domain.Position{X: x, Y: y})
	if len(list) == 0 {
		return nil, false
	}
	best := list[0]
	for _, a := range list[1:] {
		if f.seq[a.ID] < f.seq[best.ID] {
			best = a
		}
	}
	return best, true
}

// UpdateFOV пересчитывает видимость от игрока. Игрока нет на карте - no-op.
func (f *Floor) UpdateFOV() {
	if f.Player == nil {
		return
	}
	pos, ok := f.Player.Location()
	f.Vis.Recompute(pos, ok, f.FOVRadius, f.Grid)
}

// At - легковесная ссылка на клетку этажа.
func (f *Floor) At(x, y int) Location {
	return Location{Floor: f, X: x, Y: y}
}
