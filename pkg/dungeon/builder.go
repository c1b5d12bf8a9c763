package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoRooms       = errors.New("no rooms were carved")
	ErrNoPlayer      = errors.New("player was not placed")
	ErrRoomsNotBuilt = errors.New("rooms must be generated before spawning")
)

// spawnAttempts - сколько раз пробуем найти свободную клетку в комнате.
const spawnAttempts = 20

// Room - прямоугольник комнаты вместе со стенами по периметру.
type Room struct {
	X, Y, W, H int
}

func (r Room) Center() domain.Position {
	return domain.Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects учитывает и касание стенами, чтобы комнаты не сливались.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Inner - проходимая часть комнаты без стен.
func (r Room) Inner() domain.Rect {
	return domain.Rect{X: r.X + 1, Y: r.Y + 1, W: max(0, r.W-1), H: max(0, r.H-1)}
}

// LevelBuilder предоставляет fluent API для создания этажа.
// Первая ошибка запоминается, остальные шаги после нее ничего не делают.
type LevelBuilder struct {
	depth  int16
	width  int
	height int
	rooms  []Room
	floor  *floor.Floor
	rng    *rand.Rand
	err    error
}

// NewLevel создает новый builder для этажа
func NewLevel(depth int16, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		depth:  depth,
		width:  DefaultWidth,
		height: DefaultHeight,
		rng:    rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms генерирует комнаты и соединяет каждую с предыдущей L-образным коридором.
func (b *LevelBuilder) WithRooms(maxRooms, minSize, maxSize int) *LevelBuilder {
	if b.err != nil {
		return b
	}

	b.floor = floor.New(b.width, b.height)
	b.floor.Depth = b.depth
	b.rooms = make([]Room, 0, maxRooms)

	for i := 0; i < maxRooms; i++ {
		w := b.randRange(minSize, maxSize)
		h := b.randRange(minSize, maxSize)
		if w+2 > b.width || h+2 > b.height {
			continue
		}
		x := b.randRange(1, b.width-w-1)
		y := b.randRange(1, b.height-h-1)

		newRoom := Room{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.floor.Grid.Fill(newRoom.Inner(), domain.FloorTile)

		if len(b.rooms) > 0 {
			prev := b.rooms[len(b.rooms)-1].Center()
			curr := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				b.hCorridor(prev.X, curr.X, prev.Y)
				b.vCorridor(prev.Y, curr.Y, curr.X)
			} else {
				b.vCorridor(prev.Y, curr.Y, prev.X)
				b.hCorridor(prev.X, curr.X, curr.Y)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	if len(b.rooms) == 0 {
		b.err = ErrNoRooms
	}
	return b
}

// WithOpenRoom делает весь этаж одной комнатой (стены только по краю).
func (b *LevelBuilder) WithOpenRoom() *LevelBuilder {
	if b.err != nil {
		return b
	}
	b.floor = floor.New(b.width, b.height)
	b.floor.Depth = b.depth

	room := Room{X: 0, Y: 0, W: b.width - 1, H: b.height - 1}
	if room.Inner().Empty() {
		b.err = ErrNoRooms
		return b
	}
	b.floor.Grid.Fill(room.Inner(), domain.FloorTile)
	b.rooms = []Room{room}
	return b
}

// PlacePlayer ставит игрока в центр первой комнаты.
func (b *LevelBuilder) PlacePlayer(t ActorTemplate) *LevelBuilder {
	if b.ready() != nil {
		return b
	}

	player := t.Spawn(b.floor, domain.KindPlayer, b.rooms[0].Center())
	if err := b.floor.AddActor(player); err != nil {
		b.err = fmt.Errorf("place player: %w", err)
		return b
	}
	b.floor.Player = player
	return b
}

// SpawnEnemies спавнит count врагов в случайных комнатах кроме первой.
// Если комната одна, враги появляются в ней.
func (b *LevelBuilder) SpawnEnemies(count int) *LevelBuilder {
	if b.ready() != nil {
		return b
	}

	for i := 0; i < count; i++ {
		name := EnemyOrder[b.rng.Intn(len(EnemyOrder))]
		room := b.pickRoom(len(b.rooms) > 1)

		pos, ok := b.freeCell(room)
		if !ok {
			continue
		}
		enemy := EnemyTemplates[name].Spawn(b.floor, domain.KindMonster, pos)
		if err := b.floor.AddActor(enemy); err != nil {
			b.log().WithError(err).Debug("Enemy spawn skipped")
		}
	}
	return b
}

// SpawnItems раскладывает count предметов по комнатам.
func (b *LevelBuilder) SpawnItems(count int) *LevelBuilder {
	if b.ready() != nil {
		return b
	}

	for i := 0; i < count; i++ {
		name := ItemOrder[b.rng.Intn(len(ItemOrder))]
		room := b.pickRoom(false)

		pos, ok := b.freeCell(room)
		if !ok {
			continue
		}
		if err := b.floor.AddItem(ItemTemplates[name].Spawn(b.floor, pos)); err != nil {
			b.log().WithError(err).Debug("Item spawn skipped")
		}
	}
	return b
}

// Build возвращает готовый этаж с посчитанным полем зрения.
func (b *LevelBuilder) Build() (*floor.Floor, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.floor == nil {
		return nil, ErrRoomsNotBuilt
	}
	if b.floor.Player == nil {
		return nil, ErrNoPlayer
	}

	b.floor.Camera.Follow(b.floor.Player.Pos)
	b.floor.UpdateFOV()

	b.log().WithFields(logrus.Fields{
		"rooms":  len(b.rooms),
		"actors": len(b.floor.Actors()),
		"items":  len(b.floor.Items()),
	}).Info("Floor generated")
	return b.floor, nil
}

// Rooms возвращает вырезанные комнаты (для тестов и отладки).
func (b *LevelBuilder) Rooms() []Room {
	return b.rooms
}

func (b *LevelBuilder) ready() error {
	if b.err == nil && b.floor == nil {
		b.err = ErrRoomsNotBuilt
	}
	return b.err
}

func (b *LevelBuilder) pickRoom(skipFirst bool) Room {
	if skipFirst {
		return b.rooms[b.rng.Intn(len(b.rooms)-1)+1]
	}
	return b.rooms[b.rng.Intn(len(b.rooms))]
}

// freeCell ищет проходимую незанятую клетку внутри комнаты.
func (b *LevelBuilder) freeCell(room Room) (domain.Position, bool) {
	inner := room.Inner()
	if inner.Empty() {
		return domain.Position{}, false
	}
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		x := inner.X + b.rng.Intn(inner.W)
		y := inner.Y + b.rng.Intn(inner.H)
		if !b.floor.IsBlocked(x, y) && len(b.floor.ItemsAt(x, y)) == 0 {
			return domain.Position{X: x, Y: y}, true
		}
	}
	return domain.Position{}, false
}

func (b *LevelBuilder) hCorridor(x1, x2, y int) {
	b.floor.Grid.Fill(domain.Rect{X: min(x1, x2), Y: y, W: abs(x1-x2) + 1, H: 1}, domain.FloorTile)
}

func (b *LevelBuilder) vCorridor(y1, y2, x int) {
	b.floor.Grid.Fill(domain.Rect{X: x, Y: min(y1, y2), W: 1, H: abs(y1-y2) + 1}, domain.FloorTile)
}

func (b *LevelBuilder) randRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return b.rng.Intn(hi-lo+1) + lo
}

func (b *LevelBuilder) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_builder",
		"depth":     b.depth,
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
