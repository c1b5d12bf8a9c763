package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
)

// Параметры генерации по умолчанию
const (
	DefaultWidth    = 80
	DefaultHeight   = 45
	DefaultMaxRooms = 30
	DefaultMinSize  = 6
	DefaultMaxSize  = 10
	DefaultMonsters = 12
	DefaultItems    = 8
)

// Config описывает один генерируемый этаж.
type Config struct {
	Seed     int64
	Depth    int16
	Width    int
	Height   int
	MaxRooms int
	MinSize  int
	MaxSize  int
	Monsters int
	Items    int
}

func DefaultConfig(seed int64) Config {
	return Config{
		Seed:     seed,
		Depth:    1,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxRooms: DefaultMaxRooms,
		MinSize:  DefaultMinSize,
		MaxSize:  DefaultMaxSize,
		Monsters: DefaultMonsters,
		Items:    DefaultItems,
	}
}

// Generate строит этаж из комнат и коридоров. Один и тот же Config
// всегда дает один и тот же этаж.
func Generate(cfg Config) (*floor.Floor, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	f, err := NewLevel(cfg.Depth, rng).
		WithSize(cfg.Width, cfg.Height).
		WithRooms(cfg.MaxRooms, cfg.MinSize, cfg.MaxSize).
		PlacePlayer(Hero).
		SpawnEnemies(cfg.Monsters).
		SpawnItems(cfg.Items).
		Build()
	if err != nil {
		return nil, fmt.Errorf("generate floor (seed %d): %w", cfg.Seed, err)
	}

	GiveStarterKit(f, f.Player)
	return f, nil
}
