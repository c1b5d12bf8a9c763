package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
)

// GenerateArena создает этаж-арену: одна большая комната без коридоров.
// Удобно для демонстрации боя и для тестов.
func GenerateArena(cfg Config) (*floor.Floor, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	f, err := NewLevel(cfg.Depth, rng).
		WithSize(cfg.Width, cfg.Height).
		WithOpenRoom().
		PlacePlayer(Hero).
		SpawnEnemies(cfg.Monsters).
		SpawnItems(cfg.Items).
		Build()
	if err != nil {
		return nil, fmt.Errorf("generate arena (seed %d): %w", cfg.Seed, err)
	}

	GiveStarterKit(f, f.Player)
	return f, nil
}
