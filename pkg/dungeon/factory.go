package dungeon

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
)

// GiveStarterKit кладет в рюкзак стартовое снаряжение.
// Предметы сразу в рюкзаке и на карте не появляются.
func GiveStarterKit(f *floor.Floor, a *domain.Actor) {
	if a == nil || a.Pack == nil {
		return
	}
	for _, t := range []ItemTemplate{IronSword, HealthPotion} {
		item := t.Spawn(f, a.Pos)
		a.Pack.AddItem(item)
	}
}
