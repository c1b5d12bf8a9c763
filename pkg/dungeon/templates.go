package dungeon

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
)

// ActorTemplate определяет шаблон для создания актера
type ActorTemplate struct {
	Name      string
	Glyph     rune
	Color     uint32 // 0xRRGGBB
	HP        int
	Strength  int
	Defense   int
	Hostile   bool
	PackSlots int
}

// Spawn создает актера из шаблона. ID выдает этаж, на карту актер не ставится.
// Статы растут с глубиной этажа.
func (t ActorTemplate) Spawn(f *floor.Floor, kind domain.EntityKind, pos domain.Position) *domain.Actor {
	depth := int(f.Depth)
	hp := t.HP + depth*2

	a := &domain.Actor{
		ID:     f.NewID(kind),
		Name:   t.Name,
		Pos:    pos,
		Placed: true,
		Render: &domain.RenderComponent{
			Glyph: t.Glyph,
			Color: domain.HexRGB(t.Color),
			Layer: domain.LayerActor,
		},
		Fighter: &domain.FighterComponent{
			HP:       hp,
			MaxHP:    hp,
			Strength: t.Strength + depth/2,
			Defense:  t.Defense,
		},
		AI: &domain.AIComponent{IsHostile: t.Hostile},
	}
	if t.PackSlots > 0 {
		a.Pack = &domain.PackComponent{Items: []*domain.Item{}, MaxSlots: t.PackSlots}
	}
	return a
}

// ItemTemplate определяет шаблон для создания предмета
type ItemTemplate struct {
	Name  string
	Glyph rune
	Color uint32
}

// Spawn создает предмет на полу в позиции pos.
func (t ItemTemplate) Spawn(f *floor.Floor, pos domain.Position) *domain.Item {
	return &domain.Item{
		ID:   f.NewID(domain.KindItem),
		Name: t.Name,
		Pos:  pos,
		Render: &domain.RenderComponent{
			Glyph: t.Glyph,
			Color: domain.HexRGB(t.Color),
			Layer: domain.LayerItem,
		},
	}
}

// --- ИГРОК ---

var Hero = ActorTemplate{
	Name:      "Герой",
	Glyph:     '@',
	Color:     0x22D3EE,
	HP:        30,
	Strength:  5,
	Defense:   2,
	PackSlots: 20,
}

// --- ВРАГИ ---

var Goblin = ActorTemplate{
	Name:      "Хитрый Гоблин",
	Glyph:     'g',
	Color:     0x22C55E,
	HP:        10,
	Strength:  3,
	Hostile:   true,
	PackSlots: 2,
}

var Orc = ActorTemplate{
	Name:     "Свирепый Орк",
	Glyph:    'o',
	Color:    0x3F7F3F,
	HP:       16,
	Strength: 4,
	Defense:  1,
	Hostile:  true,
}

var Troll = ActorTemplate{
	Name:     "Каменный Тролль",
	Glyph:    'T',
	Color:    0x007F00,
	HP:       24,
	Strength: 6,
	Defense:  2,
	Hostile:  true,
}

// EnemyTemplates - таблица врагов. Порядок в EnemyOrder задает
// детерминированный выбор по rng.
var EnemyTemplates = map[string]ActorTemplate{
	"goblin": Goblin,
	"orc":    Orc,
	"troll":  Troll,
}

var EnemyOrder = []string{"goblin", "orc", "troll"}

// --- ПРЕДМЕТЫ ---

var HealthPotion = ItemTemplate{Name: "Зелье лечения", Glyph: '!', Color: 0xDC2626}

var IronSword = ItemTemplate{Name: "Железный меч", Glyph: ')', Color: 0xC0C0C0}

var LeatherArmor = ItemTemplate{Name: "Кожаная броня", Glyph: '[', Color: 0x92400E}

var Bread = ItemTemplate{Name: "Хлеб", Glyph: '%', Color: 0xD97706}

var GoldCoin = ItemTemplate{Name: "Золотая монета", Glyph: '$', Color: 0xFCD34D}

var Torch = ItemTemplate{Name: "Факел", Glyph: '~', Color: 0xF59E0B}

var ItemTemplates = map[string]ItemTemplate{
	"health_potion": HealthPotion,
	"iron_sword":    IronSword,
	"leather_armor": LeatherArmor,
	"bread":         Bread,
	"gold":          GoldCoin,
	"torch":         Torch,
}

var ItemOrder = []string{"health_potion", "iron_sword", "leather_armor", "bread", "gold", "torch"}
