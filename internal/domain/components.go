package domain

// --- КОМПОНЕНТЫ ---

// RenderLayer задает приоритет отрисовки, когда несколько сущностей
// попадают в одну клетку экрана. Больше - выше.
type RenderLayer uint8

const (
	LayerCorpse RenderLayer = iota + 1
	LayerItem
	LayerActor
)

// RenderComponent - визуализация сущности поверх местности
type RenderComponent struct {
	Glyph rune        `json:"glyph"` // g-гоблин, !-зелье
	Color RGB         `json:"color"`
	Layer RenderLayer `json:"layer"`
}

// FighterComponent - здоровье и боевые параметры
type FighterComponent struct {
	HP       int  `json:"hp"`
	MaxHP    int  `json:"maxHp"`
	Strength int  `json:"strength"`
	Defense  int  `json:"defense"`
	IsDead   bool `json:"isDead"`
}

// AIComponent - время и отношение к остальным.
// У игрока тоже есть этот компонент, чтобы хранить NextActionTick.
type AIComponent struct {
	IsHostile      bool `json:"isHostile"`
	NextActionTick int  `json:"nextActionTick"` // Очередь ходов
}

// PackComponent - предметы, которые сущность несет с собой
type PackComponent struct {
	Items    []*Item `json:"items"`
	MaxSlots int     `json:"maxSlots"`
}
