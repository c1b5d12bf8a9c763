package domain

// EntityKind - тип сущности, зашит в старшие биты EntityID.
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindMonster
	KindItem
)

var kindToString = map[EntityKind]string{
	KindPlayer:  "PLAYER",
	KindMonster: "MONSTER",
	KindItem:    "ITEM",
}

// String реализует fmt.Stringer (для логов)
func (k EntityKind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// --- СУЩНОСТИ ---

// Actor - живое существо на этаже (игрок или монстр).
// Компоненты равны nil, если свойство отсутствует.
type Actor struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`

	// Pos имеет смысл только при Placed == true.
	// Placed == false - актер сейчас отсутствует на карте.
	Pos    Position `json:"pos"`
	Placed bool     `json:"placed"`

	Render  *RenderComponent  `json:"render,omitempty"`
	Fighter *FighterComponent `json:"fighter,omitempty"`
	AI      *AIComponent      `json:"ai,omitempty"`
	Pack    *PackComponent    `json:"pack,omitempty"`
}

// Location возвращает позицию и признак присутствия на карте.
func (a *Actor) Location() (Position, bool) {
	if a == nil || !a.Placed {
		return Position{}, false
	}
	return a.Pos, true
}

// Alive - есть ли у актера живой боец.
func (a *Actor) Alive() bool {
	return a != nil && a.Fighter.Alive()
}

// Item - предмет, лежащий на полу. Позиция фиксирована, пока его не подобрали.
type Item struct {
	ID     EntityID         `json:"id"`
	Name   string           `json:"name"`
	Pos    Position         `json:"pos"`
	Render *RenderComponent `json:"render,omitempty"`
}

// AddItem кладет предмет в рюкзак. false - если места нет.
func (p *PackComponent) AddItem(item *Item) bool {
	if p == nil || item == nil {
		return false
	}
	if p.MaxSlots > 0 && len(p.Items) >= p.MaxSlots {
		return false
	}
	p.Items = append(p.Items, item)
	return true
}
