package api

// --- СЕРВЕР -> КЛИЕНТ ---

// FrameMessage - корневой объект, который сервер рассылает зрителям после
// каждого завершенного хода: готовый кадр экрана и новые строки журнала.
type FrameMessage struct {
	// Type тип сообщения. На данный момент всегда "FRAME".
	Type string `json:"type"`

	// Turn - номер завершенного хода (сколько раз сработал планировщик).
	Turn int `json:"turn"`

	// Width и Height - размер кадра в клетках.
	Width  int `json:"w"`
	Height int `json:"h"`

	// Cells - клетки кадра построчно, len(Cells) == Width*Height.
	Cells []CellView `json:"cells"`

	// Player - краткое состояние игрока для строки статуса.
	Player *PlayerView `json:"player,omitempty"`

	// Logs срез новых сообщений, появившихся с прошлого кадра.
	Logs []LogEntry `json:"logs,omitempty"`
}

// CellView - одна клетка кадра. Цвета в формате "#RRGGBB".
type CellView struct {
	Glyph string `json:"ch"`
	FG    string `json:"fg"`
	BG    string `json:"bg"`
}

// PlayerView - то, что нужно для строки статуса.
type PlayerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Dead  bool   `json:"dead"`
}

// LogEntry - одна строка журнала сообщений.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"` // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (e.g. MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// EntityPayload используется для действий, нацеленных на другую сущность (e.g. ATTACK).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}

// ItemPayload используется для PICKUP. Пустой ItemID - первый предмет под ногами.
type ItemPayload struct {
	ItemID string `json:"itemId,omitempty"`
}
