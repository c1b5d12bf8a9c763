package domain

// Command - решение контроллера на один ход.
// Payload - типизированная структура из pkg/api (или nil для WAIT).
type Command struct {
	Action  ActionType
	Payload any
}
