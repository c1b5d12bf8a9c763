package handlers

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
)

// Context передает хендлеру состояние этажа.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Floor *floor.Floor
	Actor *domain.Actor // Тот, кто выполняет команду (Игрок или монстр)
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в журнал напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
// payload - структура из pkg/api, сырой JSON или nil.
type HandlerFunc func(ctx Context, payload any) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// SpendActionPoints списывает время действия с актера.
func SpendActionPoints(a *domain.Actor, cost int) {
	domain.SpendTime(a, cost)
}
