package actions

import (
	"fmt"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	// Тратим время (для всех одинаково)
	handlers.SpendActionPoints(ctx.Actor, domain.TimeCostWait)

	// Пропуск хода монстром никому не интересен
	if ctx.Actor != ctx.Floor.Player {
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s пропускает ход.", ctx.Actor.Name),
		MsgType: domain.LogTypeInfo,
	}, nil
}
