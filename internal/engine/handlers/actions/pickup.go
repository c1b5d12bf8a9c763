package actions

import (
	"fmt"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine/handlers"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

// HandlePickup обрабатывает команду PICKUP - подбор предмета из-под ног
func HandlePickup(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	// 1. Что лежит под ногами
	items := ctx.Floor.ItemsAt(ctx.Actor.Pos.X, ctx.Actor.Pos.Y)
	if len(items) == 0 {
		return handlers.Result{Msg: "Здесь нечего подбирать.", MsgType: domain.LogTypeError}, nil
	}

	item := items[0]
	if p.ItemID != "" {
		id, err := domain.ParseEntityID(p.ItemID)
		if err != nil {
			return handlers.EmptyResult(), err
		}
		item = nil
		for _, it := range items {
			if it.ID == id {
				item = it
				break
			}
		}
		if item == nil {
			return handlers.Result{Msg: "Предмет не найден.", MsgType: domain.LogTypeError}, nil
		}
	}

	// 2. Рюкзак
	if ctx.Actor.Pack == nil {
		return handlers.Result{Msg: "Некуда положить.", MsgType: domain.LogTypeError}, nil
	}
	if ctx.Actor.Pack.MaxSlots > 0 && len(ctx.Actor.Pack.Items) >= ctx.Actor.Pack.MaxSlots {
		return handlers.Result{Msg: "Рюкзак полон.", MsgType: domain.LogTypeError}, nil
	}

	if _, err := ctx.Floor.RemoveItem(item.ID); err != nil {
		return handlers.EmptyResult(), err
	}
	ctx.Actor.Pack.AddItem(item)

	// 3. Время
	handlers.SpendActionPoints(ctx.Actor, domain.TimeCostPickup)

	return handlers.Result{
		Msg:     fmt.Sprintf("%s подбирает %s.", ctx.Actor.Name, item.Name),
		MsgType: domain.LogTypeInfo,
	}, nil
}
