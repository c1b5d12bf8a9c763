package actions

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine/handlers"
	"github.com/otricadziziusz/roguelike-tutorial/internal/systems"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

// WeaponRange - дальность удара в ближнем бою (диагональ тоже считается).
const WeaponRange = 1.5

func HandleAttack(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	// 1. Поиск цели
	id, err := domain.ParseEntityID(p.TargetID)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	target, ok := ctx.Floor.Actor(id)
	if !ok || !target.Placed {
		return handlers.Result{Msg: "Цель не найдена.", MsgType: domain.LogTypeError}, nil
	}

	// 2. Проверка дистанции
	if ctx.Actor.Pos.DistanceTo(target.Pos) > WeaponRange {
		return handlers.Result{Msg: "Цель слишком далеко.", MsgType: domain.LogTypeError}, nil
	}

	// 3. Проверка видимости (Сквозь стены бить нельзя)
	if !systems.HasLineOfSight(ctx.Floor.Grid, ctx.Actor.Pos, target.Pos) {
		return handlers.Result{Msg: "Вы не видите цель.", MsgType: domain.LogTypeError}, nil
	}

	// 4. Вызов Системы Боя
	logMsg := resolveAttack(ctx.Floor, ctx.Actor, target)

	// 5. Трата времени
	handlers.SpendActionPoints(ctx.Actor, domain.TimeCostAttackLight)

	return handlers.Result{Msg: logMsg, MsgType: domain.LogTypeCombat}, nil
}
