package actions

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine/handlers"
	"github.com/otricadziziusz/roguelike-tutorial/internal/systems"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

// HandleMove - шаг на соседнюю клетку. Шаг во врага - атака.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	f := ctx.Floor
	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, f)

	if res.BlockedBy != nil {
		if hostile(ctx.Actor) != hostile(res.BlockedBy) {
			logMsg := resolveAttack(f, ctx.Actor, res.BlockedBy)
			handlers.SpendActionPoints(ctx.Actor, domain.TimeCostAttackLight)
			return handlers.Result{Msg: logMsg, MsgType: domain.LogTypeCombat}, nil
		}
		// Свои: просто стоим
		handlers.SpendActionPoints(ctx.Actor, domain.TimeCostWait)
		return handlers.EmptyResult(), nil
	}

	if res.HasMoved {
		if err := f.MoveActor(ctx.Actor.ID, res.Target); err != nil {
			return handlers.EmptyResult(), err
		}
		if ctx.Actor == f.Player {
			f.UpdateFOV()
			f.Camera.Follow(res.Target)
		}
		handlers.SpendActionPoints(ctx.Actor, domain.TimeCostMove)
		return handlers.EmptyResult(), nil
	}

	handlers.SpendActionPoints(ctx.Actor, domain.TimeCostWait)
	if res.IsWall && ctx.Actor == f.Player {
		return handlers.Result{Msg: "Путь прегражден.", MsgType: domain.LogTypeError}, nil
	}
	return handlers.EmptyResult(), nil
}

func hostile(a *domain.Actor) bool {
	return a.AI != nil && a.AI.IsHostile
}
