package agent

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// directions - 8 соседних клеток.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Wanderer - демо-контроллер без поиска пути.
//
// Решение на ход:
//  1. Рядом враг (другая сторона) - бьет его.
//  2. Под ногами предмет и есть рюкзак - подбирает.
//  3. Иначе с вероятностью WaitChance стоит, а в остальных случаях
//     шагает в случайную проходимую клетку.
type Wanderer struct {
	WaitChance float64
}

var _ engine.Controller = Wanderer{}

func (w Wanderer) Act(_ context.Context, tc engine.TurnContext) domain.Command {
	me := tc.Actor
	f := tc.Floor

	// --- ШАГ 1: ВРАГ РЯДОМ ---
	for _, d := range directions {
		other, ok := f.OccupantAt(me.Pos.X+d[0], me.Pos.Y+d[1])
		if !ok || !other.Alive() || isHostile(other) == isHostile(me) {
			continue
		}
		return command(me, domain.ActionAttack, api.EntityPayload{TargetID: strconv.FormatUint(uint64(other.ID), 10)})
	}

	// --- ШАГ 2: ПРЕДМЕТ ПОД НОГАМИ ---
	if me.Pack != nil && len(f.ItemsAt(me.Pos.X, me.Pos.Y)) > 0 {
		if me.Pack.MaxSlots == 0 || len(me.Pack.Items) < me.Pack.MaxSlots {
			return command(me, domain.ActionPickup, api.ItemPayload{})
		}
	}

	// --- ШАГ 3: СЛУЧАЙНЫЙ ШАГ ---
	if tc.Rng.Float64() < w.WaitChance {
		return domain.Command{Action: domain.ActionWait}
	}

	var options [][2]int
	for _, d := range directions {
		if !f.IsBlocked(me.Pos.X+d[0], me.Pos.Y+d[1]) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return domain.Command{Action: domain.ActionWait}
	}
	d := options[tc.Rng.Intn(len(options))]
	return command(me, domain.ActionMove, api.DirectionPayload{Dx: d[0], Dy: d[1]})
}

func isHostile(a *domain.Actor) bool {
	return a.AI != nil && a.AI.IsHostile
}

// command упаковывает payload в JSON, как это сделал бы сетевой клиент.
func command(me *domain.Actor, action domain.ActionType, payload interface{}) domain.Command {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "agent",
			"actor_id":  me.ID,
		}).WithError(err).Error("Error marshalling payload, waiting")
		return domain.Command{Action: domain.ActionWait}
	}
	return domain.Command{Action: action, Payload: json.RawMessage(payloadBytes)}
}
