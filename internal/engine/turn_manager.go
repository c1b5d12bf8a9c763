package engine

import (
	"container/heap"
	"context"
	"fmt"
	"math/rand"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine/handlers"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine/handlers/actions"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Reporter receives handler results for the message log.
type Reporter interface {
	ReportAs(text, logType string)
}

// TurnManager manages the priority queue of actor turns and implements Scheduler.
type TurnManager struct {
	Floor       *floor.Floor
	Reporter    Reporter
	CurrentTick int

	queue       TurnQueue
	itemMap     map[domain.EntityID]*TurnItem
	controllers map[domain.EntityID]Controller
	handlers    map[domain.ActionType]handlers.HandlerFunc
	rng         *rand.Rand
	order       uint64
}

func NewTurnManager(f *floor.Floor, seed int64) *TurnManager {
	tm := &TurnManager{
		Floor:       f,
		queue:       make(TurnQueue, 0),
		itemMap:     make(map[domain.EntityID]*TurnItem),
		controllers: make(map[domain.EntityID]Controller),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		rng:         rand.New(rand.NewSource(seed)),
	}
	tm.registerHandlers()
	return tm
}

func (tm *TurnManager) registerHandlers() {
	tm.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	tm.handlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	tm.handlers[domain.ActionPickup] = handlers.WithPayload(actions.HandlePickup)
	tm.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
}

// AddActor registers an actor in the turn system. Actors without AI never act.
func (tm *TurnManager) AddActor(a *domain.Actor, c Controller) {
	if a.AI == nil {
		return
	}
	if _, exists := tm.itemMap[a.ID]; exists {
		return
	}

	tm.order++
	item := &TurnItem{
		Value:    a,
		Priority: a.AI.NextActionTick,
		Order:    tm.order,
	}

	heap.Push(&tm.queue, item)
	tm.itemMap[a.ID] = item
	if c != nil {
		tm.controllers[a.ID] = c
	}

	logger.Log.WithField("actor_id", a.ID).Debug("Actor added to TurnManager")
}

// UpdatePriority updates an actor's position in the queue (e.g. after they acted).
func (tm *TurnManager) UpdatePriority(id domain.EntityID, newTick int) {
	if item, ok := tm.itemMap[id]; ok {
		tm.queue.Update(item, newTick)
	}
}

// PeekNext returns the actor whose turn is next, without removing them.
func (tm *TurnManager) PeekNext() *TurnItem {
	if tm.queue.Len() == 0 {
		return nil
	}
	return tm.queue[0]
}

// RemoveActor removes an actor from the turn system (e.g. death).
func (tm *TurnManager) RemoveActor(id domain.EntityID) {
	if item, ok := tm.itemMap[id]; ok {
		heap.Remove(&tm.queue, item.Index)
		delete(tm.itemMap, id)
		delete(tm.controllers, id)
	}
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// InvokeNext resolves exactly one turn of the earliest live actor.
// Dead or removed actors found at the head are dropped first.
// An empty queue is a no-op.
func (tm *TurnManager) InvokeNext(ctx context.Context) error {
	for {
		item := tm.PeekNext()
		if item == nil {
			return nil
		}

		actor := item.Value
		if _, onFloor := tm.Floor.Actor(actor.ID); !onFloor || !actor.Alive() {
			tm.RemoveActor(actor.ID)
			continue
		}

		tm.CurrentTick = item.Priority
		tm.takeTurn(ctx, actor)
		tm.UpdatePriority(actor.ID, actor.AI.NextActionTick)
		return nil
	}
}

func (tm *TurnManager) takeTurn(ctx context.Context, actor *domain.Actor) {
	c, ok := tm.controllers[actor.ID]
	if !ok {
		c = Idle
	}

	before := actor.AI.NextActionTick
	cmd := c.Act(ctx, TurnContext{
		Floor: tm.Floor,
		Actor: actor,
		Tick:  tm.CurrentTick,
		Rng:   tm.rng,
	})

	if err := tm.execute(cmd, actor); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "turn_manager",
			"actor_id":  actor.ID,
			"action":    cmd.Action,
		}).WithError(err).Warn("Command rejected, actor waits")
	}

	// Ход всегда сдвигает время, иначе очередь зациклится на одном актере
	if actor.AI.NextActionTick <= before {
		actor.AI.NextActionTick = before + domain.TimeCostWait
	}
}

// execute runs the handler and reports its message.
func (tm *TurnManager) execute(cmd domain.Command, actor *domain.Actor) error {
	handler, ok := tm.handlers[cmd.Action]
	if !ok {
		return fmt.Errorf("no handler for action %s", cmd.Action)
	}

	result, err := handler(handlers.Context{Floor: tm.Floor, Actor: actor}, cmd.Payload)
	if err != nil {
		return err
	}

	if result.Msg != "" && tm.Reporter != nil {
		msgType := result.MsgType
		if msgType == "" {
			msgType = domain.LogTypeInfo
		}
		tm.Reporter.ReportAs(result.Msg, msgType)
	}
	return nil
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for _, item := range tm.queue {
		result = append(result, map[string]interface{}{
			"id":       item.Value.ID,
			"name":     item.Value.Name,
			"priority": item.Priority,
			"index":    item.Index,
		})
	}
	return result
}
