package engine

import (
	"context"
	"math/rand"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
)

// TurnContext is what a controller sees when its actor's turn comes.
type TurnContext struct {
	Floor *floor.Floor
	Actor *domain.Actor
	Tick  int
	Rng   *rand.Rand
}

// Controller decides one command for its actor.
type Controller interface {
	Act(ctx context.Context, tc TurnContext) domain.Command
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(ctx context.Context, tc TurnContext) domain.Command

func (f ControllerFunc) Act(ctx context.Context, tc TurnContext) domain.Command {
	return f(ctx, tc)
}

// Idle always waits. Used for actors without a controller.
var Idle Controller = ControllerFunc(func(context.Context, TurnContext) domain.Command {
	return domain.Command{Action: domain.ActionWait}
})
