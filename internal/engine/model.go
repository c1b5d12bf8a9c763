package engine

import (
	"context"
	"errors"

	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Scheduler advances the simulation by exactly one actor turn.
// It must be safe to call indefinitely.
type Scheduler interface {
	InvokeNext(ctx context.Context) error
}

// TerminalHandler takes over when the player is dead. It blocks until the
// terminal interaction is over (the handler may revive the player, reset the
// floor, or cancel ctx).
type TerminalHandler interface {
	HandleTerminal(ctx context.Context, m *Model)
}

// Sink receives every reported message.
type Sink interface {
	Report(text string)
}

// Observer is notified after each completed turn, between turns.
type Observer interface {
	TurnCompleted(m *Model)
}

// Observers fans a turn notification out to several observers in order.
type Observers []Observer

func (o Observers) TurnCompleted(m *Model) {
	for _, obs := range o {
		if obs != nil {
			obs.TurnCompleted(m)
		}
	}
}

// State of the game loop.
type State int

const (
	StateRunning State = iota
	StateTerminal
)

func (s State) String() string {
	if s == StateTerminal {
		return "TERMINAL"
	}
	return "RUNNING"
}

var ErrNoTerminalHandler = errors.New("player is dead and no terminal handler is set")

// Model is the top-level driver for one floor.
type Model struct {
	Floor     *floor.Floor
	Scheduler Scheduler
	Terminal  TerminalHandler
	Sink      Sink
	Observer  Observer

	log   []api.LogEntry
	turns int
}

func NewModel(f *floor.Floor, s Scheduler, t TerminalHandler) *Model {
	return &Model{
		Floor:     f,
		Scheduler: s,
		Terminal:  t,
	}
}

// IsPlayerDead is the terminal predicate: no player, no fighter, or HP <= 0.
func (m *Model) IsPlayerDead() bool {
	p := m.Floor.Player
	return p == nil || p.Fighter == nil || p.Fighter.HP <= 0
}

// Turns returns the number of completed scheduler steps.
func (m *Model) Turns() int {
	return m.turns
}

// Step runs one loop iteration. A dead player hands control to the terminal
// handler; otherwise the scheduler resolves exactly one turn.
func (m *Model) Step(ctx context.Context) State {
	if m.IsPlayerDead() {
		if m.Terminal != nil {
			m.Terminal.HandleTerminal(ctx, m)
		}
		return StateTerminal
	}

	if err := m.Scheduler.InvokeNext(ctx); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_loop",
			"turn":      m.turns,
		}).WithError(err).Error("Scheduler step failed")
	}
	m.turns++

	if m.Observer != nil {
		m.Observer.TurnCompleted(m)
	}
	return StateRunning
}

// Run loops Step until ctx is cancelled. After the terminal handler returns
// the predicate is simply re-evaluated on the next iteration.
func (m *Model) Run(ctx context.Context) error {
	logger.Log.WithField("component", "game_loop").Info("Game loop started")
	defer logger.Log.WithField("component", "game_loop").Info("Game loop stopped")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.Step(ctx) == StateTerminal && m.Terminal == nil {
			return ErrNoTerminalHandler
		}
	}
}
