package engine

import (
	"context"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

// GameOver is the default terminal handler: it reports the end of the game
// once, gives observers a final frame and stops the loop via Cancel.
type GameOver struct {
	Cancel context.CancelFunc

	reported bool
}

func (g *GameOver) HandleTerminal(_ context.Context, m *Model) {
	if !g.reported {
		g.reported = true
		m.ReportAs("Игра окончена.", domain.LogTypeInfo)
		if m.Observer != nil {
			m.Observer.TurnCompleted(m)
		}
		logger.Log.WithField("component", "game_loop").
			WithField("turns", m.Turns()).
			Info("Player is dead, stopping")
	}
	if g.Cancel != nil {
		g.Cancel()
	}
}
