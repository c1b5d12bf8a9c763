package engine

import (
	"context"
	"time"

	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

// Pacer limits the loop: it sleeps Delay after each turn and cancels the
// run once MaxTurns turns are done. Zero values disable each limit.
type Pacer struct {
	MaxTurns int
	Delay    time.Duration
	Cancel   context.CancelFunc

	sleep func(time.Duration)
}

func (p *Pacer) TurnCompleted(m *Model) {
	if p.MaxTurns > 0 && m.Turns() >= p.MaxTurns {
		logger.Log.WithField("component", "game_loop").
			WithField("turns", m.Turns()).
			Info("Turn limit reached")
		if p.Cancel != nil {
			p.Cancel()
		}
		return
	}

	if p.Delay > 0 {
		sleep := p.sleep
		if sleep == nil {
			sleep = time.Sleep
		}
		sleep(p.Delay)
	}
}
