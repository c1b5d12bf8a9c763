package server

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine"
	"github.com/otricadziziusz/roguelike-tutorial/internal/network"
	"github.com/otricadziziusz/roguelike-tutorial/internal/render"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

// QueueDumper - источник снимка очереди ходов (TurnManager).
type QueueDumper interface {
	DebugDump() []map[string]interface{}
}

// Spectator рисует кадр после каждого хода и рассылает его зрителям.
// Вызывается из игрового цикла, поэтому читает этаж без блокировок.
type Spectator struct {
	Hub   *network.Broadcaster
	State *State
	Queue QueueDumper

	frame   *render.Frame
	lastLog int
	tick    func() int
}

func NewSpectator(hub *network.Broadcaster, state *State, screen domain.Size) *Spectator {
	return &Spectator{
		Hub:   hub,
		State: state,
		frame: render.NewFrame(screen.Width, screen.Height),
	}
}

// WithTurnManager подключает очередь ходов к отладочным снимкам.
func (s *Spectator) WithTurnManager(tm *engine.TurnManager) *Spectator {
	s.Queue = tm
	s.tick = func() int { return tm.CurrentTick }
	return s
}

func (s *Spectator) TurnCompleted(m *engine.Model) {
	// Render трогает только пересечение с миром: остальное должно быть темнотой
	s.frame.Clear()
	render.Render(s.frame, m.Floor)

	logs := m.MessagesSince(s.lastLog)
	s.lastLog = m.LogLen()

	msg := engine.BuildFrameMessage(m, s.frame, logs)

	var queue []map[string]interface{}
	if s.Queue != nil {
		queue = s.Queue.DebugDump()
	}

	if s.State != nil {
		s.State.Publish(msg, s.summarize(m), queue)
	}
	if s.Hub != nil {
		s.Hub.Broadcast(msg)
	}

	logger.Log.WithField("component", "spectator").
		WithField("turn", msg.Turn).
		Trace("Frame published")
}

func (s *Spectator) summarize(m *engine.Model) FloorSummary {
	f := m.Floor
	size := f.Size()
	sum := FloorSummary{
		Depth:      f.Depth,
		Width:      size.Width,
		Height:     size.Height,
		Turn:       m.Turns(),
		Actors:     len(f.Actors()),
		Items:      len(f.Items()),
		Visible:    f.Vis.VisibleCount(),
		Explored:   f.Vis.ExploredCount(),
		PlayerDead: m.IsPlayerDead(),
	}
	if s.tick != nil {
		sum.Tick = s.tick()
	}
	return sum
}
