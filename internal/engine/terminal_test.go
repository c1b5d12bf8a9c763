package engine

import (
	"context"
	"errors"
	"testing"
)

func TestGameOver_StopsRun(t *testing.T) {
	f, player := newTestFloor(t)
	player.Fighter.HP = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs := &countingObserver{}
	m := NewModel(f, &countingScheduler{}, &GameOver{Cancel: cancel})
	m.Observer = obs

	if err := m.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
	if m.LogLen() != 1 || m.Messages()[0].Text != "Игра окончена." {
		t.Errorf("log = %+v", m.Messages())
	}
	if len(obs.turns) != 1 {
		t.Errorf("observer calls = %d, want one final frame", len(obs.turns))
	}
	if m.Turns() != 0 {
		t.Errorf("turns = %d, scheduler must not run for a dead player", m.Turns())
	}
}

func TestGameOver_ReportsOnce(t *testing.T) {
	f, player := newTestFloor(t)
	player.Fighter.HP = 0

	g := &GameOver{}
	m := NewModel(f, &countingScheduler{}, g)
	for i := 0; i < 3; i++ {
		m.Step(context.Background())
	}
	if m.LogLen() != 1 {
		t.Errorf("log len = %d, want 1", m.LogLen())
	}
}
