package engine

import (
	"container/heap"
	"testing"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
)

func actorWithTick(idx uint64, tick int) *domain.Actor {
	return &domain.Actor{
		ID: domain.PackEntityID(domain.KindMonster, 0, idx),
		AI: &domain.AIComponent{NextActionTick: tick},
	}
}

func TestTurnQueue(t *testing.T) {
	pq := make(TurnQueue, 0)
	heap.Init(&pq)

	e1 := actorWithTick(1, 10)
	e2 := actorWithTick(2, 5)
	e3 := actorWithTick(3, 20)

	item1 := &TurnItem{Value: e1, Priority: e1.AI.NextActionTick}
	item2 := &TurnItem{Value: e2, Priority: e2.AI.NextActionTick}
	item3 := &TurnItem{Value: e3, Priority: e3.AI.NextActionTick}

	heap.Push(&pq, item1)
	heap.Push(&pq, item2)
	heap.Push(&pq, item3)

	if pq.Len() != 3 {
		t.Errorf("Expected length 3, got %d", pq.Len())
	}

	// First pop should be e2 (Tick 5)
	first := heap.Pop(&pq).(*TurnItem)
	if first.Value != e2 {
		t.Errorf("Expected e2, got %s", first.Value.ID)
	}

	// Update e1 to be later (Time 10 -> 30)
	// Current queue: e1(10), e3(20). Top is e1.
	// Changing e1 to 30. New Top should be e3.
	pq.Update(item1, 30)

	second := heap.Pop(&pq).(*TurnItem)
	if second.Value != e3 {
		t.Errorf("Expected e3 (Tick 20), got %s", second.Value.ID)
	}

	third := heap.Pop(&pq).(*TurnItem)
	if third.Value != e1 {
		t.Errorf("Expected e1 (Tick 30), got %s", third.Value.ID)
	}
}

func TestTurnQueue_TieBreakByOrder(t *testing.T) {
	pq := make(TurnQueue, 0)
	a := &TurnItem{Value: actorWithTick(1, 0), Order: 2}
	b := &TurnItem{Value: actorWithTick(2, 0), Order: 1}
	heap.Push(&pq, a)
	heap.Push(&pq, b)

	if got := heap.Pop(&pq).(*TurnItem); got != b {
		t.Error("equal ticks: earlier order goes first")
	}
}
