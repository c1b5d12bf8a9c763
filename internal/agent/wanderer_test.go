package agent

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"testing"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newActor(f *floor.Floor, kind domain.EntityKind, x, y int, hostile bool) *domain.Actor {
	return &domain.Actor{
		ID:      f.NewID(kind),
		Name:    kind.String(),
		Pos:     domain.Position{X: x, Y: y},
		Placed:  true,
		Fighter: &domain.FighterComponent{HP: 5, MaxHP: 5, Strength: 1},
		AI:      &domain.AIComponent{IsHostile: hostile},
	}
}

func turn(f *floor.Floor, a *domain.Actor, seed int64) engine.TurnContext {
	return engine.TurnContext{Floor: f, Actor: a, Rng: rand.New(rand.NewSource(seed))}
}

func TestWanderer_AttacksAdjacentEnemy(t *testing.T) {
	f := floor.New(5, 5)
	f.Grid.Fill(f.Grid.Bounds(), domain.FloorTile)
	me := newActor(f, domain.KindMonster, 2, 2, true)
	hero := newActor(f, domain.KindPlayer, 3, 3, false)
	if err := f.AddActor(me); err != nil {
		t.Fatalf("AddActor: %v", err)
	}
	if err := f.AddActor(hero); err != nil {
		t.Fatalf("AddActor: %v", err)
	}

	cmd := Wanderer{}.Act(context.Background(), turn(f, me, 1))
	if cmd.Action != domain.ActionAttack {
		t.Fatalf("action = %s, want ATTACK", cmd.Action)
	}
	var p api.EntityPayload
	if err := json.Unmarshal(cmd.Payload.(json.RawMessage), &p); err != nil {
		t.Fatal(err)
	}
	id, _ := domain.ParseEntityID(p.TargetID)
	if id != hero.ID {
		t.Errorf("target = %s, want %s", id, hero.ID)
	}
}

func TestWanderer_PicksUpItem(t *testing.T) {
	f := floor.New(5, 5)
	f.Grid.Fill(f.Grid.Bounds(), domain.FloorTile)
	me := newActor(f, domain.KindPlayer, 1, 1, false)
	me.Pack = &domain.PackComponent{MaxSlots: 1}
	if err := f.AddActor(me); err != nil {
		t.Fatalf("AddActor: %v", err)
	}
	if err := f.AddItem(&domain.Item{ID: f.NewID(domain.KindItem), Name: "gold", Pos: me.Pos}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if cmd := (Wanderer{}).Act(context.Background(), turn(f, me, 1)); cmd.Action != domain.ActionPickup {
		t.Errorf("action = %s, want PICKUP", cmd.Action)
	}

	// Рюкзак полон - идем дальше
	me.Pack.Items = append(me.Pack.Items, &domain.Item{})
	if cmd := (Wanderer{}).Act(context.Background(), turn(f, me, 1)); cmd.Action != domain.ActionMove {
		t.Errorf("action = %s, want MOVE", cmd.Action)
	}
}

func TestWanderer_StepsOnlyIntoFreeCells(t *testing.T) {
	// Коридор: свободна только клетка справа
	f := floor.New(5, 3)
	f.Grid.Set(1, 1, domain.FloorTile)
	f.Grid.Set(2, 1, domain.FloorTile)
	me := newActor(f, domain.KindMonster, 1, 1, true)
	if err := f.AddActor(me); err != nil {
		t.Fatalf("AddActor: %v", err)
	}

	for seed := int64(0); seed < 20; seed++ {
		cmd := Wanderer{}.Act(context.Background(), turn(f, me, seed))
		if cmd.Action != domain.ActionMove {
			t.Fatalf("seed %d: action = %s", seed, cmd.Action)
		}
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload.(json.RawMessage), &p); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if p.Dx != 1 || p.Dy != 0 {
			t.Fatalf("seed %d: step (%d,%d), want (1,0)", seed, p.Dx, p.Dy)
		}
	}
}

func TestWanderer_BoxedInWaits(t *testing.T) {
	f := floor.New(3, 3)
	f.Grid.Set(1, 1, domain.FloorTile)
	me := newActor(f, domain.KindMonster, 1, 1, true)
	if err := f.AddActor(me); err != nil {
		t.Fatalf("AddActor: %v", err)
	}

	if cmd := (Wanderer{}).Act(context.Background(), turn(f, me, 1)); cmd.Action != domain.ActionWait {
		t.Errorf("action = %s, want WAIT", cmd.Action)
	}
	if cmd := (Wanderer{WaitChance: 1}).Act(context.Background(), turn(f, me, 1)); cmd.Action != domain.ActionWait {
		t.Errorf("WaitChance 1: action = %s", cmd.Action)
	}
}
