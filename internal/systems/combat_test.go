package systems

import (
	"testing"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
)

func TestApplyAttack(t *testing.T) {
	attacker := &domain.Actor{
		Name:    "Hero",
		Fighter: &domain.FighterComponent{Strength: 5},
	}

	target := &domain.Actor{
		Name:    "Ork",
		Fighter: &domain.FighterComponent{HP: 20, MaxHP: 20, Defense: 1},
		AI:      &domain.AIComponent{IsHostile: true},
	}

	// damage = max(1, Str - Def)
	msg, died := ApplyAttack(attacker, target)

	if target.Fighter.HP != 16 {
		t.Errorf("Expected target HP to be 16, got %d", target.Fighter.HP)
	}
	if died {
		t.Error("Target should survive the first hit")
	}
	if msg == "" {
		t.Error("Expected attack log message, got empty string")
	}

	// Kill shot
	attacker.Fighter.Strength = 100
	_, died = ApplyAttack(attacker, target)

	if !died {
		t.Error("Expected died=true on the kill shot")
	}
	if target.Fighter.HP > 0 {
		t.Errorf("Expected target to be dead (HP <= 0), got %d", target.Fighter.HP)
	}
	if !target.Fighter.IsDead {
		t.Error("Expected IsDead flag to be true")
	}
	if target.AI.IsHostile {
		t.Error("Corpse should not stay hostile")
	}

	// Повторный удар по трупу ничего не меняет
	if _, died = ApplyAttack(attacker, target); died {
		t.Error("A corpse cannot die twice")
	}
}

func TestApplyAttack_MinimumDamage(t *testing.T) {
	attacker := &domain.Actor{Name: "Rat", Fighter: &domain.FighterComponent{Strength: 1}}
	target := &domain.Actor{Name: "Knight", Fighter: &domain.FighterComponent{HP: 10, MaxHP: 10, Defense: 50}}

	ApplyAttack(attacker, target)
	if target.Fighter.HP != 9 {
		t.Errorf("Expected minimum damage 1, HP = %d", target.Fighter.HP)
	}
}

func TestApplyAttack_NoFighter(t *testing.T) {
	attacker := &domain.Actor{Name: "Hero"}
	target := &domain.Actor{Name: "Statue"}

	msg, died := ApplyAttack(attacker, target)
	if died || msg == "" {
		t.Errorf("unexpected result %q, %v", msg, died)
	}
}

func TestMakeCorpse(t *testing.T) {
	dead := &domain.Actor{Name: "Ork", Pos: domain.Position{X: 3, Y: 4}}
	id := domain.PackEntityID(domain.KindItem, 0, 7)

	corpse := MakeCorpse(dead, id)
	if corpse.Pos != dead.Pos || corpse.ID != id {
		t.Errorf("corpse = %+v", corpse)
	}
	if corpse.Render.Glyph != '%' || corpse.Render.Layer != domain.LayerCorpse {
		t.Errorf("corpse render = %+v", corpse.Render)
	}

	MarkCorpse(dead)
	if dead.Render.Glyph != '%' || dead.Render.Layer != domain.LayerCorpse {
		t.Errorf("marked render = %+v", dead.Render)
	}
}
