package systems

import (
	"fmt"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// CorpseColor - цвет трупа на карте.
var CorpseColor = domain.RGB{0xBF, 0x00, 0x00}

// ApplyAttack наносит удар и возвращает строку для журнала.
// died == true, если цель погибла именно от этого удара.
func ApplyAttack(attacker, target *domain.Actor) (msg string, died bool) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if target.Fighter == nil {
		combatLogger.Warn("Attack failed: target has no FighterComponent.")
		return fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name, target.Name), false
	}
	if target.Fighter.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return fmt.Sprintf("%s пинает труп %s.", attacker.Name, target.Name), false
	}

	// --- Расчёт урона ---

	baseDamage := 1
	if attacker.Fighter != nil {
		baseDamage = attacker.Fighter.Strength
	}

	// Финальный урон (минимум 1)
	finalDamage := baseDamage - target.Fighter.Defense
	if finalDamage < 1 {
		finalDamage = 1
	}

	hpBefore := target.Fighter.HP
	died = target.Fighter.TakeDamage(finalDamage)

	combatLogger.WithFields(logrus.Fields{
		"base_damage":  baseDamage,
		"defense":      target.Fighter.Defense,
		"final_damage": finalDamage,
		"hp_before":    hpBefore,
		"hp_after":     target.Fighter.HP,
		"target_died":  died,
	}).Info("Attack resolved.")

	msg = fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, finalDamage, target.Name)

	if died {
		// "Успокаиваем" ИИ трупа
		if target.AI != nil {
			target.AI.IsHostile = false
		}
		msg += fmt.Sprintf(" %s погибает.", target.Name)
	}

	return msg, died
}

// MakeCorpse создает предмет-труп на месте погибшего актера.
func MakeCorpse(dead *domain.Actor, id domain.EntityID) *domain.Item {
	return &domain.Item{
		ID:   id,
		Name: "Останки " + dead.Name,
		Pos:  dead.Pos,
		Render: &domain.RenderComponent{
			Glyph: '%',
			Color: CorpseColor,
			Layer: domain.LayerCorpse,
		},
	}
}

// MarkCorpse перерисовывает актера трупом, не убирая его с карты
// (так выглядит погибший игрок до конца игры).
func MarkCorpse(a *domain.Actor) {
	if a.Render == nil {
		a.Render = &domain.RenderComponent{}
	}
	a.Render.Glyph = '%'
	a.Render.Color = CorpseColor
	a.Render.Layer = domain.LayerCorpse
}
