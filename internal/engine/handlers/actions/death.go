package actions

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/internal/systems"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// resolveAttack бьет цель и убирает погибших с карты.
func resolveAttack(f *floor.Floor, attacker, target *domain.Actor) string {
	msg, died := systems.ApplyAttack(attacker, target)
	if died {
		handleDeath(f, target)
	}
	return msg
}

// handleDeath: игрок остается на карте трупом (игра это заметит),
// остальные заменяются предметом-трупом и уходят с этажа.
func handleDeath(f *floor.Floor, dead *domain.Actor) {
	if dead == f.Player {
		systems.MarkCorpse(dead)
		return
	}

	corpse := systems.MakeCorpse(dead, f.NewID(domain.KindItem))
	deathLogger := logger.Log.WithFields(logrus.Fields{
		"component": "death",
		"actor_id":  dead.ID,
		"pos":       dead.Pos,
	})

	if err := f.RemoveActor(dead.ID); err != nil {
		deathLogger.WithError(err).Error("Failed to remove dead actor.")
		return
	}
	if err := f.AddItem(corpse); err != nil {
		deathLogger.WithError(err).Warn("Corpse was not placed.")
	}
}
