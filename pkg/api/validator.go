package api

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrZeroDirection = errors.New("direction cannot be zero")
	ErrStepTooLarge  = errors.New("direction must be a single-cell step")
	ErrMissingTarget = errors.New("targetId is required")
	ErrInvalidEntity = errors.New("invalid entity id")
)

// Validator - интерфейс, который могут реализовать DTO.
// handlers.WithPayload вызывает его до хендлера.
type Validator interface {
	Validate() error
}

// Validate: шаг только в одну из 8 соседних клеток.
func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return ErrZeroDirection
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return fmt.Errorf("(%d,%d): %w", p.Dx, p.Dy, ErrStepTooLarge)
	}
	return nil
}

// Validate: цель обязательна и должна быть десятичным ненулевым ID.
func (p EntityPayload) Validate() error {
	if p.TargetID == "" {
		return ErrMissingTarget
	}
	return validateEntityID(p.TargetID)
}

// Validate: ItemID необязателен (пусто - первый предмет под ногами).
func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return nil
	}
	return validateEntityID(p.ItemID)
}

// ID сущностей передаются строкой (см. domain.EntityID.MarshalJSON), 0 - "нет сущности".
func validateEntityID(s string) error {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return fmt.Errorf("%q: %w", s, ErrInvalidEntity)
	}
	return nil
}
