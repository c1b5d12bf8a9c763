package systems

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
)

// WalkMap - что нужно движению от этажа.
type WalkMap interface {
	Size() domain.Size
	Walkable(x, y int) bool
	OccupantAt(x, y int) (*domain.Actor, bool)
}

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Position
	HasMoved  bool
	BlockedBy *domain.Actor // Если врезались в кого-то (для атаки)
	IsWall    bool          // Если врезались в стену или край карты
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(a *domain.Actor, dx, dy int, m WalkMap) MovementResult {
	// Shift возвращает новую позицию, не меняя текущую
	target := a.Pos.Shift(dx, dy)
	res := MovementResult{Target: target}

	// 1. Проверка границ
	size := m.Size()
	if target.X < 0 || target.X >= size.Width || target.Y < 0 || target.Y >= size.Height {
		res.IsWall = true
		return res
	}

	// 2. Проверка стен
	if !m.Walkable(target.X, target.Y) {
		res.IsWall = true
		return res
	}

	// 3. Проверка актеров. Трупы на карте - предметы, они не мешают.
	if other, ok := m.OccupantAt(target.X, target.Y); ok && other != a {
		res.BlockedBy = other
		return res
	}

	res.HasMoved = true
	return res
}
