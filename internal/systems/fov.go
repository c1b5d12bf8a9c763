package systems

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// TransparencyMap - все, что нужно алгоритму поля зрения от карты.
type TransparencyMap interface {
	Size() domain.Size
	Transparent(x, y int) bool
}

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeFOV считает поле зрения рекурсивным shadowcasting'ом и возвращает
// новую row-major сетку видимости (индекс y*width+x).
//
// Клетка видна, если dx²+dy² <= radius². Непрозрачные клетки, на которые
// падает свет, тоже видны (стены по краю обзора). Центр виден всегда.
// radius <= 0 - видна только клетка наблюдателя.
func ComputeFOV(m TransparencyMap, origin domain.Position, radius int) []bool {
	size := m.Size()
	visible := make([]bool, size.Width*size.Height)

	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	if origin.X < 0 || origin.Y < 0 || origin.X >= size.Width || origin.Y >= size.Height {
		fovLogger.Warn("FOV calculation skipped: observer is outside the map.")
		return visible
	}

	// 1. Центр всегда виден
	visible[origin.Y*size.Width+origin.X] = true

	if radius <= 0 {
		return visible
	}

	// 2. Запускаем рекурсивный Shadowcasting для 8 октантов
	c := caster{m: m, size: size, visible: visible, radius: radius}
	for i := 0; i < 8; i++ {
		c.castLight(origin.X, origin.Y, 1, 1.0, 0.0,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i])
	}

	fovLogger.WithField("visible_tiles", countTrue(visible)).Debug("FOV calculation complete.")
	return visible
}

type caster struct {
	m       TransparencyMap
	size    domain.Size
	visible []bool
	radius  int
}

func (c *caster) castLight(cx, cy, row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := c.radius * c.radius

	for j := row; j <= c.radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Наклоны левого и правого края клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			// Клетку помечаем до проверки на стену: освещенные стены видны
			if c.inBounds(X, Y) && dx*dx+dy*dy <= radiusSq {
				c.visible[Y*c.size.Width+X] = true
			}

			if blocked {
				// Идем вдоль стены
				if c.isBlocking(X, Y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась
				blocked = false
				start = newStart
			} else if c.isBlocking(X, Y) && j < c.radius {
				// Наткнулись на стену: сканируем следующий ряд под ней
				blocked = true
				c.castLight(cx, cy, j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

func (c *caster) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.size.Width && y < c.size.Height
}

// isBlocking проверяет, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func (c *caster) isBlocking(x, y int) bool {
	if !c.inBounds(x, y) {
		return true
	}
	return !c.m.Transparent(x, y)
}

func countTrue(cells []bool) int {
	n := 0
	for _, v := range cells {
		if v {
			n++
		}
	}
	return n
}
