package floor

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/systems"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Visibility хранит две сетки той же формы, что и местность:
// visible перезаписывается при каждом пересчете, explored только растет.
type Visibility struct {
	size     domain.Size
	visible  []bool
	explored []bool
}

func NewVisibility(size domain.Size) *Visibility {
	n := size.Width * size.Height
	return &Visibility{
		size:     size,
		visible:  make([]bool, n),
		explored: make([]bool, n),
	}
}

// Recompute пересчитывает поле зрения из origin.
// ok == false (наблюдателя нет на карте) - сетки не трогаем.
func (v *Visibility) Recompute(origin domain.Position, ok bool, radius int, m systems.TransparencyMap) {
	if !ok {
		return
	}
	if m.Size() != v.size {
		logger.Log.WithFields(logrus.Fields{
			"component": "visibility",
			"expected":  v.size,
			"got":       m.Size(),
		}).Error("Transparency map shape mismatch, FOV not updated.")
		return
	}

	v.visible = systems.ComputeFOV(m, origin, radius)
	v.markExplored()
}

// markExplored - единственное место записи в explored: explored |= visible.
func (v *Visibility) markExplored() {
	for i, seen := range v.visible {
		if seen {
			v.explored[i] = true
		}
	}
}

func (v *Visibility) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.size.Width && y < v.size.Height
}

// IsVisible - клетка в текущем поле зрения. За границами false.
func (v *Visibility) IsVisible(x, y int) bool {
	return v.inBounds(x, y) && v.visible[y*v.size.Width+x]
}

// IsExplored - клетку хоть раз видели. За границами false.
func (v *Visibility) IsExplored(x, y int) bool {
	return v.inBounds(x, y) && v.explored[y*v.size.Width+x]
}

func (v *Visibility) VisibleCount() int {
	return countTrue(v.visible)
}

func (v *Visibility) ExploredCount() int {
	return countTrue(v.explored)
}

func countTrue(cells []bool) int {
	n := 0
	for _, c := range cells {
		if c {
			n++
		}
	}
	return n
}
