package render

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// glyph - кандидат на отрисовку поверх местности.
type glyph struct {
	ch    rune
	fg    domain.RGB
	layer domain.RenderLayer
	seq   uint64
}

// above - порядок отрисовки: слой выше побеждает, при равенстве - кто раньше
// появился на этаже.
func (g glyph) above(other glyph) bool {
	if g.layer != other.layer {
		return g.layer > other.layer
	}
	return g.seq < other.seq
}

// Render рисует видимую камерой часть этажа в dst.
//
// Местность: видимая клетка - Light, исследованная - Dark, остальное - Darkness.
// Сущности рисуются только в видимых клетках, одна на клетку экрана,
// и меняют только глиф и цвет текста, фон остается от местности.
// Клетки dst вне пересечения с миром не трогаются.
func Render(dst *Frame, f *floor.Floor) {
	screen := dst.Size()
	screenRect, worldRect := f.Camera.Overlap(f.Grid.Size(), screen)
	if screenRect.Empty() {
		return
	}

	// 1. Местность
	for dy := 0; dy < worldRect.H; dy++ {
		for dx := 0; dx < worldRect.W; dx++ {
			wx, wy := worldRect.X+dx, worldRect.Y+dy
			g := domain.Darkness
			switch {
			case f.Vis.IsVisible(wx, wy):
				g = f.Grid.At(wx, wy).Light
			case f.Vis.IsExplored(wx, wy):
				g = f.Grid.At(wx, wy).Dark
			}
			dst.Set(screenRect.X+dx, screenRect.Y+dy, g)
		}
	}

	// 2. Сущности: по одной лучшей на клетку экрана
	best := make(map[int]glyph)
	consider := func(id domain.EntityID, pos domain.Position, r *domain.RenderComponent) {
		if r == nil || !f.Vis.IsVisible(pos.X, pos.Y) {
			return
		}
		sx, sy, ok := f.Camera.WorldToScreen(pos, screen)
		if !ok {
			return
		}
		seq, _ := f.Seq(id)
		cand := glyph{ch: r.Glyph, fg: r.Color, layer: r.Layer, seq: seq}
		idx := sy*screen.Width + sx
		if cur, exists := best[idx]; !exists || cand.above(cur) {
			best[idx] = cand
		}
	}

	for _, a := range f.Actors() {
		if pos, placed := a.Location(); placed {
			consider(a.ID, pos, a.Render)
		}
	}
	for _, it := range f.Items() {
		consider(it.ID, it.Pos, it.Render)
	}

	for idx, g := range best {
		x, y := idx%screen.Width, idx/screen.Width
		cell := dst.At(x, y)
		cell.Glyph = g.ch
		cell.FG = g.fg
		dst.Set(x, y, cell)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":    "renderer",
		"screen_rect":  screenRect,
		"world_rect":   worldRect,
		"entity_cells": len(best),
	}).Trace("Frame rendered.")
}
