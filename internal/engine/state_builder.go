package engine

import (
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/render"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

// BuildFrameMessage превращает готовый кадр в DTO для зрителей.
// logs - новые строки журнала с прошлого кадра.
func BuildFrameMessage(m *Model, fr *render.Frame, logs []api.LogEntry) api.FrameMessage {
	size := fr.Size()
	cells := make([]api.CellView, 0, size.Width*size.Height)
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			cells = append(cells, toCellView(fr.At(x, y)))
		}
	}

	msg := api.FrameMessage{
		Type:   "FRAME",
		Turn:   m.Turns(),
		Width:  size.Width,
		Height: size.Height,
		Cells:  cells,
		Logs:   logs,
	}

	if p := m.Floor.Player; p != nil {
		view := &api.PlayerView{
			ID:   p.ID.String(),
			Name: p.Name,
			X:    p.Pos.X,
			Y:    p.Pos.Y,
			Dead: m.IsPlayerDead(),
		}
		if p.Fighter != nil {
			view.HP = p.Fighter.HP
			view.MaxHP = p.Fighter.MaxHP
		}
		msg.Player = view
	}
	return msg
}

func toCellView(g domain.Graphic) api.CellView {
	ch := " "
	if g.Glyph >= ' ' {
		ch = string(rune(g.Glyph))
	}
	return api.CellView{Glyph: ch, FG: g.FG.Hex(), BG: g.BG.Hex()}
}
