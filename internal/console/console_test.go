package console

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/internal/render"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestConsole_DrawCopiesGlyphsAndColors(t *testing.T) {
	s := newScreen(t, 3, 2)
	c := New(s, domain.Size{Width: 3, Height: 2})

	fr := render.NewFrame(3, 2)
	fr.Set(1, 0, domain.Graphic{Glyph: '@', FG: domain.HexRGB(0xFFFF00), BG: domain.HexRGB(0x000064)})
	c.Draw(fr)

	r, _, style, _ := s.GetContent(1, 0)
	if r != '@' {
		t.Fatalf("glyph = %q, want '@'", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0xFF, 0xFF, 0x00) || bg != tcell.NewRGBColor(0, 0, 0x64) {
		t.Errorf("colors = %v/%v", fg, bg)
	}

	// Нулевой глиф (темнота) рисуется пробелом
	if r, _, _, _ := s.GetContent(0, 1); r != ' ' {
		t.Errorf("darkness glyph = %q, want space", r)
	}
}

func TestConsole_TurnCompletedDrawsMapAndStatus(t *testing.T) {
	f := floor.New(5, 3)
	f.Grid.Fill(f.Grid.Bounds(), domain.FloorTile)
	player := &domain.Actor{
		ID:      f.NewID(domain.KindPlayer),
		Name:    "Hero",
		Pos:     domain.Position{X: 2, Y: 1},
		Placed:  true,
		Render:  &domain.RenderComponent{Glyph: '@', Color: domain.HexRGB(0xFFFFFF), Layer: domain.LayerActor},
		Fighter: &domain.FighterComponent{HP: 7, MaxHP: 10},
		AI:      &domain.AIComponent{},
	}
	if err := f.AddActor(player); err != nil {
		t.Fatalf("AddActor: %v", err)
	}
	f.Player = player
	f.Camera.Follow(player.Pos)
	f.UpdateFOV()

	s := newScreen(t, 5, 4)
	c := New(s, domain.Size{Width: 5, Height: 3})

	m := engine.NewModel(f, nil, nil)
	m.Sink = c
	m.Report("Добро пожаловать")
	c.TurnCompleted(m)

	found := false
	for y := 0; y < 3; y++ {
		if strings.ContainsRune(rowText(s, y, 5), '@') {
			found = true
		}
	}
	if !found {
		t.Error("player glyph not drawn")
	}

	status := rowText(s, 3, 5)
	if !strings.HasPrefix(status, "HP 7/") {
		t.Errorf("status row = %q", status)
	}
}

func TestConsole_TurnCompletedClearsOffWorldCells(t *testing.T) {
	f := floor.New(10, 6)
	f.Grid.Fill(f.Grid.Bounds(), domain.FloorTile)
	player := &domain.Actor{
		ID:      f.NewID(domain.KindPlayer),
		Name:    "Hero",
		Pos:     domain.Position{X: 5, Y: 3},
		Placed:  true,
		Render:  &domain.RenderComponent{Glyph: '@', Color: domain.HexRGB(0xFFFFFF), Layer: domain.LayerActor},
		Fighter: &domain.FighterComponent{HP: 10, MaxHP: 10},
	}
	if err := f.AddActor(player); err != nil {
		t.Fatalf("AddActor: %v", err)
	}
	f.Player = player
	f.Camera.Follow(player.Pos)
	f.UpdateFOV()

	s := newScreen(t, 6, 5)
	c := New(s, domain.Size{Width: 6, Height: 4})
	m := engine.NewModel(f, nil, nil)

	// Экранная (1,0) - мировая (3,1): освещенный пол
	c.TurnCompleted(m)
	if r, _, _, _ := s.GetContent(1, 0); r != '.' {
		t.Fatalf("centred cell (1,0) = %q, want lit floor", r)
	}

	if err := f.MoveActor(player.ID, domain.Position{X: 0, Y: 0}); err != nil {
		t.Fatalf("MoveActor: %v", err)
	}
	f.Camera.Follow(player.Pos)
	f.UpdateFOV()
	c.TurnCompleted(m)

	// Теперь (1,0) смотрит на (-2,-2), за пределы мира
	r, _, style, _ := s.GetContent(1, 0)
	if r != ' ' {
		t.Errorf("off-world cell glyph = %q, want space", r)
	}
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("off-world cell background = %v, want black", bg)
	}
}

func TestConsole_StatusSkippedWithoutRoom(t *testing.T) {
	f := floor.New(2, 2)
	s := newScreen(t, 2, 2)
	c := New(s, domain.Size{Width: 2, Height: 2})

	// Строки статуса нет: экран ровно по размеру карты, паники быть не должно
	c.TurnCompleted(engine.NewModel(f, nil, nil))
}

func TestConsole_PollQuit(t *testing.T) {
	s := newScreen(t, 2, 2)
	c := New(s, domain.Size{Width: 2, Height: 2})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		c.PollQuit(ctx, cancel)
		close(done)
	}()

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PollQuit did not return on Esc")
	}
	if ctx.Err() == nil {
		t.Error("context should be cancelled")
	}
}
