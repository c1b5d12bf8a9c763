package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine"
	"github.com/otricadziziusz/roguelike-tutorial/internal/render"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

// Console выводит кадр в терминал через tcell. Под картой - строка статуса
// с HP, номером хода и последним сообщением журнала.
// Реализует engine.Observer и engine.Sink.
type Console struct {
	screen tcell.Screen
	frame  *render.Frame

	mu      sync.Mutex
	lastMsg string
}

// New привязывает консоль к уже инициализированному экрану.
// size - размер карты; строка статуса рисуется в строке size.Height.
func New(screen tcell.Screen, size domain.Size) *Console {
	return &Console{
		screen: screen,
		frame:  render.NewFrame(size.Width, size.Height),
	}
}

// Open создает и инициализирует экран реального терминала.
func Open(size domain.Size) (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	return New(screen, size), nil
}

// Close возвращает терминал в исходное состояние.
func (c *Console) Close() {
	c.screen.Fini()
}

// Report запоминает последнее сообщение для строки статуса.
func (c *Console) Report(text string) {
	c.mu.Lock()
	c.lastMsg = text
	c.mu.Unlock()
}

func (c *Console) TurnCompleted(m *engine.Model) {
	c.frame.Clear()
	render.Render(c.frame, m.Floor)
	c.Draw(c.frame)
	c.drawStatus(m)
	c.screen.Show()
}

// Draw переносит кадр на экран. Клетки за пределами экрана отбрасываются.
func (c *Console) Draw(fr *render.Frame) {
	size := fr.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			g := fr.At(x, y)
			c.screen.SetContent(x, y, glyphRune(g.Glyph), nil, styleOf(g))
		}
	}
}

func (c *Console) drawStatus(m *engine.Model) {
	sw, sh := c.screen.Size()
	row := c.frame.Size().Height
	if row >= sh {
		return
	}

	status := fmt.Sprintf("Ход %d", m.Turns())
	if p := m.Floor.Player; p != nil && p.Fighter != nil {
		status = fmt.Sprintf("HP %d/%d | %s", p.Fighter.HP, p.Fighter.MaxHP, status)
	}
	c.mu.Lock()
	if c.lastMsg != "" {
		status += " | " + c.lastMsg
	}
	c.mu.Unlock()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(status)
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		c.screen.SetContent(x, row, r, nil, style)
	}
}

// PollQuit читает события терминала, пока ctx жив.
// Esc, 'q' или Ctrl+C вызывают cancel.
func (c *Console) PollQuit(ctx context.Context, cancel context.CancelFunc) {
	for ctx.Err() == nil {
		ev := c.screen.PollEvent()
		if ev == nil {
			// Экран закрыт
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				logger.Log.WithField("component", "console").Info("Quit requested from terminal")
				cancel()
				return
			}
		}
	}
}

func glyphRune(g int32) rune {
	if g < ' ' {
		return ' '
	}
	return rune(g)
}

func styleOf(g domain.Graphic) tcell.Style {
	return tcell.StyleDefault.
		Foreground(toColor(g.FG)).
		Background(toColor(g.BG))
}

func toColor(c domain.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}
