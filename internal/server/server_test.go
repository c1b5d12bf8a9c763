package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

func TestSpectator_PublishesSnapshot(t *testing.T) {
	fx := newFixture(t)

	if _, ok := fx.state.Frame(); ok {
		t.Fatal("state should be empty before the first turn")
	}

	fx.model.Step(context.Background())

	frame, ok := fx.state.Frame()
	if !ok {
		t.Fatal("frame not published")
	}
	if frame.Turn != 1 || frame.Width != 8 || frame.Height != 6 {
		t.Errorf("frame header = turn %d %dx%d", frame.Turn, frame.Width, frame.Height)
	}
	if len(frame.Cells) != 8*6 {
		t.Errorf("cells = %d, want 48", len(frame.Cells))
	}
	if frame.Player == nil || frame.Player.X != 2 || frame.Player.Y != 2 {
		t.Errorf("player view = %+v", frame.Player)
	}

	sum := fx.state.Summary()
	if sum.Actors != 1 || sum.Turn != 1 || sum.Width != 8 || sum.PlayerDead {
		t.Errorf("summary = %+v", sum)
	}
	if len(fx.state.Queue()) != 1 {
		t.Errorf("queue = %v, want one entry", fx.state.Queue())
	}
}

func TestSpectator_OffWorldCellsDarkAfterCameraMove(t *testing.T) {
	f := floor.New(40, 20)
	f.Grid.Fill(f.Grid.Bounds(), domain.FloorTile)
	player := &domain.Actor{
		ID:     f.NewID(domain.KindPlayer),
		Name:   "Hero",
		Pos:    domain.Position{X: 20, Y: 10},
		Placed: true,
		Render: &domain.RenderComponent{Glyph: '@', Color: domain.HexRGB(0xFFFFFF), Layer: domain.LayerActor},
	}
	if err := f.AddActor(player); err != nil {
		t.Fatalf("AddActor: %v", err)
	}
	f.Player = player
	f.Camera.Follow(player.Pos)
	f.UpdateFOV()

	m := engine.NewModel(f, nil, nil)
	state := NewState()
	sp := NewSpectator(nil, state, domain.Size{Width: 20, Height: 10})

	// Камера в центре: экранная (9,4) - мировая (19,9), освещенный пол
	sp.TurnCompleted(m)
	frame, ok := state.Frame()
	if !ok {
		t.Fatal("frame not published")
	}
	if got := frame.Cells[4*20+9].Glyph; got != "." {
		t.Fatalf("centred cell (9,4) glyph = %q, want lit floor", got)
	}

	if err := f.MoveActor(player.ID, domain.Position{X: 0, Y: 0}); err != nil {
		t.Fatalf("MoveActor: %v", err)
	}
	f.Camera.Follow(player.Pos)
	f.UpdateFOV()
	sp.TurnCompleted(m)

	frame, _ = state.Frame()
	dark := api.CellView{Glyph: " ", FG: "#000000", BG: "#000000"}
	// Левый верх камеры теперь (-10,-5): все клетки с x<10 или y<5 вне мира
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if x >= 10 && y >= 5 {
				continue
			}
			if got := frame.Cells[y*20+x]; got != dark {
				t.Fatalf("off-world cell (%d,%d) = %+v, want darkness", x, y, got)
			}
		}
	}
	if got := frame.Cells[5*20+10].Glyph; got != "@" {
		t.Errorf("player cell (10,5) glyph = %q, want '@'", got)
	}
}

func TestState_LogWindow(t *testing.T) {
	s := NewState()
	s.Publish(api.FrameMessage{Logs: []api.LogEntry{{ID: "0_0"}, {ID: "0_1"}}}, FloorSummary{}, nil)
	s.Publish(api.FrameMessage{Logs: []api.LogEntry{{ID: "0_2"}}}, FloorSummary{}, nil)

	tests := []struct {
		from int
		want int
	}{
		{-3, 3},
		{0, 3},
		{2, 1},
		{3, 0},
		{10, 0},
	}
	for _, tt := range tests {
		if got := s.Log(tt.from); len(got) != tt.want {
			t.Errorf("Log(%d) len = %d, want %d", tt.from, len(got), tt.want)
		}
	}
}

func TestHTTPRoutes(t *testing.T) {
	fx := newFixture(t)
	fx.model.Step(context.Background())

	srv := httptest.NewServer(New(fx.hub, fx.state, "0").Handler())
	defer srv.Close()

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/health", http.StatusOK, "ok"},
		{"/version", http.StatusOK, "build_date"},
		{"/debug/floor", http.StatusOK, `"actors":1`},
		{"/debug/frame", http.StatusOK, `"type":"FRAME"`},
		{"/debug/queue", http.StatusOK, `"name":"Hero"`},
		{"/debug/log?from=0", http.StatusOK, "["},
		{"/debug/log?from=abc", http.StatusBadRequest, "Invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET: %v", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body %q does not contain %q", body, tt.contains)
			}
		})
	}
}

func TestDebugFrame_NotFoundBeforeFirstTurn(t *testing.T) {
	fx := newFixture(t)
	srv := httptest.NewServer(New(fx.hub, fx.state, "0").Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/debug/frame")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestWebSocket_SpectatorReceivesFrames(t *testing.T) {
	fx := newFixture(t)
	fx.model.Step(context.Background())

	srv := httptest.NewServer(New(fx.hub, fx.state, "0").Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	read := func() api.FrameMessage {
		t.Helper()
		if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
			t.Fatalf("deadline: %v", err)
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var msg api.FrameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return msg
	}

	// Первым приходит последний готовый кадр
	if msg := read(); msg.Turn != 1 {
		t.Fatalf("initial frame turn = %d, want 1", msg.Turn)
	}
	if fx.hub.SubscriberCount() != 1 {
		t.Fatalf("subscribers = %d, want 1", fx.hub.SubscriberCount())
	}

	fx.model.Step(context.Background())
	if msg := read(); msg.Turn != 2 {
		t.Errorf("broadcast frame turn = %d, want 2", msg.Turn)
	}
}
