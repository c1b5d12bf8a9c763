package server

import (
	"sync"

	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

// FloorSummary - короткая сводка по этажу для /debug/floor.
type FloorSummary struct {
	Depth      int16 `json:"depth"`
	Width      int   `json:"width"`
	Height     int   `json:"height"`
	Turn       int   `json:"turn"`
	Tick       int   `json:"tick"`
	Actors     int   `json:"actors"`
	Items      int   `json:"items"`
	Visible    int   `json:"visible"`
	Explored   int   `json:"explored"`
	PlayerDead bool  `json:"player_dead"`
}

// State хранит последние снимки, опубликованные игровым циклом.
// HTTP-горутины читают только отсюда и никогда не трогают этаж напрямую.
type State struct {
	mu       sync.RWMutex
	frame    api.FrameMessage
	hasFrame bool
	summary  FloorSummary
	queue    []map[string]interface{}
	log      []api.LogEntry
}

func NewState() *State {
	return &State{
		queue: make([]map[string]interface{}, 0),
		log:   make([]api.LogEntry, 0),
	}
}

// Publish заменяет снимок целиком. Новые строки журнала дописываются.
func (s *State) Publish(frame api.FrameMessage, summary FloorSummary, queue []map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame = frame
	s.hasFrame = true
	s.summary = summary
	if queue != nil {
		s.queue = queue
	}
	s.log = append(s.log, frame.Logs...)
}

// Frame возвращает последний кадр. false - кадров еще не было.
func (s *State) Frame() (api.FrameMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame, s.hasFrame
}

func (s *State) Summary() FloorSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

func (s *State) Queue() []map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue
}

// Log возвращает копию журнала начиная с from.
func (s *State) Log(from int) []api.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if from < 0 {
		from = 0
	}
	if from >= len(s.log) {
		return []api.LogEntry{}
	}
	out := make([]api.LogEntry, len(s.log)-from)
	copy(out, s.log[from:])
	return out
}
