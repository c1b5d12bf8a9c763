package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

// DebugHandler отдает последние снимки состояния игры.
// Данные публикует игровой цикл, здесь только чтение.
type DebugHandler struct {
	State *State
}

func NewDebugHandler(s *State) *DebugHandler {
	return &DebugHandler{State: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/floor", h.handleFloor)
	mux.HandleFunc("/debug/frame", h.handleFrame)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
	mux.HandleFunc("/debug/log", h.handleLog)
}

// /debug/floor - сводка по этажу
func (h *DebugHandler) handleFloor(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.State.Summary())
}

// /debug/frame - последний разосланный кадр
func (h *DebugHandler) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame, ok := h.State.Frame()
	if !ok {
		http.Error(w, "No frame rendered yet", http.StatusNotFound)
		return
	}
	writeJSON(w, frame)
}

// /debug/queue - очередь ходов. Порядок в слайсе - порядок кучи,
// а не порядок извлечения.
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.State.Queue())
}

// /debug/log?from=N - журнал сообщений начиная с N
func (h *DebugHandler) handleLog(w http.ResponseWriter, r *http.Request) {
	from := 0
	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid 'from' parameter", http.StatusBadRequest)
			return
		}
		from = v
	}
	writeJSON(w, h.State.Log(from))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (локальный debug-клиент)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug write failed")
	}
}
