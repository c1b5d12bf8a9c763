package engine

import (
	"fmt"
	"time"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Report appends an INFO message to the log and forwards it to the sink.
func (m *Model) Report(text string) {
	m.ReportAs(text, domain.LogTypeInfo)
}

// ReportAs appends a typed message. The log is append-only, with no dedupe and no cap.
func (m *Model) ReportAs(text, logType string) {
	m.log = append(m.log, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", m.Floor.Depth, len(m.log)),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"depth":     m.Floor.Depth,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)

	if m.Sink != nil {
		m.Sink.Report(text)
	}
}

// Messages returns a copy of the whole log.
func (m *Model) Messages() []api.LogEntry {
	return m.MessagesSince(0)
}

// MessagesSince returns a copy of the entries starting at index from.
func (m *Model) MessagesSince(from int) []api.LogEntry {
	if from < 0 {
		from = 0
	}
	if from >= len(m.log) {
		return nil
	}
	out := make([]api.LogEntry, len(m.log)-from)
	copy(out, m.log[from:])
	return out
}

// LogLen is the current number of log entries.
func (m *Model) LogLen() int {
	return len(m.log)
}
