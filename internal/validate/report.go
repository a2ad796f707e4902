package validate

import "fmt"

type EventLevel string

const (
	EventInfo  EventLevel = "info"
	EventWarn  EventLevel = "warn"
	EventError EventLevel = "error"
)

type Event struct {
	Level   EventLevel `json:"level"`
	GameID  string     `json:"gameId,omitempty"`
	Message string     `json:"message"`
}

// Report collects leveled findings across all checks.
type Report struct {
	Events []Event
}

func (r *Report) Add(level EventLevel, gameID, format string, args ...any) {
	r.Events = append(r.Events, Event{
		Level:   level,
		GameID:  gameID,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *Report) Info(gameID, format string, args ...any) {
	r.Add(EventInfo, gameID, format, args...)
}

func (r *Report) Warn(gameID, format string, args ...any) {
	r.Add(EventWarn, gameID, format, args...)
}

func (r *Report) Error(gameID, format string, args ...any) {
	r.Add(EventError, gameID, format, args...)
}

func (r *Report) Merge(other Report) {
	if len(other.Events) == 0 {
		return
	}
	r.Events = append(r.Events, other.Events...)
}

// HasErrors reports whether any error-level event was recorded.
func (r *Report) HasErrors() bool {
	return r.Count(EventError) > 0
}

// Count returns the number of events at the given level.
func (r *Report) Count(level EventLevel) int {
	n := 0
	for _, e := range r.Events {
		if e.Level == level {
			n++
		}
	}
	return n
}
