package game

import "fmt"

const eventLogMaxEntries = 24

// EventEntry is a single line in the on-screen event log.
type EventEntry struct {
	Tick    int
	Message string
}

func (e EventEntry) String() string {
	return fmt.Sprintf("[T=%04d] %s", e.Tick, e.Message)
}

// EventLog is a fixed-capacity ring buffer of gameplay events rendered in the
// HUD. SimLog is the unbounded machine-readable counterpart for headless runs.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, eventLogMaxEntries)}
}

// Add appends an entry, evicting the oldest once full.
func (el *EventLog) Add(tick int, format string, args ...any) {
	el.entries[el.head] = EventEntry{Tick: tick, Message: fmt.Sprintf(format, args...)}
	el.head = (el.head + 1) % eventLogMaxEntries
	if el.count < eventLogMaxEntries {
		el.count++
	}
}

// Recent returns up to n entries, oldest first.
func (el *EventLog) Recent(n int) []EventEntry {
	if n > el.count {
		n = el.count
	}
	out := make([]EventEntry, n)
	for i := 0; i < n; i++ {
		idx := (el.head - n + i + eventLogMaxEntries) % eventLogMaxEntries
		out[i] = el.entries[idx]
	}
	return out
}
