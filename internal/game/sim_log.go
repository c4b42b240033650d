package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless simulation.
type SimLogEntry struct {
	Tick     int
	Actor    string  // label e.g. "P", "G0".."G3", or "--" for global events
	Category string  // move, decide, pellet, scatter, contact, state
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] G1   decide   turn   left → up
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-8s %-14s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless simulation. It is
// unbounded and machine-readable; the on-screen EventLog is the bounded
// UI counterpart.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries in order.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching a category and key. Empty strings match any.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns all entries for one actor label.
func (sl *SimLog) FilterActor(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Actor == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns the number of entries matching category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	matches := sl.Filter(category, key)
	if len(matches) == 0 {
		return SimLogEntry{}, false
	}
	return matches[len(matches)-1], true
}

// Format renders the full log as one line per entry.
func (sl *SimLog) Format() string {
	var b strings.Builder
	for _, e := range sl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary renders a one-shot overview of the run's end state.
func (sl *SimLog) Summary(s *State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== run summary (T=%d) ===\n", s.Tick)
	fmt.Fprintf(&b, "score=%d lives=%d pellets_remaining=%d won=%v game_over=%v\n",
		s.Score, s.Lives, s.PelletsRemaining, s.Won, s.GameOver)
	fmt.Fprintf(&b, "pellets_eaten=%d power_pellets=%d scatter_activations=%d\n",
		sl.CountCategory("pellet", "eaten"), sl.CountCategory("pellet", "power"),
		sl.CountCategory("scatter", "on"))
	fmt.Fprintf(&b, "decisions=%d forced_reversals=%d ghosts_eaten=%d lives_lost=%d\n",
		sl.CountCategory("decide", "turn"), sl.CountCategory("decide", "forced_reversal"),
		sl.CountCategory("contact", "ghost_eaten"), sl.CountCategory("contact", "life_lost"))
	return b.String()
}
