package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default window for behaviour reports (~10s at 60 TPS).
const reportWindowTicks = 600

// ReportWindow aggregates chase behaviour over one tick window.
type ReportWindow struct {
	FromTick int
	ToTick   int

	Decisions       int // ghost direction choices committed
	ForcedReversals int // dead-end escapes
	Pellets         int
	PowerPellets    int
	ScatterOn       int // activations inside the window
	GhostsEaten     int
	LivesLost       int
}

// WindowReport is the windowed breakdown of one run.
type WindowReport struct {
	WindowTicks int
	TotalTicks  int
	Windows     []ReportWindow
}

// BuildWindowReport buckets a run's SimLog into fixed tick windows. The last
// window may be short.
func BuildWindowReport(log *SimLog, totalTicks, windowTicks int) *WindowReport {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	wr := &WindowReport{WindowTicks: windowTicks, TotalTicks: totalTicks}
	for from := 1; from <= totalTicks; from += windowTicks {
		to := from + windowTicks - 1
		if to > totalTicks {
			to = totalTicks
		}
		wr.Windows = append(wr.Windows, ReportWindow{FromTick: from, ToTick: to})
	}
	for _, e := range log.Entries() {
		idx := (e.Tick - 1) / windowTicks
		if idx < 0 || idx >= len(wr.Windows) {
			continue
		}
		w := &wr.Windows[idx]
		switch e.Category + "/" + e.Key {
		case "decide/turn":
			w.Decisions++
		case "decide/forced_reversal":
			w.ForcedReversals++
		case "pellet/eaten":
			w.Pellets++
		case "pellet/power":
			w.PowerPellets++
		case "scatter/on":
			w.ScatterOn++
		case "contact/ghost_eaten":
			w.GhostsEaten++
		case "contact/life_lost":
			w.LivesLost++
		}
	}
	return wr
}

// Format renders the report as a fixed-width table.
func (wr *WindowReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- behaviour windows (%d ticks each, %d total) ---\n",
		wr.WindowTicks, wr.TotalTicks)
	fmt.Fprintf(&b, "%-12s %9s %9s %8s %6s %8s %7s %6s\n",
		"window", "decisions", "reversals", "pellets", "power", "scatter", "eaten", "lives-")
	for _, w := range wr.Windows {
		fmt.Fprintf(&b, "%5d-%-6d %9d %9d %8d %6d %8d %7d %6d\n",
			w.FromTick, w.ToTick, w.Decisions, w.ForcedReversals,
			w.Pellets, w.PowerPellets, w.ScatterOn, w.GhostsEaten, w.LivesLost)
	}
	return b.String()
}
