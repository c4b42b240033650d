package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport renders the full chase state as pasteable text: grid header,
// player and ghost agents, timers and the recent tail of the attached SimLog.
func (s *State) DebugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- gridchase debug report ---\n")
	fmt.Fprintf(&b, "tick=%d grid=%dx%d score=%d lives=%d\n",
		s.Tick, s.Grid.Width(), s.Grid.Height(), s.Score, s.Lives)
	fmt.Fprintf(&b, "pellets_remaining=%d scatter_timer=%d won=%v game_over=%v\n",
		s.PelletsRemaining, s.ScatterTimer, s.Won, s.GameOver)

	px, py := s.Player.RenderPos()
	fmt.Fprintf(&b, "P    pos=%s target=%s progress=%.2f dir=%s queued=%s visual=(%.2f,%.2f)\n",
		fmt2Pos(s.Player.Pos), fmt2Pos(s.Player.Target), s.Player.Progress,
		s.Player.CurrentDir, s.Player.QueuedDir, px, py)
	for i, gh := range s.Ghosts {
		gx, gy := gh.RenderPos()
		fmt.Fprintf(&b, "G%d   kind=%-8s pos=%s target=%s progress=%.2f dir=%s anchor=%s visual=(%.2f,%.2f)\n",
			i, gh.Kind, fmt2Pos(gh.Pos), fmt2Pos(gh.Target), gh.Progress,
			gh.CurrentDir, fmt2Pos(gh.Anchor), gx, gy)
	}

	if s.log != nil {
		from := s.Tick - lastTicks + 1
		if from < 0 {
			from = 0
		}
		fmt.Fprintf(&b, "--- events T=[%d..%d] ---\n", from, s.Tick)
		for _, e := range s.log.Entries() {
			if e.Tick >= from {
				b.WriteString(e.String())
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

// CopyDebugReport places the report on the system clipboard.
func (s *State) CopyDebugReport(lastTicks int) error {
	if err := clipboard.WriteAll(s.DebugReport(lastTicks)); err != nil {
		return fmt.Errorf("copy debug report: %w", err)
	}
	return nil
}
