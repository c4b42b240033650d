package game

import "testing"

// checkAgentInvariants verifies the interpolation contract for one agent:
// progress stays in [0,1], the cell pair is walkable, and the position is
// authoritative exactly when progress is 1.
func checkAgentInvariants(t *testing.T, tick int, label string, a *Agent, grid *LevelGrid) {
	t.Helper()
	if a.Progress < 0 || a.Progress > 1 {
		t.Fatalf("T=%d %s: progress=%f out of [0,1]", tick, label, a.Progress)
	}
	if a.Progress == 1 && a.Pos != a.Target {
		t.Fatalf("T=%d %s: at rest but pos=%v target=%v", tick, label, a.Pos, a.Target)
	}
	if !grid.IsWalkable(a.Pos.X, a.Pos.Y) {
		t.Fatalf("T=%d %s: pos %v is not walkable", tick, label, a.Pos)
	}
	if !grid.IsWalkable(a.Target.X, a.Target.Y) {
		t.Fatalf("T=%d %s: target %v is not walkable", tick, label, a.Target)
	}
}

func TestInvariants_DefaultLevelLongRun(t *testing.T) {
	ts := NewTestSim(WithAutopilot())
	st := ts.State

	prevScore := 0
	wonAt := -1
	for i := 0; i < 5000; i++ {
		ts.RunTicks(1)
		checkAgentInvariants(t, st.Tick, "P", &st.Player, st.Grid)
		for gi := range st.Ghosts {
			checkAgentInvariants(t, st.Tick, ghostLabel(gi), &st.Ghosts[gi].Agent, st.Grid)
		}
		if st.Score < prevScore {
			t.Fatalf("T=%d: score went backwards %d → %d", st.Tick, prevScore, st.Score)
		}
		prevScore = st.Score
		if st.PelletsRemaining < 0 {
			t.Fatalf("T=%d: pellets_remaining=%d", st.Tick, st.PelletsRemaining)
		}
		if st.ScatterTimer < 0 {
			t.Fatalf("T=%d: scatter_timer=%d", st.Tick, st.ScatterTimer)
		}
		if st.Won && wonAt < 0 {
			wonAt = st.Tick
		}
		if wonAt >= 0 && !st.Won {
			t.Fatalf("T=%d: won reverted after T=%d", st.Tick, wonAt)
		}
		if st.Won || st.GameOver {
			break
		}
	}
}

func TestInvariants_WonImpliesNoPelletsRemaining(t *testing.T) {
	ts := NewTestSim(
		WithGrid(
			"22222",
			"24112",
			"22222",
		),
		WithAutopilot(),
	)
	ts.RunTicks(200)
	st := ts.State
	if st.Won != (st.PelletsRemaining == 0) {
		t.Fatalf("won=%v pellets_remaining=%d, flags disagree", st.Won, st.PelletsRemaining)
	}
	if !st.Won {
		t.Fatal("two-pellet corridor should be cleared inside 200 ticks")
	}
}

func TestInvariants_GhostsNeverReverseAtJunctions(t *testing.T) {
	// Sweep every junction decision in a long run: a chosen direction may
	// only be the reverse of travel when no other exit existed.
	ts := NewTestSim(WithAutopilot())
	st := ts.State

	for i := 0; i < 3000; i++ {
		for gi, gh := range st.Ghosts {
			if !gh.AtDecisionPoint() || gh.CurrentDir == DirNone {
				continue
			}
			exits := 0
			for _, d := range decisionOrder {
				n := gh.Target.Offset(d, 1)
				if st.Grid.IsWalkable(n.X, n.Y) {
					exits++
				}
			}
			target := gh.TargetFor(st.Player.Pos, st.Player.CurrentDir, st.ScatterActive())
			chosen := gh.ChooseDirection(st.Grid, target)
			if exits > 1 && chosen == gh.CurrentDir.Opposite() {
				t.Fatalf("T=%d G%d: reversed to %s with %d exits", st.Tick, gi, chosen, exits)
			}
		}
		ts.RunTicks(1)
		if st.Won || st.GameOver {
			break
		}
	}
}
