package game

import "testing"

// scatterFixture is a corridor state with one ghost mid-transit.
func scatterFixture(t *testing.T) *State {
	t.Helper()
	s := NewState([]string{
		"2222222",
		"2000002",
		"2222222",
	})
	s.Player = NewAgent(GridPos{X: 1, Y: 1})
	s.playerSpawn = GridPos{X: 1, Y: 1}
	s.Ghosts = []*Ghost{NewGhost(GhostChaser, GridPos{X: 4, Y: 1}, GridPos{X: 6, Y: 0})}
	return s
}

func TestScatter_MidTransitReversalLaw(t *testing.T) {
	s := scatterFixture(t)
	gh := s.Ghosts[0]
	gh.Pos = GridPos{X: 4, Y: 1}
	gh.Target = GridPos{X: 5, Y: 1}
	gh.Progress = 0.6
	gh.CurrentDir = DirRight
	gh.QueuedDir = DirLeft

	s.activateScatter()

	if !approx(gh.Progress, 0.4) {
		t.Fatalf("progress=%f, want 0.4", gh.Progress)
	}
	if gh.Pos != (GridPos{X: 5, Y: 1}) || gh.Target != (GridPos{X: 4, Y: 1}) {
		t.Fatalf("pos=%v target=%v, want swapped endpoints", gh.Pos, gh.Target)
	}
	if gh.CurrentDir != DirLeft {
		t.Fatalf("current=%s, want left", gh.CurrentDir)
	}
	if gh.QueuedDir != DirNone {
		t.Fatalf("queued=%s, want cleared", gh.QueuedDir)
	}
}

func TestScatter_ReversalPreservesVisualPosition(t *testing.T) {
	s := scatterFixture(t)
	gh := s.Ghosts[0]

	for _, progress := range []float64{0.125, 0.25, 0.375, 0.5, 0.625, 0.875} {
		gh.Pos = GridPos{X: 4, Y: 1}
		gh.Target = GridPos{X: 5, Y: 1}
		gh.Progress = progress
		gh.CurrentDir = DirRight

		bx, by := gh.RenderPos()
		s.activateScatter()
		ax, ay := gh.RenderPos()
		if !approx(bx, ax) || !approx(by, ay) {
			t.Fatalf("progress=%f: visual moved (%f,%f) → (%f,%f)", progress, bx, by, ax, ay)
		}
	}
}

func TestScatter_AtRestReversalOnlyFlipsDirection(t *testing.T) {
	s := scatterFixture(t)
	gh := s.Ghosts[0]
	gh.CurrentDir = DirRight

	s.activateScatter()

	if gh.CurrentDir != DirLeft {
		t.Fatalf("current=%s, want left", gh.CurrentDir)
	}
	if gh.Pos != gh.Target || !approx(gh.Progress, 1) {
		t.Fatalf("at-rest reversal must not move the ghost: pos=%v target=%v progress=%f",
			gh.Pos, gh.Target, gh.Progress)
	}
}

func TestScatter_TimerEncodesTheMode(t *testing.T) {
	s := scatterFixture(t)
	if s.ScatterActive() {
		t.Fatal("fresh state should be in chase mode")
	}
	s.activateScatter()
	if !s.ScatterActive() || s.ScatterTimer != scatterDuration {
		t.Fatalf("timer=%d active=%v, want full duration", s.ScatterTimer, s.ScatterActive())
	}
	for i := 0; i < scatterDuration; i++ {
		s.tickScatter()
	}
	if s.ScatterActive() || s.ScatterTimer != 0 {
		t.Fatalf("timer=%d, want chase mode after countdown", s.ScatterTimer)
	}
	// No underflow on further ticks.
	s.tickScatter()
	if s.ScatterTimer != 0 {
		t.Fatalf("timer=%d, must never go negative", s.ScatterTimer)
	}
}

func TestScatter_RetriggerResetsTimerAndReapplies(t *testing.T) {
	s := scatterFixture(t)
	gh := s.Ghosts[0]
	gh.CurrentDir = DirRight

	s.activateScatter()
	for i := 0; i < 100; i++ {
		s.tickScatter()
	}
	if s.ScatterTimer != scatterDuration-100 {
		t.Fatalf("timer=%d, want %d", s.ScatterTimer, scatterDuration-100)
	}

	s.activateScatter()
	if s.ScatterTimer != scatterDuration {
		t.Fatalf("timer=%d, re-trigger must reset to full duration", s.ScatterTimer)
	}
	if gh.CurrentDir != DirRight {
		t.Fatalf("current=%s, double reversal should restore the original direction", gh.CurrentDir)
	}
}
