package game

// scatterDuration is the number of ticks a power pellet keeps scatter mode
// active (~10s at 60 TPS).
const scatterDuration = 600

// ScatterActive reports whether scatter mode currently overrides pursuit.
// The two-state machine is encoded by the timer: 0 = chase, >0 = scatter.
func (s *State) ScatterActive() bool {
	return s.ScatterTimer > 0
}

// activateScatter performs the chase→scatter transition: the timer is set to
// the fixed duration, the ghost-eat combo restarts from the base award and
// every ghost is reversed in place. A power pellet taken during scatter
// simply resets the timer and re-applies the reversal; there is no cooldown.
func (s *State) activateScatter() {
	s.ScatterTimer = scatterDuration
	s.combo = 0
	for i, gh := range s.Ghosts {
		gh.Reverse()
		s.logEvent(ghostLabel(i), "scatter", "reversed", gh.CurrentDir.String(), gh.Progress)
	}
	s.logEvent("--", "scatter", "on", "", float64(scatterDuration))
}

// tickScatter decrements the timer; the scatter→chase transition has no
// re-entry effect, ghosts just resume kind targeting from wherever they are.
func (s *State) tickScatter() {
	if s.ScatterTimer == 0 {
		return
	}
	s.ScatterTimer--
	if s.ScatterTimer == 0 {
		s.combo = 0
		s.logEvent("--", "scatter", "off", "", 0)
	}
}
