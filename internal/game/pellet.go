package game

// pelletPoints is the fixed award for any pellet pickup.
const pelletPoints = 10

// Pellet is a collectible dot. Power pellets additionally trigger scatter
// mode on pickup. Active is a one-way flag: pellets are deactivated, never
// removed.
type Pellet struct {
	Pos    GridPos
	Active bool
	Power  bool
}

// checkPickup runs the pellet registry against the player's discrete cell.
// Collision is exact grid-cell equality, independent of interpolation
// progress. Runs once per tick, strictly after motion.
func (s *State) checkPickup() {
	for i := range s.Pellets {
		p := &s.Pellets[i]
		if !p.Active || p.Pos != s.Player.Pos {
			continue
		}
		p.Active = false
		s.Score += pelletPoints
		if s.PelletsRemaining > 0 {
			s.PelletsRemaining--
		}
		s.logEvent("P", "pellet", "eaten", fmt2Pos(p.Pos), float64(s.Score))
		if p.Power {
			s.logEvent("P", "pellet", "power", fmt2Pos(p.Pos), 0)
			s.activateScatter()
		}
	}
	// A level that never had pellets cannot be cleared; only a level drained
	// to zero wins.
	if len(s.Pellets) > 0 && s.PelletsRemaining == 0 && !s.Won {
		s.Won = true
		s.logEvent("--", "state", "won", "all pellets collected", 0)
	}
}
