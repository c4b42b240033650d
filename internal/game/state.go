package game

import "fmt"

const (
	startLives = 3

	// Ghost-eat combo awards during one scatter period: 200, 400, 800, 1600.
	ghostEatBase = 200
	ghostEatMax  = 1600
)

// State is the complete mutable simulation for one session. It owns the
// player, the ghosts and the pellets; the grid is shared read-only. One
// Step call per external tick, single writer, no I/O.
type State struct {
	Grid    *LevelGrid
	Player  Agent
	Ghosts  []*Ghost
	Pellets []Pellet

	Score            int
	PelletsRemaining int
	ScatterTimer     int
	Won              bool

	Lives    int
	GameOver bool
	Tick     int

	playerSpawn GridPos
	combo       int // ghost-eat combo exponent, reset with scatter
	log         *SimLog
}

// NewState builds a session from level rows. Pellets, power pellets and
// spawns come from the tile codes; ghost kinds are assigned in spawn order
// (chaser, ambusher, flanker, shy) and anchors are the four grid corners in
// the same order. With no explicit player spawn the first walkable cell is
// used, pellet or not; a pellet there sits under the player and is eaten on
// the first tick.
func NewState(rows []string) *State {
	grid := NewLevelGrid(rows)
	s := &State{
		Grid:  grid,
		Lives: startLives,
	}

	corners := [4]GridPos{
		{X: 0, Y: 0},
		{X: grid.Width() - 1, Y: 0},
		{X: 0, Y: grid.Height() - 1},
		{X: grid.Width() - 1, Y: grid.Height() - 1},
	}

	playerPlaced := false
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			pos := GridPos{X: x, Y: y}
			switch grid.TileAt(x, y) {
			case TilePellet:
				s.Pellets = append(s.Pellets, Pellet{Pos: pos, Active: true})
			case TilePowerPellet:
				s.Pellets = append(s.Pellets, Pellet{Pos: pos, Active: true, Power: true})
			case TilePlayerSpawn:
				s.playerSpawn = pos
				playerPlaced = true
			case TileGhostSpawn:
				if len(s.Ghosts) < int(ghostKindCount) {
					kind := GhostKind(len(s.Ghosts))
					s.Ghosts = append(s.Ghosts, NewGhost(kind, pos, corners[kind]))
				}
			}
		}
	}
	if !playerPlaced {
	scan:
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				if grid.IsWalkable(x, y) {
					s.playerSpawn = GridPos{X: x, Y: y}
					break scan
				}
			}
		}
	}
	s.Player = NewAgent(s.playerSpawn)
	s.PelletsRemaining = len(s.Pellets)
	return s
}

// AttachLog wires a SimLog; nil detaches. The core never logs outside an
// attached sink.
func (s *State) AttachLog(log *SimLog) {
	s.log = log
}

// Step advances the simulation one tick: ghost decisions, then motion for
// every agent, then pellet pickup, then contact, then the scatter timer.
// A DirNone intent leaves the player's queued direction untouched, so a
// buffered turn survives until a decision point consumes it.
func (s *State) Step(intent Direction) {
	if s.GameOver || s.Won {
		return
	}
	s.Tick++

	if intent != DirNone {
		s.Player.QueuedDir = intent
	}

	// Every ghost at a decision point queues its next turn before any agent
	// moves this tick.
	for i, gh := range s.Ghosts {
		if !gh.AtDecisionPoint() {
			continue
		}
		target := gh.TargetFor(s.Player.Pos, s.Player.CurrentDir, s.ScatterActive())
		chosen := gh.ChooseDirection(s.Grid, target)
		if chosen != gh.QueuedDir {
			s.logEvent(ghostLabel(i), "decide", "turn",
				fmt.Sprintf("%s → %s (target %s)", gh.CurrentDir, chosen, fmt2Pos(target)), 0)
		}
		if chosen == gh.CurrentDir.Opposite() && chosen != DirNone {
			s.logEvent(ghostLabel(i), "decide", "forced_reversal", chosen.String(), 0)
		}
		gh.QueuedDir = chosen
	}

	s.Player.Advance(s.Grid)
	for _, gh := range s.Ghosts {
		gh.Advance(s.Grid)
	}
	if s.log != nil {
		px, py := s.Player.RenderPos()
		s.log.AddVerbose(s.Tick, "P", "move", "position", fmt.Sprintf("(%.2f,%.2f)", px, py), 0)
	}

	s.checkPickup()
	s.checkContact()
	s.tickScatter()
}

// checkContact resolves same-cell player/ghost collisions after motion.
// During scatter the ghost is eaten for combo points and sent home; otherwise
// the player loses a life and positions reset.
func (s *State) checkContact() {
	if s.GameOver {
		return
	}
	for i, gh := range s.Ghosts {
		if gh.Pos != s.Player.Pos {
			continue
		}
		if s.ScatterActive() {
			points := ghostEatBase << s.combo
			if points > ghostEatMax {
				points = ghostEatMax
			}
			s.Score += points
			if s.combo < 3 {
				s.combo++
			}
			gh.Agent = NewAgent(gh.Home)
			s.logEvent(ghostLabel(i), "contact", "ghost_eaten", gh.Kind.String(), float64(points))
			continue
		}
		s.loseLife(i)
		return
	}
}

func (s *State) loseLife(ghostIdx int) {
	s.Lives--
	s.ScatterTimer = 0
	s.combo = 0
	s.logEvent(ghostLabel(ghostIdx), "contact", "life_lost",
		fmt.Sprintf("lives=%d", s.Lives), float64(s.Lives))
	if s.Lives <= 0 {
		s.GameOver = true
		s.logEvent("--", "state", "game_over", "", 0)
		return
	}
	s.resetPositions()
}

// resetPositions returns the player and every ghost to their spawn cells at
// rest. Pellet state and score are untouched.
func (s *State) resetPositions() {
	s.Player = NewAgent(s.playerSpawn)
	for _, gh := range s.Ghosts {
		gh.Agent = NewAgent(gh.Home)
	}
}

func (s *State) logEvent(actor, category, key, value string, numVal float64) {
	if s.log == nil {
		return
	}
	s.log.Add(s.Tick, actor, category, key, value, numVal)
}

func ghostLabel(i int) string {
	return fmt.Sprintf("G%d", i)
}

func fmt2Pos(p GridPos) string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
