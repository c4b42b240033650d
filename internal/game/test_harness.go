package game

// TestSim is a headless simulation harness used by tests and the report tool.
// It drives State.Step directly with no Ebiten dependency and records
// everything into a SimLog.
type TestSim struct {
	State  *State
	SimLog *SimLog

	autopilot bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptLevel simOptionKind = iota // grid rows, verbosity; applied first
	simOptActor                      // player/ghost placement; applied after NewState
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind   simOptionKind
	ghosts bool // option places ghosts; level spawns are cleared once first
	fn     func(*testSimConfig, *TestSim)
}

type testSimConfig struct {
	rows    []string
	verbose bool
}

// WithGrid sets the level rows. Without it the built-in maze is used.
func WithGrid(rows ...string) SimOption {
	return SimOption{kind: simOptLevel, fn: func(cfg *testSimConfig, _ *TestSim) {
		cfg.rows = rows
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{kind: simOptLevel, fn: func(cfg *testSimConfig, _ *TestSim) {
		cfg.verbose = v
	}}
}

// WithPlayerAt places the player at rest on a cell, overriding the spawn the
// level rows produced.
func WithPlayerAt(x, y int) SimOption {
	return SimOption{kind: simOptActor, fn: func(_ *testSimConfig, ts *TestSim) {
		ts.State.Player = NewAgent(GridPos{X: x, Y: y})
		ts.State.playerSpawn = GridPos{X: x, Y: y}
	}}
}

// WithGhost appends a ghost of the given kind at (x,y) with its scatter
// anchor at (ax,ay). Any WithGhost option replaces the spawns the level rows
// produced; several of them build up a roster.
func WithGhost(kind GhostKind, x, y, ax, ay int) SimOption {
	return SimOption{kind: simOptActor, ghosts: true, fn: func(_ *testSimConfig, ts *TestSim) {
		ts.State.Ghosts = append(ts.State.Ghosts,
			NewGhost(kind, GridPos{X: x, Y: y}, GridPos{X: ax, Y: ay}))
	}}
}

// WithAutopilot steers the player greedily toward the nearest active pellet,
// so a run exercises the whole pipeline without external input.
func WithAutopilot() SimOption {
	return SimOption{kind: simOptActor, fn: func(_ *testSimConfig, ts *TestSim) {
		ts.autopilot = true
	}}
}

// NewTestSim builds a harness over NewState, applying level options first and
// actor options second.
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := testSimConfig{rows: DefaultLevel()}
	ts := &TestSim{}
	for _, o := range opts {
		if o.kind == simOptLevel {
			o.fn(&cfg, ts)
		}
	}
	ts.State = NewState(cfg.rows)
	ts.SimLog = NewSimLog(cfg.verbose)
	ts.State.AttachLog(ts.SimLog)
	for _, o := range opts {
		if o.ghosts {
			ts.State.Ghosts = nil
			break
		}
	}
	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(&cfg, ts)
		}
	}
	return ts
}

// StepIntent advances one tick with an explicit player intent.
func (ts *TestSim) StepIntent(d Direction) {
	ts.State.Step(d)
}

// RunTicks advances n ticks, feeding autopilot intent when enabled.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		intent := DirNone
		if ts.autopilot {
			intent = autopilotIntent(ts.State)
		}
		ts.State.Step(intent)
		if ts.State.Won || ts.State.GameOver {
			return
		}
	}
}

// autopilotIntent picks a player direction at each decision point: the
// walkable neighbour closest to the nearest active pellet, preferring not to
// double back. Mid-transit it leaves the queued direction alone.
func autopilotIntent(s *State) Direction {
	if !s.Player.AtDecisionPoint() {
		return DirNone
	}
	nearest, ok := nearestActivePellet(s)
	if !ok {
		return DirNone
	}
	from := s.Player.Target
	opposite := s.Player.CurrentDir.Opposite()

	best := DirNone
	bestDist := 0
	fallback := DirNone
	for _, d := range decisionOrder {
		n := from.Offset(d, 1)
		if !s.Grid.IsWalkable(n.X, n.Y) {
			continue
		}
		if d == opposite && d != DirNone {
			fallback = d
			continue
		}
		dist := n.DistSq(nearest)
		if best == DirNone || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	if best == DirNone {
		return fallback
	}
	return best
}

func nearestActivePellet(s *State) (GridPos, bool) {
	best := GridPos{}
	bestDist := -1
	for _, p := range s.Pellets {
		if !p.Active {
			continue
		}
		d := p.Pos.DistSq(s.Player.Pos)
		if bestDist < 0 || d < bestDist {
			best = p.Pos
			bestDist = d
		}
	}
	return best, bestDist >= 0
}
