package game

// progressStep is the fixed per-tick interpolation increment shared by every
// agent: one cell takes 8 ticks to cross. The value is exactly representable
// in binary, so repeated addition lands on 1.0 with no drift.
const progressStep = 0.125

// GridPos identifies a grid cell. Compared by value.
type GridPos struct {
	X, Y int
}

// Offset returns the cell n steps from p in direction d.
func (p GridPos) Offset(d Direction, n int) GridPos {
	dx, dy := d.Delta()
	return GridPos{X: p.X + dx*n, Y: p.Y + dy*n}
}

// DistSq returns the squared Euclidean distance between two cells.
func (p GridPos) DistSq(o GridPos) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Agent is the shared movable shape for the player and every ghost. Pos is the
// authoritative cell whenever Progress == 1; mid-transit the agent is the
// linear interpolation between Pos and Target.
type Agent struct {
	Pos        GridPos
	Target     GridPos
	Progress   float64 // 0..1 interpolation fraction from Pos to Target
	Facing     float64 // visual rotation in degrees, one of the four cardinals
	CurrentDir Direction
	QueuedDir  Direction // intent, consumed at the next decision point
}

// NewAgent returns an agent at rest on the given cell.
func NewAgent(at GridPos) Agent {
	return Agent{Pos: at, Target: at, Progress: 1}
}

// AtDecisionPoint reports whether the agent is exactly grid-aligned and
// eligible for a new direction choice.
func (a *Agent) AtDecisionPoint() bool {
	return a.Progress >= 1
}

// RenderPos returns the interpolated visual position in cell units.
func (a *Agent) RenderPos() (x, y float64) {
	x = float64(a.Pos.X) + float64(a.Target.X-a.Pos.X)*a.Progress
	y = float64(a.Pos.Y) + float64(a.Target.Y-a.Pos.Y)*a.Progress
	return x, y
}

// Advance moves the agent one tick.
//
// At a decision point the queued direction is committed first (if its
// neighbour is walkable), then the current direction claims the next target
// cell; a blocked or absent direction leaves the agent at rest. Below a
// decision point the agent only accumulates progress. Target is only ever set
// to a cell that passed the walkability check, so an agent never occupies a
// wall visually or logically.
func (a *Agent) Advance(grid *LevelGrid) {
	if a.Progress >= 1 {
		a.Pos = a.Target
		a.Progress = 1

		if a.QueuedDir != DirNone {
			n := a.Pos.Offset(a.QueuedDir, 1)
			if grid.IsWalkable(n.X, n.Y) {
				a.CurrentDir = a.QueuedDir
			}
		}
		if a.CurrentDir != DirNone {
			n := a.Pos.Offset(a.CurrentDir, 1)
			if grid.IsWalkable(n.X, n.Y) {
				a.Target = n
				a.Progress = 0
				a.Facing = a.CurrentDir.Rotation()
			}
		}
	}
	if a.Progress < 1 {
		a.Progress += progressStep
		if a.Progress >= 1 {
			// Snap on arrival so Pos is authoritative the moment
			// Progress hits 1.
			a.Progress = 1
			a.Pos = a.Target
		}
	}
}

// Reverse flips the agent's travel without moving its visual position.
// Mid-transit the endpoints swap and the fraction inverts; at rest only the
// travel direction flips so the next decision is forced away from the
// approach vector.
func (a *Agent) Reverse() {
	if a.Progress < 1 {
		a.Pos, a.Target = a.Target, a.Pos
		a.Progress = 1 - a.Progress
		a.CurrentDir = a.CurrentDir.Opposite()
		a.QueuedDir = DirNone
		return
	}
	a.CurrentDir = a.CurrentDir.Opposite()
}
