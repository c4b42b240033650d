package game

// GhostKind selects one of the four fixed pursuit personalities.
type GhostKind int

const (
	GhostChaser   GhostKind = iota // heads straight for the player's cell
	GhostAmbusher                  // leads the player by four cells
	GhostFlanker                   // leads the player by two cells
	GhostShy                       // chases at range, retreats when close
	ghostKindCount                 // sentinel
)

func (k GhostKind) String() string {
	switch k {
	case GhostChaser:
		return "chaser"
	case GhostAmbusher:
		return "ambusher"
	case GhostFlanker:
		return "flanker"
	case GhostShy:
		return "shy"
	default:
		return "unknown"
	}
}

const (
	ambusherLead = 4
	flankerLead  = 2
	// shyRangeSq is the squared cell distance inside which a shy ghost
	// retreats to its anchor instead of chasing.
	shyRangeSq = 64
)

// Ghost is a pursuer: an agent plus a behaviour tag, its spawn cell and its
// fixed scatter anchor (typically a grid corner).
type Ghost struct {
	Agent
	Kind   GhostKind
	Home   GridPos
	Anchor GridPos
}

// NewGhost creates a ghost at rest on its home cell.
func NewGhost(kind GhostKind, home, anchor GridPos) *Ghost {
	return &Ghost{Agent: NewAgent(home), Kind: kind, Home: home, Anchor: anchor}
}

// TargetFor returns the cell the ghost currently seeks. During scatter mode
// every kind heads for its anchor; otherwise the kind's own heuristic applies.
// A lead offset with playerDir == DirNone degenerates to the player's cell.
func (gh *Ghost) TargetFor(playerPos GridPos, playerDir Direction, scatter bool) GridPos {
	if scatter {
		return gh.Anchor
	}
	switch gh.Kind {
	case GhostAmbusher:
		return playerPos.Offset(playerDir, ambusherLead)
	case GhostFlanker:
		return playerPos.Offset(playerDir, flankerLead)
	case GhostShy:
		if gh.Pos.DistSq(playerPos) > shyRangeSq {
			return playerPos
		}
		return gh.Anchor
	default:
		return playerPos
	}
}

// decisionOrder is the fixed enumeration order for direction choice.
var decisionOrder = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// ChooseDirection picks the ghost's next direction at a decision point: the
// walkable neighbour closest (squared Euclidean) to the target cell wins.
// The reverse of the current direction is excluded whenever more than one
// neighbour is walkable, so ghosts never double back at a junction but can
// still escape a dead end. Ties break strictly in enumeration order (Left,
// Right, Up, Down): the first direction reaching the minimum wins and later
// equal-scoring directions never replace it.
func (gh *Ghost) ChooseDirection(grid *LevelGrid, target GridPos) Direction {
	from := gh.Target // about-to-be-snapped cell
	opposite := gh.CurrentDir.Opposite()

	var valid [4]bool
	count := 0
	for i, d := range decisionOrder {
		n := from.Offset(d, 1)
		if grid.IsWalkable(n.X, n.Y) {
			valid[i] = true
			count++
		}
	}
	if count == 0 {
		// Fully enclosed: forced reversal.
		return opposite
	}
	if count > 1 && gh.CurrentDir != DirNone {
		for i, d := range decisionOrder {
			if d == opposite {
				valid[i] = false
			}
		}
	}

	best := DirNone
	bestDist := 0
	for i, d := range decisionOrder {
		if !valid[i] {
			continue
		}
		dist := from.Offset(d, 1).DistSq(target)
		if best == DirNone || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
