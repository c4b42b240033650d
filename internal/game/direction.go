package game

// Direction is a cardinal movement direction. DirNone is a valid "not moving"
// value; it is never the target of a move.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the grid-cell step for one move in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone reverses to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Rotation returns the canonical facing angle in degrees:
// Right=0, Down=90, Left=180, Up=270.
func (d Direction) Rotation() float64 {
	switch d {
	case DirUp:
		return 270
	case DirDown:
		return 90
	case DirLeft:
		return 180
	default:
		return 0
	}
}
