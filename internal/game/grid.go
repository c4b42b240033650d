package game

import "strings"

// Tile codes as they appear in level rows. The loader that produces the rows
// lives outside this package; the grid only interprets the codes.
const (
	TileEmpty       = '0'
	TilePellet      = '1'
	TileWall        = '2'
	TilePowerPellet = '3'
	TilePlayerSpawn = '4'
	TileGhostSpawn  = '5'
)

// LevelGrid is the static walkability oracle for a level. It is built once
// from an already-parsed row list and never mutated afterwards.
type LevelGrid struct {
	rows   []string
	width  int
	height int
}

// NewLevelGrid builds a grid from level rows. Trailing whitespace is trimmed
// per row; rows may end up with differing lengths, and any column beyond a
// row's trimmed length is treated as non-walkable.
func NewLevelGrid(rows []string) *LevelGrid {
	trimmed := make([]string, len(rows))
	width := 0
	for i, r := range rows {
		trimmed[i] = strings.TrimRight(r, " \t\r")
		if len(trimmed[i]) > width {
			width = len(trimmed[i])
		}
	}
	return &LevelGrid{rows: trimmed, width: width, height: len(trimmed)}
}

func (g *LevelGrid) Width() int  { return g.width }
func (g *LevelGrid) Height() int { return g.height }

// TileAt returns the tile code at (x, y), or TileWall for any out-of-range
// cell. Out-of-bounds is a policy answer, never an error.
func (g *LevelGrid) TileAt(x, y int) byte {
	if y < 0 || y >= g.height {
		return TileWall
	}
	row := g.rows[y]
	if x < 0 || x >= len(row) {
		return TileWall
	}
	return row[x]
}

// IsWalkable reports whether an agent may occupy (x, y).
func (g *LevelGrid) IsWalkable(x, y int) bool {
	return g.TileAt(x, y) != TileWall
}
