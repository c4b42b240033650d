package game

// defaultLevel is the built-in maze: a ladder layout with junction connectors,
// four power pellets in the corners, a central ghost house and the player
// spawn on the lower corridor. Ghost kinds follow spawn scan order (chaser,
// ambusher, flanker, shy); scatter anchors are the four grid corners.
var defaultLevel = []string{
	"2222222222222222222",
	"2311111111111111132",
	"2122212221222122212",
	"2111111111111111112",
	"2221222221222221222",
	"2111111111111111112",
	"2122222221222222212",
	"2111111550551111112",
	"2122222221222222212",
	"2111111111111111112",
	"2221222221222221222",
	"2111111114111111112",
	"2122212221222122212",
	"2311111111111111132",
	"2222222222222222222",
}

// DefaultLevel returns a copy of the built-in maze rows.
func DefaultLevel() []string {
	rows := make([]string, len(defaultLevel))
	copy(rows, defaultLevel)
	return rows
}
