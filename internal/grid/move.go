package grid

// Direction is a move direction shared by both puzzles.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
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
		return "unknown"
	}
}

// Terminal describes the end-of-game condition after a move.
type Terminal struct {
	Won  bool // Solved (sliding) or reached the target tile (2048)
	Lost bool // No move in any direction changes the grid (2048 only)
}

// Over reports whether either terminal condition holds.
func (t Terminal) Over() bool {
	return t.Won || t.Lost
}

// MoveResult is returned by every engine move.
type MoveResult struct {
	State      State
	Changed    bool // False when the move was illegal or shifted nothing
	ScoreDelta int  // Always 0 for the sliding puzzle
	Terminal   Terminal
}
