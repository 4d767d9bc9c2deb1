package slide

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Size   int
	Moves  int
	Board  string // grid.State.String()
	Cursor int
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.solved:
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:   g.tick,
		Size:   g.size,
		Moves:  g.moves,
		Board:  g.board.String(),
		Cursor: g.cursor,
		State:  state,
	}
}
