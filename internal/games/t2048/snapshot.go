package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateWon          GameStateType = "won" // Endless: target reached, play continues
	StateGameOver     GameStateType = "game_over"
	StateComplete     GameStateType = "complete" // Campaign: all levels cleared
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "endless"
	Level   int    // Current level (1-indexed for display)
	Target  int    // Tile value that wins the level (campaign) or the game (endless)
	Score   int
	Moves   int
	Size    int
	Board   string // grid.State.String()
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.completed:
		state = StateComplete
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.reachedWin:
		state = StateWon
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   g.levelIndex + 1,
		Target:  g.engine.WinTile,
		Score:   g.score,
		Moves:   g.moves,
		Size:    g.board.Size(),
		Board:   g.board.String(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
}
