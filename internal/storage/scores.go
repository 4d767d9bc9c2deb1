// Package storage persists finished puzzle runs.
//
// Scores is implemented by the SQLite Store in this package and by the
// Redis leaderboard in storage/redis. Both rank runs by higher score first,
// then fewer moves. Full ties go to the earlier run in SQLite and to the
// greater run ID in Redis, where equal ranks fall back to member order.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// DefaultLimit is used when TopScores is called with a non-positive limit.
const DefaultLimit = 10

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64     `json:"-"`      // Row ID (SQLite only)
	RunID     string    `json:"run_id"` // Unique per run, assigned on save when empty
	GameID    string    `json:"game_id"`
	Player    string    `json:"player,omitempty"`
	Score     int       `json:"score"`
	Moves     int       `json:"moves"`
	Won       bool      `json:"won"`
	CreatedAt time.Time `json:"created_at"`
}

// Scores is the score persistence used by the front end and the CLI.
type Scores interface {
	// SaveScore records a run and returns it with RunID and CreatedAt filled in.
	SaveScore(ctx context.Context, e ScoreEntry) (ScoreEntry, error)

	// TopScores returns the best runs for a game, best first.
	TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error)

	// HighScore returns the best run for a game. ok is false if none exist.
	HighScore(ctx context.Context, gameID string) (best ScoreEntry, ok bool, err error)

	Close() error
}

// EntryFromState builds an unsaved entry for a finished game.
func EntryFromState(gameID, player string, st core.GameState) ScoreEntry {
	return ScoreEntry{
		GameID: gameID,
		Player: player,
		Score:  st.Score,
		Moves:  st.Moves,
		Won:    st.Won,
	}
}

// ShouldRecord reports whether a finished game is worth a scoreboard row:
// it scored points or was won.
func ShouldRecord(st core.GameState) bool {
	return st.GameOver && (st.Score > 0 || st.Won)
}

// Stamp fills the fields assigned on save: a fresh RunID and the current
// time, truncated to the second both backends keep.
func Stamp(e ScoreEntry) ScoreEntry {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.CreatedAt = e.CreatedAt.UTC().Truncate(time.Second)
	return e
}

// Better reports whether a ranks above b.
func Better(a, b ScoreEntry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Moves != b.Moves {
		return a.Moves < b.Moves
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
