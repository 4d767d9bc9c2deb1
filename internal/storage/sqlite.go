package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store is the SQLite-backed Scores implementation.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type Store struct {
	db *sql.DB
}

var _ Scores = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_rank ON runs(game_id, score DESC, moves ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run.
func (s *Store) SaveScore(ctx context.Context, e ScoreEntry) (ScoreEntry, error) {
	e = Stamp(e)

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, game_id, player, score, moves, won, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.GameID, e.Player, e.Score, e.Moves, e.Won, e.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return e, fmt.Errorf("storage: cannot save score: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return e, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return e, nil
}

const selectRuns = `SELECT id, run_id, game_id, player, score, moves, won, created_at FROM runs`

const rankOrder = ` ORDER BY score DESC, moves ASC, created_at ASC, id ASC`

// TopScores retrieves the best runs for the given game.
func (s *Store) TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.query(ctx, selectRuns+` WHERE game_id = ?`+rankOrder+` LIMIT ?`, gameID, limit)
}

// AllScores retrieves every run for the given game, best first.
func (s *Store) AllScores(ctx context.Context, gameID string) ([]ScoreEntry, error) {
	return s.query(ctx, selectRuns+` WHERE game_id = ?`+rankOrder, gameID)
}

// HighScore returns the best run for the given game.
func (s *Store) HighScore(ctx context.Context, gameID string) (ScoreEntry, bool, error) {
	entries, err := s.TopScores(ctx, gameID, 1)
	if err != nil {
		return ScoreEntry{}, false, err
	}
	if len(entries) == 0 {
		return ScoreEntry{}, false, nil
	}
	return entries[0], true, nil
}

// RunByID looks up a single run. ok is false if it does not exist.
func (s *Store) RunByID(ctx context.Context, runID string) (ScoreEntry, bool, error) {
	entries, err := s.query(ctx, selectRuns+` WHERE run_id = ?`, runID)
	if err != nil {
		return ScoreEntry{}, false, err
	}
	if len(entries) == 0 {
		return ScoreEntry{}, false, nil
	}
	return entries[0], true, nil
}

// ClearScores deletes all runs for the given game.
func (s *Store) ClearScores(ctx context.Context, gameID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.GameID, &e.Player, &e.Score, &e.Moves, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime accepts what the driver returns for a DATETIME column: either a
// time.Time or the stored text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	WinsCount  int
	HighScore  int
	BestMoves  int // Fewest moves in a won run, 0 if none
	AvgScore   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(ctx context.Context, gameID string) (*GameStats, error) {
	stats, err := s.stats(ctx, ` WHERE game_id = ?`, gameID)
	if err != nil {
		return nil, err
	}
	if st, ok := stats[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats(ctx context.Context) (map[string]*GameStats, error) {
	return s.stats(ctx, "")
}

func (s *Store) stats(ctx context.Context, where string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, COUNT(*), COALESCE(SUM(won), 0), MAX(score),
		        COALESCE(MIN(CASE WHEN won THEN moves END), 0), AVG(score), MAX(created_at)
		 FROM runs`+where+` GROUP BY game_id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.WinsCount, &st.HighScore,
			&st.BestMoves, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
