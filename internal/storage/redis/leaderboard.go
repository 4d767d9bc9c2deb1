// Package redis provides a Redis-backed leaderboard implementing
// storage.Scores, for running several SSH front ends against one board.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

// maxMoves bounds the moves packed into a rank; larger counts tie.
const maxMoves = 999_999

// Leaderboard stores runs as JSON and ranks them in one sorted set per game.
type Leaderboard struct {
	client *redis.Client
	cfg    Config
}

var _ storage.Scores = (*Leaderboard)(nil)

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg Config) (*Leaderboard, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("storage: redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: redis ping: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client (used by tests).
func NewWithClient(client *redis.Client, cfg Config) *Leaderboard {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultConfig().Prefix
	}
	return &Leaderboard{client: client, cfg: cfg}
}

// Close closes the Redis connection.
func (l *Leaderboard) Close() error {
	return l.client.Close()
}

// rankScore packs score and moves into one sorted-set score so that a
// higher score wins and fewer moves break ties. Exact below 2^53.
func rankScore(e storage.ScoreEntry) float64 {
	moves := min(max(e.Moves, 0), maxMoves)
	return float64(e.Score)*float64(maxMoves+1) + float64(maxMoves-moves)
}

// SaveScore stores the run and adds it to its game's board atomically.
func (l *Leaderboard) SaveScore(ctx context.Context, e storage.ScoreEntry) (storage.ScoreEntry, error) {
	e = storage.Stamp(e)

	data, err := json.Marshal(e)
	if err != nil {
		return e, fmt.Errorf("storage: encode run: %w", err)
	}

	pipe := l.client.TxPipeline()
	pipe.Set(ctx, l.runKey(e.RunID), data, l.cfg.RunTTL)
	pipe.ZAdd(ctx, l.boardKey(e.GameID), redis.Z{Score: rankScore(e), Member: e.RunID})
	if _, err := pipe.Exec(ctx); err != nil {
		return e, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return e, nil
}

// TopScores returns the best runs for a game, best first. Members whose run
// has expired are pruned and the scan moves further down the board, so a
// full page is returned whenever enough live runs remain.
func (l *Leaderboard) TopScores(ctx context.Context, gameID string, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		limit = storage.DefaultLimit
	}

	board := l.boardKey(gameID)
	var entries []storage.ScoreEntry
	var expired []any

	for start := int64(0); len(entries) < limit; {
		want := int64(limit - len(entries))
		ids, err := l.client.ZRevRange(ctx, board, start, start+want-1).Result()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot query scores: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		start += int64(len(ids))

		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = l.runKey(id)
		}
		values, err := l.client.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot load runs: %w", err)
		}

		for i, v := range values {
			raw, ok := v.(string)
			if !ok {
				expired = append(expired, ids[i])
				continue
			}
			var e storage.ScoreEntry
			if err := json.Unmarshal([]byte(raw), &e); err != nil {
				return nil, fmt.Errorf("storage: decode run %s: %w", ids[i], err)
			}
			entries = append(entries, e)
		}

		if int64(len(ids)) < want {
			break
		}
	}

	if len(expired) > 0 {
		if err := l.client.ZRem(ctx, board, expired...).Err(); err != nil {
			return entries, fmt.Errorf("storage: prune expired runs: %w", err)
		}
	}
	return entries, nil
}

// HighScore returns the best run for a game.
func (l *Leaderboard) HighScore(ctx context.Context, gameID string) (storage.ScoreEntry, bool, error) {
	entries, err := l.TopScores(ctx, gameID, 1)
	if err != nil {
		return storage.ScoreEntry{}, false, err
	}
	if len(entries) == 0 {
		return storage.ScoreEntry{}, false, nil
	}
	return entries[0], true, nil
}

// Run loads a single run by ID. ok is false if it does not exist.
func (l *Leaderboard) Run(ctx context.Context, runID string) (storage.ScoreEntry, bool, error) {
	data, err := l.client.Get(ctx, l.runKey(runID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return storage.ScoreEntry{}, false, nil
	}
	if err != nil {
		return storage.ScoreEntry{}, false, fmt.Errorf("storage: cannot load run: %w", err)
	}

	var e storage.ScoreEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return storage.ScoreEntry{}, false, fmt.Errorf("storage: decode run %s: %w", runID, err)
	}
	return e, true, nil
}

// Count returns how many runs a game's board holds.
func (l *Leaderboard) Count(ctx context.Context, gameID string) (int64, error) {
	n, err := l.client.ZCard(ctx, l.boardKey(gameID)).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Rank returns the 1-based position of a run on its game's board.
func (l *Leaderboard) Rank(ctx context.Context, gameID, runID string) (int64, bool, error) {
	r, err := l.client.ZRevRank(ctx, l.boardKey(gameID), runID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot rank run: %w", err)
	}
	return r + 1, true, nil
}
