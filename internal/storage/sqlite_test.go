package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAssignsRunID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 100, Moves: 40})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if saved.RunID == "" || saved.ID == 0 {
		t.Errorf("SaveScore() = %+v, want RunID and ID set", saved)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("SaveScore() should stamp CreatedAt")
	}

	got, ok, err := store.RunByID(ctx, saved.RunID)
	if err != nil || !ok {
		t.Fatalf("RunByID() = %v, %v", ok, err)
	}
	if got.Score != 100 || got.Moves != 40 || got.GameID != "2048" {
		t.Errorf("RunByID() = %+v", got)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	entries := []ScoreEntry{
		{GameID: "2048", Score: 100, Moves: 50, CreatedAt: base},
		{GameID: "2048", Score: 200, Moves: 90, CreatedAt: base},
		{GameID: "2048", Score: 100, Moves: 30, CreatedAt: base.Add(time.Minute)},
		{GameID: "2048", Score: 50, Moves: 10, CreatedAt: base},
		{GameID: "slide_3x3", Moves: 30, Won: true, CreatedAt: base},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(ctx, e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, "2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("TopScores() returned %d entries, want 4", len(scores))
	}

	want := [][2]int{{200, 90}, {100, 30}, {100, 50}, {50, 10}}
	for i, w := range want {
		if scores[i].Score != w[0] || scores[i].Moves != w[1] {
			t.Errorf("rank %d = (%d, %d), want (%d, %d)", i, scores[i].Score, scores[i].Moves, w[0], w[1])
		}
	}

	limited, err := store.TopScores(ctx, "2048", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("TopScores(limit 2) returned %d entries", len(limited))
	}
}

func TestStoreSlideRanksByFewestMoves(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, moves := range []int{80, 25, 60} {
		if _, err := store.SaveScore(ctx, ScoreEntry{GameID: "slide_4x4", Moves: moves, Won: true}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	best, ok, err := store.HighScore(ctx, "slide_4x4")
	if err != nil || !ok {
		t.Fatalf("HighScore() = %v, %v", ok, err)
	}
	if best.Moves != 25 || !best.Won {
		t.Errorf("HighScore() = %+v, want the 25-move win", best)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.HighScore(context.Background(), "2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if ok {
		t.Error("HighScore() on empty store should report no entry")
	}
}

func TestStoreClearAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	runs := []ScoreEntry{
		{GameID: "slide_3x3", Moves: 40, Won: true},
		{GameID: "slide_3x3", Moves: 22, Won: true},
		{GameID: "2048", Score: 300, Moves: 120},
		{GameID: "2048", Score: 100, Moves: 70},
	}
	for _, e := range runs {
		if _, err := store.SaveScore(ctx, e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	st, err := store.GetGameStats(ctx, "slide_3x3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.WinsCount != 2 || st.BestMoves != 22 {
		t.Errorf("slide stats = %+v", st)
	}

	all, err := store.GetAllGamesStats(ctx)
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["2048"] == nil || all["2048"].HighScore != 300 || all["2048"].AvgScore != 200 {
		t.Errorf("2048 stats = %+v", all["2048"])
	}

	if err := store.ClearScores(ctx, "2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	left, err := store.AllScores(ctx, "2048")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("AllScores() after clear = %d entries", len(left))
	}

	empty, err := store.GetGameStats(ctx, "2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 {
		t.Errorf("stats after clear = %+v", empty)
	}
}

func TestShouldRecord(t *testing.T) {
	tests := []struct {
		name string
		st   core.GameState
		want bool
	}{
		{"running", core.GameState{Score: 10}, false},
		{"lost with points", core.GameState{Score: 10, GameOver: true}, true},
		{"solved slide", core.GameState{Moves: 30, Won: true, GameOver: true}, true},
		{"lost without points", core.GameState{GameOver: true}, false},
	}

	for _, tt := range tests {
		if got := ShouldRecord(tt.st); got != tt.want {
			t.Errorf("%s: ShouldRecord() = %v, want %v", tt.name, got, tt.want)
		}
	}

	e := EntryFromState("slide_3x3", "alice", core.GameState{Moves: 30, Won: true, GameOver: true})
	if e.GameID != "slide_3x3" || e.Player != "alice" || e.Moves != 30 || !e.Won {
		t.Errorf("EntryFromState() = %+v", e)
	}
}

func TestBetter(t *testing.T) {
	base := time.Now()
	a := ScoreEntry{Score: 10, Moves: 5, CreatedAt: base}

	if !Better(ScoreEntry{Score: 11, Moves: 99}, a) {
		t.Error("higher score should rank first")
	}
	if !Better(ScoreEntry{Score: 10, Moves: 4}, a) {
		t.Error("fewer moves should break a score tie")
	}
	if !Better(a, ScoreEntry{Score: 10, Moves: 5, CreatedAt: base.Add(time.Second)}) {
		t.Error("earlier run should break a full tie")
	}
}
