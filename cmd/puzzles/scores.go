package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
	redisstore "github.com/vovakirdan/tui-puzzles/internal/storage/redis"
)

var (
	flagLimit int
	flagAll   bool
	flagStats bool
	flagClear bool
	flagRunID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best runs for a puzzle",
	Long: `Display the best runs for the specified puzzle.

2048 ranks by score; the sliding puzzle ranks by fewest moves.

Examples:
  puzzles scores 2048
  puzzles scores slide_4x4 --limit 20
  puzzles scores 2048 --stats
  puzzles scores 2048 --run 6f1c...      # Show one run and its rank
  puzzles scores 2048 --backend redis`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded run (sqlite only)")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate stats (sqlite only)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs for the puzzle (sqlite only)")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by ID")
}

func runScores(_ *cobra.Command, args []string) {
	if !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available puzzles.")
		os.Exit(1)
	}
	gameID := registry.Resolve(args[0])

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scores, err := openScores(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	defer scores.Close()

	if err := showScores(ctx, scores, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		scores.Close()
		os.Exit(1)
	}
}

func showScores(ctx context.Context, scores storage.Scores, gameID, title string) error {
	store, isSQL := scores.(*storage.Store)
	if (flagAll || flagStats || flagClear) && !isSQL {
		return fmt.Errorf("--all, --stats and --clear need the sqlite backend")
	}

	switch {
	case flagClear:
		if err := store.ClearScores(ctx, gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return nil
	case flagRunID != "":
		return showRun(ctx, scores, gameID)
	case flagStats:
		return showStats(ctx, store, gameID, title)
	}

	var (
		entries []storage.ScoreEntry
		err     error
	)
	if flagAll {
		entries, err = store.AllScores(ctx, gameID)
	} else {
		entries, err = scores.TopScores(ctx, gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'puzzles play %s' to set the first one!\n", gameID)
		return nil
	}

	byMoves := strings.HasPrefix(gameID, "slide_")

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-4s  %s\n", "Rank", "Player", "Score", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-4s  %s\n", "----", "------", "-----", "-----", "---", "----")
	for i, e := range entries {
		score := fmt.Sprintf("%d", e.Score)
		if byMoves {
			score = "-"
		}
		won := ""
		if e.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-12s  %-8s  %-6d  %-4s  %s\n",
			i+1, e.Player, score, e.Moves, won, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	best, ok, err := scores.HighScore(ctx, gameID)
	if err == nil && ok {
		fmt.Println()
		if byMoves {
			fmt.Printf("Best: %d moves (%s)\n", best.Moves, best.Player)
		} else {
			fmt.Printf("Best: %d (%s)\n", best.Score, best.Player)
		}
	}
	return nil
}

func showRun(ctx context.Context, scores storage.Scores, gameID string) error {
	var (
		e    storage.ScoreEntry
		ok   bool
		err  error
		rank int64
	)
	switch s := scores.(type) {
	case *storage.Store:
		e, ok, err = s.RunByID(ctx, flagRunID)
	case *redisstore.Leaderboard:
		e, ok, err = s.Run(ctx, flagRunID)
		if err == nil && ok {
			rank, _, err = s.Rank(ctx, gameID, flagRunID)
		}
	default:
		return fmt.Errorf("backend cannot look up runs")
	}
	if err != nil {
		return err
	}
	if !ok || e.GameID != gameID {
		return fmt.Errorf("no run %q for %s", flagRunID, gameID)
	}

	fmt.Printf("Run %s\n", e.RunID)
	fmt.Printf("  Player: %s\n", e.Player)
	fmt.Printf("  Score:  %d\n", e.Score)
	fmt.Printf("  Moves:  %d\n", e.Moves)
	fmt.Printf("  Won:    %v\n", e.Won)
	fmt.Printf("  Date:   %s\n", e.CreatedAt.Local().Format(time.RFC1123))
	if rank > 0 {
		fmt.Printf("  Rank:   #%d\n", rank)
	}
	return nil
}

func showStats(ctx context.Context, store *storage.Store, gameID, title string) error {
	st, err := store.GetGameStats(ctx, gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Stats - %s\n", title)
	fmt.Println()
	fmt.Printf("  Runs:        %d\n", st.GamesCount)
	fmt.Printf("  Wins:        %d\n", st.WinsCount)
	fmt.Printf("  High score:  %d\n", st.HighScore)
	fmt.Printf("  Best moves:  %d\n", st.BestMoves)
	fmt.Printf("  Avg score:   %.1f\n", st.AvgScore)
	if !st.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate stats for every puzzle played (sqlite only)",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %-5s  %-5s  %-8s  %-6s  %s\n", "Puzzle", "Runs", "Wins", "Best", "Moves", "Last played")
	fmt.Printf("  %-14s  %-5s  %-5s  %-8s  %-6s  %s\n", "------", "----", "----", "----", "-----", "-----------")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s  %-5d  %-5d  %-8d  %-6d  %s\n",
			g.ID, st.GamesCount, st.WinsCount, st.HighScore, st.BestMoves,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
