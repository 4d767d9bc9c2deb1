// puzzles plays classic grid puzzles in the terminal: the sliding-tile
// N-puzzle and 2048.
//
// Usage:
//
//	puzzles list              - List available puzzles
//	puzzles play <game>       - Play a puzzle
//	puzzles menu              - Start menu to pick puzzles interactively
//	puzzles serve             - Start SSH server for remote play
//	puzzles scores <game>     - Show best runs for a puzzle
//	puzzles shuffle           - Print a deterministic sliding-puzzle shuffle
//	puzzles config <game>     - Print the built-in YAML config
//	puzzles stats             - Aggregate stats per puzzle
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible shuffles and spawns
//	--db <path>          - Set database path (default: ~/.puzzles/scores.db)
//	--backend <name>     - Score backend: sqlite or redis
//	--redis-url <url>    - Redis URL for the redis backend
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import puzzles to register them
	_ "github.com/vovakirdan/tui-puzzles/internal/games/slide"
	_ "github.com/vovakirdan/tui-puzzles/internal/games/t2048"

	"github.com/vovakirdan/tui-puzzles/internal/storage"
	redisstore "github.com/vovakirdan/tui-puzzles/internal/storage/redis"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagBackend  string
	flagRedisURL string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "TUI Puzzles - sliding tiles and 2048 in your terminal",
	Long: `TUI Puzzles plays classic grid puzzles directly in your terminal.

Available commands:
  list     - Show all available puzzles
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs
  shuffle  - Print a sliding-puzzle shuffle for a seed
  config   - Print the built-in config for a puzzle

Examples:
  puzzles list
  puzzles play slide --size 3
  puzzles play 2048
  puzzles menu
  puzzles serve --ssh :2222
  puzzles scores slide_4x4`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puzzles/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "sqlite", "Score backend: sqlite or redis")
	rootCmd.PersistentFlags().StringVar(&flagRedisURL, "redis-url", "", "Redis URL (default redis://localhost:6379/0)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger builds the root logger at the --log-level threshold.
func newLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzles",
		Level:           level,
	})
}

// tuiLogger logs to ~/.puzzles/puzzles.log so nothing is written over the
// running program. The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".puzzles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "puzzles.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { _ = f.Close() }
}

// openScores opens the backend picked by --backend.
func openScores(ctx context.Context) (storage.Scores, error) {
	switch flagBackend {
	case "", "sqlite":
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "redis":
		cfg := redisstore.DefaultConfig()
		if flagRedisURL != "" {
			cfg.URL = flagRedisURL
		}
		board, err := redisstore.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return board, nil
	default:
		return nil, fmt.Errorf("unknown score backend %q (want sqlite or redis)", flagBackend)
	}
}

// localPlayer names the person at this terminal for score entries.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
