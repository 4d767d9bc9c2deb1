package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/games/slide"
	"github.com/vovakirdan/tui-puzzles/internal/games/t2048"
	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagMode       string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle.

"slide" and "2048" open a picker for the board size or the game mode,
unless --size, --mode or --level already decide it.

Controls:
  Arrows/WASD  - Slide (2048) or move the tile next to the blank (slide)
  Tab          - Sliding puzzle: toggle the selection cursor
  Enter/Space  - Sliding puzzle: move the selected tile; 2048: next level
  P/Esc        - Pause
  R            - Restart with a new seed
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Short shuffle walk / few 4s
  normal - Default
  hard   - Long shuffle walk / many 4s

Examples:
  puzzles play slide --size 3
  puzzles play slide_5x5 --difficulty hard --seed 42
  puzzles play 2048 --mode endless
  puzzles play 2048 --level 4
  puzzles play 2048 --config ./my-2048.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Sliding puzzle board size (3, 4 or 5)")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "2048 mode: campaign or endless")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "2048 campaign start level (1-based)")
}

func isSlide(id string) bool {
	return id == "slide" || strings.HasPrefix(id, "slide_")
}

func is2048(id string) bool {
	return id == "2048" || id == "2048_endless"
}

// applySettings hands --config and --difficulty to the puzzle family of id.
func applySettings(id string) error {
	preset := config.ParseDifficulty(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	switch {
	case isSlide(id):
		if flagConfig != "" {
			if _, err := config.LoadSlide(flagConfig); err != nil {
				return err
			}
		}
		slide.SetConfigPath(flagConfig)
		slide.SetDifficulty(preset)
	case is2048(id):
		if flagConfig != "" {
			if _, err := config.LoadT2048(flagConfig); err != nil {
				return err
			}
		}
		t2048.SetConfigPath(flagConfig)
		t2048.SetDifficulty(preset)
	}
	return nil
}

// resolveGame turns the command-line name plus flags into a registered ID.
// The empty string means the user backed out of a picker.
func resolveGame(id string, cfg core.RuntimeConfig) (string, error) {
	switch {
	case flagSize > 0 && isSlide(id):
		return slide.IDFor(flagSize), nil

	case is2048(id) && (flagMode != "" || flagLevel > 0):
		switch flagMode {
		case "", "campaign":
		case "endless":
			return "2048_endless", nil
		default:
			return "", fmt.Errorf("unknown 2048 mode %q (want campaign or endless)", flagMode)
		}
		if flagLevel > 0 {
			t2048.SetStartLevel(flagLevel)
		}
		return "2048", nil

	case id == "slide" || id == "2048":
		picker, _ := tui.PickerFor(id)
		opt, err := tui.RunPicker(picker, cfg)
		if err != nil || opt == nil {
			return "", err
		}
		return opt.Apply(), nil
	}

	return id, nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	name := args[0]

	if !registry.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available puzzles.")
		os.Exit(1)
	}

	if err := applySettings(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()

	gameID, err := resolveGame(name, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if gameID == "" {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	// Continue without storage if the backend is unavailable; the puzzle
	// still works.
	var scores storage.Scores
	if s, openErr := openScores(context.Background()); openErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores: %v\n", openErr)
	} else {
		scores = s
		defer scores.Close()
	}

	opts := tui.Options{Scores: scores, Player: localPlayer(), Logger: logger}
	if err := tui.Run(game, opts, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		os.Exit(1)
	}
}
