package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a puzzle picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a puzzle.
After a puzzle ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select puzzle
  Tab          - Best runs
  Q            - Quit

Examples:
  puzzles menu
  puzzles menu --fps 30
  puzzles menu --db ./scores.db
  puzzles menu --backend redis --redis-url redis://localhost:6379/1`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := tuiLogger()
	defer closeLog()

	var scores storage.Scores
	if s, err := openScores(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores: %v\n", err)
	} else {
		scores = s
		defer scores.Close()
	}

	opts := tui.Options{Scores: scores, Player: localPlayer(), Logger: logger}
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(scores, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameID := menuResult.GameID
		if picker, ok := tui.PickerFor(gameID); ok {
			opt, pickErr := tui.RunPicker(picker, cfg)
			if pickErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
				continue
			}
			if opt == nil {
				continue
			}
			gameID = opt.Apply()
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
			continue
		}

		// A fresh seed per puzzle unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, opts, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		}
	}
}
