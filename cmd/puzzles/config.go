package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <slide|2048>",
	Short: "Print the built-in config for a puzzle",
	Long: `Print the embedded default YAML for a puzzle family.

Save it under ~/.puzzles/configs/ (slide.yaml or t2048.yaml), or pass it
with --config, and edit it to change board sizes, shuffle depth or 2048
rules.

Examples:
  puzzles config slide > ~/.puzzles/configs/slide.yaml
  puzzles config 2048 > ~/.puzzles/configs/t2048.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"slide", "2048"},
	Run:       runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no config for %q (want slide or 2048)\n", args[0])
		os.Exit(1)
	}
	_, _ = os.Stdout.Write(data)
}
