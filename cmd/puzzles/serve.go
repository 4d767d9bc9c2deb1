package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the puzzles SSH server",
	Long: `Start an SSH server that allows users to connect and play puzzles.

Each SSH connection gets its own session with a puzzle picker menu and its
own seed. Runs are recorded under the SSH user name; all users share the
same leaderboard. Use --backend redis to share one board between servers.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.puzzles/host_key

Examples:
  puzzles serve                           # Listen on :23234 with auto-generated key
  puzzles serve --ssh :2222               # Listen on port 2222
  puzzles serve --host-key ./my_host_key  # Use specific host key
  puzzles serve --db ./scores.db          # Use specific database
  puzzles serve --backend redis           # Shared Redis leaderboard

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var scores storage.Scores
	if s, err := openScores(ctx); err != nil {
		logger.Warn("could not open scores, runs will not be recorded", "backend", flagBackend, "error", err)
	} else {
		scores = s
		logger.Info("score backend ready", "backend", flagBackend)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, scores, logger.WithPrefix("puzzles-ssh"))
	if err != nil {
		if scores != nil {
			_ = scores.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting puzzles SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
