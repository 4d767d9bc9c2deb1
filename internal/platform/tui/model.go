package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

// saveTimeout bounds a score write so a slow backend never stalls the loop.
const saveTimeout = 2 * time.Second

// GameModel is the Bubble Tea model for one running puzzle.
//
// Standalone it quits on Back after the puzzle ends. Inside a session it
// hands control back to the menu instead.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	scores     storage.Scores
	player     string
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	embedded   bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
	lastRun    *storage.ScoreEntry
}

// Options carries the collaborators shared by every model.
type Options struct {
	Scores storage.Scores // nil disables score recording
	Player string
	Logger *log.Logger // nil discards
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// NewGameModel creates a model for game. A zero seed is replaced by the clock.
func NewGameModel(game registry.Game, opts Options, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     opts.Scores,
		player:     opts.Player,
		logger:     opts.logger(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the puzzle and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves once the puzzle is over or paused; otherwise esc is a pause.
	if m.inputFrame.Has(core.ActionBack) {
		if m.gameState.GameOver || m.gameState.Paused {
			if m.embedded {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.lastRun = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordResult()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult saves the finished run once. Saves are best-effort.
func (m *GameModel) recordResult() {
	if m.scoreSaved || !storage.ShouldRecord(m.gameState) {
		return
	}
	m.scoreSaved = true
	if m.scores == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	entry := storage.EntryFromState(m.game.ID(), m.player, m.gameState)
	saved, err := m.scores.SaveScore(ctx, entry)
	if err != nil {
		m.logger.Warn("could not save score", "game", entry.GameID, "error", err)
		return
	}
	m.lastRun = &saved
	m.logger.Info("run recorded",
		"game", saved.GameID,
		"player", saved.Player,
		"score", saved.Score,
		"moves", saved.Moves,
		"run", saved.RunID,
	)
}

// saveScreenshot saves the current screen to ~/.puzzles/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".puzzles", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastRun returns the entry recorded for the finished puzzle, if any.
func (m GameModel) LastRun() (storage.ScoreEntry, bool) {
	if m.lastRun == nil {
		return storage.ScoreEntry{}, false
	}
	return *m.lastRun, true
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one puzzle in the current terminal.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
