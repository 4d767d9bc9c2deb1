package t2048

import (
	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/grid"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/rng"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// levelClearTicks is how long the "target reached" banner stays up (2s at 60fps).
const levelClearTicks = 120

// Game adapts the 2048 engine to the platform tick loop.
type Game struct {
	mode   Mode
	cfg    config.T2048Config
	engine Engine
	src    rng.Source
	tick   uint64

	board      grid.State
	score      int
	moves      int
	levelIndex int // Current level (0-indexed)

	screenW int
	screenH int

	gameOver     bool
	levelCleared bool
	clearTicks   int
	reachedWin   bool // Endless: WinTile reached at least once
	showWin      bool // Endless: banner visible until the next move
	completed    bool // Campaign: every level cleared
	paused       bool
	tooSmall     bool
}

// Package-level settings picked in menus or on the command line.
var (
	selectedStartLevel int
	configPath         string
	difficulty         config.DifficultyPreset
)

// SetStartLevel sets the campaign starting level (1-based). 0 means level 1.
// The choice is consumed by the next campaign Reset.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetConfigPath sets a custom YAML config path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty applies a difficulty preset to subsequent endless games.
func SetDifficulty(preset config.DifficultyPreset) {
	difficulty = preset
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset loads config and starts a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.src = rng.NewSeeded(cfg.Seed)
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.clearTicks = 0
	g.reachedWin = false
	g.showWin = false
	g.completed = false
	g.paused = false

	g.levelIndex = 0
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0
	}
	g.loadLevel()

	board, err := g.engine.NewGameFrom(g.cfg.Board.Size, g.src, g.cfg.Rules.StartTiles)
	if err != nil {
		board, _ = g.engine.NewGameFrom(BoardSize, g.src, StartTiles)
	}
	g.board = board

	g.checkScreenSize()
}

// loadConfig reads the YAML config, falling back to defaults if it is broken.
func loadConfig() config.T2048Config {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if difficulty != "" {
		config.ApplyT2048Preset(&cfg, difficulty)
	}
	return cfg
}

// loadLevel sets the engine rules for the current level.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.engine = Engine{WinTile: g.cfg.Rules.WinTile, Spawn4Prob: g.cfg.Rules.Spawn4Prob}
		return
	}

	level, ok := LevelAt(g.levelIndex)
	if !ok {
		level = Levels[len(Levels)-1]
	}
	g.engine = level.Engine()
}

func (g *Game) checkScreenSize() {
	boardW, boardH := boardDims(g.board.Size())
	g.tooSmall = g.screenW < boardW+4 || g.screenH < boardH+hudHeight+2
}

// Resize follows a terminal resize, keeping the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.clearTicks++
		if g.clearTicks >= levelClearTicks || in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps the first pressed arrow action to a direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	default:
		return 0, false
	}
}

// processMove applies one slide and, if anything moved, spawns a tile.
func (g *Game) processMove(dir Direction) {
	res := g.engine.Slide(g.board, dir)
	if !res.Changed {
		return
	}

	g.board = res.State
	g.score += res.ScoreDelta
	g.moves++
	g.showWin = false

	if g.mode == ModeCampaign && res.Terminal.Won {
		g.levelCleared = true
		g.clearTicks = 0
		return
	}

	g.board = g.engine.SpawnTile(g.board, DrawSpawn(g.src))

	t := g.engine.Terminal(g.board)
	if g.mode == ModeEndless && t.Won && !g.reachedWin {
		g.reachedWin = true
		g.showWin = true
	}
	if t.Lost {
		g.gameOver = true
	}
}

// advanceLevel moves to the next campaign level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.clearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.completed = true
		g.gameOver = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	g.board = g.engine.SpawnTile(g.board, DrawSpawn(g.src))
	if IsGameOver(g.board) {
		g.gameOver = true
	}
}

// Board returns the current grid.
func (g *Game) Board() grid.State {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		Won:      g.reachedWin || g.completed,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
