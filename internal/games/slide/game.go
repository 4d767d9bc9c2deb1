package slide

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/grid"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// Sizes lists the board sizes registered as separate games.
var Sizes = []int{3, 4, 5}

// rejectTicks is how long the "can't move" hint stays up (0.5s at 60fps).
const rejectTicks = 30

// Game adapts the sliding puzzle engine to the platform tick loop.
type Game struct {
	size int
	cfg  config.SlideConfig
	tick uint64

	board  grid.State
	moves  int
	solved bool

	cursorMode bool // Arrows move the cursor; Enter moves the tile under it
	cursor     int  // Flat index of the selected cell
	rejected   int  // Ticks left on the "can't move" hint

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level settings picked on the command line.
var (
	configPath string
	difficulty config.DifficultyPreset
)

// SetConfigPath sets a custom YAML config path for subsequent games and
// points the "slide" alias at the configured default size.
func SetConfigPath(path string) {
	configPath = path
	registry.Alias("slide", IDFor(loadConfig().Board.Size))
}

// SetDifficulty applies a difficulty preset to subsequent shuffles.
func SetDifficulty(preset config.DifficultyPreset) {
	difficulty = preset
}

// IDFor returns the registry ID for an n×n puzzle.
func IDFor(n int) string {
	return fmt.Sprintf("slide_%dx%d", n, n)
}

// New creates a sliding puzzle with an n×n board.
func New(n int) *Game {
	return &Game{size: n}
}

func init() {
	for _, n := range Sizes {
		registry.Register(IDFor(n), func() registry.Game {
			return New(n)
		})
	}
	registry.Alias("slide", IDFor(config.DefaultSlideConfig().Board.Size))
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDFor(g.size)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Sliding Puzzle %dx%d", g.size, g.size)
}

// Reset loads config and deals a fresh shuffle for the runtime seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.tick = 0
	g.moves = 0
	g.solved = false
	g.cursorMode = false
	g.rejected = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// Boards too small to shuffle start from the goal; the size always matches ID.
	board, err := ShuffleWithDepth(g.size, cfg.Seed, g.cfg.Shuffle.DepthFactor)
	if err != nil {
		board, _ = Solved(g.size)
	}
	g.board = board
	g.cursor = max(blankIndex(board), 0)

	g.checkScreenSize()
}

func loadConfig() config.SlideConfig {
	cfg, err := config.LoadSlide(configPath)
	if err != nil {
		cfg = config.DefaultSlideConfig()
	}
	if difficulty != "" {
		config.ApplySlidePreset(&cfg, difficulty)
	}
	return cfg
}

func (g *Game) checkScreenSize() {
	boardW, boardH := boardDims(g.size)
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
	if g.rejected > 0 {
		g.rejected--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.solved || g.board.Len() == 0 {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionSelect) {
		g.cursorMode = !g.cursorMode
	}

	dir, pressed := directionFor(in)
	switch {
	case g.cursorMode && pressed:
		g.moveCursor(dir)
	case g.cursorMode && in.Has(core.ActionConfirm):
		g.tryMove(g.cursor)
	case pressed:
		if tile := MoveTowards(g.board, dir); tile >= 0 {
			g.tryMove(tile)
		} else {
			g.rejected = rejectTicks
		}
	}

	return core.StepResult{State: g.State()}
}

func directionFor(in core.InputFrame) (grid.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return grid.DirUp, true
	case in.Has(core.ActionDown):
		return grid.DirDown, true
	case in.Has(core.ActionLeft):
		return grid.DirLeft, true
	case in.Has(core.ActionRight):
		return grid.DirRight, true
	default:
		return 0, false
	}
}

func (g *Game) moveCursor(dir grid.Direction) {
	pos := g.board.PositionOf(g.cursor)
	switch dir {
	case grid.DirUp:
		pos.Row--
	case grid.DirDown:
		pos.Row++
	case grid.DirLeft:
		pos.Col--
	case grid.DirRight:
		pos.Col++
	}
	pos.Row = core.Clamp(pos.Row, 0, g.size-1)
	pos.Col = core.Clamp(pos.Col, 0, g.size-1)
	g.cursor = g.board.Index(pos)
}

// tryMove hands one tile to the engine. Rejected picks only flash a hint.
func (g *Game) tryMove(tile int) {
	res, err := AttemptMove(g.board, tile)
	if err != nil || !res.Changed {
		g.rejected = rejectTicks
		return
	}

	g.board = res.State
	g.moves++
	g.rejected = 0
	g.solved = res.Terminal.Won
}

// Board returns the current grid.
func (g *Game) Board() grid.State {
	return g.board
}

// State returns the current game state. The sliding puzzle scores by moves.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.moves,
		Won:      g.solved,
		GameOver: g.solved,
		Paused:   g.paused || g.tooSmall,
	}
}
