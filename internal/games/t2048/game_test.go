package t2048

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/grid"
	"github.com/vovakirdan/tui-puzzles/internal/rng"
)

func board(t *testing.T, size int, cells ...int) grid.State {
	t.Helper()
	s, err := grid.New(grid.ModeMerge, size, cells)
	if err != nil {
		t.Fatalf("grid.New(%v) failed: %v", cells, err)
	}
	return s
}

// rowBoard puts row on top of an otherwise empty 4x4 board.
func rowBoard(t *testing.T, row ...int) grid.State {
	t.Helper()
	cells := make([]int, 16)
	copy(cells, row)
	return board(t, 4, cells...)
}

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8},
		{"merged tile does not merge again", []int{2, 2, 4, 0}, []int{4, 4, 0, 0}, 4},
		{"two different pairs", []int{4, 4, 8, 8}, []int{8, 16, 0, 0}, 24},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, 0},
		{"five wide", []int{2, 2, 2, 2, 2}, []int{4, 4, 2, 0, 0}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideLine(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideRightMergesRightmostPairFirst(t *testing.T) {
	res := Slide(rowBoard(t, 2, 2, 2, 0), DirRight)

	want := rowBoard(t, 0, 0, 2, 4)
	if !res.State.Equal(want) {
		t.Errorf("Slide right = %s, want %s", res.State, want)
	}
	if res.ScoreDelta != 4 {
		t.Errorf("ScoreDelta = %d, want 4", res.ScoreDelta)
	}
	if !res.Changed {
		t.Error("Changed = false, want true")
	}
}

func TestSlideDirections(t *testing.T) {
	start := board(t, 4,
		2, 0, 0, 2,
		0, 4, 0, 0,
		2, 0, 8, 0,
		0, 4, 8, 16,
	)

	tests := []struct {
		dir   Direction
		want  []int
		score int
	}{
		{DirLeft, []int{
			4, 0, 0, 0,
			4, 0, 0, 0,
			2, 8, 0, 0,
			4, 8, 16, 0,
		}, 4},
		{DirRight, []int{
			0, 0, 0, 4,
			0, 0, 0, 4,
			0, 0, 2, 8,
			0, 4, 8, 16,
		}, 4},
		{DirUp, []int{
			4, 8, 16, 2,
			0, 0, 0, 16,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}, 28},
		{DirDown, []int{
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 2,
			4, 8, 16, 16,
		}, 28},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			res := Slide(start, tt.dir)
			want := board(t, 4, tt.want...)
			if !res.State.Equal(want) {
				t.Errorf("Slide(%s) = %s, want %s", tt.dir, res.State, want)
			}
			if res.ScoreDelta != tt.score {
				t.Errorf("Slide(%s) score = %d, want %d", tt.dir, res.ScoreDelta, tt.score)
			}
		})
	}
}

func TestSlideNoOpIsIdempotent(t *testing.T) {
	start := rowBoard(t, 2, 4, 8, 16)

	first := Slide(start, DirRight)
	second := Slide(first.State, DirRight)

	if first.Changed || second.Changed {
		t.Error("fully compacted row should not change when sliding right")
	}
	if !first.State.Equal(start) || !second.State.Equal(first.State) {
		t.Errorf("no-op slide changed the board: %s -> %s -> %s", start, first.State, second.State)
	}
	if first.ScoreDelta != second.ScoreDelta || first.Terminal != second.Terminal {
		t.Errorf("repeated no-op slides differ: %+v vs %+v", first, second)
	}
}

func TestSlideLeavesInputUntouched(t *testing.T) {
	start := rowBoard(t, 2, 2, 0, 0)
	before := start.String()

	Slide(start, DirLeft)

	if start.String() != before {
		t.Errorf("input mutated: %s, was %s", start, before)
	}
}

func TestSlideUnknownDirection(t *testing.T) {
	start := rowBoard(t, 2, 2, 0, 0)
	res := Slide(start, Direction(99))

	if res.Changed || !res.State.Equal(start) {
		t.Errorf("unknown direction should be a no-op, got %s", res.State)
	}
}

func TestSpawnTile(t *testing.T) {
	start := board(t, 2, 2, 0, 0, 4)

	tests := []struct {
		name string
		draw rng.Draw
		want []int
	}{
		{"second empty cell gets a 2", rng.Draw{Cell: 0.6, Value: 0.5}, []int{2, 0, 2, 4}},
		{"first empty cell gets a 4", rng.Draw{Cell: 0.0, Value: 0.05}, []int{2, 4, 0, 4}},
		{"draw near one stays in range", rng.Draw{Cell: 0.999, Value: 0.99}, []int{2, 0, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpawnTile(start, tt.draw)
			if !slices.Equal(got.Cells(), tt.want) {
				t.Errorf("SpawnTile(%+v) = %v, want %v", tt.draw, got.Cells(), tt.want)
			}
		})
	}
}

func TestSpawnTileFullBoard(t *testing.T) {
	full := board(t, 2, 2, 4, 8, 16)
	got := SpawnTile(full, rng.Draw{Cell: 0.5, Value: 0.5})
	if !got.Equal(full) {
		t.Errorf("SpawnTile on full board = %s, want unchanged", got)
	}
}

func TestNewGame(t *testing.T) {
	a, err := NewGame(4, 7)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	b, _ := NewGame(4, 7)

	if !a.Equal(b) {
		t.Errorf("NewGame not deterministic: %s vs %s", a, b)
	}
	if n := 16 - len(a.EmptyCells()); n != StartTiles {
		t.Errorf("NewGame placed %d tiles, want %d", n, StartTiles)
	}
	for _, v := range a.Cells() {
		if v != 0 && v != 2 && v != 4 {
			t.Errorf("seed tile %d, want 2 or 4", v)
		}
	}

	if _, err := NewGame(0, 1); !errors.Is(err, grid.ErrInvalidDimension) {
		t.Errorf("NewGame(0) error = %v, want ErrInvalidDimension", err)
	}
}

func TestTerminal(t *testing.T) {
	stuck := board(t, 4,
		2, 4, 2, 4,
		4, 2, 4, 2,
		2, 4, 2, 4,
		4, 2, 4, 2,
	)
	fullMergeable := board(t, 4,
		2, 2, 4, 8,
		4, 8, 16, 32,
		8, 16, 32, 64,
		16, 32, 64, 128,
	)
	won := rowBoard(t, 2048, 2)
	stuckWon := board(t, 2,
		2048, 4,
		4, 2,
	)

	tests := []struct {
		name   string
		state  grid.State
		want   grid.Terminal
		status Status
	}{
		{"in progress", rowBoard(t, 2, 4), grid.Terminal{}, StatusInProgress},
		{"stuck", stuck, grid.Terminal{Lost: true}, StatusLost},
		{"full but mergeable", fullMergeable, grid.Terminal{}, StatusInProgress},
		{"reached 2048", won, grid.Terminal{Won: true}, StatusWon},
		{"stuck with 2048", stuckWon, grid.Terminal{Won: true, Lost: true}, StatusLost},
	}

	e := Classic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Terminal(tt.state); got != tt.want {
				t.Errorf("Terminal() = %+v, want %+v", got, tt.want)
			}
			if got := e.Status(tt.state); got != tt.status {
				t.Errorf("Status() = %s, want %s", got, tt.status)
			}
		})
	}

	if res := Slide(stuck, DirLeft); res.Changed || !res.Terminal.Lost {
		t.Errorf("slide on stuck board = %+v, want unchanged and lost", res)
	}
}

func TestSlideAndSpawnDeterministic(t *testing.T) {
	script := func() *rng.Script {
		return rng.NewScript().QueueFloat64(0.1, 0.5, 0.9, 0.05, 0.3, 0.95, 0.7, 0.2)
	}
	start := rowBoard(t, 2, 2, 4, 0)
	dirs := []Direction{DirLeft, DirDown, DirRight, DirUp}

	run := func() grid.State {
		src := script()
		s := start
		for _, dir := range dirs {
			res := Slide(s, dir)
			if res.Changed {
				s = SpawnTile(res.State, DrawSpawn(src))
			}
		}
		return s
	}

	a, b := run(), run()
	if !a.Equal(b) {
		t.Errorf("runs differ: %s vs %s", a, b)
	}
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func TestGameDeterministic(t *testing.T) {
	g1 := newTestGame(t, NewEndless())
	g2 := newTestGame(t, NewEndless())

	inputs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for range 10 {
		for _, a := range inputs {
			g1.Step(core.Frame(a))
			g2.Step(core.Frame(a))
		}
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := newTestGame(t, NewEndless())
	g.board = rowBoard(t, 2, 4, 8, 16)

	g.Step(core.Frame(core.ActionLeft))

	if !g.board.Equal(rowBoard(t, 2, 4, 8, 16)) {
		t.Errorf("board changed on a no-op move: %s", g.board)
	}
	if g.moves != 0 {
		t.Errorf("moves = %d, want 0", g.moves)
	}
}

func TestCampaignProgression(t *testing.T) {
	g := newTestGame(t, New())
	g.board = rowBoard(t, 64, 64)

	g.Step(core.Frame(core.ActionLeft))

	if !g.levelCleared {
		t.Fatal("reaching 128 on level 1 should clear the level")
	}
	if g.score != 128 {
		t.Errorf("score = %d, want 128", g.score)
	}
	if !g.State().Paused {
		t.Error("level clear banner should pause the game")
	}

	g.Step(core.Frame(core.ActionConfirm))

	snap := g.Snapshot()
	if snap.Level != 2 || snap.Target != 256 {
		t.Errorf("after advance Level = %d Target = %d, want 2 and 256", snap.Level, snap.Target)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s, want playing", snap.State)
	}
}

func TestStartLevelIsConsumed(t *testing.T) {
	SetStartLevel(3)
	g := newTestGame(t, New())

	if g.levelIndex != 2 {
		t.Errorf("levelIndex = %d, want 2", g.levelIndex)
	}
	if GetStartLevel() != 0 {
		t.Error("start level should reset after use")
	}
}

func TestEndlessWinContinues(t *testing.T) {
	g := newTestGame(t, NewEndless())
	g.board = rowBoard(t, 1024, 1024)

	g.Step(core.Frame(core.ActionLeft))

	st := g.State()
	if !st.Won || st.GameOver {
		t.Fatalf("State = %+v, want won and still playing", st)
	}
	if !g.showWin {
		t.Error("win banner should be shown")
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot State = %s, want won", g.Snapshot().State)
	}

	g.Step(core.Frame(core.ActionRight))

	if g.showWin {
		t.Error("win banner should clear on the next move")
	}
	if g.moves != 2 {
		t.Errorf("moves = %d, want 2", g.moves)
	}
}

func TestGameOverOnStuckBoard(t *testing.T) {
	g := newTestGame(t, NewEndless())
	g.board = board(t, 2,
		8, 2,
		0, 4,
	)
	g.engine.Spawn4Prob = 1

	// Down drops the 8; the spawned 4 fills the top-left and nothing can merge.
	g.Step(core.Frame(core.ActionDown))

	want := board(t, 2, 4, 2, 8, 4)
	if !g.board.Equal(want) {
		t.Fatalf("board = %s, want %s", g.board, want)
	}
	if !g.State().GameOver {
		t.Error("GameOver = false on a stuck board")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", g.Snapshot().State)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, New())
	snap := g.Snapshot()

	if snap.Mode != "campaign" {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}
	if snap.Level != 1 || snap.Target != 128 {
		t.Errorf("Snapshot Level = %d Target = %d, want 1 and 128", snap.Level, snap.Target)
	}
	if snap.Size != 4 || snap.Moves != 0 {
		t.Errorf("Snapshot Size = %d Moves = %d, want 4 and 0", snap.Size, snap.Moves)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
}

func TestRenderShowsTiles(t *testing.T) {
	g := newTestGame(t, NewEndless())
	g.board = rowBoard(t, 2048)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := false
	for y := range screen.Height() {
		if strings.Contains(screen.Row(y), "2048") && y > hudHeight {
			found = true
		}
	}
	if !found {
		t.Errorf("rendered board does not show the 2048 tile:\n%s", screen)
	}
}

func TestLevels(t *testing.T) {
	if LevelCount() != 10 {
		t.Errorf("LevelCount() = %d, want 10", LevelCount())
	}
	if _, ok := LevelAt(-1); ok {
		t.Error("LevelAt(-1) should be out of range")
	}
	if _, ok := LevelAt(LevelCount()); ok {
		t.Error("LevelAt(LevelCount()) should be out of range")
	}
	if e := Levels[4].Engine(); e != Classic() {
		t.Errorf("level 5 engine = %+v, want classic rules", e)
	}
	targets := LevelTargets()
	for i := 1; i < len(targets); i++ {
		if targets[i] < targets[i-1] {
			t.Errorf("level targets not increasing at %d: %v", i, targets)
		}
	}
}
