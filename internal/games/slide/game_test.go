package slide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

func newTestGame(t *testing.T, n int, seed int64) *Game {
	t.Helper()
	g := New(n)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestRegistered(t *testing.T) {
	for _, n := range Sizes {
		assert.True(t, registry.Exists(IDFor(n)), "size %d", n)
	}
	assert.Equal(t, "slide_4x4", registry.Resolve("slide"))

	g, err := registry.Create("slide_3x3")
	require.NoError(t, err)
	assert.Equal(t, "Sliding Puzzle 3x3", g.Title())
}

func TestResetDeterministic(t *testing.T) {
	a := newTestGame(t, 4, 1234)
	b := newTestGame(t, 4, 1234)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.True(t, IsSolvable(a.Board()))
	assert.False(t, IsSolved(a.Board()))
	assert.Equal(t, StatePlaying, a.Snapshot().State)
}

func TestArrowSolvesBoard(t *testing.T) {
	g := newTestGame(t, 3, 1)
	g.board = board(t, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8)

	g.Step(core.Frame(core.ActionLeft))

	st := g.State()
	assert.Equal(t, 1, st.Moves)
	assert.True(t, st.Won)
	assert.True(t, st.GameOver)
	assert.Zero(t, st.Score)
	assert.Equal(t, StateSolved, g.Snapshot().State)

	// Further input is ignored once solved.
	g.Step(core.Frame(core.ActionRight))
	assert.Equal(t, 1, g.State().Moves)
}

func TestArrowWithoutTileIsRejected(t *testing.T) {
	g := newTestGame(t, 3, 1)
	g.board = board(t, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8)

	g.Step(core.Frame(core.ActionUp))

	assert.Zero(t, g.State().Moves)
	assert.Positive(t, g.rejected)
}

func TestCursorMode(t *testing.T) {
	g := newTestGame(t, 3, 1)
	g.board = board(t, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8)
	g.cursor = 0

	g.Step(core.Frame(core.ActionSelect))
	require.True(t, g.cursorMode)

	g.Step(core.Frame(core.ActionConfirm))
	assert.Zero(t, g.State().Moves, "tile 1 is not next to the blank")
	assert.Positive(t, g.rejected)

	g.Step(core.Frame(core.ActionRight))
	g.Step(core.Frame(core.ActionDown))
	assert.Equal(t, 4, g.cursor)

	g.Step(core.Frame(core.ActionConfirm))
	assert.Equal(t, 1, g.State().Moves)
	assert.Equal(t, []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, g.Board().Cells())

	// The cursor stays on the board.
	for range 5 {
		g.Step(core.Frame(core.ActionLeft))
	}
	assert.Equal(t, 3, g.cursor)
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, 3, 1)
	g.board = board(t, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8)

	g.Step(core.Frame(core.ActionPause))
	g.Step(core.Frame(core.ActionLeft))

	assert.True(t, g.State().Paused)
	assert.Zero(t, g.State().Moves)
}

func TestResetKeepsSizeWhenShuffleFails(t *testing.T) {
	for _, n := range []int{1, 0} {
		g := newTestGame(t, n, 7)

		assert.Equal(t, IDFor(n), g.ID(), "size %d", n)
		assert.Equal(t, n, g.Snapshot().Size)
		assert.Zero(t, g.State().Moves)

		g.Step(core.Frame(core.ActionUp))
		g.Step(core.Frame(core.ActionConfirm))
		assert.Zero(t, g.State().Moves, "size %d", n)
	}

	one := newTestGame(t, 1, 7)
	assert.Equal(t, "0", one.Board().String())
}

func TestTooSmall(t *testing.T) {
	g := New(5)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.True(t, g.State().Paused)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 3, 1)
	g.board = board(t, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Sliding Puzzle 3x3")
	assert.Contains(t, out, "Moves: 0")

	g.Step(core.Frame(core.ActionLeft))
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "SOLVED!"))
}
