package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/grid"
	"github.com/vovakirdan/tui-puzzles/internal/rng"
)

// Direction represents a move direction.
type Direction = grid.Direction

const (
	DirUp    = grid.DirUp
	DirDown  = grid.DirDown
	DirLeft  = grid.DirLeft
	DirRight = grid.DirRight
)

// Classic rules.
const (
	BoardSize         = 4
	DefaultWinTile    = 2048
	DefaultSpawn4Prob = 0.10
	StartTiles        = 2
)

// Status is the engine-level state of a board.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// Engine holds the rule parameters that vary between modes and levels.
// It carries no board state; every method is a pure function of its inputs.
type Engine struct {
	WinTile    int     // Max tile at or above this is a win
	Spawn4Prob float64 // Probability a spawned tile is 4 (0.0-1.0)
}

// Classic returns the engine with the standard 2048 rules.
func Classic() Engine {
	return Engine{WinTile: DefaultWinTile, Spawn4Prob: DefaultSpawn4Prob}
}

// Slide performs a move with the classic rules.
func Slide(state grid.State, dir Direction) grid.MoveResult {
	return Classic().Slide(state, dir)
}

// SpawnTile places one tile with the classic spawn probability.
func SpawnTile(state grid.State, d rng.Draw) grid.State {
	return Classic().SpawnTile(state, d)
}

// NewGame returns a fresh classic board seeded with two tiles.
func NewGame(size int, seed int64) (grid.State, error) {
	return Classic().NewGame(size, seed, StartTiles)
}

// DrawSpawn takes the pre-drawn values for one spawn from src.
func DrawSpawn(src rng.Source) rng.Draw {
	return rng.NextDraw(src)
}

// Slide shifts and merges every line of the board toward dir.
// A merge-mode state is required; anything else is returned unchanged.
func (e Engine) Slide(state grid.State, dir Direction) grid.MoveResult {
	cells, score, changed := slideCells(state, dir)
	if !changed {
		return grid.MoveResult{State: state, Terminal: e.Terminal(state)}
	}

	next, err := state.Replace(cells)
	if err != nil {
		return grid.MoveResult{State: state, Terminal: e.Terminal(state)}
	}

	return grid.MoveResult{
		State:      next,
		Changed:    true,
		ScoreDelta: score,
		Terminal:   e.Terminal(next),
	}
}

// slideCells computes the post-move cells without building a State.
func slideCells(state grid.State, dir Direction) ([]int, int, bool) {
	n := state.Size()
	if n == 0 || state.Mode() != grid.ModeMerge {
		return nil, 0, false
	}

	cells := state.Cells()
	out := make([]int, len(cells))
	line := make([]int, n)
	totalScore := 0

	for k := range n {
		idx, ok := lineIndices(n, k, dir)
		if !ok {
			return nil, 0, false
		}
		for i, ci := range idx {
			line[i] = cells[ci]
		}
		merged, score := slideLine(line)
		totalScore += score
		for i, ci := range idx {
			out[ci] = merged[i]
		}
	}

	changed := false
	for i := range cells {
		if cells[i] != out[i] {
			changed = true
			break
		}
	}
	return out, totalScore, changed
}

// lineIndices returns the flat indices of line k in the order tiles travel:
// the first index is the edge tiles move toward.
func lineIndices(n, k int, dir Direction) ([]int, bool) {
	idx := make([]int, n)
	for i := range n {
		switch dir {
		case DirLeft:
			idx[i] = k*n + i
		case DirRight:
			idx[i] = k*n + (n - 1 - i)
		case DirUp:
			idx[i] = i*n + k
		case DirDown:
			idx[i] = (n-1-i)*n + k
		default:
			return nil, false
		}
	}
	return idx, true
}

// slideLine compacts a line toward index 0 and merges equal neighbours.
// A tile produced by a merge does not merge again in the same move.
func slideLine(line []int) ([]int, int) {
	result := make([]int, len(line))
	writePos := 0
	score := 0
	justMerged := false

	for _, v := range line {
		if v == grid.Empty {
			continue
		}

		if writePos > 0 && !justMerged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			justMerged = true
			continue
		}

		result[writePos] = v
		writePos++
		justMerged = false
	}

	return result, score
}

// SpawnTile places a 2 or 4 into an empty cell chosen by d.Cell.
// d.Value below Spawn4Prob yields a 4. A full board is returned unchanged.
func (e Engine) SpawnTile(state grid.State, d rng.Draw) grid.State {
	empty := state.EmptyCells()
	if len(empty) == 0 {
		return state
	}

	cell := empty[rng.Pick(d.Cell, len(empty))]
	value := 2
	if d.Value < e.Spawn4Prob {
		value = 4
	}

	next, err := state.WithCell(cell.Row, cell.Col, value)
	if err != nil {
		return state
	}
	return next
}

// NewGame returns an empty board of the given size with tiles spawned from
// a source seeded with seed.
func (e Engine) NewGame(size int, seed int64, tiles int) (grid.State, error) {
	return e.NewGameFrom(size, rng.NewSeeded(seed), tiles)
}

// NewGameFrom is NewGame with an explicit random source.
func (e Engine) NewGameFrom(size int, src rng.Source, tiles int) (grid.State, error) {
	state, err := grid.NewEmpty(size)
	if err != nil {
		return grid.State{}, fmt.Errorf("t2048: new game: %w", err)
	}
	for range tiles {
		state = e.SpawnTile(state, DrawSpawn(src))
	}
	return state, nil
}

// CanMove reports whether any direction would change the board.
func CanMove(state grid.State) bool {
	if !state.IsFull() {
		return state.Size() > 0
	}
	for _, dir := range grid.Directions {
		if _, _, changed := slideCells(state, dir); changed {
			return true
		}
	}
	return false
}

// IsGameOver returns true if the board is full and no direction changes it.
func IsGameOver(state grid.State) bool {
	return state.Size() > 0 && state.IsFull() && !CanMove(state)
}

// Terminal reports the win and loss conditions for state.
func (e Engine) Terminal(state grid.State) grid.Terminal {
	return grid.Terminal{
		Won:  e.WinTile > 0 && state.MaxTile() >= e.WinTile,
		Lost: IsGameOver(state),
	}
}

// Status collapses Terminal into one state. A stuck board is lost even if
// it also holds the winning tile.
func (e Engine) Status(state grid.State) Status {
	t := e.Terminal(state)
	switch {
	case t.Lost:
		return StatusLost
	case t.Won:
		return StatusWon
	default:
		return StatusInProgress
	}
}
