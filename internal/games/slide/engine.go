// Package slide implements the sliding-tile N-puzzle: one blank cell, tiles
// 1..N²-1, and only tiles orthogonally next to the blank may move.
package slide

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/grid"
	"github.com/vovakirdan/tui-puzzles/internal/rng"
)

// MinDepthFactor is the smallest shuffle length, in moves per cell.
const MinDepthFactor = 10

// Status is the engine-level state of a board.
type Status int

const (
	StatusInProgress Status = iota
	StatusSolved
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	if s == StatusSolved {
		return "solved"
	}
	return "in_progress"
}

// Solved returns the goal board: 1..N²-1 in row-major order, blank last.
func Solved(size int) (grid.State, error) {
	if err := grid.CheckSize(size); err != nil {
		return grid.State{}, err
	}
	cells := make([]int, size*size)
	for i := range len(cells) - 1 {
		cells[i] = i + 1
	}
	return grid.New(grid.ModeSliding, size, cells)
}

// IsSolved reports whether every tile sits on its goal cell. Rotations and
// reflections of the goal do not count.
func IsSolved(state grid.State) bool {
	n := state.Len()
	if n == 0 {
		return false
	}
	for i := range n - 1 {
		if v, _ := state.Value(i); v != i+1 {
			return false
		}
	}
	last, _ := state.Value(n - 1)
	return last == grid.Empty
}

// StatusOf returns the status of state.
func StatusOf(state grid.State) Status {
	if IsSolved(state) {
		return StatusSolved
	}
	return StatusInProgress
}

func terminal(state grid.State) grid.Terminal {
	return grid.Terminal{Won: IsSolved(state)}
}

// AttemptMove slides the tile at tileIndex into the blank.
//
// A tile that is not next to the blank, or any move on a solved board, is
// rejected with Changed false and no error. An index outside the board or a
// board that is not a sliding grid is a caller bug and returns an error.
func AttemptMove(state grid.State, tileIndex int) (grid.MoveResult, error) {
	if state.Mode() != grid.ModeSliding || state.Len() == 0 {
		return grid.MoveResult{State: state}, fmt.Errorf("slide: %w: %s grid", grid.ErrInvalidCellValue, state.Mode())
	}
	if tileIndex < 0 || tileIndex >= state.Len() {
		return grid.MoveResult{State: state, Terminal: terminal(state)},
			fmt.Errorf("slide: %w: tile %d of %d", grid.ErrOutOfBounds, tileIndex, state.Len())
	}

	unchanged := grid.MoveResult{State: state, Terminal: terminal(state)}
	if unchanged.Terminal.Won {
		return unchanged, nil
	}

	blank := blankIndex(state)
	if !adjacent(state.Size(), tileIndex, blank) {
		return unchanged, nil
	}

	next, err := state.Swap(tileIndex, blank)
	if err != nil {
		return unchanged, fmt.Errorf("slide: %w", err)
	}
	return grid.MoveResult{State: next, Changed: true, Terminal: terminal(next)}, nil
}

func blankIndex(state grid.State) int {
	pos, ok := state.IndexOf(grid.Empty)
	if !ok {
		return -1
	}
	return state.Index(pos)
}

// adjacent reports whether tile is orthogonally next to blank on an n×n
// board, without wrapping across row ends.
func adjacent(n, tile, blank int) bool {
	if blank < 0 || tile < 0 || tile >= n*n {
		return false
	}
	switch tile {
	case blank - 1:
		return blank%n != 0
	case blank + 1:
		return tile%n != 0
	case blank - n, blank + n:
		return true
	default:
		return false
	}
}

// LegalMoves returns the indices of the tiles that may slide into the blank,
// in the order left, right, above, below.
func LegalMoves(state grid.State) []int {
	n := state.Size()
	blank := blankIndex(state)
	if blank < 0 {
		return nil
	}

	var moves []int
	for _, tile := range []int{blank - 1, blank + 1, blank - n, blank + n} {
		if adjacent(n, tile, blank) {
			moves = append(moves, tile)
		}
	}
	return moves
}

// MoveTowards returns the index of the tile that moves when the player
// pushes in dir: pushing up lifts the tile below the blank, and so on.
// Returns -1 when no tile sits on that side.
func MoveTowards(state grid.State, dir grid.Direction) int {
	n := state.Size()
	blank := blankIndex(state)
	if blank < 0 {
		return -1
	}
	row, col := blank/n, blank%n

	switch dir {
	case grid.DirUp:
		if row < n-1 {
			return blank + n
		}
	case grid.DirDown:
		if row > 0 {
			return blank - n
		}
	case grid.DirLeft:
		if col < n-1 {
			return blank + 1
		}
	case grid.DirRight:
		if col > 0 {
			return blank - 1
		}
	}
	return -1
}

// Shuffle walks size²×MinDepthFactor random legal moves away from the goal.
func Shuffle(size int, seed int64) (grid.State, error) {
	return ShuffleWithDepth(size, seed, MinDepthFactor)
}

// ShuffleWithDepth is Shuffle with a longer walk. Factors below
// MinDepthFactor are raised to it.
func ShuffleWithDepth(size int, seed int64, depthFactor int) (grid.State, error) {
	return ShuffleFrom(size, rng.NewSeeded(seed), depthFactor)
}

// ShuffleFrom shuffles using an explicit random source.
//
// The board only ever changes through legal moves, so every result can be
// solved. The walk never undoes its previous move and keeps going past the
// minimum length while it stands on the goal.
func ShuffleFrom(size int, src rng.Source, depthFactor int) (grid.State, error) {
	if size < 2 {
		return grid.State{}, fmt.Errorf("slide: shuffle: %w: size %d", grid.ErrInvalidDimension, size)
	}
	depthFactor = max(depthFactor, MinDepthFactor)

	state, err := Solved(size)
	if err != nil {
		return grid.State{}, err
	}

	steps := size * size * depthFactor
	prevBlank := -1
	candidates := make([]int, 0, 4)

	for i := 0; i < steps || IsSolved(state); i++ {
		blank := blankIndex(state)

		candidates = candidates[:0]
		for _, tile := range LegalMoves(state) {
			if tile != prevBlank {
				candidates = append(candidates, tile)
			}
		}

		tile := candidates[src.Intn(len(candidates))]
		state, err = state.Swap(tile, blank)
		if err != nil {
			return grid.State{}, fmt.Errorf("slide: shuffle: %w", err)
		}
		prevBlank = blank
	}

	return state, nil
}

// Inversions counts tile pairs that appear in the wrong order, ignoring the blank.
func Inversions(state grid.State) int {
	cells := state.Cells()
	count := 0
	for i, a := range cells {
		if a == grid.Empty {
			continue
		}
		for _, b := range cells[i+1:] {
			if b != grid.Empty && b < a {
				count++
			}
		}
	}
	return count
}

// IsSolvable reports whether the goal can be reached from state.
//
// Odd widths need an even inversion count. Even widths also depend on the
// blank's row counted from the bottom (1-based): an even row needs an odd
// count, an odd row an even one.
func IsSolvable(state grid.State) bool {
	n := state.Size()
	blank := blankIndex(state)
	if state.Mode() != grid.ModeSliding || blank < 0 {
		return false
	}

	inv := Inversions(state)
	if n%2 == 1 {
		return inv%2 == 0
	}

	rowFromBottom := n - blank/n
	return (rowFromBottom%2 == 0) == (inv%2 == 1)
}
