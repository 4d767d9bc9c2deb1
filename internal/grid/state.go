// Package grid provides the immutable N×N board shared by the puzzle engines.
// It has no dependencies outside the standard library so engine logic stays
// pure and testable.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which cell invariant a State enforces.
type Mode int

const (
	// ModeMerge allows any number of empty cells; tiles are powers of two.
	ModeMerge Mode = iota
	// ModeSliding requires exactly one blank and a permutation of 1..N²-1.
	ModeSliding
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMerge:
		return "merge"
	case ModeSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// Empty is the value of a blank cell.
const Empty = 0

// Position identifies a cell by row and column, both 0-indexed from the top left.
type Position struct {
	Row int
	Col int
}

// State is an immutable N×N grid stored row-major.
// The zero value is a 0×0 grid that no engine will change.
type State struct {
	mode  Mode
	size  int
	cells []int
}

// MaxSize is the largest side length a State accepts.
const MaxSize = 1 << 10

// CheckSize rejects side lengths outside 1..MaxSize.
func CheckSize(size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%w: size %d outside 1..%d", ErrInvalidDimension, size, MaxSize)
	}
	return nil
}

// New validates cells against the mode invariant and returns a State that
// owns a private copy of them.
func New(mode Mode, size int, cells []int) (State, error) {
	if err := CheckSize(size); err != nil {
		return State{}, err
	}
	if len(cells) != size*size {
		return State{}, fmt.Errorf("%w: %d cells for size %d", ErrInvalidDimension, len(cells), size)
	}
	if err := validate(mode, size, cells); err != nil {
		return State{}, err
	}

	owned := make([]int, len(cells))
	copy(owned, cells)
	return State{mode: mode, size: size, cells: owned}, nil
}

// NewEmpty returns an all-blank merge grid.
func NewEmpty(size int) (State, error) {
	if err := CheckSize(size); err != nil {
		return State{}, err
	}
	return State{mode: ModeMerge, size: size, cells: make([]int, size*size)}, nil
}

func validate(mode Mode, size int, cells []int) error {
	switch mode {
	case ModeMerge:
		for i, v := range cells {
			if !validMergeValue(v) {
				return fmt.Errorf("%w: %d at index %d is not 0 or a power of two", ErrInvalidCellValue, v, i)
			}
		}
		return nil

	case ModeSliding:
		seen := make([]bool, size*size)
		for i, v := range cells {
			if v < 0 || v >= size*size {
				return fmt.Errorf("%w: %d at index %d outside 0..%d", ErrInvalidCellValue, v, i, size*size-1)
			}
			if seen[v] {
				return fmt.Errorf("%w: %d repeated at index %d", ErrInvalidCellValue, v, i)
			}
			seen[v] = true
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidCellValue, int(mode))
	}
}

func validMergeValue(v int) bool {
	return v == Empty || (v >= 2 && v&(v-1) == 0)
}

// Mode returns the invariant this state was validated against.
func (s State) Mode() Mode {
	return s.mode
}

// Size returns N for an N×N grid.
func (s State) Size() int {
	return s.size
}

// Len returns the number of cells (N²).
func (s State) Len() int {
	return len(s.cells)
}

// Cells returns a row-major copy of the cells.
func (s State) Cells() []int {
	out := make([]int, len(s.cells))
	copy(out, s.cells)
	return out
}

// Rows returns a copy of the cells as a slice of rows.
func (s State) Rows() [][]int {
	rows := make([][]int, s.size)
	for r := range s.size {
		rows[r] = make([]int, s.size)
		copy(rows[r], s.cells[r*s.size:(r+1)*s.size])
	}
	return rows
}

// InBounds reports whether (row, col) lies on the grid.
func (s State) InBounds(row, col int) bool {
	return row >= 0 && row < s.size && col >= 0 && col < s.size
}

// Index converts a position to its flattened row-major index.
func (s State) Index(p Position) int {
	return p.Row*s.size + p.Col
}

// PositionOf converts a flattened index back to a position.
func (s State) PositionOf(index int) Position {
	if s.size == 0 {
		return Position{}
	}
	return Position{Row: index / s.size, Col: index % s.size}
}

// At returns the value at (row, col).
func (s State) At(row, col int) (int, error) {
	if !s.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, row, col, s.size, s.size)
	}
	return s.cells[row*s.size+col], nil
}

// Value returns the value at a flattened index.
func (s State) Value(index int) (int, error) {
	if index < 0 || index >= len(s.cells) {
		return 0, fmt.Errorf("%w: index %d of %d", ErrOutOfBounds, index, len(s.cells))
	}
	return s.cells[index], nil
}

// WithCell returns a copy with one cell replaced. The receiver is untouched.
// The result is validated as a whole, so a sliding grid rejects any edit
// that breaks its permutation.
func (s State) WithCell(row, col, value int) (State, error) {
	if !s.InBounds(row, col) {
		return s, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, row, col, s.size, s.size)
	}

	next := s.clone()
	next.cells[row*s.size+col] = value
	if err := validate(s.mode, s.size, next.cells); err != nil {
		return s, err
	}
	return next, nil
}

// Swap returns a copy with the cells at two flattened indices exchanged.
func (s State) Swap(i, j int) (State, error) {
	if i < 0 || i >= len(s.cells) || j < 0 || j >= len(s.cells) {
		return s, fmt.Errorf("%w: swap %d/%d of %d", ErrOutOfBounds, i, j, len(s.cells))
	}
	next := s.clone()
	next.cells[i], next.cells[j] = next.cells[j], next.cells[i]
	return next, nil
}

// Replace returns a state of the same mode and size holding cells,
// validated exactly as New would.
func (s State) Replace(cells []int) (State, error) {
	return New(s.mode, s.size, cells)
}

// IndexOf returns the position of the first cell equal to value, scanning
// row-major, and false if no cell matches.
func (s State) IndexOf(value int) (Position, bool) {
	for i, v := range s.cells {
		if v == value {
			return s.PositionOf(i), true
		}
	}
	return Position{}, false
}

// EmptyCells returns the positions of all blank cells in row-major order.
func (s State) EmptyCells() []Position {
	var out []Position
	for i, v := range s.cells {
		if v == Empty {
			out = append(out, s.PositionOf(i))
		}
	}
	return out
}

// IsFull reports whether no cell is blank.
func (s State) IsFull() bool {
	for _, v := range s.cells {
		if v == Empty {
			return false
		}
	}
	return true
}

// MaxTile returns the largest cell value.
func (s State) MaxTile() int {
	maxVal := 0
	for _, v := range s.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Equal reports whether both grids have the same size and identical cells.
func (s State) Equal(other State) bool {
	if s.size != other.size || len(s.cells) != len(other.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders rows separated by "/", e.g. "1,2,3/4,5,6/7,8,0".
func (s State) String() string {
	var b strings.Builder
	for i, v := range s.cells {
		if i > 0 {
			if i%s.size == 0 {
				b.WriteByte('/')
			} else {
				b.WriteByte(',')
			}
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (s State) clone() State {
	return State{mode: s.mode, size: s.size, cells: s.Cells()}
}
