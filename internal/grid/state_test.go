package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		cells []int
	}{
		{"zero size", 0, nil},
		{"negative size", -2, []int{}},
		{"too few cells", 3, []int{1, 2, 3, 4, 5, 6, 7, 0}},
		{"too many cells", 2, []int{1, 2, 3, 0, 0}},
		{"size overflows cell count", 1 << 32, nil},
		{"size above max", MaxSize + 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(ModeMerge, tt.size, tt.cells)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestNewRejectsBadCells(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		cells []int
	}{
		{"merge odd value", ModeMerge, []int{2, 3, 0, 0}},
		{"merge one", ModeMerge, []int{1, 0, 0, 0}},
		{"merge negative", ModeMerge, []int{-2, 0, 0, 0}},
		{"sliding duplicate", ModeSliding, []int{1, 1, 2, 0}},
		{"sliding two blanks", ModeSliding, []int{1, 0, 2, 0}},
		{"sliding no blank", ModeSliding, []int{1, 2, 3, 4}},
		{"sliding out of range", ModeSliding, []int{1, 2, 7, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mode, 2, tt.cells)
			assert.ErrorIs(t, err, ErrInvalidCellValue)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	cells := []int{2, 0, 0, 4}
	s, err := New(ModeMerge, 2, cells)
	require.NoError(t, err)

	cells[0] = 1024
	assert.Equal(t, []int{2, 0, 0, 4}, s.Cells())

	out := s.Cells()
	out[1] = 8
	assert.Equal(t, []int{2, 0, 0, 4}, s.Cells())
}

func TestRoundTrip(t *testing.T) {
	inputs := []struct {
		mode  Mode
		size  int
		cells []int
	}{
		{ModeSliding, 3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8}},
		{ModeSliding, 2, []int{3, 1, 0, 2}},
		{ModeMerge, 4, []int{2, 2, 2, 0, 0, 4, 0, 0, 8, 16, 0, 0, 0, 0, 0, 2048}},
		{ModeMerge, 1, []int{0}},
	}

	for _, in := range inputs {
		first, err := New(in.mode, in.size, in.cells)
		require.NoError(t, err)

		second, err := New(in.mode, in.size, first.Cells())
		require.NoError(t, err)

		assert.True(t, first.Equal(second), "%s != %s", first, second)
	}
}

func TestAtAndBounds(t *testing.T) {
	s, err := New(ModeSliding, 3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)

	v, err := s.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := s.At(p.Row, p.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds, "At(%d, %d)", p.Row, p.Col)
	}

	_, err = s.Value(9)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNewEmptyRejectsHugeSize(t *testing.T) {
	for _, size := range []int{0, MaxSize + 1, 1 << 32} {
		_, err := NewEmpty(size)
		assert.ErrorIs(t, err, ErrInvalidDimension, "size %d", size)
	}

	s, err := NewEmpty(MaxSize)
	require.NoError(t, err)
	assert.Equal(t, MaxSize*MaxSize, s.Len())
}

func TestWithCellKeepsPermutation(t *testing.T) {
	s, err := New(ModeSliding, 3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)

	_, err = s.WithCell(0, 0, 8)
	assert.ErrorIs(t, err, ErrInvalidCellValue)

	_, err = s.WithCell(2, 1, 9)
	assert.ErrorIs(t, err, ErrInvalidCellValue)

	// Rewriting a tile with its own value is still a valid permutation.
	same, err := s.WithCell(0, 0, 1)
	require.NoError(t, err)
	assert.True(t, s.Equal(same))
}

func TestWithCellLeavesOriginal(t *testing.T) {
	s, err := NewEmpty(2)
	require.NoError(t, err)

	next, err := s.WithCell(1, 0, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 4, 0}, next.Cells())
	assert.Equal(t, []int{0, 0, 0, 0}, s.Cells())

	_, err = s.WithCell(2, 0, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = s.WithCell(0, 0, 6)
	assert.ErrorIs(t, err, ErrInvalidCellValue)
}

func TestSwap(t *testing.T) {
	s, err := New(ModeSliding, 2, []int{1, 2, 3, 0})
	require.NoError(t, err)

	next, err := s.Swap(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 2}, next.Cells())
	assert.Equal(t, []int{1, 2, 3, 0}, s.Cells())

	_, err = s.Swap(0, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestIndexOf(t *testing.T) {
	s, err := New(ModeMerge, 3, []int{2, 4, 0, 0, 4, 8, 0, 0, 0})
	require.NoError(t, err)

	p, ok := s.IndexOf(4)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 1}, p)

	p, ok = s.IndexOf(0)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 2}, p)
	assert.Equal(t, 2, s.Index(p))

	_, ok = s.IndexOf(16)
	assert.False(t, ok)
}

func TestQueries(t *testing.T) {
	s, err := New(ModeMerge, 2, []int{2, 0, 64, 0})
	require.NoError(t, err)

	assert.Equal(t, []Position{{0, 1}, {1, 1}}, s.EmptyCells())
	assert.False(t, s.IsFull())
	assert.Equal(t, 64, s.MaxTile())
	assert.Equal(t, [][]int{{2, 0}, {64, 0}}, s.Rows())
	assert.Equal(t, "2,0/64,0", s.String())
}

func TestEqual(t *testing.T) {
	a, _ := New(ModeMerge, 2, []int{2, 0, 0, 0})
	b, _ := New(ModeMerge, 2, []int{2, 0, 0, 0})
	c, _ := New(ModeMerge, 2, []int{0, 2, 0, 0})
	d, _ := New(ModeMerge, 1, []int{2})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, State{}.Equal(State{}))
}
