package grid

import "errors"

// Errors returned for malformed grids and out-of-range indices.
// They indicate a bug in the caller, not bad player input: an illegal move
// is reported through MoveResult.Changed instead.
var (
	ErrInvalidDimension = errors.New("grid: invalid dimension")
	ErrInvalidCellValue = errors.New("grid: invalid cell value")
	ErrOutOfBounds      = errors.New("grid: index out of bounds")
)
