package grid

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadShape indicates negative dimensions.
	ErrBadShape = errors.New("grid: dimensions must be non-negative")
	// ErrOutOfRange indicates a cell index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)
