package grid

import (
	"strings"
)

// Grid is an immutable m×n binary matrix stored row-major.
// The zero value is an empty 0×0 grid.
type Grid struct {
	rows, cols int
	bits       []bool
}

// FromFunc builds a rows×cols Grid, setting cell (r,c) to set(r,c).
// set is called exactly once per cell in row-major order.
// Returns ErrBadShape if rows or cols is negative.
// Complexity: O(rows×cols).
func FromFunc(rows, cols int, set func(r, c int) bool) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if rows == 0 || cols == 0 {
		// Keep the declared row count so callers can tell 0×n from m×0.
		return &Grid{rows: rows, cols: cols}, nil
	}
	g := &Grid{rows: rows, cols: cols, bits: make([]bool, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.bits[r*cols+c] = set(r, c)
		}
	}

	return g, nil
}

// Filled returns a rows×cols Grid with every cell equal to v.
func Filled(rows, cols int, v bool) (*Grid, error) {
	return FromFunc(rows, cols, func(int, int) bool { return v })
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell at (r,c).
// Returns ErrOutOfRange if (r,c) is outside the grid.
func (g *Grid) At(r, c int) (bool, error) {
	if !g.InBounds(r, c) {
		return false, ErrOutOfRange
	}

	return g.bits[r*g.cols+c], nil
}

// Value returns 1 if the cell at (r,c) is set and 0 otherwise.
// Indices outside the grid read as 0, which is the padding convention
// summed-area tables rely on.
func (g *Grid) Value(r, c int) int {
	if !g.InBounds(r, c) || !g.bits[r*g.cols+c] {
		return 0
	}

	return 1
}

// Ones returns the number of set cells.
// Complexity: O(rows×cols).
func (g *Grid) Ones() int {
	n := 0
	for _, b := range g.bits {
		if b {
			n++
		}
	}

	return n
}

// String renders the grid as rows of '0'/'1' separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.bits[r*g.cols+c] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}
