// SPDX-License-Identifier: MIT

package prefixsum

import "fmt"

// Source is any rectangular 0/1 matrix. Value must return 0 or 1 for every
// in-range index; *grid.Grid satisfies it.
type Source interface {
	Rows() int
	Cols() int
	Value(r, c int) int
}

// Table is an immutable summed-area table, stored row-major.
type Table struct {
	rows, cols int
	sums       []int
}

// Build computes the summed-area table of src.
// An empty source (zero rows or columns) yields an empty Table.
// Complexity: O(m×n).
func Build(src Source) *Table {
	m, n := src.Rows(), src.Cols()
	if m <= 0 || n <= 0 {
		return &Table{}
	}
	t := &Table{rows: m, cols: n, sums: make([]int, m*n)}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t.sums[i*n+j] = t.At(i-1, j) + t.At(i, j-1) - t.At(i-1, j-1) + src.Value(i, j)
		}
	}

	return t
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// At returns the cumulative count for (0,0)..(r,c).
// Negative indices read as 0; indices past the far edge are clamped to it.
func (t *Table) At(r, c int) int {
	if r < 0 || c < 0 || t.rows == 0 {
		return 0
	}
	if r >= t.rows {
		r = t.rows - 1
	}
	if c >= t.cols {
		c = t.cols - 1
	}

	return t.sums[r*t.cols+c]
}

// Sum returns the number of set cells in rows top..bottom and columns
// left..right, both inclusive.
// Returns ErrOutOfRange if a corner is outside the table and ErrEmptyRegion
// if the rectangle is inverted.
func (t *Table) Sum(top, left, bottom, right int) (int, error) {
	if top < 0 || left < 0 || bottom >= t.rows || right >= t.cols {
		return 0, fmt.Errorf("Sum(%d,%d,%d,%d): %w", top, left, bottom, right, ErrOutOfRange)
	}
	if top > bottom || left > right {
		return 0, fmt.Errorf("Sum(%d,%d,%d,%d): %w", top, left, bottom, right, ErrEmptyRegion)
	}

	return t.region(top, left, bottom, right), nil
}

// SquareSum returns the number of set cells in the side×side square whose
// top-left corner is (row,col). The caller guarantees the square fits.
func (t *Table) SquareSum(row, col, side int) int {
	return t.region(row, col, row+side-1, col+side-1)
}

// region is the unchecked inclusion–exclusion kernel.
func (t *Table) region(top, left, bottom, right int) int {
	return t.At(bottom, right) - t.At(top-1, right) - t.At(bottom, left-1) + t.At(top-1, left-1)
}
