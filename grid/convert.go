package grid

import (
	"gonum.org/v1/gonum/mat"
)

// FromBytes normalizes a [][]byte grid where '1' marks a set cell.
// The input is copied; later changes to cells do not affect the Grid.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(m×n).
func FromBytes(cells [][]byte) (*Grid, error) {
	return fromRows(cells, func(b byte) bool { return b == '1' })
}

// FromInts normalizes a [][]int grid where 1 marks a set cell.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(m×n).
func FromInts(cells [][]int) (*Grid, error) {
	return fromRows(cells, func(v int) bool { return v == 1 })
}

// FromStrings normalizes one string per row, e.g. "01101".
// Rows are compared by byte length; '1' marks a set cell.
func FromStrings(lines []string) (*Grid, error) {
	cells := make([][]byte, len(lines))
	for i, l := range lines {
		cells[i] = []byte(l)
	}

	return FromBytes(cells)
}

// FromMatrix normalizes a gonum matrix where an element equal to 1 marks a
// set cell. A nil matrix yields an empty Grid.
// Complexity: O(m×n) calls to m.At.
func FromMatrix(m mat.Matrix) *Grid {
	if m == nil {
		return &Grid{}
	}
	r, c := m.Dims()
	g, _ := FromFunc(r, c, func(i, j int) bool { return m.At(i, j) == 1 })

	return g
}

// fromRows validates that rows is rectangular and converts each cell with isSet.
func fromRows[T any](rows [][]T, isSet func(T) bool) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	return FromFunc(len(rows), w, func(r, c int) bool { return isSet(rows[r][c]) })
}
