// Package grid normalizes binary grids into a single immutable bit matrix.
//
// What:
//
//   - Grid wraps a rectangular m×n matrix of boolean cells (row-major).
//   - Inputs may arrive as [][]byte ('0'/'1'), [][]int (0/1), []string rows,
//     or any gonum mat.Matrix; each is converted exactly once at the boundary.
//   - A cell is set iff it equals '1' (byte and rune encodings) or 1 (numeric
//     encodings). Every other value, including '0', 0, 2 or 'x', is unset.
//
// Why:
//
//   - Algorithms downstream (prefix sums, square search) read plain bits and
//     never repeat the encoding check per cell.
//
// Empty grids:
//
//   - Zero rows, or rows with zero columns, are valid and produce an empty
//     Grid (Rows()*Cols() == 0). They are not errors.
//
// Complexity:
//
//   - FromBytes / FromInts / FromStrings / FromMatrix: O(m×n) time and memory.
//   - At, Value: O(1).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadShape: negative dimensions requested.
//   - ErrOutOfRange: At called outside the grid.
package grid
