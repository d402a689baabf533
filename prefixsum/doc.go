// SPDX-License-Identifier: MIT

// Package prefixsum builds summed-area tables over 0/1 sources and answers
// rectangular count queries in O(1) by inclusion–exclusion.
//
// Definition:
//
//	T[i][j] = number of set cells in the rectangle (0,0)..(i,j) inclusive
//	        = T[i-1][j] + T[i][j-1] - T[i-1][j-1] + cell(i,j)
//
// with any negative index reading as 0. Rows are filled top to bottom and
// columns left to right, so every cell depends only on already computed
// neighbors above, to the left and diagonally above-left.
//
// Region query for rows top..bottom, columns left..right:
//
//	Sum = T[bottom][right] - T[top-1][right] - T[bottom][left-1] + T[top-1][left-1]
//
// Complexity:
//
//   - Build: O(m×n) time, O(m×n) memory.
//   - At, Sum, SquareSum: O(1).
//
// Errors:
//
//   - ErrOutOfRange: a query corner lies outside the table.
//   - ErrEmptyRegion: top > bottom or left > right.
package prefixsum
