// Package maxsquare finds the largest square of set cells in a binary grid.
//
// 🚀 Algorithm
//
//  1. Build a summed-area table over the grid (see package prefixsum).
//  2. For every top-left corner (i,j) in row-major order, scan side lengths
//     from min(m-i, n-j) down to 1. A side is accepted when the square's
//     count of set cells equals side², computed in O(1) by inclusion–exclusion.
//     The first accepted side is the best for that corner.
//  3. Return maxSide².
//
// ⚙️ Usage:
//
//	area, err := maxsquare.MaximalSquare([][]byte{
//	  {'1', '1'},
//	  {'1', '1'},
//	})
//	// area == 4
//
//	g, _ := grid.FromInts(cells)
//	sq := maxsquare.Find(g) // top-left corner and side of the winner
//
// Input handling:
//
//   - Empty grids (no rows or no columns) yield 0; they are not errors.
//   - Only '1' / 1 count as set; every other value is treated as 0.
//   - Ragged rows fail fast with grid.ErrNonRectangular.
//
// Complexity:
//
//   - Time:   O(m·n) to build the table, O(m·n·min(m,n)) worst case to search.
//   - Memory: O(m·n).
package maxsquare
