package maxsquare

import (
	"fmt"

	"github.com/katalvlaran/maxsquare/grid"
	"github.com/katalvlaran/maxsquare/prefixsum"
)

// Square locates an all-ones square by its top-left corner and side length.
// The zero Square (Side == 0) means no set cell exists.
type Square struct {
	Row, Col int
	Side     int
}

// Area returns Side².
func (s Square) Area() int { return s.Side * s.Side }

// Find returns the largest all-ones square in g. When several squares share
// the maximal side, the one whose top-left corner comes first in row-major
// order wins. A nil or empty grid yields the zero Square.
//
// Complexity: O(m·n·min(m,n)) time, O(m·n) memory.
func Find(g *grid.Grid) Square {
	if g == nil || g.Empty() {
		return Square{}
	}
	m, n := g.Rows(), g.Cols()
	sums := prefixsum.Build(g)

	var best Square
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			maxPossibleSide := min(m-i, n-j)
			if maxPossibleSide <= best.Side {
				// Nothing anchored here can beat the current best.
				continue
			}
			// Above-left corner term is shared by every side at this corner.
			corner := sums.At(i-1, j-1)
			for side := maxPossibleSide; side > best.Side; side-- {
				bottom, right := i+side-1, j+side-1
				ones := sums.At(bottom, right) - sums.At(i-1, right) - sums.At(bottom, j-1) + corner
				if ones == side*side {
					best = Square{Row: i, Col: j, Side: side}
					break
				}
			}
		}
	}

	return best
}

// Area returns the area of the largest all-ones square in g, or 0 if g is
// nil, empty or has no set cells.
func Area(g *grid.Grid) int {
	return Find(g).Area()
}

// MaximalSquare returns the largest all-ones square area of a character grid
// where '1' marks a set cell.
// Returns an error wrapping grid.ErrNonRectangular for ragged input.
func MaximalSquare(matrix [][]byte) (int, error) {
	g, err := grid.FromBytes(matrix)
	if err != nil {
		return 0, fmt.Errorf("maxsquare: %w", err)
	}

	return Area(g), nil
}

// MaximalSquareInts is MaximalSquare for numeric grids where 1 marks a set cell.
func MaximalSquareInts(matrix [][]int) (int, error) {
	g, err := grid.FromInts(matrix)
	if err != nil {
		return 0, fmt.Errorf("maxsquare: %w", err)
	}

	return Area(g), nil
}
