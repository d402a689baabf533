// SPDX-License-Identifier: MIT

package prefixsum_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxsquare/grid"
	"github.com/katalvlaran/maxsquare/prefixsum"
)

// dump materializes t as [][]int for cmp.Diff.
func dump(t *prefixsum.Table) [][]int {
	out := make([][]int, t.Rows())
	for i := range out {
		out[i] = make([]int, t.Cols())
		for j := range out[i] {
			out[i][j] = t.At(i, j)
		}
	}

	return out
}

// mustGrid builds a grid from string rows or fails the test.
func mustGrid(tb testing.TB, rows ...string) *grid.Grid {
	tb.Helper()
	g, err := grid.FromStrings(rows)
	require.NoError(tb, err)

	return g
}

// randomGrid returns an m×n grid with roughly density share of set cells.
func randomGrid(tb testing.TB, rng *rand.Rand, m, n int, density float64) *grid.Grid {
	tb.Helper()
	g, err := grid.FromFunc(m, n, func(int, int) bool { return rng.Float64() < density })
	require.NoError(tb, err)

	return g
}

// TestBuild_KnownTable compares a hand-computed table for the sample grid.
func TestBuild_KnownTable(t *testing.T) {
	g := mustGrid(t,
		"01101",
		"11111",
		"11111",
		"01110",
		"01110",
	)
	want := [][]int{
		{0, 1, 2, 2, 3},
		{1, 3, 5, 6, 8},
		{2, 5, 8, 10, 13},
		{2, 6, 10, 13, 16},
		{2, 7, 12, 16, 19},
	}
	if diff := cmp.Diff(want, dump(prefixsum.Build(g))); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

// TestBuild_Recurrence checks the defining invariant on random grids.
func TestBuild_Recurrence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		m, n := 1+rng.Intn(9), 1+rng.Intn(9)
		g := randomGrid(t, rng, m, n, 0.6)
		tbl := prefixsum.Build(g)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				want := tbl.At(i-1, j) + tbl.At(i, j-1) - tbl.At(i-1, j-1) + g.Value(i, j)
				require.Equal(t, want, tbl.At(i, j), "trial %d cell (%d,%d)", trial, i, j)
			}
		}
		assert.Equal(t, g.Ones(), tbl.At(m-1, n-1), "bottom-right holds the total")
	}
}

// TestSum_MatchesBruteForce checks every rectangle of random grids.
func TestSum_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		m, n := 1+rng.Intn(6), 1+rng.Intn(6)
		g := randomGrid(t, rng, m, n, 0.5)
		tbl := prefixsum.Build(g)
		for top := 0; top < m; top++ {
			for left := 0; left < n; left++ {
				for bottom := top; bottom < m; bottom++ {
					for right := left; right < n; right++ {
						want := 0
						for r := top; r <= bottom; r++ {
							for c := left; c <= right; c++ {
								want += g.Value(r, c)
							}
						}
						got, err := tbl.Sum(top, left, bottom, right)
						require.NoError(t, err)
						require.Equal(t, want, got, "rect (%d,%d)-(%d,%d)", top, left, bottom, right)
						if bottom-top == right-left {
							require.Equal(t, want, tbl.SquareSum(top, left, bottom-top+1))
						}
					}
				}
			}
		}
	}
}

// TestSum_Errors verifies bounds and inverted-region sentinels.
func TestSum_Errors(t *testing.T) {
	tbl := prefixsum.Build(mustGrid(t, "11", "11"))

	cases := []struct {
		name                     string
		top, left, bottom, right int
		err                      error
	}{
		{"NegativeTop", -1, 0, 1, 1, prefixsum.ErrOutOfRange},
		{"NegativeLeft", 0, -1, 1, 1, prefixsum.ErrOutOfRange},
		{"BottomPastEdge", 0, 0, 2, 1, prefixsum.ErrOutOfRange},
		{"RightPastEdge", 0, 0, 1, 2, prefixsum.ErrOutOfRange},
		{"InvertedRows", 1, 0, 0, 1, prefixsum.ErrEmptyRegion},
		{"InvertedCols", 0, 1, 1, 0, prefixsum.ErrEmptyRegion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tbl.Sum(tc.top, tc.left, tc.bottom, tc.right)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestBuild_Empty covers 0×0 and m×0 sources.
func TestBuild_Empty(t *testing.T) {
	for _, g := range []*grid.Grid{mustGrid(t), mustGrid(t, "", "")} {
		tbl := prefixsum.Build(g)
		assert.Zero(t, tbl.Rows())
		assert.Zero(t, tbl.Cols())
		assert.Zero(t, tbl.At(0, 0))
		_, err := tbl.Sum(0, 0, 0, 0)
		assert.ErrorIs(t, err, prefixsum.ErrOutOfRange)
	}
}

// TestAt_Padding checks the zero padding above/left and clamping below/right.
func TestAt_Padding(t *testing.T) {
	tbl := prefixsum.Build(mustGrid(t, "11", "11"))
	assert.Zero(t, tbl.At(-1, 1))
	assert.Zero(t, tbl.At(1, -1))
	assert.Equal(t, 4, tbl.At(5, 5))
	assert.Equal(t, 2, tbl.At(0, 9))
}
