// Package maxsquare is the root of a small, pure-Go toolkit for finding the
// largest all-ones square in a binary grid.
//
// 🚀 What is in here?
//
//	grid/       — normalize [][]byte, [][]int, []string or gonum matrices
//	              into one immutable bit grid
//	prefixsum/  — summed-area tables with O(1) rectangle counts
//	maxsquare/  — the solver: descending side scan per corner
//	cmd/maxsquare — demo binary that solves the sample grid
//
// Quick ASCII example:
//
//	0 1 1 0 1
//	1 ■ ■ ■ 1
//	1 ■ ■ ■ 1
//	0 ■ ■ ■ 0
//	0 1 1 1 0
//
// has a 3×3 all-ones square (marked ■), so the answer is 9.
//
//	go get github.com/katalvlaran/maxsquare
package maxsquare
