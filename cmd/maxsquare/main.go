// Command maxsquare solves the sample binary grid and logs the largest
// all-ones square it contains.
package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/maxsquare/grid"
	"github.com/katalvlaran/maxsquare/maxsquare"
)

// sample is the demonstration input; its best square is 3×3.
var sample = [][]int{
	{0, 1, 1, 0, 1},
	{1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1},
	{0, 1, 1, 1, 0},
	{0, 1, 1, 1, 0},
}

func main() {
	logger := newLogger(os.Stderr, log.InfoLevel)
	if err := run(logger, sample); err != nil {
		logger.Error("solve failed", "err", err)
		os.Exit(1)
	}
}

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// run normalizes cells, solves it and logs the result.
func run(logger *log.Logger, cells [][]int) error {
	start := time.Now()
	g, err := grid.FromInts(cells)
	if err != nil {
		return err
	}
	logger.Debug("grid loaded", "rows", g.Rows(), "cols", g.Cols(), "ones", g.Ones())

	sq := maxsquare.Find(g)
	logger.Info("maximal square",
		"area", sq.Area(),
		"side", sq.Side,
		"row", sq.Row,
		"col", sq.Col,
		"elapsed", time.Since(start).Round(time.Microsecond),
	)

	return nil
}
