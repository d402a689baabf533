// SPDX-License-Identifier: MIT

package prefixsum

import "errors"

var (
	// ErrOutOfRange indicates a query corner outside the table bounds.
	ErrOutOfRange = errors.New("prefixsum: index out of range")

	// ErrEmptyRegion indicates an inverted rectangle (top > bottom or left > right).
	ErrEmptyRegion = errors.New("prefixsum: region is empty")
)
