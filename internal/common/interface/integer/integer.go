// Released under an MIT license. See LICENSE.

// Package integer converts a hyper cell to an int value, if possible.
package integer

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/rational"
)

// Try returns the int value for a cell and true, if it has one.
func Try(c cell.I) (int, bool) {
	if r, ok := c.(rational.I); ok {
		br := r.Rat()
		if br.IsInt() && br.Num().IsInt64() {
			return int(br.Num().Int64()), true
		}

		return 0, false
	}

	s, ok := common.Text(c)
	if !ok {
		return 0, false
	}

	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}

	return i, true
}

// Value returns the int value for a cell, if possible.
func Value(c cell.I) int {
	i, ok := Try(c)
	if !ok {
		panic(c.Name() + " cannot be converted to an integer value")
	}

	return i
}
