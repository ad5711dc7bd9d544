// Released under an MIT license. See LICENSE.

// Package common defines helpers shared by hyper's value types.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the string value for a cell, if possible.
func String(c cell.I) string {
	s, ok := Text(c)
	if !ok {
		panic(c.Name() + " cannot be used in a string context")
	}

	return s
}

// Text returns the string value for a cell and true, or "" and false if
// the cell has no string form. A nil cell is the empty string.
func Text(c cell.I) (string, bool) {
	if c == nil {
		return "", true
	}

	s, ok := c.(Stringer)
	if !ok {
		return "", false
	}

	return s.String(), true
}
