// Released under an MIT license. See LICENSE.

// Package sequence defines the interface for hyper's ordered collections.
package sequence

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
)

// I (sequence) is anything with numbered elements.
type I interface {
	Elements() []cell.I
	Len() int
}

type sequence = I

// Is returns true if c is a sequence.
func Is(c cell.I) bool {
	_, ok := c.(sequence)

	return ok
}

// Sole returns the only element of c if c is a one element sequence.
func Sole(c cell.I) (cell.I, bool) {
	s, ok := c.(sequence)
	if !ok || s.Len() != 1 {
		return nil, false
	}

	return s.Elements()[0], true
}
