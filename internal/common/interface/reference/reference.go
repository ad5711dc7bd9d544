// Released under an MIT license. See LICENSE.

// Package reference defines the interface for hyper's variable type.
package reference

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value.
type I interface {
	Copy() I
	Get() cell.I
	Set(cell.I)
}

// Deref follows references until it reaches a value that is not one.
func Deref(c cell.I) cell.I {
	for {
		r, ok := c.(I)
		if !ok {
			return c
		}

		c = r.Get()
	}
}
