// Released under an MIT license. See LICENSE.

// Package empty provides hyper's absent value.
package empty

import (
	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/literal"
)

const name = "empty"

// T (empty) is the type of the value of an unset variable.
type T struct{}

type empty = T

// Value is the only empty value.
var Value cell.I = &empty{} //nolint:gochecknoglobals

// Is returns true if c is nil or the empty value.
func Is(c cell.I) bool {
	if c == nil {
		return true
	}

	_, ok := c.(*empty)

	return ok
}

// Equal returns true if c is also empty.
func (e *empty) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of the empty value.
func (e *empty) Literal() string {
	return name
}

// Name returns the type name for the empty value.
func (e *empty) Name() string {
	return name
}

// String returns the text of the empty value.
func (e *empty) String() string {
	return ""
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t empty

	// The empty type is a cell.
	_ = cell.I(&t)

	// The empty type has a literal representation.
	_ = literal.I(&t)

	// The empty type is a stringer.
	_ = common.Stringer(&t)
}
