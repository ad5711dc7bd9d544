// Released under an MIT license. See LICENSE.

// Package list provides hyper's list type, an immutable sequence of cells.
package list

import (
	"strings"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/literal"
	"github.com/michaelmacinnis/hyper/internal/common/interface/sequence"
)

const name = "list"

// T (list) is an ordered collection of cells.
type T struct {
	elements []cell.I
}

type list = T

// Empty is the list with no elements.
var Empty = New() //nolint:gochecknoglobals

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return &list{elements: append([]cell.I(nil), elements...)}
}

// Elements returns a copy of the elements of the list l.
func (l *list) Elements() []cell.I {
	return append([]cell.I(nil), l.elements...)
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(o.elements) != len(l.elements) {
		return false
	}

	for i, e := range l.elements {
		f := o.elements[i]

		if e == nil || f == nil {
			if e != f {
				return false
			}

			continue
		}

		if !e.Equal(f) {
			return false
		}
	}

	return true
}

// Insert returns a new list with v inserted before the 1-based position i.
// Positions past the end append.
func (l *list) Insert(i int, v cell.I) cell.I {
	if i < 1 {
		i = 1
	}

	if i > len(l.elements)+1 {
		i = len(l.elements) + 1
	}

	elements := make([]cell.I, 0, len(l.elements)+1)
	elements = append(elements, l.elements[:i-1]...)
	elements = append(elements, v)
	elements = append(elements, l.elements[i-1:]...)

	return &list{elements: elements}
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.elements)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = literal.String(e)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Name returns the name for the list type.
func (l *list) Name() string {
	return name
}

// Slice returns the elements from the 1-based positions first to last, inclusive.
// The caller must ensure 1 <= first and last <= l.Len().
func (l *list) Slice(first, last int) cell.I {
	if last < first {
		return Empty
	}

	return New(l.elements[first-1 : last]...)
}

// String returns the text of the elements of l joined by commas.
func (l *list) String() string {
	return l.Join(",")
}

// Join returns the text of the elements of l joined by delimiter.
// Elements without a string form are written as literals.
func (l *list) Join(delimiter string) string {
	parts := make([]string, len(l.elements))

	for i, e := range l.elements {
		s, ok := common.Text(e)
		if !ok {
			s = literal.String(e)
		}

		parts[i] = s
	}

	return strings.Join(parts, delimiter)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a sequence.
	_ = sequence.I(&t)

	// The list type is a stringer.
	_ = common.Stringer(&t)
}
