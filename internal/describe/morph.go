// Released under an MIT license. See LICENSE.

package describe

import (
	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/literal"
	"github.com/michaelmacinnis/hyper/internal/common/interface/reference"
	"github.com/michaelmacinnis/hyper/internal/common/interface/sequence"
	"github.com/michaelmacinnis/hyper/internal/common/type/empty"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
)

// Morpher decides which values can be made into a type and makes them.
//
// Values are dereferenced before any of these functions see them. A
// single element sequence is unwrapped unless it is itself native.
// Native values are returned unchanged. Empty values become Zero(), if the
// type has a zero. Other values are accepted by Can and converted by To.
// Pair, if set, replaces the default treatment of adjacent values, which is
// to join their text and morph the result.
type Morpher struct {
	Can    func(a ambient.I, c cell.I) bool
	Native func(c cell.I) bool
	Pair   func(a ambient.I, l, r cell.I) (cell.I, bool)
	To     func(a ambient.I, c cell.I) cell.I
	Zero   func() cell.I
}

// Deref follows references and unwraps single element sequences.
func Deref(c cell.I) cell.I {
	for {
		c = reference.Deref(c)

		e, ok := sequence.Sole(c)
		if !ok {
			return c
		}

		c = e
	}
}

// Empty returns true if c is absent, the empty string or an empty sequence.
func Empty(c cell.I) bool {
	if empty.Is(c) {
		return true
	}

	if str.Is(c) {
		return str.To(c).String() == ""
	}

	if s, ok := c.(sequence.I); ok {
		return s.Len() == 0
	}

	return false
}

// CanMorph returns true if v can be made into a value of this type.
func (m *Morpher) CanMorph(a ambient.I, v cell.I) bool {
	_, ok := m.morph(ambient.Or(a), m.deref(v))

	return ok
}

// CanMorphPair returns true if the adjacent values l and r can be made
// into a single value of this type.
func (m *Morpher) CanMorphPair(a ambient.I, l, r cell.I) bool {
	_, ok := m.pair(ambient.Or(a), m.deref(l), m.deref(r))

	return ok
}

// Morph makes v into a value of the type t.
func (t *describe) Morph(a ambient.I, v cell.I) (cell.I, error) {
	v = t.deref(v)

	c, ok := t.morph(ambient.Or(a), v)
	if !ok {
		return nil, &MorphError{Type: t.Name, Value: quote(v)}
	}

	return c, nil
}

// MorphPair makes the adjacent values l and r into one value of the type t.
func (t *describe) MorphPair(a ambient.I, l, r cell.I) (cell.I, error) {
	l, r = t.deref(l), t.deref(r)

	c, ok := t.pair(ambient.Or(a), l, r)
	if !ok {
		return nil, &MorphError{Type: t.Name, Value: quote(l) + " " + quote(r)}
	}

	return c, nil
}

// deref is Deref, stopping at the first value native to the type.
func (m *Morpher) deref(c cell.I) cell.I {
	for {
		c = reference.Deref(c)

		if c != nil && m.Native != nil && m.Native(c) {
			return c
		}

		e, ok := sequence.Sole(c)
		if !ok {
			return c
		}

		c = e
	}
}

func (m *Morpher) morph(a ambient.I, v cell.I) (cell.I, bool) {
	if v != nil && m.Native != nil && m.Native(v) {
		return v, true
	}

	if Empty(v) {
		if m.Zero == nil {
			return nil, false
		}

		return m.Zero(), true
	}

	if m.Can == nil || !m.Can(a, v) {
		return nil, false
	}

	return m.To(a, v), true
}

func (m *Morpher) pair(a ambient.I, l, r cell.I) (cell.I, bool) {
	if m.Pair != nil {
		return m.Pair(a, l, r)
	}

	ls, ok := common.Text(l)
	if !ok {
		return nil, false
	}

	rs, ok := common.Text(r)
	if !ok {
		return nil, false
	}

	return m.morph(a, str.New(ls+rs))
}

func quote(c cell.I) string {
	if l, ok := c.(literal.I); ok {
		return l.Literal()
	}

	if c == nil {
		return "empty"
	}

	return c.Name()
}
