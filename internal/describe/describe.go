// Released under an MIT license. See LICENSE.

// Package describe provides hyper's type tables.
//
// A type is not a class. It is a table of predicates and actions: the ways
// its values can be addressed (root level, or as children of a parent
// value), created, and made from other values. A value is of every type
// whose morph predicate accepts it.
package describe

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
)

// Fetcher fetches values described by a Descriptor.
// Can reports whether Get would succeed right now. A nil Can always does.
type Fetcher struct {
	Can func(a ambient.I, parent cell.I, d Descriptor) bool
	Get func(a ambient.I, parent cell.I, d Descriptor) (cell.I, error)
}

// Creator creates values described by a Descriptor, optionally from seed.
// Can reports whether Make would succeed right now. A nil Can always does.
type Creator struct {
	Can  func(a ambient.I, parent cell.I, d Descriptor) bool
	Make func(a ambient.I, parent cell.I, d Descriptor, seed cell.I) (cell.I, error)
}

// Accessors maps each form to its fetcher and creator.
type Accessors struct {
	Create map[Form]Creator
	Fetch  map[Form]Fetcher
}

// T (describe) is the table for one type.
type T struct {
	Name  string
	Forms Form

	// Root accessors have no parent. Child accessors are passed one.
	Child Accessors
	Root  Accessors

	Morpher
}

type describe = T

// CanCreate returns true if Create would succeed for parent and d.
// A nil parent selects the root level accessors.
func (t *describe) CanCreate(a ambient.I, parent cell.I, d Descriptor) bool {
	c, ok := t.creator(parent, d)

	return ok && (c.Can == nil || c.Can(ambient.Or(a), parent, d))
}

// Create creates the value described by d, in parent, from seed.
func (t *describe) Create(a ambient.I, parent cell.I, d Descriptor, seed cell.I) (cell.I, error) {
	if !t.CanCreate(a, parent, d) {
		return nil, &CreateError{Type: t.Name, Descriptor: d}
	}

	c, _ := t.creator(parent, d)

	v, err := c.Make(ambient.Or(a), parent, d, seed)
	if err != nil {
		return nil, &CreateError{Type: t.Name, Descriptor: d, Err: err}
	}

	return v, nil
}

// CanGet returns true if Get would succeed for parent and d.
// A nil parent selects the root level accessors.
func (t *describe) CanGet(a ambient.I, parent cell.I, d Descriptor) bool {
	f, ok := t.fetcher(parent, d)

	return ok && (f.Can == nil || f.Can(ambient.Or(a), parent, d))
}

// Get fetches the value described by d from parent.
func (t *describe) Get(a ambient.I, parent cell.I, d Descriptor) (cell.I, error) {
	if !t.CanGet(a, parent, d) {
		return nil, &GetError{Type: t.Name, Descriptor: d}
	}

	f, _ := t.fetcher(parent, d)

	v, err := f.Get(ambient.Or(a), parent, d)
	if err != nil {
		return nil, &GetError{Type: t.Name, Descriptor: d, Err: err}
	}

	return v, nil
}

func (t *describe) accessors(parent cell.I) Accessors {
	if parent == nil {
		return t.Root
	}

	return t.Child
}

func (t *describe) creator(parent cell.I, d Descriptor) (Creator, bool) {
	if !t.Forms.Has(d.Form) {
		return Creator{}, false
	}

	c, ok := t.accessors(parent).Create[d.Form]

	return c, ok && c.Make != nil
}

func (t *describe) fetcher(parent cell.I, d Descriptor) (Fetcher, bool) {
	if !t.Forms.Has(d.Form) {
		return Fetcher{}, false
	}

	f, ok := t.accessors(parent).Fetch[d.Form]

	return f, ok && f.Get != nil
}
