// Released under an MIT license. See LICENSE.

// Package slot provides hyper's variable type.
package slot

import (
	"sync"

	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/reference"
)

const name = "variable"

// T (slot) holds a cell value.
type T struct {
	sync.RWMutex
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Copy creates a new slot with the same cell as slot s.
func (s *slot) Copy() reference.I {
	return New(s.Get())
}

// Equal returns true if c is the same slot as s.
func (s *slot) Equal(c cell.I) bool {
	t, ok := c.(*slot)

	return ok && t == s
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	s.RLock()
	defer s.RUnlock()

	return s.c
}

// Name returns the name of the slot type.
func (s *slot) Name() string {
	return name
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.Lock()
	defer s.Unlock()

	s.c = c
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t slot

	// The slot type is a cell.
	_ = cell.I(&t)

	// The slot type is a reference.
	_ = reference.I(&t)
}
