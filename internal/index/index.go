// Released under an MIT license. See LICENSE.

// Package index resolves position requests against 1-based bounds.
//
// Results are not clamped. Callers that need positions within [min, max]
// must clamp them.
package index

import (
	"github.com/michaelmacinnis/hyper/internal/common/struct/random"
)

// T (index) resolves positions. Its random source is shared with the caller.
type T struct {
	random *random.T
}

type index = T

// New creates a resolver that draws random positions from r.
func New(r *random.T) *index {
	return &index{random: r}
}

// Resolve converts start and end to concrete positions within [min, max]
// using current and recent for the relative markers.
func (x *index) Resolve(min, max, current, recent int, start, end Position) (int, int) {
	s := x.position(min, max, current, recent, start)

	if coupled(start, end) {
		return s, s
	}

	return s, x.position(min, max, current, recent, end)
}

// Span converts start and end to concrete positions within [min, max].
func (x *index) Span(min, max int, start, end Request) (int, int) {
	s := x.request(min, max, start)

	if coupled(start, end) {
		return s, s
	}

	return s, x.request(min, max, end)
}

// A range from any element to any element is a single random element.
// The same is true for the middle element.
func coupled(start, end Position) bool {
	m, ok := end.(Marker)
	if !ok {
		return false
	}

	return start == Position(m)
}

func (x *index) position(min, max, current, recent int, p Position) int {
	r, ok := p.(Relative)
	if !ok {
		return x.request(min, max, p.(Request))
	}

	switch r {
	case Previous:
		if current--; current < min {
			current = max
		}

		return current
	case Current:
		return current
	case Next:
		if current++; current > max {
			current = min
		}

		return current
	}

	return recent
}

func (x *index) request(min, max int, r Request) int {
	switch v := r.(type) {
	case Marker:
		if v == Middle {
			return min + (max-min+1)/2
		}

		return x.random.Between(min, max)
	case Int:
		if v < 0 {
			return int(v) + max + 1
		}

		return int(v)
	}

	panic("unknown position request")
}
