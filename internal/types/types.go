// Released under an MIT license. See LICENSE.

// Package types provides the tables for hyper's built-in types.
package types

import (
	"errors"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/index"
)

var errRelative = errors.New("relative position used without navigation") //nolint:gochecknoglobals

// New creates a registry holding every built-in type.
func New(x *index.T) *describe.Registry {
	r := describe.NewRegistry(
		Binary(),
		Boolean(),
		File(x, "."),
		List(x),
		Number(),
		String(),
	)

	r.Register(Chunks(x)...)

	return r
}

// Bounds resolves the positions in d against [1, n]. Relative positions
// need an evaluator that provides Navigation.
func Bounds(x *index.T, a ambient.I, n int, d describe.Descriptor) (int, int, bool) {
	first, last := d.Bounds()

	if nav, ok := a.(ambient.Navigation); ok {
		f, l := x.Resolve(1, n, nav.Current(), nav.Recent(), first, last)

		return f, l, true
	}

	fr, ok := first.(index.Request)
	if !ok {
		return 0, 0, false
	}

	lr, ok := last.(index.Request)
	if !ok {
		return 0, 0, false
	}

	f, l := x.Span(1, n, fr, lr)

	return f, l, true
}

// resolvable returns true if the positions in d can be resolved for a.
// Nothing is resolved, so no random position is drawn.
func resolvable(a ambient.I, d describe.Descriptor) bool {
	if _, ok := a.(ambient.Navigation); ok {
		return true
	}

	first, last := d.Bounds()

	_, fok := first.(index.Request)
	_, lok := last.(index.Request)

	return fok && lok
}

// Requests resolves only the relative positions in d, leaving the rest as
// they are so that positions past either end survive for extension.
func Requests(x *index.T, a ambient.I, n int, d describe.Descriptor) (index.Request, index.Request, bool) {
	first, last := d.Bounds()

	fr, fok := first.(index.Request)
	lr, lok := last.(index.Request)

	if fok && lok {
		return fr, lr, true
	}

	nav, ok := a.(ambient.Navigation)
	if !ok {
		return nil, nil, false
	}

	f, l := x.Resolve(1, n, nav.Current(), nav.Recent(), first, last)

	if !fok {
		fr = index.Int(f)
	}

	if !lok {
		lr = index.Int(l)
	}

	return fr, lr, true
}

func visit(a ambient.I, first, last int) {
	if nav, ok := a.(ambient.Navigation); ok {
		nav.Visit(first, last)
	}
}

func text(c cell.I) (string, bool) {
	return common.Text(describe.Deref(c))
}

func positional() describe.Form {
	return describe.Index | describe.IndexRange | describe.Ordinal | describe.OrdinalRange
}

func each(f describe.Form, fn func(describe.Form)) {
	for g := describe.Singleton; g != 0; g <<= 1 {
		if f.Has(g) {
			fn(g)
		}
	}
}
