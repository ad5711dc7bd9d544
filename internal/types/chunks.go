// Released under an MIT license. See LICENSE.

package types

import (
	"errors"

	"github.com/michaelmacinnis/hyper/internal/chunk"
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/type/list"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/index"
)

var errNoText = errors.New("value has no text") //nolint:gochecknoglobals

// Chunks returns a table for each chunk kind. Chunks are children of any
// value with text. Putting text into a chunk is creating it.
func Chunks(x *index.T) []*describe.T {
	names := []string{"character", "item", "line", "paragraph", "sentence", "word"}

	ts := make([]*describe.T, len(names))
	for i, n := range names {
		ts[i] = Chunk(x, n)
	}

	return ts
}

// Chunk returns the table for the chunk kind called name.
func Chunk(x *index.T, name string) *describe.T {
	kind := func(a ambient.I) chunk.Kind {
		k, _ := chunk.Lookup(name, a.LineEnding(), a.ItemDelimiter())

		return k
	}

	t := &describe.T{
		Name:  name,
		Forms: positional() | describe.Name | describe.Mass,
		Morpher: describe.Morpher{
			Can: func(a ambient.I, c cell.I) bool {
				s, ok := text(c)
				if !ok {
					return false
				}

				k := kind(a)
				if chunk.Count(k, s, 0, len(s)) != 1 {
					return false
				}

				return chunk.Locate(k, s, 0, len(s), 1, 1).Content == s
			},
			To: func(_ ambient.I, c cell.I) cell.I {
				s, _ := text(c)

				return str.New(s)
			},
		},
	}

	if _, ok := kind(ambient.Default()).(chunk.Delimited); ok {
		t.Zero = func() cell.I {
			return str.Empty
		}
	}

	byPosition := describe.Fetcher{
		Can: func(a ambient.I, parent cell.I, d describe.Descriptor) bool {
			_, ok := text(parent)
			if !ok {
				return false
			}

			return resolvable(a, d)
		},
		Get: func(a ambient.I, parent cell.I, d describe.Descriptor) (cell.I, error) {
			s, _ := text(parent)
			k := kind(a)

			n := chunk.Count(k, s, 0, len(s))

			f, l, _ := Bounds(x, a, n, d)
			f, l = chunk.Clamp(f, l, n)

			if f > l {
				return str.Empty, nil
			}

			visit(a, f, l)

			return str.New(chunk.Locate(k, s, 0, len(s), f, l).Content), nil
		},
	}

	byName := describe.Fetcher{
		Can: func(a ambient.I, parent cell.I, d describe.Descriptor) bool {
			_, ok := locate(a, kind(a), parent, d.Name)

			return ok
		},
		Get: func(a ambient.I, parent cell.I, d describe.Descriptor) (cell.I, error) {
			l, _ := locate(a, kind(a), parent, d.Name)

			visit(a, l.First, l.Last)

			return str.New(l.Content), nil
		},
	}

	t.Child.Fetch = map[describe.Form]describe.Fetcher{
		describe.Name: byName,
		describe.Mass: {
			Can: func(_ ambient.I, parent cell.I, _ describe.Descriptor) bool {
				_, ok := text(parent)

				return ok
			},
			Get: func(a ambient.I, parent cell.I, _ describe.Descriptor) (cell.I, error) {
				s, _ := text(parent)

				ls := chunk.Split(kind(a), s, 0, len(s))
				elements := make([]cell.I, len(ls))

				for i, l := range ls {
					elements[i] = str.New(l.Content)
				}

				return list.New(elements...), nil
			},
		},
	}

	t.Child.Create = map[describe.Form]describe.Creator{}

	each(positional(), func(f describe.Form) {
		t.Child.Fetch[f] = byPosition
	})

	each(positional()|describe.Name, func(f describe.Form) {
		t.Child.Create[f] = describe.Creator{
			Can: func(_ ambient.I, parent cell.I, _ describe.Descriptor) bool {
				_, ok := text(parent)

				return ok
			},
			Make: func(a ambient.I, parent cell.I, d describe.Descriptor, seed cell.I) (cell.I, error) {
				return Put(x, a, name, parent, d, seed, true, true)
			},
		}
	})

	return t
}

// Delete removes the chunks of kind name that d describes from parent and
// returns the new text.
func Delete(x *index.T, a ambient.I, name string, parent cell.I, d describe.Descriptor) (cell.I, error) {
	a = ambient.Or(a)

	k, ok := chunk.Lookup(name, a.LineEnding(), a.ItemDelimiter())
	if !ok {
		return nil, &describe.GetError{Type: name, Descriptor: d}
	}

	s, ok := text(parent)
	if !ok {
		return nil, &describe.GetError{Type: name, Descriptor: d, Err: errNoText}
	}

	var l chunk.Location

	switch d.Form {
	case describe.Mass:
		return str.Empty, nil
	case describe.Name:
		l, ok = locate(a, k, parent, d.Name)
		if !ok {
			return nil, &describe.GetError{Type: name, Descriptor: d}
		}
	default:
		n := chunk.Count(k, s, 0, len(s))

		f, e, ok := Bounds(x, a, n, d)
		if !ok {
			return nil, &describe.GetError{Type: name, Descriptor: d, Err: errRelative}
		}

		f, e = chunk.Clamp(f, e, n)
		if f > e {
			return str.New(s), nil
		}

		l = chunk.Locate(k, s, 0, len(s), f, e)
	}

	visit(a, l.First, l.Last)

	return str.New(chunk.Delete(s, l)), nil
}

// Put puts seed into (before and after), before or after the chunks of
// kind name that d describes in parent and returns the new text. Missing
// lines and items are added as needed.
func Put(
	x *index.T, a ambient.I, name string, parent cell.I,
	d describe.Descriptor, seed cell.I, before, after bool,
) (cell.I, error) {
	a = ambient.Or(a)

	k, ok := chunk.Lookup(name, a.LineEnding(), a.ItemDelimiter())
	if !ok {
		return nil, &describe.CreateError{Type: name, Descriptor: d}
	}

	s, ok := text(parent)
	if !ok {
		return nil, &describe.CreateError{Type: name, Descriptor: d, Err: errNoText}
	}

	value, ok := text(seed)
	if !ok {
		return nil, &describe.CreateError{Type: name, Descriptor: d, Err: errNoText}
	}

	var info chunk.Info

	if d.Form == describe.Name {
		info, ok = chunk.ResolveContent(k, s, 0, len(s), d.Name, a.CaseSensitive())
		if !ok {
			return nil, &describe.CreateError{Type: name, Descriptor: d}
		}
	} else {
		first, last, ok := Requests(x, a, chunk.Count(k, s, 0, len(s)), d)
		if !ok {
			return nil, &describe.CreateError{Type: name, Descriptor: d, Err: errRelative}
		}

		info = chunk.Resolve(x, k, s, 0, len(s), first, last, before, after)
	}

	visit(a, info.First, info.Last)

	return str.New(chunk.Splice(info, value, before, after)), nil
}

func locate(a ambient.I, k chunk.Kind, parent cell.I, name string) (chunk.Location, bool) {
	s, ok := text(parent)
	if !ok {
		return chunk.Location{}, false
	}

	return chunk.LocateContent(k, s, 0, len(s), name, a.CaseSensitive())
}
