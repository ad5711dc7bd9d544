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

var errRange = errors.New("position out of range") //nolint:gochecknoglobals

// List returns the table for lists. Text can be made into a list of its items.
// Elements of a list are addressed by position, or all at once.
func List(x *index.T) *describe.T {
	t := &describe.T{
		Name:  "list",
		Forms: positional() | describe.Mass,
		Morpher: describe.Morpher{
			Can: func(_ ambient.I, c cell.I) bool {
				_, ok := text(c)

				return ok
			},
			Native: list.Is,
			To: func(a ambient.I, c cell.I) cell.I {
				s, _ := text(c)

				k := chunk.Item(a.ItemDelimiter())

				ls := chunk.Split(k, s, 0, len(s))
				elements := make([]cell.I, len(ls))

				for i, l := range ls {
					elements[i] = str.New(l.Content)
				}

				return list.New(elements...)
			},
			Zero: func() cell.I {
				return list.Empty
			},
		},
	}

	elements := func(a ambient.I, parent cell.I) (*list.T, bool) {
		v, err := t.Morph(a, parent)
		if err != nil {
			return nil, false
		}

		return list.To(v), true
	}

	fetch := describe.Fetcher{
		Can: func(a ambient.I, parent cell.I, d describe.Descriptor) bool {
			_, ok := elements(a, parent)

			return ok && resolvable(a, d)
		},
		Get: func(a ambient.I, parent cell.I, d describe.Descriptor) (cell.I, error) {
			l, _ := elements(a, parent)

			f, e, _ := Bounds(x, a, l.Len(), d)
			if f < 1 || e > l.Len() || f > e {
				return nil, errRange
			}

			visit(a, f, e)

			if d.Form == describe.Index || d.Form == describe.Ordinal {
				return l.Elements()[f-1], nil
			}

			return l.Slice(f, e), nil
		},
	}

	t.Child.Fetch = map[describe.Form]describe.Fetcher{}
	each(positional(), func(f describe.Form) {
		t.Child.Fetch[f] = fetch
	})

	t.Child.Fetch[describe.Mass] = describe.Fetcher{
		Can: func(a ambient.I, parent cell.I, _ describe.Descriptor) bool {
			_, ok := elements(a, parent)

			return ok
		},
		Get: func(a ambient.I, parent cell.I, _ describe.Descriptor) (cell.I, error) {
			l, _ := elements(a, parent)

			return l, nil
		},
	}

	insert := describe.Creator{
		Can: func(a ambient.I, parent cell.I, _ describe.Descriptor) bool {
			_, ok := elements(a, parent)

			return ok
		},
		Make: func(a ambient.I, parent cell.I, d describe.Descriptor, seed cell.I) (cell.I, error) {
			l, _ := elements(a, parent)

			f, _, ok := Bounds(x, a, l.Len(), d)
			if !ok {
				return nil, errRelative
			}

			if seed == nil {
				seed = str.Empty
			}

			visit(a, f, f)

			return l.Insert(f, seed), nil
		},
	}

	t.Child.Create = map[describe.Form]describe.Creator{
		describe.Index:   insert,
		describe.Ordinal: insert,
	}

	return t
}
