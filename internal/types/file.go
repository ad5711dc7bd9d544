// Released under an MIT license. See LICENSE.

package types

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/type/list"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/index"
	"github.com/michaelmacinnis/hyper/internal/system/cache"
)

// Actions that must be permitted before files are touched.
const (
	FileRead  = "file read"
	FileWrite = "file write"
)

var (
	errDenied  = errors.New("not permitted")        //nolint:gochecknoglobals
	errMissing = errors.New("no such file")         //nolint:gochecknoglobals
	errOutside = errors.New("not in the directory") //nolint:gochecknoglobals
)

// File returns the table for files in dir. Files exist only at the root
// level. They are fetched by name (their contents), by position among the
// sorted directory entries (their names), or all at once (every name, or
// every name matching a pattern).
func File(x *index.T, dir string) *describe.T {
	t := &describe.T{
		Name:  "file",
		Forms: positional() | describe.Name | describe.Mass,
	}

	names := func(a ambient.I) ([]string, error) {
		if !a.Permitted(FileRead) {
			return nil, errDenied
		}

		return cache.Files(dir)
	}

	byPosition := describe.Fetcher{
		Get: func(a ambient.I, _ cell.I, d describe.Descriptor) (cell.I, error) {
			ns, err := names(a)
			if err != nil {
				return nil, err
			}

			f, l, ok := Bounds(x, a, len(ns), d)
			if !ok {
				return nil, errRelative
			}

			if f < 1 || l > len(ns) || f > l {
				return nil, errMissing
			}

			visit(a, f, l)

			if d.Form == describe.Index || d.Form == describe.Ordinal {
				return str.New(ns[f-1]), nil
			}

			elements := make([]cell.I, 0, l-f+1)
			for _, n := range ns[f-1 : l] {
				elements = append(elements, str.New(n))
			}

			return list.New(elements...), nil
		},
	}

	t.Root.Fetch = map[describe.Form]describe.Fetcher{
		describe.Name: {
			Get: func(a ambient.I, _ cell.I, d describe.Descriptor) (cell.I, error) {
				if !a.Permitted(FileRead) {
					return nil, errDenied
				}

				path, err := within(dir, d.Name)
				if err != nil {
					return nil, err
				}

				b, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}

				return str.New(string(b)), nil
			},
		},
		describe.Mass: {
			Get: func(a ambient.I, _ cell.I, d describe.Descriptor) (cell.I, error) {
				ns, err := names(a)
				if err != nil {
					return nil, err
				}

				elements := []cell.I{}

				for _, n := range ns {
					if d.Name != "" {
						ok, err := adapted.Match(d.Name, n)
						if err != nil {
							return nil, err
						}

						if !ok {
							continue
						}
					}

					elements = append(elements, str.New(n))
				}

				return list.New(elements...), nil
			},
		},
	}

	each(positional(), func(f describe.Form) {
		t.Root.Fetch[f] = byPosition
	})

	t.Root.Create = map[describe.Form]describe.Creator{
		describe.Name: {
			Make: func(a ambient.I, _ cell.I, d describe.Descriptor, seed cell.I) (cell.I, error) {
				if !a.Permitted(FileWrite) {
					return nil, errDenied
				}

				s, ok := text(seed)
				if !ok {
					return nil, errNoText
				}

				path, err := within(dir, d.Name)
				if err != nil {
					return nil, err
				}

				err = os.WriteFile(path, []byte(s), 0o644) //nolint:gosec
				if err != nil {
					return nil, err
				}

				cache.Invalidate(dir)

				return str.New(s), nil
			},
		},
	}

	return t
}

// within returns the path to the file name in dir. Names that would
// leave dir are rejected.
func within(dir, name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", errOutside
	}

	return filepath.Join(dir, name), nil
}
