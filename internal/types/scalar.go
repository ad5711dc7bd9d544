// Released under an MIT license. See LICENSE.

package types

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/rational"
	"github.com/michaelmacinnis/hyper/internal/common/type/binary"
	"github.com/michaelmacinnis/hyper/internal/common/type/boolean"
	"github.com/michaelmacinnis/hyper/internal/common/type/num"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/describe"
)

// Binary returns the table for byte strings. Text made of hex digit pairs
// can be made into binary.
func Binary() *describe.T {
	return &describe.T{
		Name: "binary",
		Morpher: parsed(binary.Is, binary.Parse, func() cell.I {
			return binary.New(nil)
		}),
	}
}

// Boolean returns the table for booleans. The text true or false, in any
// case, can be made into a boolean.
func Boolean() *describe.T {
	return &describe.T{
		Name: "boolean",
		Morpher: parsed(boolean.Is, boolean.Parse, func() cell.I {
			return boolean.False
		}),
	}
}

// Number returns the table for numbers.
func Number() *describe.T {
	m := parsed(num.Is, num.Parse, func() cell.I {
		return num.Int(0)
	})

	textual := m.Can
	m.Can = func(a ambient.I, c cell.I) bool {
		return rational.Is(c) || textual(a, c)
	}

	convert := m.To
	m.To = func(a ambient.I, c cell.I) cell.I {
		if rational.Is(c) {
			return num.Rat(rational.Number(c))
		}

		return convert(a, c)
	}

	return &describe.T{
		Name:    "number",
		Morpher: m,
	}
}

// String returns the table for strings. Anything with text is a string.
func String() *describe.T {
	return &describe.T{
		Name: "string",
		Morpher: describe.Morpher{
			Can: func(_ ambient.I, c cell.I) bool {
				_, ok := text(c)

				return ok
			},
			Native: str.Is,
			To: func(_ ambient.I, c cell.I) cell.I {
				s, _ := text(c)

				return str.New(s)
			},
			Zero: func() cell.I {
				return str.Empty
			},
		},
	}
}

func parsed(
	native func(cell.I) bool,
	parse func(string) (cell.I, bool),
	zero func() cell.I,
) describe.Morpher {
	try := func(c cell.I) (cell.I, bool) {
		s, ok := text(c)
		if !ok {
			return nil, false
		}

		return parse(s)
	}

	return describe.Morpher{
		Can: func(_ ambient.I, c cell.I) bool {
			_, ok := try(c)

			return ok
		},
		Native: native,
		To: func(_ ambient.I, c cell.I) cell.I {
			v, _ := try(c)

			return v
		},
		Zero: zero,
	}
}
