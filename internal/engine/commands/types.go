// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/type/boolean"
	"github.com/michaelmacinnis/hyper/internal/common/type/list"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/common/validate"
	"github.com/michaelmacinnis/hyper/internal/reader"
)

// is VALUE [a|an] TYPE
func is(m Machine, args []reader.Word) cell.I {
	if len(args) == 3 && (args[1].Keyword("a") || args[1].Keyword("an")) {
		args = []reader.Word{args[0], args[2]}
	}

	v := validate.Fixed(args, 2, 2)

	ok, err := m.Registry().Is(m, Operand(m, v[0]), text(m, v[1]))
	if err != nil {
		panic(err)
	}

	return boolean.Bool(ok)
}

// morph TYPE VALUE [VALUE]
func morph(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(args, 2, 3)

	t, err := m.Registry().Must(text(m, v[0]))
	if err != nil {
		panic(err)
	}

	var c cell.I
	if len(v) == 3 {
		c, err = t.MorphPair(m, Operand(m, v[1]), Operand(m, v[2]))
	} else {
		c, err = t.Morph(m, Operand(m, v[1]))
	}

	if err != nil {
		panic(err)
	}

	return c
}

// types VALUE
func typeset(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(args, 1, 1)

	ns := m.Registry().Types(m, Operand(m, v[0]))
	elements := make([]cell.I, len(ns))

	for i, n := range ns {
		elements[i] = str.New(n)
	}

	return list.New(elements...)
}
