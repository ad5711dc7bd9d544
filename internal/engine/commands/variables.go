// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/validate"
	"github.com/michaelmacinnis/hyper/internal/reader"
)

// set NAME [to] VALUE
func set(m Machine, args []reader.Word) cell.I {
	if len(args) == 3 && args[1].Keyword("to") {
		args = []reader.Word{args[0], args[2]}
	}

	v := validate.Fixed(args, 2, 2)
	c := Operand(m, v[1])

	m.Assign(name(v[0]), c)

	return c
}

// setting NAME [to] VALUE
func setting(m Machine, args []reader.Word) cell.I {
	if len(args) == 3 && args[1].Keyword("to") {
		args = []reader.Word{args[0], args[2]}
	}

	v := validate.Fixed(args, 2, 2)
	c := Value(m, v[1])

	m.Configure(name(v[0]), c)

	return c
}
