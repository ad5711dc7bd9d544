// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/validate"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/reader"
)

// files [PATTERN]
func files(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(args, 0, 1)

	d := describe.Every()
	if len(v) == 1 {
		d.Name = text(m, v[0])
	}

	return root(m, d)
}

// read NAME
func read(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(args, 1, 1)

	return root(m, describe.ByName(text(m, v[0])))
}

// write NAME VALUE
func write(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(args, 2, 2)

	c, err := table(m, "file", nil).Create(m, nil, describe.ByName(text(m, v[0])), Operand(m, v[1]))
	if err != nil {
		panic(err)
	}

	return c
}

func root(m Machine, d describe.Descriptor) cell.I {
	c, err := table(m, "file", nil).Get(m, nil, d)
	if err != nil {
		panic(err)
	}

	return c
}
