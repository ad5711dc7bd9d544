// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/integer"
	"github.com/michaelmacinnis/hyper/internal/common/type/list"
	"github.com/michaelmacinnis/hyper/internal/common/type/num"
	"github.com/michaelmacinnis/hyper/internal/common/validate"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/index"
	"github.com/michaelmacinnis/hyper/internal/reader"
)

// resolve MIN MAX POS [POS]
func resolve(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(args, 3, 4)

	lo, hi := whole(m, v[0]), whole(m, v[1])

	first := at(m, v[2])
	last := first

	if len(v) == 4 {
		last = at(m, v[3])
	}

	s, e := m.Index().Resolve(lo, hi, m.Current(), m.Recent(), first, last)

	return list.New(num.Int(s), num.Int(e))
}

// span MIN MAX CODE [CODE]
func span(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(args, 3, 4)

	lo, hi := whole(m, v[0]), whole(m, v[1])

	first := index.DecodeRequest(whole(m, v[2]))
	last := first

	if len(v) == 4 {
		last = index.DecodeRequest(whole(m, v[3]))
	}

	s, e := m.Index().Span(lo, hi, first, last)

	return list.New(num.Int(s), num.Int(e))
}

func at(m Machine, w reader.Word) index.Position {
	p, ok := index.Parse(text(m, w))
	if !ok {
		panic(w.String() + " is not a position")
	}

	return p
}

func whole(m Machine, w reader.Word) int {
	return integer.Value(describe.Deref(Value(m, w)))
}
