// Released under an MIT license. See LICENSE.

// Package num provides hyper's rational number type.
package num

import (
	"math/big"
	"strings"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/literal"
	"github.com/michaelmacinnis/hyper/internal/common/interface/rational"
)

const (
	name   = "number"
	digits = 20
)

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num cell from a string.
func New(s string) cell.I {
	n, ok := Parse(s)
	if !ok {
		panic("'" + s + "' is not a valid number")
	}

	return n
}

// Parse creates a num from decimal, rational or 0x prefixed hexadecimal text.
func Parse(s string) (cell.I, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	v := &big.Rat{}

	lower := strings.ToLower(s)
	if h := strings.TrimPrefix(lower, "0x"); h != lower && h != "" {
		i, ok := (&big.Int{}).SetString(h, 16)
		if !ok {
			return nil, false
		}

		return Rat(v.SetInt(i)), true
	}

	if _, ok := v.SetString(s); !ok {
		return nil, false
	}

	return Rat(v), true
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) cell.I {
	return (*num)(r)
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n. Values with a short exact decimal
// expansion are written as decimals. Others are written as a fraction.
func (n *num) String() string {
	r := n.Rat()
	if r.IsInt() {
		return r.Num().String()
	}

	d := strings.TrimRight(r.FloatString(digits), "0")

	if exact, ok := (&big.Rat{}).SetString(d); ok && exact.Cmp(r) == 0 {
		return d
	}

	return r.RatString()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
