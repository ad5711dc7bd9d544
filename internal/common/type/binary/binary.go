// Released under an MIT license. See LICENSE.

// Package binary provides hyper's byte string type.
package binary

import (
	"bytes"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/literal"
)

const name = "binary"

// T (binary) wraps a byte slice.
type T struct {
	b []byte
}

type binary = T

// New creates a binary cell holding a copy of b.
func New(b []byte) cell.I {
	return &binary{b: append([]byte(nil), b...)}
}

// Parse creates a binary from text made of pairs of hex digits.
// Whitespace between pairs is ignored.
func Parse(s string) (cell.I, bool) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)

	if len(compact)%2 != 0 {
		return nil, false
	}

	b, err := hex.DecodeString(compact)
	if err != nil {
		return nil, false
	}

	return &binary{b: b}, true
}

// Bytes returns a copy of the bytes in the binary b.
func (b *binary) Bytes() []byte {
	return append([]byte(nil), b.b...)
}

// Equal returns true if c is a binary with the same bytes.
func (b *binary) Equal(c cell.I) bool {
	return Is(c) && bytes.Equal(b.b, To(c).b)
}

// Literal returns the literal representation of the binary b.
func (b *binary) Literal() string {
	return "<" + b.String() + ">"
}

// Name returns the type name for the binary b.
func (b *binary) Name() string {
	return name
}

// String returns the bytes of the binary b as hex digits.
func (b *binary) String() string {
	return hex.EncodeToString(b.b)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t binary

	// The binary type is a cell.
	_ = cell.I(&t)

	// The binary type has a literal representation.
	_ = literal.I(&t)

	// The binary type is a stringer.
	_ = common.Stringer(&t)
}
