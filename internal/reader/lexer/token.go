// Released under an MIT license. See LICENSE.

package lexer

// Class identifies the kind of a token.
type Class rune

// Token classes. Terminators use the character itself ('\n' or ';').
const (
	DollarSingleQuoted Class = -(iota + 2)
	DoubleQuoted
	SingleQuoted
	Space
	Variable
	Word
)

// Token is a scanned token and the line it started on.
type Token struct {
	Class Class
	Line  int
	Value string
}

// Is returns true if the token t is of class c.
func (t *Token) Is(c Class) bool {
	return t.Class == c
}

// Terminates returns true if the token t ends a command.
func (t *Token) Terminates() bool {
	return t.Class == '\n' || t.Class == ';'
}
