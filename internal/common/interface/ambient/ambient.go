// Released under an MIT license. See LICENSE.

// Package ambient defines the settings and permissions an evaluator
// supplies to the addressing core.
package ambient

//go:generate mockgen -destination=mocks/ambient.go -package=mocks . I

// I (ambient) is the evaluator state that chunk and type operations consult.
type I interface {
	CaseSensitive() bool
	ItemDelimiter() string
	LineEnding() string
	Permitted(action string) bool
}

// Navigation is implemented by evaluators that track the chunk most
// recently reached. Accessors report the positions they resolve to Visit.
type Navigation interface {
	Current() int
	Recent() int
	Visit(first, last int)
}

// Defaults for callers that have no evaluator state.
const (
	ItemDelimiter = ","
	LineEnding    = "\n"
)

type fixed struct{}

// Default returns an I with default settings that permits nothing.
func Default() I {
	return fixed{}
}

func (fixed) CaseSensitive() bool { return false }

func (fixed) ItemDelimiter() string { return ItemDelimiter }

func (fixed) LineEnding() string { return LineEnding }

func (fixed) Permitted(string) bool { return false }

// Or returns a if it is not nil and Default() otherwise.
func Or(a I) I {
	if a == nil {
		return Default()
	}

	return a
}
