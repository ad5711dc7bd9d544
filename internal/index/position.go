// Released under an MIT license. See LICENSE.

package index

import (
	"math"
	"strconv"
	"strings"
)

// Position is a request for an element: an Int, a Marker or a Relative.
type Position interface {
	Code() int
	String() string
}

// Request is a Position that can be resolved without navigation state.
// Only Int and Marker satisfy it.
type Request interface {
	Position
	absolute()
}

// Int is a concrete position. Negative values count back from the end.
type Int int

// Marker is a named position that depends only on the bounds.
type Marker int

// Relative is a named position that depends on navigation state.
type Relative int

// Markers.
const (
	Any Marker = iota
	Middle
)

// Relative markers.
const (
	Previous Relative = iota + 2
	Current
	Next
	Recent
)

// Sentinel codes are the integer encoding for markers. They are chosen
// to be far outside the range of any real position.
const base = math.MinInt32

// Code returns the integer value of the Int i.
func (i Int) Code() int {
	return int(i)
}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

func (Int) absolute() {}

// Code returns the sentinel code for the Marker m.
func (m Marker) Code() int {
	return base + int(m)
}

func (m Marker) String() string {
	if m == Middle {
		return "middle"
	}

	return "any"
}

func (Marker) absolute() {}

// Code returns the sentinel code for the Relative r.
func (r Relative) Code() int {
	return base + int(r)
}

func (r Relative) String() string {
	switch r {
	case Previous:
		return "previous"
	case Current:
		return "current"
	case Next:
		return "next"
	}

	return "recent"
}

// Decode converts an integer code to a Position, recognising every marker.
func Decode(code int) Position {
	switch code {
	case Previous.Code():
		return Previous
	case Current.Code():
		return Current
	case Next.Code():
		return Next
	case Recent.Code():
		return Recent
	}

	return DecodeRequest(code)
}

// DecodeRequest converts an integer code to a Request. Only the Any and
// Middle sentinels are recognised. The relative sentinels are ordinary
// negative integers here and so count back from the end.
func DecodeRequest(code int) Request {
	switch code {
	case Any.Code():
		return Any
	case Middle.Code():
		return Middle
	}

	return Int(code)
}

//nolint:gochecknoglobals
var ordinals = []string{
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
}

// Parse converts a word to a Position. Integers, ordinal words ("first"
// through "tenth", "last"), and the marker names are accepted.
func Parse(word string) (Position, bool) {
	word = strings.ToLower(strings.TrimSpace(word))

	if i, err := strconv.Atoi(word); err == nil {
		return Int(i), true
	}

	switch word {
	case "last":
		return Int(-1), true
	case "any":
		return Any, true
	case "middle", "mid":
		return Middle, true
	case "previous", "prev":
		return Previous, true
	case "current", "this":
		return Current, true
	case "next":
		return Next, true
	case "recent":
		return Recent, true
	}

	for i, o := range ordinals {
		if word == o {
			return Int(i + 1), true
		}
	}

	return nil, false
}

// Ordinal returns the ordinal word for p, if there is one, or p's text.
func Ordinal(p Position) string {
	if i, ok := p.(Int); ok {
		if i == -1 {
			return "last"
		}

		if i > 0 && int(i) <= len(ordinals) {
			return ordinals[i-1]
		}
	}

	return p.String()
}
