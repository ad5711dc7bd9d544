// Released under an MIT license. See LICENSE.

package describe

import (
	"strings"
)

// Form is a set of ways to address values of a type.
type Form uint8

// Forms.
const (
	Singleton Form = 1 << iota
	Index
	IndexRange
	Ordinal
	OrdinalRange
	ID
	Name
	Mass
)

//nolint:gochecknoglobals
var names = []string{
	"singleton", "index", "index range", "ordinal",
	"ordinal range", "id", "name", "mass",
}

// Has returns true if every form in g is in f.
func (f Form) Has(g Form) bool {
	return f&g == g
}

func (f Form) String() string {
	var parts []string

	for i, n := range names {
		if f.Has(1 << i) {
			parts = append(parts, n)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}
