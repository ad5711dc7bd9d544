// Released under an MIT license. See LICENSE.

package describe

import (
	"strconv"

	"github.com/michaelmacinnis/hyper/internal/index"
)

// Descriptor identifies the element or elements an accessor should reach.
type Descriptor struct {
	Form  Form
	First index.Position
	Last  index.Position
	Name  string
}

// ByID describes the element with identifier i.
func ByID(i int) Descriptor {
	return Descriptor{Form: ID, First: index.Int(i), Last: index.Int(i)}
}

// ByIDs describes the elements with identifiers from i to j.
func ByIDs(i, j int) Descriptor {
	return Descriptor{Form: ID, First: index.Int(i), Last: index.Int(j)}
}

// ByIndex describes the element at position i.
func ByIndex(i int) Descriptor {
	return Descriptor{Form: Index, First: index.Int(i), Last: index.Int(i)}
}

// ByName describes the element called name.
func ByName(name string) Descriptor {
	return Descriptor{Form: Name, Name: name}
}

// ByOrdinal describes the element at the position p.
func ByOrdinal(p index.Position) Descriptor {
	return Descriptor{Form: Ordinal, First: p, Last: p}
}

// ByOrdinals describes the elements from position p to position q.
func ByOrdinals(p, q index.Position) Descriptor {
	return Descriptor{Form: OrdinalRange, First: p, Last: q}
}

// ByRange describes the elements at positions i to j.
func ByRange(i, j int) Descriptor {
	return Descriptor{Form: IndexRange, First: index.Int(i), Last: index.Int(j)}
}

// Every describes all elements.
func Every() Descriptor {
	return Descriptor{Form: Mass}
}

// Only describes the one element of a type that has only one.
func Only() Descriptor {
	return Descriptor{Form: Singleton}
}

// Bounds returns the positions of d. Names, singletons and masses have none.
func (d Descriptor) Bounds() (index.Position, index.Position) {
	first, last := d.First, d.Last

	if first == nil {
		first = index.Int(1)
	}

	if last == nil {
		last = first
	}

	return first, last
}

// Describe returns text naming the element of type t that d describes.
func (d Descriptor) Describe(t string) string {
	first, last := d.Bounds()

	switch d.Form {
	case Singleton:
		return "the " + t
	case Index:
		return t + " " + first.String()
	case IndexRange:
		return t + " " + first.String() + " to " + last.String()
	case Ordinal:
		return "the " + index.Ordinal(first) + " " + t
	case OrdinalRange:
		return t + "s " + index.Ordinal(first) + " to " + index.Ordinal(last)
	case ID:
		if first == last {
			return t + " id " + first.String()
		}

		return t + " id " + first.String() + " to " + last.String()
	case Name:
		return t + " " + strconv.Quote(d.Name)
	case Mass:
		return "every " + t
	}

	return t
}
