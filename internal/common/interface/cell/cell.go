// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all hyper values.
package cell

// I (cell) is the basic unit of storage in hyper.
type I interface {
	Equal(c I) bool
	Name() string
}
