// Released under an MIT license. See LICENSE.

// Package terminal reports properties of the controlling terminal.
package terminal

// DefaultWidth is used when the width of the terminal cannot be determined.
const DefaultWidth = 80
