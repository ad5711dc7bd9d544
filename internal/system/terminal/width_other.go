// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package terminal

// Width returns DefaultWidth.
func Width(int) int {
	return DefaultWidth
}
