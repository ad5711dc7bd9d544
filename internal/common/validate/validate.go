// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to a command.
package validate

import (
	"fmt"
)

// Variadic returns the first max arguments in actual, and the rest. It
// panics if fewer than min arguments were passed.
func Variadic[T any](actual []T, min, max int) ([]T, []T) {
	if len(actual) < min {
		s := Count(min, "argument", "s")
		panic(fmt.Sprintf("expected %s, passed %d", s, len(actual)))
	}

	if len(actual) <= max {
		return actual, nil
	}

	return actual[:max], actual[max:]
}

// Fixed returns the arguments in actual. It panics if fewer than min or
// more than max arguments were passed.
func Fixed[T any](actual []T, min, max int) []T {
	expected, rest := Variadic(actual, min, max)
	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min < max {
			s = fmt.Sprintf("%d to %s", min, s)
		}

		panic(fmt.Sprintf("expected %s, passed %d", s, len(actual)))
	}

	return expected
}

// Count returns n followed by label, pluralized with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
