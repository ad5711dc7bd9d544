// Released under an MIT license. See LICENSE.

package validate

import "testing"

func expectPanic(t *testing.T, expected string, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", expected)
		}

		if s, ok := r.(string); !ok || s != expected {
			t.Fatalf("expected panic %q, got %v", expected, r)
		}
	}()

	fn()
}

func TestFixed(t *testing.T) {
	if v := Fixed([]string{"a", "b"}, 1, 2); len(v) != 2 {
		t.Fatalf("Fixed = %v", v)
	}

	expectPanic(t, "expected 2 arguments, passed 1", func() {
		Fixed([]string{"a"}, 2, 2)
	})

	expectPanic(t, "expected 1 to 2 arguments, passed 3", func() {
		Fixed([]string{"a", "b", "c"}, 1, 2)
	})
}

func TestVariadic(t *testing.T) {
	v, rest := Variadic([]int{1, 2, 3}, 1, 2)
	if len(v) != 2 || len(rest) != 1 || rest[0] != 3 {
		t.Fatalf("Variadic = %v, %v", v, rest)
	}

	expectPanic(t, "expected 1 argument, passed 0", func() {
		Variadic([]int{}, 1, 2)
	})
}
