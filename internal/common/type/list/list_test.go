// Released under an MIT license. See LICENSE.

package list

import (
	"testing"

	"github.com/michaelmacinnis/hyper/internal/common/type/str"
)

func texts(l *list) []string {
	ss := []string{}

	for _, e := range l.Elements() {
		ss = append(ss, e.(*str.T).String())
	}

	return ss
}

func TestInsert(t *testing.T) {
	l := New(str.New("a"), str.New("c")).(*list)

	tests := []struct {
		at       int
		expected string
	}{
		{-3, "b,a,c"},
		{1, "b,a,c"},
		{2, "a,b,c"},
		{3, "a,c,b"},
		{9, "a,c,b"},
	}

	for _, tt := range tests {
		if actual := To(l.Insert(tt.at, str.New("b"))).String(); actual != tt.expected {
			t.Errorf("Insert(%d) = %s, expected %s", tt.at, actual, tt.expected)
		}
	}

	if l.Len() != 2 {
		t.Fatal("Insert should not modify the original list")
	}
}

func TestSlice(t *testing.T) {
	l := New(str.New("a"), str.New("b"), str.New("c")).(*list)

	if s := texts(To(l.Slice(2, 3))); len(s) != 2 || s[0] != "b" || s[1] != "c" {
		t.Fatalf("Slice(2, 3) = %v", s)
	}

	if To(l.Slice(3, 2)).Len() != 0 {
		t.Fatal("Slice(3, 2) should be empty")
	}
}

func TestEqual(t *testing.T) {
	a := New(str.New("x"), nil)
	b := New(str.New("x"), nil)

	if !a.Equal(b) {
		t.Fatal("lists with equal elements should be equal")
	}

	if a.Equal(New(str.New("x"))) {
		t.Fatal("lists of different lengths should not be equal")
	}
}

func TestLiteral(t *testing.T) {
	l := New(str.New("a"), str.New("b")).(*list)

	if s := l.Literal(); s != `[$'a', $'b']` {
		t.Fatalf("Literal() = %s", s)
	}

	if s := l.Join("|"); s != "a|b" {
		t.Fatalf("Join(|) = %s", s)
	}
}
