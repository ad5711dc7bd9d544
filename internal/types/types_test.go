// Released under an MIT license. See LICENSE.

package types

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/sequence"
	"github.com/michaelmacinnis/hyper/internal/common/struct/random"
	"github.com/michaelmacinnis/hyper/internal/common/type/list"
	"github.com/michaelmacinnis/hyper/internal/common/type/num"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/index"
)

type settings struct {
	caseSensitive bool
	permitted     map[string]bool
}

func (s *settings) CaseSensitive() bool          { return s.caseSensitive }
func (s *settings) ItemDelimiter() string        { return "," }
func (s *settings) LineEnding() string           { return "\n" }
func (s *settings) Permitted(action string) bool { return s.permitted[action] }

type navigating struct {
	settings
	current, recent int
}

func (n *navigating) Current() int { return n.current }
func (n *navigating) Recent() int  { return n.recent }

func (n *navigating) Visit(first, last int) {
	n.current, n.recent = first, last
}

func fixture() *index.T {
	return index.New(random.New(1))
}

func textOf(t *testing.T, c cell.I) string {
	t.Helper()

	s, ok := common.Text(c)
	if !ok {
		t.Fatalf("%v has no text", c)
	}

	return s
}

func TestZeroRoundTrip(t *testing.T) {
	r := New(fixture())

	for _, n := range r.Names() {
		d, _ := r.Lookup(n)
		if d.Zero == nil {
			continue
		}

		v, err := d.Morph(nil, d.Zero())
		if err != nil {
			t.Fatalf("%s: Morph(zero) failed: %v", n, err)
		}

		if !v.Equal(d.Zero()) {
			t.Errorf("%s: Morph(zero) = %v", n, v)
		}
	}
}

func TestTypes(t *testing.T) {
	r := New(fixture())

	ts := r.Types(nil, str.New("true"))
	for _, n := range []string{"boolean", "string", "word", "item"} {
		if !slices.Contains(ts, n) {
			t.Errorf("Types(true) = %v, missing %s", ts, n)
		}
	}

	if slices.Contains(ts, "number") {
		t.Errorf("Types(true) = %v, should not include number", ts)
	}

	ts = r.Types(nil, str.New("0x1F"))
	if !slices.Contains(ts, "number") {
		t.Errorf("Types(0x1F) = %v, missing number", ts)
	}
}

func TestSingleElementUnwrap(t *testing.T) {
	n := Number()

	v, err := n.Morph(nil, list.New(str.New("42")))
	if err != nil {
		t.Fatalf("Morph([42]) failed: %v", err)
	}

	if !v.Equal(num.Int(42)) {
		t.Fatalf("Morph([42]) = %v", v)
	}

	if n.CanMorph(nil, list.New(str.New("1"), str.New("2"))) {
		t.Fatal("a two element list should not be a number")
	}
}

func TestListMorph(t *testing.T) {
	l, err := List(fixture()).Morph(&settings{}, str.New("a,b,c"))
	if err != nil {
		t.Fatalf("Morph failed: %v", err)
	}

	if s, ok := l.(sequence.I); !ok || s.Len() != 3 {
		t.Fatalf("Morph(a,b,c) = %v", l)
	}
}

func TestListGet(t *testing.T) {
	x := fixture()
	l := List(x)
	parent := list.New(str.New("a"), str.New("b"), str.New("c"))

	v, err := l.Get(&settings{}, parent, describe.ByIndex(2))
	if err != nil || textOf(t, v) != "b" {
		t.Fatalf("element 2 = %v, %v", v, err)
	}

	v, err = l.Get(&settings{}, parent, describe.ByOrdinal(index.Int(-1)))
	if err != nil || textOf(t, v) != "c" {
		t.Fatalf("last element = %v, %v", v, err)
	}

	v, err = l.Get(&settings{}, parent, describe.ByRange(2, 3))
	if err != nil || textOf(t, v) != "b,c" {
		t.Fatalf("elements 2 to 3 = %v, %v", v, err)
	}

	_, err = l.Get(&settings{}, parent, describe.ByIndex(4))

	var g *describe.GetError
	if !errors.As(err, &g) {
		t.Fatalf("element 4 returned %v, expected GetError", err)
	}
}

func TestListSingleElement(t *testing.T) {
	l := List(fixture())
	a := &settings{}

	one := list.New(str.New("a,b"))

	v, err := l.Morph(a, one)
	if err != nil || v != one {
		t.Fatalf("Morph([a,b]) = %v, %v, expected the list itself", v, err)
	}

	v, err = l.Get(a, one, describe.ByIndex(1))
	if err != nil || textOf(t, v) != "a,b" {
		t.Fatalf("element 1 of [a,b] = %v, %v", v, err)
	}

	inner := list.New(str.New("a"), str.New("b"))

	v, err = l.Get(a, list.New(inner), describe.ByIndex(1))
	if err != nil || !v.Equal(inner) {
		t.Fatalf("element 1 of [[a, b]] = %v, %v", v, err)
	}
}

func TestAnyDrawsOnce(t *testing.T) {
	x, y := fixture(), fixture()
	s := str.New("a b c d e f g h i j")
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	elements := list.New(str.New("1"), str.New("2"), str.New("3"))

	for i := 0; i < 20; i++ {
		v, err := Chunk(x, "word").Get(&settings{}, s, describe.ByOrdinal(index.Any))
		if err != nil {
			t.Fatal(err)
		}

		f, _ := y.Span(1, len(words), index.Any, index.Any)
		if textOf(t, v) != words[f-1] {
			t.Fatalf("draw %d: any word = %v, expected %s", i, v, words[f-1])
		}

		v, err = List(x).Get(&settings{}, elements, describe.ByOrdinal(index.Any))
		if err != nil {
			t.Fatal(err)
		}

		f, _ = y.Span(1, 3, index.Any, index.Any)
		if textOf(t, v) != common.String(elements.(*list.T).Elements()[f-1]) {
			t.Fatalf("draw %d: any element = %v, expected element %d", i, v, f)
		}
	}
}

func TestListInsert(t *testing.T) {
	l := List(fixture())
	parent := list.New(str.New("a"), str.New("c"))

	v, err := l.Create(&settings{}, parent, describe.ByIndex(2), str.New("b"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if textOf(t, v) != "a,b,c" {
		t.Fatalf("Create = %v", v)
	}
}

func TestChunkGet(t *testing.T) {
	x := fixture()
	s := str.New("one two three")

	v, err := Chunk(x, "word").Get(&settings{}, s, describe.ByOrdinal(index.Int(-1)))
	if err != nil || textOf(t, v) != "three" {
		t.Fatalf("last word = %v, %v", v, err)
	}

	v, err = Chunk(x, "word").Get(&settings{}, s, describe.ByRange(2, 9))
	if err != nil || textOf(t, v) != "two three" {
		t.Fatalf("words 2 to 9 = %v, %v", v, err)
	}

	v, err = Chunk(x, "character").Get(&settings{}, s, describe.ByIndex(20))
	if err != nil || textOf(t, v) != "" {
		t.Fatalf("character 20 = %v, %v", v, err)
	}

	v, err = Chunk(x, "word").Get(&settings{}, s, describe.Every())
	if err != nil {
		t.Fatalf("every word failed: %v", err)
	}

	if sq, ok := v.(sequence.I); !ok || sq.Len() != 3 {
		t.Fatalf("every word = %v", v)
	}
}

func TestChunkName(t *testing.T) {
	x := fixture()
	s := str.New("a,B,c")

	v, err := Chunk(x, "item").Get(&settings{}, s, describe.ByName("b"))
	if err != nil || textOf(t, v) != "B" {
		t.Fatalf(`item "b" = %v, %v`, v, err)
	}

	_, err = Chunk(x, "item").Get(&settings{caseSensitive: true}, s, describe.ByName("b"))
	if err == nil {
		t.Fatal(`case sensitive item "b" should not be found`)
	}
}

func TestChunkNavigation(t *testing.T) {
	x := fixture()
	s := str.New("one two three")
	a := &navigating{}
	w := Chunk(x, "word")

	_, err := w.Get(a, s, describe.ByIndex(2))
	if err != nil {
		t.Fatalf("word 2 failed: %v", err)
	}

	v, err := w.Get(a, s, describe.ByOrdinal(index.Next))
	if err != nil || textOf(t, v) != "three" {
		t.Fatalf("next word = %v, %v", v, err)
	}

	v, err = w.Get(a, s, describe.ByOrdinal(index.Next))
	if err != nil || textOf(t, v) != "one" {
		t.Fatalf("next word after the last = %v, %v", v, err)
	}

	_, err = w.Get(&settings{}, s, describe.ByOrdinal(index.Next))
	if err == nil {
		t.Fatal("next word without navigation should fail")
	}
}

func TestPut(t *testing.T) {
	x := fixture()

	tests := []struct {
		name          string
		kind          string
		parent        string
		d             describe.Descriptor
		value         string
		before, after bool
		expected      string
	}{
		{"into", "item", "a,b,c", describe.ByIndex(2), "x", true, true, "a,x,c"},
		{"before", "item", "a,b,c", describe.ByIndex(2), "x", true, false, "a,xb,c"},
		{"after", "word", "one two", describe.ByIndex(1), "!", false, true, "one! two"},
		{"extend", "item", "a,b", describe.ByIndex(5), "x", true, true, "a,b,,,x"},
		{"prepend", "line", "a", describe.ByIndex(0), "x", true, true, "x\na"},
		{"named", "item", "a,b", describe.ByName("B"), "x", true, true, "a,x"},
	}

	for _, tt := range tests {
		v, err := Put(x, &settings{}, tt.kind, str.New(tt.parent), tt.d, str.New(tt.value), tt.before, tt.after)
		if err != nil {
			t.Errorf("%s: Put failed: %v", tt.name, err)

			continue
		}

		if actual := textOf(t, v); actual != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, actual)
		}
	}
}

func TestPutThroughCreate(t *testing.T) {
	v, err := Chunk(fixture(), "item").Create(&settings{}, str.New("a"), describe.ByIndex(3), str.New("c"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if textOf(t, v) != "a,,c" {
		t.Fatalf("Create = %v", v)
	}
}

func TestDelete(t *testing.T) {
	x := fixture()

	v, err := Delete(x, &settings{}, "item", str.New("a,b,c"), describe.ByIndex(2))
	if err != nil || textOf(t, v) != "a,c" {
		t.Fatalf("delete item 2 = %v, %v", v, err)
	}

	v, err = Delete(x, &settings{}, "word", str.New("one two"), describe.ByIndex(7))
	if err != nil || textOf(t, v) != "one two" {
		t.Fatalf("delete word 7 = %v, %v", v, err)
	}

	v, err = Delete(x, &settings{}, "word", str.New("one two"), describe.Every())
	if err != nil || textOf(t, v) != "" {
		t.Fatalf("delete every word = %v, %v", v, err)
	}

	_, err = Delete(x, &settings{}, "item", str.New("a,b"), describe.ByName("z"))
	if err == nil {
		t.Fatal(`delete item "z" should fail`)
	}
}

func TestChunkMorph(t *testing.T) {
	w := Chunk(fixture(), "word")

	if !w.CanMorph(&settings{}, str.New("hello")) {
		t.Fatal("hello should be a word")
	}

	if w.CanMorph(&settings{}, str.New("hello world")) {
		t.Fatal("hello world should not be a word")
	}

	if w.Zero != nil {
		t.Fatal("words should have no zero")
	}

	if Chunk(fixture(), "line").Zero == nil {
		t.Fatal("lines should have a zero")
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()

	for _, n := range []string{"b.txt", "a.txt", "c.md"} {
		err := os.WriteFile(filepath.Join(dir, n), []byte(n), 0o600)
		if err != nil {
			t.Fatal(err)
		}
	}

	f := File(fixture(), dir)
	a := &settings{permitted: map[string]bool{FileRead: true}}

	v, err := f.Get(a, nil, describe.ByName("b.txt"))
	if err != nil || textOf(t, v) != "b.txt" {
		t.Fatalf(`file "b.txt" = %v, %v`, v, err)
	}

	v, err = f.Get(a, nil, describe.ByIndex(1))
	if err != nil || textOf(t, v) != "a.txt" {
		t.Fatalf("file 1 = %v, %v", v, err)
	}

	v, err = f.Get(a, nil, describe.Descriptor{Form: describe.Mass, Name: "*.txt"})
	if err != nil || textOf(t, v) != "a.txt,b.txt" {
		t.Fatalf("every file = %v, %v", v, err)
	}

	_, err = f.Get(&settings{}, nil, describe.ByName("b.txt"))
	if !errors.Is(err, errDenied) {
		t.Fatalf("unpermitted read returned %v", err)
	}

	var g *describe.GetError
	if !errors.As(err, &g) {
		t.Fatalf("unpermitted read returned %T, expected GetError", err)
	}

	_, err = f.Create(a, nil, describe.ByName("d.txt"), str.New("d"))
	if !errors.Is(err, errDenied) {
		t.Fatalf("unpermitted write returned %v", err)
	}

	a.permitted[FileWrite] = true

	_, err = f.Create(a, nil, describe.ByName("d.txt"), str.New("d"))
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "d.txt"))
	if err != nil || string(b) != "d" {
		t.Fatalf("d.txt = %q, %v", b, err)
	}

	v, err = f.Get(a, nil, describe.Descriptor{Form: describe.Mass, Name: "*.txt"})
	if err != nil || textOf(t, v) != "a.txt,b.txt,d.txt" {
		t.Fatalf("every file after write = %v, %v", v, err)
	}
}

func TestFileOutsideDirectory(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "files")

	if err := os.Mkdir(dir, 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(parent, "secret"), []byte("s"), 0o600); err != nil {
		t.Fatal(err)
	}

	f := File(fixture(), dir)
	a := &settings{permitted: map[string]bool{FileRead: true, FileWrite: true}}

	for _, name := range []string{"../secret", filepath.Join(parent, "secret"), ""} {
		_, err := f.Get(a, nil, describe.ByName(name))
		if !errors.Is(err, errOutside) {
			t.Errorf("reading %q returned %v", name, err)
		}
	}

	_, err := f.Create(a, nil, describe.ByName("../escaped"), str.New("x"))
	if !errors.Is(err, errOutside) {
		t.Fatalf("writing ../escaped returned %v", err)
	}

	if _, err := os.Stat(filepath.Join(parent, "escaped")); !os.IsNotExist(err) {
		t.Fatalf("../escaped was written: %v", err)
	}
}
