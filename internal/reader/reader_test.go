// Released under an MIT license. See LICENSE.

package reader

import "testing"

func words(t *testing.T, c Command) []string {
	t.Helper()

	ss := make([]string, len(c.Words))
	for i, w := range c.Words {
		ss[i] = w.String()
	}

	return ss
}

func TestScan(t *testing.T) {
	r := New()

	cs, err := r.Scan("get item 2 of 'a,b,c'; count words in $x\n")
	if err != nil {
		t.Fatal(err)
	}

	if len(cs) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cs))
	}

	if w := cs[0].Words; len(w) != 5 || !w[0].Keyword("GET") || !w[3].Keyword("of") {
		t.Fatalf("first command = %v", words(t, cs[0]))
	}

	if s, ok := cs[0].Words[4].Bare(); ok {
		t.Fatalf("a quoted word should not be bare, got %q", s)
	}

	last := cs[1].Words[3]
	if len(last) != 1 || !last[0].Variable || last[0].Text != "x" {
		t.Fatalf("expected variable x, got %v", last)
	}
}

func TestConcatenation(t *testing.T) {
	r := New()

	cs, err := r.Scan(`put a'b'"c"$'\t' into x` + "\n")
	if err != nil {
		t.Fatal(err)
	}

	w := cs[0].Words[1]
	if len(w) != 4 || w[3].Text != "\t" {
		t.Fatalf("expected four parts, got %v", w)
	}
}

func TestIncomplete(t *testing.T) {
	r := New()

	cs, err := r.Scan("put \"one\n")
	if err != nil || len(cs) != 0 {
		t.Fatalf("Scan = %v, %v", cs, err)
	}

	if !r.Incomplete() {
		t.Fatal("expected an incomplete command")
	}

	cs, err = r.Scan("two\" into x\n")
	if err != nil || len(cs) != 1 {
		t.Fatalf("Scan = %v, %v", cs, err)
	}

	if s := cs[0].Words[1][0].Text; s != "one\ntwo" {
		t.Fatalf("expected one\\ntwo, got %q", s)
	}

	if r.Incomplete() {
		t.Fatal("expected no incomplete command")
	}
}

func TestUnescape(t *testing.T) {
	r := New()

	cs, err := r.Scan(`set x a\ b` + "\n")
	if err != nil {
		t.Fatal(err)
	}

	if s, ok := cs[0].Words[2].Bare(); !ok || s != "a b" {
		t.Fatalf("expected a b, got %q", s)
	}
}

func TestBadEscape(t *testing.T) {
	r := New()

	_, err := r.Scan(`set x $'\q'` + "\n")
	if err == nil {
		t.Fatal("expected an error for an unknown escape")
	}

	if r.Incomplete() {
		t.Fatal("an error should discard the partial command")
	}
}
