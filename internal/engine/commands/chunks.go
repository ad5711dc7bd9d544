// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/hyper/internal/chunk"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/reference"
	"github.com/michaelmacinnis/hyper/internal/common/type/list"
	"github.com/michaelmacinnis/hyper/internal/common/type/num"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/common/validate"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/index"
	"github.com/michaelmacinnis/hyper/internal/reader"
	"github.com/michaelmacinnis/hyper/internal/types"
)

// ref is one step of an expression like "word 2 of line 3 of x".
type ref struct {
	d    describe.Descriptor
	kind string
}

// count KIND [in|of] VALUE
func count(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(preposition(args, "in", "of"), 2, 2)
	k := kind(m, v[0])
	s := textOf(Operand(m, v[1]))

	return num.Int(chunk.Count(k, s, 0, len(s)))
}

// delete CHUNKS of NAME
func remove(m Machine, args []reader.Word) cell.I {
	refs, target := chain(m, args)
	if len(target) == 0 {
		panic("nothing to delete from")
	}

	n := name(validate.Fixed(target, 1, 1)[0])

	v := update(m, variable(m, n), refs, func(parent cell.I, r ref) cell.I {
		t := table(m, r.kind, parent)
		if t.Name == "list" {
			panic("cannot delete from a list")
		}

		v, err := types.Delete(m.Index(), m, t.Name, parent, r.d)
		if err != nil {
			panic(err)
		}

		return v
	})

	m.Assign(n, v)

	return v
}

// find KIND TEXT in VALUE
func find(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(preposition(args, "in", "of"), 3, 3)
	t := table(m, singular(v[0]), nil)

	_, err := t.Get(m, Operand(m, v[2]), describe.ByName(text(m, v[1])))
	if err != nil {
		panic(err)
	}

	return num.Int(m.Current())
}

// get CHUNKS [of VALUE]
func get(m Machine, args []reader.Word) cell.I {
	refs, target := chain(m, args)

	var parent cell.I
	if len(target) > 0 {
		parent = Operand(m, validate.Fixed(target, 1, 1)[0])
	}

	for i := len(refs) - 1; i >= 0; i-- {
		r := refs[i]

		v, err := table(m, r.kind, parent).Get(m, parent, r.d)
		if err != nil {
			panic(err)
		}

		parent = v
	}

	return parent
}

// put VALUE [into|before|after [CHUNKS of] NAME]
func put(m Machine, args []reader.Word) cell.I {
	v, rest := validate.Variadic(args, 1, 1)

	seed := Operand(m, v[0])
	if len(rest) == 0 {
		return seed
	}

	before, after := true, true

	switch {
	case rest[0].Keyword("into"):
	case rest[0].Keyword("before"):
		after = false
	case rest[0].Keyword("after"):
		before = false
	default:
		panic("expected into, before or after, got " + rest[0].String())
	}

	var refs []ref

	target := validate.Fixed(rest[1:], 1, len(rest))
	if starts(m, target) {
		refs, target = chain(m, target)
	}

	if len(target) == 0 {
		r := refs[len(refs)-1]
		if len(refs) > 1 || !(before && after) {
			panic("cannot put " + prep(before, after) + " " + r.d.Describe(r.kind))
		}

		c, err := table(m, r.kind, nil).Create(m, nil, r.d, seed)
		if err != nil {
			panic(err)
		}

		return c
	}

	n := name(validate.Fixed(target, 1, 1)[0])

	var c cell.I

	if len(refs) == 0 {
		c = seed

		if old, ok := m.Lookup(n); ok && !(before && after) {
			if before {
				c = str.New(textOf(seed) + textOf(old))
			} else {
				c = str.New(textOf(old) + textOf(seed))
			}
		}
	} else {
		old, ok := m.Lookup(n)
		if !ok {
			old = str.Empty
		}

		c = update(m, old, refs, func(parent cell.I, r ref) cell.I {
			return create(m, parent, r, seed, before, after)
		})
	}

	m.Assign(n, c)

	return c
}

// split KIND [in|of] VALUE
func split(m Machine, args []reader.Word) cell.I {
	v := validate.Fixed(preposition(args, "in", "of"), 2, 2)
	k := kind(m, v[0])
	s := textOf(Operand(m, v[1]))

	ls := chunk.Split(k, s, 0, len(s))
	rows := make([]cell.I, len(ls))

	for i, l := range ls {
		rows[i] = list.New(
			num.Int(l.First),
			num.Int(l.Start),
			num.Int(l.End),
			str.New(l.Content),
		)
	}

	return list.New(rows...)
}

// chain parses chunk expressions joined by "of" and returns them, outermost
// first, along with the words naming the value they apply to.
func chain(m Machine, args []reader.Word) ([]ref, []reader.Word) {
	var refs []ref

	for len(args) > 0 {
		if args[0].Keyword("the") {
			args = args[1:]
		}

		var r ref

		r, args = expression(m, args)
		refs = append(refs, r)

		if len(args) == 0 {
			return refs, nil
		}

		if !args[0].Keyword("of") && !args[0].Keyword("in") {
			panic("expected of, got " + args[0].String())
		}

		args = args[1:]

		if !starts(m, args) {
			return refs, args
		}
	}

	panic("expected a chunk expression")
}

func create(m Machine, parent cell.I, r ref, seed cell.I, before, after bool) cell.I {
	t := table(m, r.kind, parent)

	if t.Name == "list" {
		if !before || after {
			panic("can only put before an element of a list")
		}

		v, err := t.Create(m, parent, r.d, seed)
		if err != nil {
			panic(err)
		}

		return v
	}

	if before && after {
		v, err := t.Create(m, parent, r.d, seed)
		if err != nil {
			panic(err)
		}

		return v
	}

	v, err := types.Put(m.Index(), m, t.Name, parent, r.d, seed, before, after)
	if err != nil {
		panic(err)
	}

	return v
}

func descriptor(first, last reader.Word, p, q index.Position) describe.Descriptor {
	i, ok := number(first)
	if last == nil {
		if ok {
			return describe.ByIndex(i)
		}

		return describe.ByOrdinal(p)
	}

	j, jok := number(last)
	if ok && jok {
		return describe.ByRange(i, j)
	}

	return describe.ByOrdinals(p, q)
}

func expression(m Machine, args []reader.Word) (ref, []reader.Word) {
	if len(args) > 3 && args[1].Keyword("to") && isKind(m, args[3]) {
		p, pok := position(m, args[0])
		q, qok := position(m, args[2])

		if pok && qok {
			return ref{d: descriptor(args[0], args[2], p, q), kind: singular(args[3])}, args[4:]
		}
	}

	if len(args) > 1 && isKind(m, args[1]) {
		if p, ok := position(m, args[0]); ok {
			return ref{d: descriptor(args[0], nil, p, p), kind: singular(args[1])}, args[2:]
		}
	}

	if len(args) == 0 || !isKind(m, args[0]) {
		panic("expected a chunk expression")
	}

	r := ref{d: describe.Every(), kind: singular(args[0])}
	args = args[1:]

	if len(args) == 0 {
		return r, args
	}

	if args[0].Keyword("named") {
		v := validate.Fixed(args, 2, len(args))
		r.d = describe.ByName(text(m, v[1]))

		return r, args[2:]
	}

	p, ok := position(m, args[0])
	if !ok {
		return r, args
	}

	first := args[0]
	args = args[1:]

	if len(args) > 1 && args[0].Keyword("to") {
		q, ok := position(m, args[1])
		if !ok {
			panic(args[1].String() + " is not a position")
		}

		r.d = descriptor(first, args[1], p, q)

		return r, args[2:]
	}

	r.d = descriptor(first, nil, p, p)

	return r, args
}

func number(w reader.Word) (int, bool) {
	s, ok := w.Bare()
	if !ok {
		return 0, false
	}

	i, err := strconv.Atoi(s)

	return i, err == nil
}

func isKind(m Machine, w reader.Word) bool {
	s, ok := w.Bare()
	if !ok {
		return false
	}

	if _, ok := chunk.Lookup(s, m.LineEnding(), m.ItemDelimiter()); ok {
		return true
	}

	t, ok := m.Registry().Lookup(singular(w))

	return ok && t.Forms != 0
}

func kind(m Machine, w reader.Word) chunk.Kind {
	k, ok := chunk.Lookup(text(m, w), m.LineEnding(), m.ItemDelimiter())
	if !ok {
		panic(w.String() + " is not a chunk type")
	}

	return k
}

// pin resolves the positions in r, if it addresses a chunk of parent, so
// that reading the chunk and writing it back address the same place.
func pin(m Machine, parent cell.I, r ref) ref {
	switch r.d.Form {
	case describe.Index, describe.IndexRange, describe.Ordinal, describe.OrdinalRange:
	default:
		return r
	}

	k, ok := chunk.Lookup(r.kind, m.LineEnding(), m.ItemDelimiter())
	if !ok || table(m, r.kind, parent).Name == "list" {
		return r
	}

	s := textOf(parent)

	f, l, ok := types.Bounds(m.Index(), m, chunk.Count(k, s, 0, len(s)), r.d)
	if !ok || f < 0 || l < 0 {
		return r
	}

	if r.d.Form == describe.Index || r.d.Form == describe.Ordinal {
		r.d = describe.ByIndex(f)
	} else {
		r.d = describe.ByRange(f, l)
	}

	return r
}

func position(m Machine, w reader.Word) (index.Position, bool) {
	if _, ok := w.Bare(); !ok && !(len(w) == 1 && w[0].Variable) {
		return nil, false
	}

	return index.Parse(text(m, w))
}

func prep(before, after bool) string {
	switch {
	case before && after:
		return "into"
	case before:
		return "before"
	}

	return "after"
}

// preposition drops the word at position 1 of args if it is one of ps.
func preposition(args []reader.Word, ps ...string) []reader.Word {
	if len(args) < 2 {
		return args
	}

	for _, p := range ps {
		if args[1].Keyword(p) {
			return append([]reader.Word{args[0]}, args[2:]...)
		}
	}

	if len(args) > 2 {
		for _, p := range ps {
			if args[2].Keyword(p) {
				return append(append([]reader.Word{}, args[:2]...), args[3:]...)
			}
		}
	}

	return args
}

func singular(w reader.Word) string {
	s, _ := w.Bare()

	s = strings.ToLower(s)
	switch s {
	case "char", "chars":
		return "character"
	}

	return strings.TrimSuffix(s, "s")
}

func starts(m Machine, args []reader.Word) bool {
	if len(args) == 0 {
		return false
	}

	if args[0].Keyword("the") || isKind(m, args[0]) {
		return true
	}

	if len(args) > 1 && isKind(m, args[1]) {
		_, ok := position(m, args[0])

		return ok
	}

	if len(args) > 3 && args[1].Keyword("to") && isKind(m, args[3]) {
		_, ok := position(m, args[0])

		return ok
	}

	return false
}

func table(m Machine, kind string, parent cell.I) *describe.T {
	if kind == "item" && list.Is(reference.Deref(parent)) {
		kind = "list"
	}

	t, err := m.Registry().Must(kind)
	if err != nil {
		panic(err)
	}

	return t
}

// update applies fn to the innermost chunk described by refs and writes
// the result back through each enclosing chunk of parent.
func update(m Machine, parent cell.I, refs []ref, fn func(cell.I, ref) cell.I) cell.I {
	inner := refs[len(refs)-1]
	if len(refs) == 1 {
		return fn(parent, inner)
	}

	inner = pin(m, parent, inner)

	t := table(m, inner.kind, parent)

	child, err := t.Get(m, parent, inner.d)
	if err != nil {
		panic(err)
	}

	return create(m, parent, inner, update(m, child, refs[:len(refs)-1], fn), true, true)
}
