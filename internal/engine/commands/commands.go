// Released under an MIT license. See LICENSE.

// Package commands provides hyper's console commands.
package commands

import (
	"strings"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/literal"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/describe"
	"github.com/michaelmacinnis/hyper/internal/index"
	"github.com/michaelmacinnis/hyper/internal/reader"
)

// Machine is the evaluator state commands act on.
type Machine interface {
	ambient.I
	ambient.Navigation

	Assign(name string, v cell.I)
	Configure(setting string, v cell.I)
	Index() *index.T
	Lookup(name string) (cell.I, bool)
	Registry() *describe.Registry
}

// Command is a console command. Commands panic on misuse.
type Command func(m Machine, args []reader.Word) cell.I

// Builtins returns a mapping of names to console commands.
func Builtins() map[string]Command {
	return map[string]Command{
		"count":   count,
		"delete":  remove,
		"files":   files,
		"find":    find,
		"get":     get,
		"is":      is,
		"morph":   morph,
		"put":     put,
		"read":    read,
		"resolve": resolve,
		"set":     set,
		"setting": setting,
		"span":    span,
		"split":   split,
		"types":   typeset,
		"write":   write,
	}
}

// Settings returns the names accepted by the setting command.
func Settings() []string {
	return []string{"casesensitive", "itemdelimiter", "lineending", "permissions"}
}

// Value returns the value of the word w. A word that is only a variable
// reference is that variable's value. Any other word is a string.
func Value(m Machine, w reader.Word) cell.I {
	if len(w) == 1 && w[0].Variable {
		return variable(m, w[0].Text)
	}

	var b strings.Builder

	for _, p := range w {
		if p.Variable {
			b.WriteString(textOf(variable(m, p.Text)))
		} else {
			b.WriteString(p.Text)
		}
	}

	return str.New(b.String())
}

// Operand returns the value of the word w as Value does, except that a bare
// word naming a variable is that variable's value.
func Operand(m Machine, w reader.Word) cell.I {
	if s, ok := w.Bare(); ok {
		if v, ok := m.Lookup(s); ok {
			return v
		}
	}

	return Value(m, w)
}

func name(w reader.Word) string {
	if len(w) == 1 && w[0].Variable {
		return w[0].Text
	}

	s, ok := w.Bare()
	if !ok {
		panic(w.String() + " is not a variable name")
	}

	return s
}

func text(m Machine, w reader.Word) string {
	return textOf(Value(m, w))
}

func textOf(c cell.I) string {
	c = describe.Deref(c)

	s, ok := common.Text(c)
	if !ok {
		return literal.String(c)
	}

	return s
}

func variable(m Machine, name string) cell.I {
	v, ok := m.Lookup(name)
	if !ok {
		panic("$" + name + " is not set")
	}

	return v
}
