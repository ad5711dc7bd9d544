// Released under an MIT license. See LICENSE.

// Package reader turns lines of text into hyper commands.
package reader

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/hyper/internal/reader/lexer"
)

// Part is a piece of a word. Adjacent parts, with no space between them,
// form one word.
type Part struct {
	Quoted   bool
	Text     string
	Variable bool
}

// Word is a command argument.
type Word []Part

// Bare returns the text of w if it is a single unquoted part.
func (w Word) Bare() (string, bool) {
	if len(w) != 1 || w[0].Quoted || w[0].Variable {
		return "", false
	}

	return w[0].Text, true
}

// Keyword returns true if w is the bare word k, ignoring case.
func (w Word) Keyword(k string) bool {
	s, ok := w.Bare()

	return ok && strings.EqualFold(s, k)
}

// String returns the text of w as it would be written.
func (w Word) String() string {
	var b strings.Builder

	for _, p := range w {
		switch {
		case p.Variable:
			b.WriteString("$" + p.Text)
		case p.Quoted:
			b.WriteString(adapted.CanonicalString(p.Text))
		default:
			b.WriteString(p.Text)
		}
	}

	return b.String()
}

// Command is a command name followed by its arguments.
type Command struct {
	Line  int
	Words []Word
}

// T (reader) collects tokens from the lexer into commands.
type T struct {
	command Command
	lexer   *lexer.T
	word    Word
}

type reader = T

// New creates a new reader.
func New() *reader {
	return &reader{lexer: lexer.New()}
}

// Incomplete returns true if the text scanned so far ends mid command.
func (r *reader) Incomplete() bool {
	return r.lexer.Pending() || len(r.word) > 0 || len(r.command.Words) > 0
}

// Scan scans line and returns the commands it completes.
func (r *reader) Scan(line string) ([]Command, error) {
	r.lexer.Scan(line)

	var cs []Command

	for t := r.lexer.Token(); t != nil; t = r.lexer.Token() {
		if r.command.Line == 0 {
			r.command.Line = t.Line
		}

		if t.Terminates() || t.Is(lexer.Space) {
			r.end()

			if t.Terminates() {
				if len(r.command.Words) > 0 {
					cs = append(cs, r.command)
				}

				r.command = Command{}
			}

			continue
		}

		p, err := part(t)
		if err != nil {
			r.lexer = lexer.New()
			r.command = Command{}
			r.word = nil

			return cs, fmt.Errorf("line %d: %w", t.Line, err)
		}

		r.word = append(r.word, p)
	}

	return cs, nil
}

func (r *reader) end() {
	if len(r.word) > 0 {
		r.command.Words = append(r.command.Words, r.word)
		r.word = nil
	}
}

func part(t *lexer.Token) (Part, error) {
	v := t.Value

	switch t.Class {
	case lexer.DollarSingleQuoted:
		s, err := adapted.ActualBytes(v[2 : len(v)-1])
		if err != nil {
			return Part{}, err
		}

		return Part{Quoted: true, Text: s}, nil
	case lexer.DoubleQuoted:
		s, err := adapted.ActualBytes(v[1 : len(v)-1])
		if err != nil {
			return Part{}, err
		}

		return Part{Quoted: true, Text: s}, nil
	case lexer.SingleQuoted:
		return Part{Quoted: true, Text: v[1 : len(v)-1]}, nil
	case lexer.Variable:
		return Part{Text: v[1:], Variable: true}, nil
	}

	return Part{Text: unescape(v)}, nil
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder

	escaped := false

	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true

			continue
		}

		escaped = false

		b.WriteRune(r)
	}

	return b.String()
}
