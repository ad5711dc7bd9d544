// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for hyper commands.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	line  int      // Line of the current byte.
	queue []string // Buffers waiting to be scanned.
	saved action   // Escaped action.
	start int      // Line of the current token's first byte.
	state action   // Current action.

	tokens chan *Token
}

// New creates a new T.
func New() *T {
	return &T{
		line:  1,
		start: 1,
		state: skipHorizontalSpace,
	}
}

// Pending returns true if part of a token has been scanned.
func (l *T) Pending() bool {
	return l.first < len(l.bytes)
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *Token {
	for {
		l.gather()

		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
	}

	l.index += w
}

func (l *T) emit(c Class, v string) {
	l.tokens <- &Token{Class: c, Line: l.start, Value: v}
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")

	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *Token, 16)
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	if l.index < len(l.bytes) {
		return utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return eof, 0
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.line
}

// T states.

func afterDollar(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case r == '\'':
		l.accept(r, w)

		return scanDollarSingleQuoted
	case isName(r):
		return scanVariable
	}

	return scanWord
}

func collectHorizontalSpace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', ' ':
			l.accept(r, w)

			continue
		}

		if s := l.Text(); len(s) > 0 {
			l.emit(Space, s)
		}

		return skipHorizontalSpace
	}
}

func escapeNextCharacter(l *T) action {
	if l.next() == eof {
		return nil
	}

	return l.resume()
}

func scanDollarSingleQuoted(l *T) action {
	for {
		switch l.next() {
		case eof:
			return nil
		case '\'':
			l.emit(DollarSingleQuoted, l.Text())

			return collectHorizontalSpace
		case '\\':
			return l.escape(scanDollarSingleQuoted, escapeNextCharacter)
		}
	}
}

func scanDoubleQuoted(l *T) action {
	for {
		switch l.next() {
		case eof:
			return nil
		case '"':
			l.emit(DoubleQuoted, l.Text())

			return collectHorizontalSpace
		case '\\':
			return l.escape(scanDoubleQuoted, escapeNextCharacter)
		}
	}
}

func scanSingleQuoted(l *T) action {
	for {
		switch l.next() {
		case eof:
			return nil
		case '\'':
			l.emit(SingleQuoted, l.Text())

			return collectHorizontalSpace
		}
	}
}

func scanVariable(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isName(r):
			l.accept(r, w)
		default:
			l.emit(Variable, l.Text())

			return collectHorizontalSpace
		}
	}
}

func scanWord(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', ' ', '"', '\'', ';':
			l.emit(Word, l.Text())

			return collectHorizontalSpace
		case '$':
			if s := l.Text(); len(s) > 0 {
				l.emit(Word, s)
			}

			l.accept(r, w)

			return afterDollar
		case '\\':
			l.accept(r, w)

			return l.escape(scanWord, escapeNextCharacter)
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipHorizontalSpace
		}

		l.accept(r, w)
	}
}

func skipHorizontalSpace(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\t', ' ':
			l.skip()

			continue
		case '\n', ';':
			l.emit(Class(r), l.Text())

			return skipHorizontalSpace
		case '"':
			return scanDoubleQuoted
		case '#':
			return skipComment
		case '$':
			return afterDollar
		case '\'':
			return scanSingleQuoted
		case '\\':
			return l.escape(scanWord, escapeNextCharacter)
		}

		return scanWord
	}
}

func isName(r rune) bool {
	return r == '_' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}
