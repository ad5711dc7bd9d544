// Released under an MIT license. See LICENSE.

package chunk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind scans a string for one sort of chunk. Offsets are byte offsets and
// every scan stays within the window it is given.
type Kind interface {
	// End returns the offset just past the content of the chunk at start.
	End(s string, start, end int) int

	// First returns the offset of the first chunk at or after start.
	First(s string, start, end int) int

	// Name returns the singular name of the chunk kind.
	Name() string

	// Next returns the offset of the chunk following the one ending at end.
	Next(s string, end, limit int) int
}

// Delimited is a Kind with a delimiter that can be added to make new chunks.
type Delimited interface {
	Kind

	Delimiter() string
}

// The undelimited kinds.
//
//nolint:gochecknoglobals
var (
	Character Kind = character{}
	Paragraph Kind = paragraph{}
	Sentence  Kind = sentence{}
	Word      Kind = word{}
)

// Item returns the item kind for delimiter.
func Item(delimiter string) Delimited {
	return item{delimiter: delimiter}
}

// Line returns the line kind. New lines are made with ending.
func Line(ending string) Delimited {
	return line{ending: ending}
}

// Kinds returns every kind keyed by name.
func Kinds(ending, delimiter string) map[string]Kind {
	ks := map[string]Kind{}

	for _, k := range []Kind{
		Character,
		Item(delimiter),
		Line(ending),
		Paragraph,
		Sentence,
		Word,
	} {
		ks[k.Name()] = k
	}

	return ks
}

// Lookup returns the kind called name. Plurals and "char" are accepted.
func Lookup(name, ending, delimiter string) (Kind, bool) {
	name = strings.ToLower(name)

	switch name {
	case "char", "chars":
		name = "character"
	default:
		name = strings.TrimSuffix(name, "s")
	}

	k, ok := Kinds(ending, delimiter)[name]

	return k, ok
}

type character struct{}

func (character) End(s string, start, end int) int {
	if start >= end {
		return end
	}

	_, w := utf8.DecodeRuneInString(s[start:end])

	return start + w
}

func (character) First(_ string, start, _ int) int {
	return start
}

func (character) Name() string {
	return "character"
}

func (character) Next(_ string, end, _ int) int {
	return end
}

type item struct {
	delimiter string
}

func (i item) Delimiter() string {
	return i.delimiter
}

func (i item) End(s string, start, end int) int {
	if i.delimiter == "" {
		return end
	}

	if n := strings.Index(s[start:end], i.delimiter); n >= 0 {
		return start + n
	}

	return end
}

func (item) First(_ string, start, _ int) int {
	return start
}

func (item) Name() string {
	return "item"
}

func (i item) Next(s string, end, limit int) int {
	if i.delimiter != "" && strings.HasPrefix(s[end:limit], i.delimiter) {
		return end + len(i.delimiter)
	}

	return end
}

type line struct {
	ending string
}

func (l line) Delimiter() string {
	return l.ending
}

func (line) End(s string, start, end int) int {
	if n := strings.IndexFunc(s[start:end], isLineBreak); n >= 0 {
		return start + n
	}

	return end
}

func (line) First(_ string, start, _ int) int {
	return start
}

func (line) Name() string {
	return "line"
}

func (line) Next(s string, end, limit int) int {
	if strings.HasPrefix(s[end:limit], "\r\n") {
		return end + 2
	}

	r, w := utf8.DecodeRuneInString(s[end:limit])
	if w > 0 && isLineBreak(r) {
		return end + w
	}

	return end
}

type paragraph struct{}

func (paragraph) End(s string, start, end int) int {
	return line{}.End(s, start, end)
}

func (paragraph) First(s string, start, end int) int {
	return skip(s, start, end, isLineBreak)
}

func (paragraph) Name() string {
	return "paragraph"
}

func (paragraph) Next(s string, end, limit int) int {
	return skip(s, end, limit, isLineBreak)
}

type sentence struct{}

func (sentence) End(s string, start, end int) int {
	n := strings.IndexAny(s[start:end], ".!?")
	if n < 0 {
		return end
	}

	return word{}.End(s, start+n, end)
}

func (sentence) First(s string, start, end int) int {
	return skip(s, start, end, isSpace)
}

func (sentence) Name() string {
	return "sentence"
}

func (sentence) Next(s string, end, limit int) int {
	return skip(s, end, limit, isSpace)
}

type word struct{}

func (word) End(s string, start, end int) int {
	if n := strings.IndexFunc(s[start:end], isSpace); n >= 0 {
		return start + n
	}

	return end
}

func (word) First(s string, start, end int) int {
	return skip(s, start, end, isSpace)
}

func (word) Name() string {
	return "word"
}

func (word) Next(s string, end, limit int) int {
	return skip(s, end, limit, isSpace)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}

	return false
}

func isSpace(r rune) bool {
	return r <= 0x20 || (r >= 0x7f && r <= 0xa0) || unicode.Is(unicode.Zs, r)
}

// skip returns the offset of the first rune at or after start that is not
// matched by fn, or end.
func skip(s string, start, end int, fn func(rune) bool) int {
	if n := strings.IndexFunc(s[start:end], func(r rune) bool { return !fn(r) }); n >= 0 {
		return start + n
	}

	return end
}
