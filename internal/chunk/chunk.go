// Released under an MIT license. See LICENSE.

// Package chunk locates, counts and extends the chunks of a string.
//
// Every operation works on a window [start, end) of a string and is built
// from the three scanning primitives of a Kind. Nothing here modifies its
// input. Operations that need a longer string return one.
package chunk

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/michaelmacinnis/hyper/internal/index"
)

// Location is the position of a chunk or range of chunks in a string.
//
// Start <= End <= DeleteEnd and Content is the text from Start to End.
// DeleteEnd also covers the delimiter that follows the last chunk.
type Location struct {
	First, Last int
	Start       int
	End         int
	DeleteEnd   int
	Content     string
}

// Info is the result of resolving chunks for modification. The offsets in
// Location are offsets into Text, which may be longer than the original.
type Info struct {
	Text      string
	Appended  string
	Prepended string
	Location
}

// Count returns the number of chunks of kind k in s[start:end].
func Count(k Kind, s string, start, end int) int {
	n := 0

	for pos := k.First(s, start, end); pos < end; n++ {
		pos = k.Next(s, k.End(s, pos, end), end)
	}

	return n
}

// Split returns the location of every chunk of kind k in s[start:end].
func Split(k Kind, s string, start, end int) []Location {
	var ls []Location

	for i, pos := 1, k.First(s, start, end); pos < end; i++ {
		e := k.End(s, pos, end)
		next := k.Next(s, e, end)

		ls = append(ls, Location{
			First:     i,
			Last:      i,
			Start:     pos,
			End:       e,
			DeleteEnd: next,
			Content:   s[pos:e],
		})

		pos = next
	}

	return ls
}

// Locate returns the location of chunks first to last of kind k in s[start:end].
// Positions that are not found are placed at end.
func Locate(k Kind, s string, start, end, first, last int) Location {
	l := Location{First: first, Last: last, Start: -1, End: -1, DeleteEnd: -1}

	for i, pos := 1, k.First(s, start, end); pos < end; i++ {
		if i == first {
			l.Start = pos
		}

		e := k.End(s, pos, end)
		pos = k.Next(s, e, end)

		if i == last {
			l.End = e
			l.DeleteEnd = pos

			break
		}
	}

	if l.Start < 0 {
		l.Start = end
	}

	if l.End < 0 {
		l.End = end
	}

	if l.DeleteEnd < 0 {
		l.DeleteEnd = end
	}

	l.End = max(l.End, l.Start)
	l.DeleteEnd = max(l.DeleteEnd, l.End)
	l.Content = s[l.Start:l.End]

	return l
}

// LocateContent returns the location of the first chunk of kind k in
// s[start:end] with the content text.
func LocateContent(k Kind, s string, start, end int, text string, caseSensitive bool) (Location, bool) {
	match := func(c string) bool { return c == text }

	if !caseSensitive {
		fold := cases.Fold()
		folded := fold.String(text)

		match = func(c string) bool { return fold.String(c) == folded }
	}

	for _, l := range Split(k, s, start, end) {
		if match(l.Content) {
			return l, true
		}
	}

	return Location{}, false
}

// Resolve locates chunks first to last of kind k in s[start:end] for
// modification. If the modification puts text before or after chunks that
// do not exist and k is delimited, delimiters are added to s to create them.
// Putting text into chunks is putting text both before and after them.
func Resolve(
	x *index.T, k Kind, s string, start, end int,
	first, last index.Request, before, after bool,
) Info {
	n := Count(k, s, start, end)
	f, l := x.Span(1, n, first, last)

	info := Info{}

	d, ok := k.(Delimited)
	if ok && d.Delimiter() != "" {
		if (after && l > n) || (before && f > n) {
			target := highest(f, l, before, after) - n
			if n == 0 {
				// An empty string already has one empty chunk.
				target--
			}

			info.Appended = strings.Repeat(d.Delimiter(), max(target, 0))
			s = s[:end] + info.Appended + s[end:]
			end += len(info.Appended)
		}

		if (before && f < 1) || (after && l < 1) {
			target := 1 - lowest(f, l, before, after)

			info.Prepended = strings.Repeat(d.Delimiter(), target)
			s = s[:start] + info.Prepended + s[start:]
			end += len(info.Prepended)

			f += target
			l += target
		}
	}

	info.Text = s
	info.Location = Locate(k, s, start, end, f, l)

	return info
}

// ResolveContent locates the first chunk of kind k in s[start:end] with the
// content text for modification. Nothing is ever added.
func ResolveContent(k Kind, s string, start, end int, text string, caseSensitive bool) (Info, bool) {
	l, ok := LocateContent(k, s, start, end, text, caseSensitive)
	if !ok {
		return Info{}, false
	}

	return Info{Text: s, Location: l}, true
}

// Clamp limits first and last to [1, n] for reading or deleting.
// The result has first > last when no chunks are selected.
func Clamp(first, last, n int) (int, int) {
	return max(first, 1), min(last, n)
}

// Delete removes the chunks at l, and the delimiter after them, from s.
func Delete(s string, l Location) string {
	return s[:l.Start] + s[l.DeleteEnd:]
}

// Splice puts value into (before and after), before or after the chunks
// at info.Location and returns the new text.
func Splice(info Info, value string, before, after bool) string {
	s := info.Text

	switch {
	case before && !after:
		return s[:info.Start] + value + s[info.Start:]
	case after && !before:
		return s[:info.End] + value + s[info.End:]
	}

	return s[:info.Start] + value + s[info.End:]
}

func highest(f, l int, before, after bool) int {
	switch {
	case before && after:
		return max(f, l)
	case before:
		return f
	}

	return l
}

func lowest(f, l int, before, after bool) int {
	switch {
	case before && after:
		return min(f, l)
	case before:
		return f
	}

	return l
}
