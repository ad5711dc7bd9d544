// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/interface/literal"
	"github.com/michaelmacinnis/hyper/internal/common/interface/sequence"
	"github.com/michaelmacinnis/hyper/internal/describe"
)

const gutter = 2

// Print writes v to w. A list of lists is written as a table no wider
// than width. Anything else is written as text, or as a literal if it
// has no text.
func Print(w io.Writer, v cell.I, width int) {
	if v == nil {
		return
	}

	if rows, ok := table(v); ok {
		fmt.Fprint(w, Table(rows, width))

		return
	}

	v = describe.Deref(v)

	s, ok := common.Text(v)
	if !ok {
		s = literal.String(v)
	}

	fmt.Fprintln(w, s)
}

// Table returns rows laid out in columns. The last column is truncated to
// fit width and written in canonical form so that line breaks stay visible.
func Table(rows [][]string, width int) string {
	columns := 0
	for _, r := range rows {
		columns = max(columns, len(r))
	}

	widths := make([]int, columns)

	for _, r := range rows {
		for i, c := range r {
			if i < len(r)-1 {
				widths[i] = max(widths[i], runewidth.StringWidth(c))
			}
		}
	}

	var b strings.Builder

	for _, r := range rows {
		used := 0

		for i, c := range r {
			if i < len(r)-1 {
				b.WriteString(runewidth.FillLeft(c, widths[i]))
				b.WriteString(strings.Repeat(" ", gutter))

				used += widths[i] + gutter

				continue
			}

			c = adapted.CanonicalString(c)
			b.WriteString(runewidth.Truncate(c, max(width-used, 1), "…"))
		}

		b.WriteString("\n")
	}

	return b.String()
}

func table(v cell.I) ([][]string, bool) {
	s, ok := v.(sequence.I)
	if !ok || s.Len() == 0 {
		return nil, false
	}

	var rows [][]string

	for _, e := range s.Elements() {
		r, ok := e.(sequence.I)
		if !ok {
			return nil, false
		}

		row := make([]string, 0, r.Len())

		for _, c := range r.Elements() {
			t, ok := common.Text(c)
			if !ok {
				t = literal.String(c)
			}

			row = append(row, t)
		}

		rows = append(rows, row)
	}

	return rows, true
}
