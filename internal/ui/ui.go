// Released under an MIT license. See LICENSE.

// Package ui provides hyper's command-line interface.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/reader"
	"github.com/michaelmacinnis/hyper/internal/system/history"
)

// ErrIncomplete is returned when input ends in the middle of a command.
var ErrIncomplete = errors.New("unexpected end of input") //nolint:gochecknoglobals

// Evaluator is the interface for things that want to process commands.
type Evaluator interface {
	Evaluate(c reader.Command) (cell.I, error)
	Names() []string
}

// Batch evaluates the commands read from r and writes their results to w.
// It stops at the first command that fails.
func Batch(e Evaluator, r io.Reader, w io.Writer, width int) error {
	rd := reader.New()
	s := bufio.NewScanner(r)

	for s.Scan() {
		err := evaluate(e, rd, s.Text(), w, width)
		if err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return err
	}

	if rd.Incomplete() {
		return ErrIncomplete
	}

	return nil
}

// Run launches the line editor, which sends commands to the Evaluator,
// until the user ends input.
func Run(e Evaluator, log *slog.Logger, width func() int) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	if err := history.Load(cli.ReadHistory); err != nil {
		log.Debug("history not loaded", "error", err)
	}

	rd := reader.New()

	for {
		prompt := "> "
		if rd.Incomplete() {
			prompt = "+ "
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
			cli.AppendHistory(line)
		case errors.Is(err, liner.ErrPromptAborted):
			rd = reader.New()

			continue
		default:
			os.Stdout.WriteString("\n")

			if err := history.Save(cli.WriteHistory); err != nil {
				log.Warn("history not saved", "error", err)
			}

			return
		}

		err = evaluate(e, rd, line, os.Stdout, width())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// The cursor position, pos, is counted in runes.
func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		rs := []rune(line)
		head, tail := string(rs[:pos]), string(rs[pos:])

		start := strings.LastIndexAny(head, " \t;") + 1
		prefix := strings.ToLower(head[start:])

		var cs []string

		for _, n := range e.Names() {
			if strings.HasPrefix(n, prefix) {
				cs = append(cs, n+" ")
			}
		}

		return head[:start], cs, tail
	}
}

func evaluate(e Evaluator, rd *reader.T, line string, w io.Writer, width int) error {
	cs, err := rd.Scan(line + "\n")
	if err != nil {
		return err
	}

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		Print(w, v, width)
	}

	return nil
}
