// Released under an MIT license. See LICENSE.

/*
Hyper is a line-oriented interpreter for English-like chunk expressions.
Text is addressed by character, word, item, line, sentence or paragraph:

	put "one two" into x
	get word 2 of x
	put "three" after word 2 of x
	get the last item of "a,b,c"
	delete the first word of x
	count lines in x

Chunk expressions nest, and writes flow back through every enclosing chunk:

	put "FOUR" into word 2 of line 2 of x

Hyper is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/michaelmacinnis/hyper/internal/engine"
	"github.com/michaelmacinnis/hyper/internal/system/options"
	"github.com/michaelmacinnis/hyper/internal/system/settings"
	"github.com/michaelmacinnis/hyper/internal/system/terminal"
	"github.com/michaelmacinnis/hyper/internal/ui"
)

const version = "0.1.0"

func main() {
	options.Parse(nil)

	if options.Version() {
		fmt.Println("hyper", version)

		return
	}

	s, err := settings.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: s.LogLevel}))

	err = run(engine.New(s, log), log, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(e ui.Evaluator, log *slog.Logger, in io.Reader, out io.Writer) error {
	width := func() int {
		return terminal.Width(int(os.Stdout.Fd()))
	}

	var r io.Reader

	switch {
	case options.Command() != "":
		r = strings.NewReader(options.Command())
	case options.Script() != "":
		f, err := os.Open(options.Script())
		if err != nil {
			return err
		}
		defer f.Close()

		r = f
	case !options.Interactive():
		r = in
	}

	if r != nil {
		if err := ui.Batch(e, r, out, width()); err != nil {
			return err
		}

		log.Debug("batch complete")
	}

	if options.Interactive() {
		ui.Run(e, log, width)
	}

	return nil
}
