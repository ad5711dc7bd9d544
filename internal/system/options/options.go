// Released under an MIT license. See LICENSE.

// Package options parses hyper's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	version     bool
	usage       = `hyper

Usage:
  hyper [-i] SCRIPT
  hyper [-i] -c COMMAND
  hyper [-i]
  hyper -h
  hyper -v

Arguments:
  SCRIPT  Path to a file of hyper commands.

Options:
  -c, --command=COMMAND  Run the specified command.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print hyper version.

If hyper's stdin is a TTY, and hyper was invoked with no script or command,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if commands should be read with a line editor.
func Interactive() bool {
	return interactive
}

// Parse parses the arguments in argv. Passing nil parses os.Args[1:].
func Parse(argv []string) {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, "")
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	version, _ = opts.Bool("--version")

	interactive = false
	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}

// Script returns the path to the script passed, if any.
func Script() string {
	return script
}

// Version returns true if hyper should print its version and exit.
func Version() bool {
	return version
}
