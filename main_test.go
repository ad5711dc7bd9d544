// Released under an MIT license. See LICENSE.

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelmacinnis/hyper/internal/engine"
	"github.com/michaelmacinnis/hyper/internal/system/options"
	"github.com/michaelmacinnis/hyper/internal/system/settings"
)

func machine() *engine.T {
	s := &settings.T{ItemDelimiter: ",", LineEnding: "\n", Seed: 1}

	return engine.New(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCommand(t *testing.T) {
	options.Parse([]string{"-c", "put 'one two' into x; get word 2 of x"})

	var b strings.Builder

	err := run(machine(), slog.New(slog.NewTextHandler(io.Discard, nil)), strings.NewReader(""), &b)
	if err != nil {
		t.Fatal(err)
	}

	if b.String() != "one two\ntwo\n" {
		t.Fatalf("output = %q", b.String())
	}
}

func TestScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.hyper")

	script := `put "a,b,c" into x
put "z" before item 1 of x
count items in x
`

	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}

	options.Parse([]string{path})

	var b strings.Builder

	err := run(machine(), slog.New(slog.NewTextHandler(io.Discard, nil)), strings.NewReader(""), &b)
	if err != nil {
		t.Fatal(err)
	}

	if b.String() != "a,b,c\nza,b,c\n3\n" {
		t.Fatalf("output = %q", b.String())
	}
}

func TestMissingScript(t *testing.T) {
	options.Parse([]string{filepath.Join(t.TempDir(), "missing.hyper")})

	err := run(machine(), slog.New(slog.NewTextHandler(io.Discard, nil)), strings.NewReader(""), io.Discard)
	if !os.IsNotExist(err) {
		t.Fatalf("expected a missing file error, got %v", err)
	}
}
