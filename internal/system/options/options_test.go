// Released under an MIT license. See LICENSE.

package options

import "testing"

func TestCommand(t *testing.T) {
	Parse([]string{"-c", "count words in 'a b'"})

	if Command() != "count words in 'a b'" {
		t.Fatalf("Command() = %q", Command())
	}

	if Interactive() {
		t.Fatal("a command should disable interactive mode")
	}
}

func TestScript(t *testing.T) {
	Parse([]string{"-i", "commands.hyper"})

	if Script() != "commands.hyper" {
		t.Fatalf("Script() = %q", Script())
	}

	if !Interactive() {
		t.Fatal("-i should invert interactive mode")
	}
}
