package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stepspec/stepspec/stepspec"
)

func TestRunCLIRejectsUnknownCommand(t *testing.T) {
	err := runCLI([]string{"stepspec", "frobnicate"})
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestRunCLIRequiresCommand(t *testing.T) {
	if err := runCLI([]string{"stepspec"}); err == nil {
		t.Fatal("expected an error when no command is given")
	}
}

func TestParseCommandFailsOnBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.txt")
	if err := os.WriteFile(path, []byte("( 1 + 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := parseCommand([]string{path}); err == nil {
		t.Fatal("expected parse failure for unterminated bracket")
	}
}

func TestParseCommandAcceptsValidSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.txt")
	if err := os.WriteFile(path, []byte("_x_ + 1\nabs(-2)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := parseCommand([]string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormatTokens(t *testing.T) {
	tokens := stepspec.Tokenize("_x_ - 1")
	got := formatTokens(tokens)
	want := "Identifier(x) AmbiguousMinus(-) Number(1)"
	if got != want {
		t.Fatalf("formatTokens = %q, want %q", got, want)
	}

	if got := formatTokens(nil); got != "(empty)" {
		t.Fatalf("formatTokens(nil) = %q", got)
	}

	// Synthesized call tokens have no literal and print bare.
	resolved, _ := stepspec.ResolveAmbiguousOperators(stepspec.Tokenize("_f_(1)"))
	fused := stepspec.FuseCompoundOperators(resolved)
	if got := formatTokens(fused); !strings.Contains(got, " FunctionCall ") {
		t.Fatalf("fused stream should show the bare call token, got %q", got)
	}
}

func TestInputLinesSkipsBlanks(t *testing.T) {
	lines := inputLines("a\n\n  \nb\n")
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
