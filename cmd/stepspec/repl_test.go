package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateBandsCommandTogglesLegend(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":bands")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for a toggle")
	}
	if !rm.showLegend {
		t.Fatalf("legend toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestEvaluateParsesStep(t *testing.T) {
	m := newREPLModel()

	entry := m.evaluate("3 - 4")
	if entry.isErr {
		t.Fatalf("unexpected error: %s", entry.output)
	}
	if entry.output != "(minus 3 4)" {
		t.Fatalf("unexpected tree %q", entry.output)
	}
	if !strings.Contains(entry.tokens, "BinaryMinus(-)") {
		t.Fatalf("token line should show the resolved kind, got %q", entry.tokens)
	}
}

func TestEvaluateReportsDiagnostics(t *testing.T) {
	m := newREPLModel()

	entry := m.evaluate("( 1 + 2")
	if !entry.isErr {
		t.Fatalf("expected a diagnostic, got %q", entry.output)
	}
	if !strings.Contains(entry.output, "unterminated") {
		t.Fatalf("unexpected diagnostic %q", entry.output)
	}
}
