package stepspec

import (
	"strings"
	"testing"
)

func TestValidateBracketsBalanced(t *testing.T) {
	inputs := [][]TokenKind{
		{KindParenOpen, KindIdentifier, KindParenClose},
		{KindBraceOpen, KindNumber, KindBraceClose},
		{KindParenOpen, KindBraceOpen, KindBraceClose, KindParenClose},
		{KindIdentifier, KindPlus, KindNumber},
		{},
	}

	for _, kinds := range inputs {
		tokens := make([]Token, len(kinds))
		for i, kind := range kinds {
			tokens[i] = Token{Kind: kind}
		}
		if errs := ValidateBrackets(tokens); len(errs) > 0 {
			t.Errorf("input %v: unexpected diagnostics %v", kinds, errs)
		}
	}
}

func TestValidateBracketsMismatch(t *testing.T) {
	tokens := []Token{
		{Kind: KindParenOpen, Literal: "(", Pos: Position{Line: 1, Column: 1}},
		{Kind: KindIdentifier, Literal: "x", Pos: Position{Line: 1, Column: 2}},
		{Kind: KindBraceClose, Literal: "}", Pos: Position{Line: 1, Column: 3}},
	}

	errs := ValidateBrackets(tokens)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", errs)
	}
	if got := errs[0].Error(); !strings.Contains(got, "'}'") {
		t.Fatalf("mismatch diagnostic should name the closing token, got %q", got)
	}
}

func TestValidateBracketsUnterminated(t *testing.T) {
	tokens := []Token{
		{Kind: KindParenOpen, Literal: "(", Pos: Position{Line: 1, Column: 1}},
		{Kind: KindIdentifier, Literal: "x", Pos: Position{Line: 1, Column: 2}},
	}

	errs := ValidateBrackets(tokens)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", errs)
	}
	if got := errs[0].Error(); !strings.Contains(got, "unterminated") || !strings.Contains(got, "'('") {
		t.Fatalf("unexpected diagnostic %q", got)
	}
}

func TestValidateBracketsUnmatchedCloser(t *testing.T) {
	tokens := []Token{
		{Kind: KindParenClose, Literal: ")", Pos: Position{Line: 1, Column: 1}},
	}

	errs := ValidateBrackets(tokens)
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", errs)
	}
	if got := errs[0].Error(); !strings.Contains(got, "unmatched") {
		t.Fatalf("unexpected diagnostic %q", got)
	}
}
