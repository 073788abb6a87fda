package stepspec

import (
	"strings"
	"testing"
)

func parseOK(t *testing.T, input string) Expression {
	t.Helper()
	expr, errs := ParseExpression(input)
	if len(errs) > 0 {
		t.Fatalf("ParseExpression(%q): unexpected diagnostics %v", input, errs)
	}
	if expr == nil {
		t.Fatalf("ParseExpression(%q) returned nil without diagnostics", input)
	}
	return expr
}

func TestParseExpressionShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3 - 4", "(minus 3 4)"},
		{"-4", "(minus 4)"},
		{"3 - -4", "(minus 3 (minus 4))"},
		{"1 + 2 * 3", "(plus 1 (multiply 2 3))"},
		{"2 * 3 + 1", "(plus (multiply 2 3) 1)"},
		{"1 - 2 - 3", "(minus (minus 1 2) 3)"},
		{"(1 + 2) * 3", "(multiply (plus 1 2) 3)"},
		{"_a_ < _b_ + 1", "(less a (plus b 1))"},
		{"_x_ = undefined", "(equal x undefined)"},
		{"_x_ ≠ _y_", "(not-equal x y)"},
		{"1, 2, 3", "(comma (comma 1 2) 3)"},
		{`_s_ + "tail"`, `(plus s "tail")`},
		{"!_completion_", "(assert-completion completion)"},
	}

	for _, tt := range tests {
		expr := parseOK(t, tt.input)
		if got := FormatExpr(expr); got != tt.want {
			t.Errorf("ParseExpression(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseMemberAccessBindsTightest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"_x_._length_", "(member x length)"},
		{"_x_._a_._b_", "(member (member x a) b)"},
		{"-_x_._length_", "(minus (member x length))"},
		{"_x_._a_ + _y_._b_", "(plus (member x a) (member y b))"},
	}

	for _, tt := range tests {
		expr := parseOK(t, tt.input)
		if got := FormatExpr(expr); got != tt.want {
			t.Errorf("ParseExpression(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseFunctionCalls(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abs(_x_)", "(call 'abs' x)"},
		{"min(_a_, _b_)", "(call 'min' a b)"},
		{"max(1 + 2, -3)", "(call 'max' (plus 1 2) (minus 3))"},
		{"_f_()", "(call f)"},
		{"_f_(_x_)(_y_)", "(call (call f x) y)"},
		{"abs(_x_) + 1", "(plus (call 'abs' x) 1)"},
		{"-abs(_x_)", "(minus (call 'abs' x))"},
	}

	for _, tt := range tests {
		expr := parseOK(t, tt.input)
		if got := FormatExpr(expr); got != tt.want {
			t.Errorf("ParseExpression(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseGroupingParenthesisIsNotACall(t *testing.T) {
	// '(' after an operator groups; only after an operand it calls.
	expr := parseOK(t, "1 * (2 + 3)")
	if got := FormatExpr(expr); got != "(multiply 1 (plus 2 3))" {
		t.Fatalf("unexpected tree %s", got)
	}
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		input   string
		wantMsg string
	}{
		{"", "unexpected end of step"},
		{"1 +", "unexpected end of step"},
		{"-", "dangling"},
		{"( 1", "unterminated '('"},
		{"( 1 }", "mismatched '}'"},
		{"1 )", "unmatched ')'"},
		{"1 + : 2", "unexpected ':'"},
		{"1 2", "unexpected number"},
		{"_x", "invalid token"},
	}

	for _, tt := range tests {
		expr, errs := ParseExpression(tt.input)
		if len(errs) == 0 {
			t.Errorf("ParseExpression(%q) = %s, want diagnostics", tt.input, FormatExpr(expr))
			continue
		}
		found := false
		for _, err := range errs {
			if strings.Contains(err.Error(), tt.wantMsg) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ParseExpression(%q) diagnostics %v, want one containing %q", tt.input, errs, tt.wantMsg)
		}
	}
}

func TestParseErrorCarriesCodeFrame(t *testing.T) {
	_, errs := ParseExpression("1 + : 2")
	if len(errs) == 0 {
		t.Fatal("expected diagnostics")
	}
	msg := errs[0].Error()
	if !strings.Contains(msg, "--> line 1, column 5") {
		t.Fatalf("diagnostic should point at the colon:\n%s", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Fatalf("diagnostic should carry a caret frame:\n%s", msg)
	}
}

func TestFuseCompoundOperators(t *testing.T) {
	tokens := Tokenize("abs(_x_._length_)")
	resolved, _ := ResolveAmbiguousOperators(tokens)
	fused := FuseCompoundOperators(resolved)

	want := []TokenKind{
		KindWord, KindFunctionCall, KindParenOpen,
		KindIdentifier, KindMemberAccess, KindIdentifier,
		KindParenClose,
	}
	if got := kindsOf(fused); !sameKinds(got, want) {
		t.Fatalf("fused stream %v, want %v", got, want)
	}

	for _, tok := range fused {
		if tok.IsPreMergedOperator() && !tok.IsBinaryOperator() {
			t.Fatalf("pre-merged token %s should sit in the binary bands", tok.Kind)
		}
	}
}
