package stepspec

import "fmt"

// ambiguousSiblings maps an ambiguous kind to the concrete kinds it
// resolves to. Every kind in the ambiguous precedence band must have
// an entry here.
var ambiguousSiblings = map[TokenKind]struct {
	unary  TokenKind
	binary TokenKind
}{
	KindAmbiguousMinus: {unary: KindUnaryMinus, binary: KindBinaryMinus},
}

// ResolveAmbiguousOperators reclassifies every ambiguous token into
// its unary or binary sibling using the immediately preceding parse
// context. The input slice is left untouched; the returned tokens keep
// their literal text and position, only the kind changes.
//
// An ambiguous token sitting at the very end of the step can never
// receive an operand, so it additionally produces a diagnostic.
func ResolveAmbiguousOperators(tokens []Token) ([]Token, []error) {
	resolved := make([]Token, 0, len(tokens))
	var errs []error

	for i, tok := range tokens {
		if !tok.IsAmbiguousOperator() {
			resolved = append(resolved, tok)
			continue
		}

		siblings, ok := ambiguousSiblings[tok.Kind]
		if !ok {
			panic(fmt.Sprintf("stepspec: no sibling entry for ambiguous kind %s", tok.Kind))
		}

		if expectsOperand(resolved) {
			tok.Kind = siblings.unary
		} else {
			tok.Kind = siblings.binary
		}

		if i == len(tokens)-1 {
			errs = append(errs, &parseError{
				pos: tok.Pos,
				msg: fmt.Sprintf("dangling %s at end of step", tok.Label()),
			})
		}

		resolved = append(resolved, tok)
	}

	return resolved, errs
}

// expectsOperand reports whether the next token sits in operand
// position. At the start of the step, after an opening bracket, or
// after another operator (the comma included) an operand is expected,
// so an ambiguous token there is a prefix. After anything that
// terminates an operand it is an infix.
func expectsOperand(prefix []Token) bool {
	if len(prefix) == 0 {
		return true
	}

	prev := prefix[len(prefix)-1]
	switch {
	case prev.IsOpeningBracket():
		return true
	case prev.IsUnaryOperator(), prev.IsBinaryOperator():
		return true
	}
	return false
}
