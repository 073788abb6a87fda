package stepspec

import "fmt"

type parser struct {
	source string
	tokens []Token
	pos    int

	errors []error
}

// ParseExpression runs the whole front-end over one algorithm step:
// lex, resolve ambiguous operators, validate brackets, fuse compound
// operators, then precedence-climb the resolved stream. On any syntax
// error it returns nil and the accumulated diagnostics.
func ParseExpression(input string) (Expression, []error) {
	tokens := Tokenize(input)

	var errs []error
	for _, tok := range tokens {
		if tok.Kind == KindInvalid {
			errs = append(errs, &parseError{
				pos:    tok.Pos,
				msg:    fmt.Sprintf("invalid token %q", tok.Literal),
				source: input,
			})
		}
	}

	resolved, resolveErrs := ResolveAmbiguousOperators(tokens)
	errs = append(errs, resolveErrs...)
	errs = append(errs, ValidateBrackets(resolved)...)
	if len(errs) > 0 {
		return nil, errs
	}

	p := &parser{source: input, tokens: FuseCompoundOperators(resolved)}
	expr := p.parseStep()
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return expr, nil
}

func (p *parser) parseStep() Expression {
	expr := p.parseExpression(closingBracketPrecedence)
	if expr == nil {
		return nil
	}
	if tok, ok := p.peek(); ok {
		p.errorUnexpected(tok)
		return nil
	}
	return expr
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() {
	p.pos++
}

// FuseCompoundOperators rewrites the pre-merged operator kinds into
// the stream before climbing runs: a dot directly after an operand
// becomes a member-access operator, and an opening parenthesis
// directly after an operand gains a synthetic function-call token in
// front of it. Both sit in the tightest operator band, so the climb
// handles them without special cases.
func FuseCompoundOperators(tokens []Token) []Token {
	fused := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		afterOperand := len(fused) > 0 && terminatesOperand(fused[len(fused)-1])

		switch {
		case tok.Kind == KindDot && afterOperand:
			tok.Kind = KindMemberAccess
		case tok.Kind == KindParenOpen && afterOperand:
			fused = append(fused, Token{Kind: KindFunctionCall, Pos: tok.Pos})
		}

		fused = append(fused, tok)
	}

	return fused
}

func terminatesOperand(tok Token) bool {
	if tok.IsClosingBracket() {
		return true
	}
	switch tok.Kind {
	case KindIdentifier, KindNumber, KindString, KindUndefined, KindWord:
		return true
	}
	return false
}
