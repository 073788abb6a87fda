package stepspec

import "strconv"

// parseExpression is the precedence climb. limit is the loosest
// binding the caller still accepts; lower precedence values bind
// tighter, and the closing-bracket sentinel exceeds every real
// operator, so a closing bracket always stops the loop.
func (p *parser) parseExpression(limit int) Expression {
	left := p.parseOperand()

	for left != nil {
		tok, ok := p.peek()
		if !ok || !tok.IsBinaryOperator() || tok.Precedence() >= limit {
			break
		}
		p.next()
		left = p.parseBinaryApply(left, tok)
	}

	return left
}

func (p *parser) parseOperand() Expression {
	tok, ok := p.peek()
	if !ok {
		p.errorUnexpectedEnd()
		return nil
	}

	if tok.IsUnaryOperator() {
		p.next()
		operand := p.parseExpression(unaryOperatorPrecedence)
		if operand == nil {
			return nil
		}
		return &UnaryExpr{Op: tok.AsUnaryOperator(), Right: operand, position: tok.Pos}
	}

	switch tok.Kind {
	case KindIdentifier:
		p.next()
		return &Identifier{Name: tok.Literal, position: tok.Pos}

	case KindNumber:
		p.next()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.addParseError(tok.Pos, "invalid number literal")
			return nil
		}
		return &NumberLiteral{Value: value, Literal: tok.Literal, position: tok.Pos}

	case KindString:
		p.next()
		return &StringLiteral{Value: tok.Literal, position: tok.Pos}

	case KindUndefined:
		p.next()
		return &UndefinedLiteral{position: tok.Pos}

	case KindWord:
		p.next()
		return &Word{Text: tok.Literal, position: tok.Pos}

	case KindParenOpen, KindBraceOpen:
		return p.parseGroup(tok)

	default:
		p.errorUnexpected(tok)
		return nil
	}
}

func (p *parser) parseGroup(open Token) Expression {
	p.next()

	inner := p.parseExpression(closingBracketPrecedence)
	if inner == nil {
		return nil
	}

	closer, ok := p.peek()
	if !ok {
		p.errorUnexpectedEnd()
		return nil
	}
	if !open.MatchesWith(closer) {
		p.errorExpected(closer, tokenKindInfo[open.Info().MatchingBracket].Label)
		return nil
	}
	p.next()

	return inner
}

func (p *parser) parseBinaryApply(left Expression, op Token) Expression {
	switch op.Kind {
	case KindMemberAccess:
		name, ok := p.peek()
		if !ok {
			p.errorUnexpectedEnd()
			return nil
		}
		if name.Kind != KindIdentifier && name.Kind != KindWord {
			p.errorExpected(name, "member name")
			return nil
		}
		p.next()
		return &MemberExpr{Object: left, Property: name.Literal, position: op.Pos}

	case KindFunctionCall:
		return p.parseCallArgs(left, op)

	default:
		right := p.parseExpression(op.Precedence())
		if right == nil {
			return nil
		}
		return &BinaryExpr{Left: left, Op: op.AsBinaryOperator(), Right: right, position: op.Pos}
	}
}

func (p *parser) parseCallArgs(callee Expression, call Token) Expression {
	open, ok := p.peek()
	if !ok || open.Kind != KindParenOpen {
		// fusion only synthesizes a call token directly before '('
		panic("stepspec: function call token not followed by '('")
	}
	p.next()

	expr := &CallExpr{Callee: callee, position: call.Pos}

	if closer, ok := p.peek(); ok && closer.Kind == KindParenClose {
		p.next()
		return expr
	}

	// Arguments bind up to but excluding the comma band, so commas
	// separate arguments instead of folding into one comma chain.
	argLimit := tokenKindInfo[KindComma].Precedence

	for {
		arg := p.parseExpression(argLimit)
		if arg == nil {
			return nil
		}
		expr.Args = append(expr.Args, arg)

		tok, ok := p.peek()
		if !ok {
			p.errorUnexpectedEnd()
			return nil
		}
		switch tok.Kind {
		case KindComma:
			p.next()
		case KindParenClose:
			p.next()
			return expr
		default:
			p.errorExpected(tok, "',' or ')'")
			return nil
		}
	}
}
