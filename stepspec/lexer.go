package stepspec

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

// Tokenize splits one algorithm step into the closed token taxonomy.
// A minus sign always lexes as the ambiguous kind: its unary/binary
// role is decided later by ResolveAmbiguousOperators, never here.
func Tokenize(input string) []Token {
	l := newLexer(input)

	var tokens []Token
	for {
		tok, ok := l.nextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) nextToken() (Token, bool) {
	l.skipWhitespace()

	start := Position{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		return Token{}, false
	case '+':
		return l.singleRune(KindPlus, start), true
	case '-':
		return l.singleRune(KindAmbiguousMinus, start), true
	case '*', '×':
		return l.singleRune(KindMultiplication, start), true
	case '/':
		return l.singleRune(KindDivision, start), true
	case '(':
		return l.singleRune(KindParenOpen, start), true
	case ')':
		return l.singleRune(KindParenClose, start), true
	case '{':
		return l.singleRune(KindBraceOpen, start), true
	case '}':
		return l.singleRune(KindBraceClose, start), true
	case ',':
		return l.singleRune(KindComma, start), true
	case ':':
		return l.singleRune(KindColon, start), true
	case '.':
		return l.singleRune(KindDot, start), true
	case '!':
		return l.singleRune(KindExclamationMark, start), true
	case '=':
		return l.singleRune(KindEquals, start), true
	case '≠':
		return l.singleRune(KindNotEquals, start), true
	case '>':
		return l.singleRune(KindGreater, start), true
	case '<':
		// Spec prose spells "not equals" either ≠ or <>.
		if l.peekRune() == '>' {
			l.readRune()
			l.readRune()
			return Token{Kind: KindNotEquals, Literal: "<>", Pos: start}, true
		}
		return l.singleRune(KindLess, start), true
	case '_':
		return l.readIdentifier(start), true
	case '"':
		return l.readString(start), true
	default:
		switch {
		case unicode.IsLetter(l.ch):
			return l.readWord(start), true
		case unicode.IsDigit(l.ch):
			return l.readNumber(start), true
		default:
			return l.singleRune(KindInvalid, start), true
		}
	}
}

func (l *lexer) singleRune(kind TokenKind, start Position) Token {
	literal := string(l.ch)
	l.readRune()
	return Token{Kind: kind, Literal: literal, Pos: start}
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readRune()
	}
}

// readIdentifier lexes a variable marked in underscores, e.g. _result_.
// The stored literal is the bare name. A missing closing underscore
// yields an Invalid token carrying everything consumed.
func (l *lexer) readIdentifier(start Position) Token {
	l.readRune() // skip opening '_'

	var sb strings.Builder
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readRune()
	}

	if l.ch != '_' || sb.Len() == 0 {
		return Token{Kind: KindInvalid, Literal: "_" + sb.String(), Pos: start}
	}

	l.readRune() // skip closing '_'
	return Token{Kind: KindIdentifier, Literal: sb.String(), Pos: start}
}

func (l *lexer) readWord(start Position) Token {
	var sb strings.Builder
	for unicode.IsLetter(l.ch) {
		sb.WriteRune(l.ch)
		l.readRune()
	}

	literal := sb.String()
	switch literal {
	case "undefined":
		return Token{Kind: KindUndefined, Literal: literal, Pos: start}
	case "is":
		return Token{Kind: KindIs, Literal: literal, Pos: start}
	}
	return Token{Kind: KindWord, Literal: literal, Pos: start}
}

// readNumber lexes a digit run with optional dotted continuations.
// One dot makes a decimal number; two or more make a section number
// such as 3.1.4.
func (l *lexer) readNumber(start Position) Token {
	var sb strings.Builder
	dots := 0

	for {
		for unicode.IsDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readRune()
		}
		if l.ch == '.' && unicode.IsDigit(l.peekRune()) {
			dots++
			sb.WriteRune('.')
			l.readRune()
			continue
		}
		break
	}

	kind := KindNumber
	if dots >= 2 {
		kind = KindSectionNumber
	}
	return Token{Kind: kind, Literal: sb.String(), Pos: start}
}

func (l *lexer) readString(start Position) Token {
	var sb strings.Builder

	for {
		l.readRune()
		switch l.ch {
		case 0:
			return Token{Kind: KindInvalid, Literal: sb.String(), Pos: start}
		case '"':
			l.readRune()
			return Token{Kind: KindString, Literal: sb.String(), Pos: start}
		case '\\':
			next := l.peekRune()
			switch next {
			case '"', '\\':
				l.readRune()
				sb.WriteRune(next)
			case 'n':
				l.readRune()
				sb.WriteByte('\n')
			case 't':
				l.readRune()
				sb.WriteByte('\t')
			default:
				l.readRune()
				sb.WriteRune(next)
			}
		default:
			sb.WriteRune(l.ch)
		}
	}
}
