package stepspec

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	KindInvalid TokenKind = iota
	KindSectionNumber
	KindIdentifier
	KindNumber
	KindString
	KindUndefined
	KindWord
	KindParenOpen
	KindParenClose
	KindBraceOpen
	KindBraceClose
	KindComma
	KindMemberAccess
	KindDot
	KindColon
	KindLess
	KindGreater
	KindNotEquals
	KindEquals
	KindPlus
	KindAmbiguousMinus
	KindUnaryMinus
	KindBinaryMinus
	KindMultiplication
	KindDivision
	KindFunctionCall
	KindExclamationMark
	KindIs

	kindCount
)

// Precedence sentinels. Anything between 0 and the closing-bracket
// sentinel is a real operator; lower values bind tighter.
const (
	nonOperatorPrecedence       = -1
	ambiguousOperatorPrecedence = -2
	preMergedOperatorPrecedence = 2
	unaryOperatorPrecedence     = 3
	closingBracketPrecedence    = 18
)

// TokenKindInfo describes one token kind: its precedence band, the
// semantic operator it maps to when used as a prefix or infix
// operator, the bracket kind it pairs with, and the label shown in
// diagnostics.
type TokenKindInfo struct {
	Name            string
	Precedence      int
	Unary           UnaryOperator
	Binary          BinaryOperator
	MatchingBracket TokenKind
	Label           string
}

// tokenKindInfo is keyed by TokenKind. The indexed array literal keeps
// the table total: a kind without an entry leaves a zero record whose
// empty Name the exhaustiveness test rejects, and a duplicate index is
// a compile error. Never mutated after initialization.
var tokenKindInfo = [kindCount]TokenKindInfo{
	KindInvalid:         {Name: "Invalid", Precedence: nonOperatorPrecedence, Label: "invalid token"},
	KindSectionNumber:   {Name: "SectionNumber", Precedence: nonOperatorPrecedence, Label: "section number"},
	KindIdentifier:      {Name: "Identifier", Precedence: nonOperatorPrecedence, Label: "identifier"},
	KindNumber:          {Name: "Number", Precedence: nonOperatorPrecedence, Label: "number"},
	KindString:          {Name: "String", Precedence: nonOperatorPrecedence, Label: "string literal"},
	KindUndefined:       {Name: "Undefined", Precedence: nonOperatorPrecedence, Label: "constant"},
	KindWord:            {Name: "Word", Precedence: nonOperatorPrecedence, Label: "word"},
	KindParenOpen:       {Name: "ParenOpen", Precedence: nonOperatorPrecedence, MatchingBracket: KindParenClose, Label: "'('"},
	KindParenClose:      {Name: "ParenClose", Precedence: closingBracketPrecedence, MatchingBracket: KindParenOpen, Label: "')'"},
	KindBraceOpen:       {Name: "BraceOpen", Precedence: nonOperatorPrecedence, MatchingBracket: KindBraceClose, Label: "'{'"},
	KindBraceClose:      {Name: "BraceClose", Precedence: closingBracketPrecedence, MatchingBracket: KindBraceOpen, Label: "'}'"},
	KindComma:           {Name: "Comma", Precedence: 17, Binary: BinaryComma, Label: "','"},
	KindMemberAccess:    {Name: "MemberAccess", Precedence: preMergedOperatorPrecedence, Binary: BinaryMemberAccess, Label: "member access operator '.'"},
	KindDot:             {Name: "Dot", Precedence: nonOperatorPrecedence, Label: "punctuation mark '.'"},
	KindColon:           {Name: "Colon", Precedence: nonOperatorPrecedence, Label: "':'"},
	KindLess:            {Name: "Less", Precedence: 9, Binary: BinaryCompareLess, Label: "less than"},
	KindGreater:         {Name: "Greater", Precedence: 9, Binary: BinaryCompareGreater, Label: "greater than"},
	KindNotEquals:       {Name: "NotEquals", Precedence: 10, Binary: BinaryCompareNotEqual, Label: "not equals"},
	KindEquals:          {Name: "Equals", Precedence: 10, Binary: BinaryCompareEqual, Label: "equals"},
	KindPlus:            {Name: "Plus", Precedence: 6, Binary: BinaryPlus, Label: "plus"},
	KindAmbiguousMinus:  {Name: "AmbiguousMinus", Precedence: ambiguousOperatorPrecedence, Label: "minus"},
	KindUnaryMinus:      {Name: "UnaryMinus", Precedence: unaryOperatorPrecedence, Unary: UnaryMinus, Label: "unary minus"},
	KindBinaryMinus:     {Name: "BinaryMinus", Precedence: 6, Binary: BinaryMinus, Label: "binary minus"},
	KindMultiplication:  {Name: "Multiplication", Precedence: 5, Binary: BinaryMultiplication, Label: "multiplication"},
	KindDivision:        {Name: "Division", Precedence: 5, Binary: BinaryDivision, Label: "division"},
	KindFunctionCall:    {Name: "FunctionCall", Precedence: preMergedOperatorPrecedence, Binary: BinaryFunctionCall, Label: "function call token"},
	KindExclamationMark: {Name: "ExclamationMark", Precedence: unaryOperatorPrecedence, Unary: UnaryAssertCompletion, Label: "exclamation mark"},
	KindIs:              {Name: "Is", Precedence: nonOperatorPrecedence, Label: "operator is"},
}

func (k TokenKind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenKindInfo[k].Name
}

// Position identifies a line and column in the source text.
type Position struct {
	Line   int
	Column int
}

// Token is a single lexical unit. Tokens are plain values: the
// resolver returns reclassified copies and nothing mutates a token
// after that.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}

// Info returns the metadata record for the token's kind.
func (t Token) Info() TokenKindInfo {
	return tokenKindInfo[t.Kind]
}

// Label returns the human-readable name used in diagnostics.
func (t Token) Label() string {
	return t.Info().Label
}

func (t Token) Precedence() int {
	return t.Info().Precedence
}

// IsOperator reports whether the token is consumed by the expression
// parser as an operator: the pre-merged, unary, and binary bands.
func (t Token) IsOperator() bool {
	p := t.Precedence()
	return p > 0 && p < closingBracketPrecedence
}

// IsAmbiguousOperator reports whether the token's unary/binary role is
// still undetermined and must be resolved from parse context.
func (t Token) IsAmbiguousOperator() bool {
	return t.Precedence() == ambiguousOperatorPrecedence
}

// IsPreMergedOperator reports whether the token is fused into a
// compound unit before generic precedence climbing runs.
func (t Token) IsPreMergedOperator() bool {
	return t.Precedence() == preMergedOperatorPrecedence
}

func (t Token) IsUnaryOperator() bool {
	return t.Precedence() == unaryOperatorPrecedence
}

func (t Token) IsBinaryOperator() bool {
	return t.IsOperator() && !t.IsUnaryOperator()
}

func (t Token) IsBracket() bool {
	return t.Info().MatchingBracket != KindInvalid
}

func (t Token) IsOpeningBracket() bool {
	return t.IsBracket() && t.Precedence() == nonOperatorPrecedence
}

func (t Token) IsClosingBracket() bool {
	return t.IsBracket() && t.Precedence() == closingBracketPrecedence
}

// AsUnaryOperator returns the semantic prefix operator for the token.
// Calling it on a token outside the unary band is a bug in the caller,
// not a syntax error, so it panics rather than returning a diagnostic.
func (t Token) AsUnaryOperator() UnaryOperator {
	if !t.IsUnaryOperator() {
		panic(fmt.Sprintf("stepspec: AsUnaryOperator called on %s token", t.Kind))
	}
	return t.Info().Unary
}

// AsBinaryOperator returns the semantic infix operator for the token.
// Panics when the token is not in a binary band.
func (t Token) AsBinaryOperator() BinaryOperator {
	if !t.IsBinaryOperator() {
		panic(fmt.Sprintf("stepspec: AsBinaryOperator called on %s token", t.Kind))
	}
	return t.Info().Binary
}

// MatchesWith reports whether other closes (or opens) this bracket.
// Panics when the receiver is not a bracket token.
func (t Token) MatchesWith(other Token) bool {
	if !t.IsBracket() {
		panic(fmt.Sprintf("stepspec: MatchesWith called on %s token", t.Kind))
	}
	return t.Info().MatchingBracket == other.Kind
}
