package stepspec

import (
	"fmt"
	"strings"
)

// Expression is a node of the parsed operator-application tree.
type Expression interface {
	Pos() Position
	exprNode()
}

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

type NumberLiteral struct {
	Value    float64
	Literal  string
	position Position
}

func (e *NumberLiteral) exprNode()     {}
func (e *NumberLiteral) Pos() Position { return e.position }

type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.position }

type UndefinedLiteral struct {
	position Position
}

func (e *UndefinedLiteral) exprNode()     {}
func (e *UndefinedLiteral) Pos() Position { return e.position }

// Word is a bare prose word used in operand position, e.g. the
// "length" in "the length of _x_".
type Word struct {
	Text     string
	position Position
}

func (e *Word) exprNode()     {}
func (e *Word) Pos() Position { return e.position }

type UnaryExpr struct {
	Op       UnaryOperator
	Right    Expression
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }

type BinaryExpr struct {
	Left     Expression
	Op       BinaryOperator
	Right    Expression
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type MemberExpr struct {
	Object   Expression
	Property string
	position Position
}

func (e *MemberExpr) exprNode()     {}
func (e *MemberExpr) Pos() Position { return e.position }

type CallExpr struct {
	Callee   Expression
	Args     []Expression
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

// FormatExpr renders an expression as a compact s-expression, mainly
// for tests and the inspection tool.
func FormatExpr(expr Expression) string {
	switch e := expr.(type) {
	case nil:
		return "<nil>"
	case *Identifier:
		return e.Name
	case *NumberLiteral:
		return e.Literal
	case *StringLiteral:
		return fmt.Sprintf("%q", e.Value)
	case *UndefinedLiteral:
		return "undefined"
	case *Word:
		return "'" + e.Text + "'"
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", e.Op, FormatExpr(e.Right))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.Op, FormatExpr(e.Left), FormatExpr(e.Right))
	case *MemberExpr:
		return fmt.Sprintf("(member %s %s)", FormatExpr(e.Object), e.Property)
	case *CallExpr:
		parts := make([]string, 0, len(e.Args)+1)
		parts = append(parts, FormatExpr(e.Callee))
		for _, arg := range e.Args {
			parts = append(parts, FormatExpr(arg))
		}
		return "(call " + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}
