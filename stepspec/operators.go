package stepspec

// UnaryOperator is the semantic value a prefix token maps to.
type UnaryOperator int

const (
	UnaryInvalid UnaryOperator = iota
	UnaryMinus
	UnaryAssertCompletion
)

var unaryOperatorNames = [...]string{
	UnaryInvalid:          "invalid",
	UnaryMinus:            "minus",
	UnaryAssertCompletion: "assert-completion",
}

func (op UnaryOperator) String() string {
	if op < 0 || int(op) >= len(unaryOperatorNames) {
		return "invalid"
	}
	return unaryOperatorNames[op]
}

// BinaryOperator is the semantic value an infix token maps to.
type BinaryOperator int

const (
	BinaryInvalid BinaryOperator = iota
	BinaryComma
	BinaryMemberAccess
	BinaryFunctionCall
	BinaryCompareLess
	BinaryCompareGreater
	BinaryCompareNotEqual
	BinaryCompareEqual
	BinaryPlus
	BinaryMinus
	BinaryMultiplication
	BinaryDivision
)

var binaryOperatorNames = [...]string{
	BinaryInvalid:         "invalid",
	BinaryComma:           "comma",
	BinaryMemberAccess:    "member-access",
	BinaryFunctionCall:    "call",
	BinaryCompareLess:     "less",
	BinaryCompareGreater:  "greater",
	BinaryCompareNotEqual: "not-equal",
	BinaryCompareEqual:    "equal",
	BinaryPlus:            "plus",
	BinaryMinus:           "minus",
	BinaryMultiplication:  "multiply",
	BinaryDivision:        "divide",
}

func (op BinaryOperator) String() string {
	if op < 0 || int(op) >= len(binaryOperatorNames) {
		return "invalid"
	}
	return binaryOperatorNames[op]
}
