package calculator

// Operator is one of the four arithmetic operators on the keypad.
type Operator int

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Symbol returns the keypad label for the operator.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

func (op Operator) String() string {
	if op == NoOperator {
		return "none"
	}
	return op.Symbol()
}

// IsAdditive reports whether op is + or -.
func (op Operator) IsAdditive() bool {
	return op == Add || op == Subtract
}

// IsMultiplicative reports whether op is × or ÷.
func (op Operator) IsMultiplicative() bool {
	return op == Multiply || op == Divide
}

// Operators lists the keypad operators in button order.
func Operators() []Operator {
	return []Operator{Add, Subtract, Multiply, Divide}
}
