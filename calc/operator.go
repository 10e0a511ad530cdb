package calc

// Operator is a binary operator waiting for its right-hand operand.
type Operator uint8

const (
	// OpNone marks that no operation is pending.
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the glyph shown next to the pending operand.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

func (op Operator) String() string {
	if op == OpNone {
		return "none"
	}
	return op.Symbol()
}

// Valid reports whether op is one of the four arithmetic operators.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// Apply combines a and b with op.
//
// Division follows IEEE-754. OpNone (or any unknown value) yields b unchanged:
// with nothing pending, the entered operand stands on its own.
func Apply(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	case OpNone:
		return b
	default:
		return b
	}
}

// ParseOperator maps a button label or keyboard symbol to an Operator.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "×", "x", "X":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	default:
		return OpNone, false
	}
}
