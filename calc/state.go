package calc

import "strings"

// State is a value snapshot of the calculator.
//
// HasPrevious and Operator are set together and cleared together.
type State struct {
	Display           string
	Previous          float64
	HasPrevious       bool
	Operator          Operator
	WaitingForOperand bool
}

// Initial returns the state of a freshly mounted keypad.
func Initial() State {
	return State{Display: "0"}
}

// Equal compares two states, treating NaN operands as equal to themselves.
func (s State) Equal(o State) bool {
	return s.Display == o.Display &&
		s.HasPrevious == o.HasPrevious &&
		(!s.HasPrevious || sameNumber(s.Previous, o.Previous)) &&
		s.Operator == o.Operator &&
		s.WaitingForOperand == o.WaitingForOperand
}

// Pending returns the "<previous> <operator>" line shown while an operation
// waits for its second operand.
func (s State) Pending() (string, bool) {
	if s.Operator == OpNone || !s.HasPrevious {
		return "", false
	}
	return FormatNumber(s.Previous) + " " + s.Operator.Symbol(), true
}

// Step returns the state that follows s after pressing k.
func Step(s State, k Key) State {
	switch k.Kind {
	case KeyDigit:
		return s.inputDigit(k.Digit)
	case KeyDecimal:
		return s.inputDecimal()
	case KeyOperator:
		return s.inputOperator(k.Op)
	case KeyEquals:
		return s.calculate()
	case KeyClear:
		return Initial()
	case KeyClearEntry:
		s.Display = "0"
		return s
	default:
		return s
	}
}

func (s State) inputDigit(d byte) State {
	if d < '0' || d > '9' {
		return s
	}
	if s.WaitingForOperand {
		s.Display = string(d)
		s.WaitingForOperand = false
		return s
	}
	if s.Display == "0" {
		s.Display = string(d)
		return s
	}
	s.Display += string(d)
	return s
}

func (s State) inputDecimal() State {
	if s.WaitingForOperand {
		s.Display = "0."
		s.WaitingForOperand = false
		return s
	}
	if !strings.Contains(s.Display, ".") {
		s.Display += "."
	}
	return s
}

// inputOperator folds any pending operation before selecting op, so a chain
// like 2 + 3 × 4 evaluates as (2 + 3) × 4.
func (s State) inputOperator(op Operator) State {
	if !op.Valid() {
		return s
	}
	input := ParseNumber(s.Display)

	if !s.HasPrevious {
		s.Previous = input
		s.HasPrevious = true
	} else if s.Operator != OpNone {
		v := Apply(s.Previous, input, s.Operator)
		s.Display = FormatNumber(v)
		s.Previous = v
	}

	s.WaitingForOperand = true
	s.Operator = op
	return s
}

func (s State) calculate() State {
	if !s.HasPrevious || s.Operator == OpNone {
		return s
	}
	v := Apply(s.Previous, ParseNumber(s.Display), s.Operator)
	s.Display = FormatNumber(v)
	s.Previous = 0
	s.HasPrevious = false
	s.Operator = OpNone
	s.WaitingForOperand = true
	return s
}
