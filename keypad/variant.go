package keypad

import "github.com/iw2rmb/abacus/calc"

// Variant selects the button layout.
type Variant uint8

const (
	// VariantBasic has Clear, the four operators, digits, point and a tall
	// equals key.
	VariantBasic Variant = iota
	// VariantExtended adds a clear-entry key and a line showing the pending
	// operand and operator.
	VariantExtended
)

func (v Variant) String() string {
	switch v {
	case VariantExtended:
		return "extended"
	default:
		return "basic"
	}
}

// ParseVariant maps a configuration value to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "", "basic":
		return VariantBasic, true
	case "extended":
		return VariantExtended, true
	default:
		return VariantBasic, false
	}
}

// ButtonKind picks the style a button is drawn with.
type ButtonKind uint8

const (
	ButtonDigit ButtonKind = iota
	ButtonOperator
	ButtonEquals
	ButtonClear
)

// Button is one key of the grid. Row and Col are 0-based grid cells.
type Button struct {
	Label   string
	Key     calc.Key
	Kind    ButtonKind
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

func (b Button) covers(row, col int) bool {
	return row >= b.Row && row < b.Row+b.RowSpan && col >= b.Col && col < b.Col+b.ColSpan
}

// Layout is the full grid of a variant.
type Layout struct {
	Rows    int
	Cols    int
	Buttons []Button
}

// ButtonAt returns the index of the button covering the grid cell.
func (l Layout) ButtonAt(row, col int) (int, bool) {
	for i, b := range l.Buttons {
		if b.covers(row, col) {
			return i, true
		}
	}
	return -1, false
}

// IndexOf returns the index of the button that sends k.
func (l Layout) IndexOf(k calc.Key) (int, bool) {
	for i, b := range l.Buttons {
		if b.Key == k {
			return i, true
		}
	}
	return -1, false
}

func digit(label string, row, col int) Button {
	return Button{Label: label, Key: calc.DigitKey(label[0]), Kind: ButtonDigit, Row: row, Col: col, RowSpan: 1, ColSpan: 1}
}

func operator(label string, op calc.Operator, row, col int) Button {
	return Button{Label: label, Key: calc.OperatorKey(op), Kind: ButtonOperator, Row: row, Col: col, RowSpan: 1, ColSpan: 1}
}

// Layout returns the button grid for v.
func (v Variant) Layout() Layout {
	if v == VariantExtended {
		return Layout{Rows: 5, Cols: 4, Buttons: []Button{
			{Label: "CLEAR", Key: calc.Key{Kind: calc.KeyClear}, Kind: ButtonClear, Row: 0, Col: 0, RowSpan: 1, ColSpan: 2},
			{Label: "CE", Key: calc.Key{Kind: calc.KeyClearEntry}, Kind: ButtonClear, Row: 0, Col: 2, RowSpan: 1, ColSpan: 1},
			operator("÷", calc.OpDivide, 0, 3),

			digit("7", 1, 0), digit("8", 1, 1), digit("9", 1, 2),
			operator("×", calc.OpMultiply, 1, 3),

			digit("4", 2, 0), digit("5", 2, 1), digit("6", 2, 2),
			operator("−", calc.OpSubtract, 2, 3),

			digit("1", 3, 0), digit("2", 3, 1), digit("3", 3, 2),
			operator("+", calc.OpAdd, 3, 3),

			{Label: "0", Key: calc.DigitKey('0'), Kind: ButtonDigit, Row: 4, Col: 0, RowSpan: 1, ColSpan: 2},
			{Label: ".", Key: calc.Key{Kind: calc.KeyDecimal}, Kind: ButtonDigit, Row: 4, Col: 2, RowSpan: 1, ColSpan: 1},
			{Label: "=", Key: calc.Key{Kind: calc.KeyEquals}, Kind: ButtonEquals, Row: 4, Col: 3, RowSpan: 1, ColSpan: 1},
		}}
	}

	return Layout{Rows: 5, Cols: 4, Buttons: []Button{
		{Label: "Clear", Key: calc.Key{Kind: calc.KeyClear}, Kind: ButtonClear, Row: 0, Col: 0, RowSpan: 1, ColSpan: 2},
		operator("÷", calc.OpDivide, 0, 2),
		operator("×", calc.OpMultiply, 0, 3),

		digit("7", 1, 0), digit("8", 1, 1), digit("9", 1, 2),
		operator("-", calc.OpSubtract, 1, 3),

		digit("4", 2, 0), digit("5", 2, 1), digit("6", 2, 2),
		operator("+", calc.OpAdd, 2, 3),

		digit("1", 3, 0), digit("2", 3, 1), digit("3", 3, 2),
		{Label: "=", Key: calc.Key{Kind: calc.KeyEquals}, Kind: ButtonEquals, Row: 3, Col: 3, RowSpan: 2, ColSpan: 1},

		{Label: "0", Key: calc.DigitKey('0'), Kind: ButtonDigit, Row: 4, Col: 0, RowSpan: 1, ColSpan: 2},
		{Label: ".", Key: calc.Key{Kind: calc.KeyDecimal}, Kind: ButtonDigit, Row: 4, Col: 2, RowSpan: 1, ColSpan: 1},
	}}
}
