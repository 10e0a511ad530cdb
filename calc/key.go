package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownKey is returned when a token does not name a keypad key.
var ErrUnknownKey = errors.New("unknown key")

// KeyKind identifies which keypad button was pressed.
type KeyKind uint8

const (
	KeyDigit KeyKind = iota
	KeyDecimal
	KeyOperator
	KeyEquals
	KeyClear
	KeyClearEntry
)

// Key is a single keypad press.
type Key struct {
	Kind KeyKind
	// Digit is '0'..'9' when Kind is KeyDigit.
	Digit byte
	// Op is set when Kind is KeyOperator.
	Op Operator
}

func DigitKey(d byte) Key { return Key{Kind: KeyDigit, Digit: d} }

func OperatorKey(op Operator) Key { return Key{Kind: KeyOperator, Op: op} }

// Label returns the text printed on the button for k.
func (k Key) Label() string {
	switch k.Kind {
	case KeyDigit:
		return string(k.Digit)
	case KeyDecimal:
		return "."
	case KeyOperator:
		return k.Op.Symbol()
	case KeyEquals:
		return "="
	case KeyClear:
		return "C"
	case KeyClearEntry:
		return "CE"
	default:
		return "?"
	}
}

func (k Key) String() string { return k.Label() }

// ParseKey maps one token to a Key.
//
// Accepted tokens: "0".."9", ".", "+", "-", "−", "*", "x", "×", "/", "÷",
// "=", "c"/"clear" and "ce" (case-insensitive).
func ParseKey(tok string) (Key, error) {
	if len(tok) == 1 && tok[0] >= '0' && tok[0] <= '9' {
		return DigitKey(tok[0]), nil
	}
	if op, ok := ParseOperator(tok); ok {
		return OperatorKey(op), nil
	}
	switch strings.ToLower(tok) {
	case ".":
		return Key{Kind: KeyDecimal}, nil
	case "=":
		return Key{Kind: KeyEquals}, nil
	case "c", "clear", "ac":
		return Key{Kind: KeyClear}, nil
	case "ce":
		return Key{Kind: KeyClearEntry}, nil
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, tok)
}

// ParseKeys splits s into key presses.
//
// Every digit, point and symbol is its own press; runs of letters form one
// token ("ce", "clear", "x"). Whitespace separates tokens and is otherwise
// ignored, so "12+3=" and "1 2 + 3 =" are the same sequence.
func ParseKeys(s string) ([]Key, error) {
	var keys []Key
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
			continue
		case unicode.IsLetter(r):
			j := i
			for j < len(rs) && unicode.IsLetter(rs[j]) {
				j++
			}
			k, err := ParseKey(string(rs[i:j]))
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			i = j
		default:
			k, err := ParseKey(string(r))
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			i++
		}
	}
	return keys, nil
}
