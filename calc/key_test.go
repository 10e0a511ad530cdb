package calc

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		tok  string
		want Key
	}{
		{tok: "0", want: DigitKey('0')},
		{tok: "9", want: DigitKey('9')},
		{tok: ".", want: Key{Kind: KeyDecimal}},
		{tok: "+", want: OperatorKey(OpAdd)},
		{tok: "-", want: OperatorKey(OpSubtract)},
		{tok: "−", want: OperatorKey(OpSubtract)},
		{tok: "*", want: OperatorKey(OpMultiply)},
		{tok: "x", want: OperatorKey(OpMultiply)},
		{tok: "×", want: OperatorKey(OpMultiply)},
		{tok: "/", want: OperatorKey(OpDivide)},
		{tok: "÷", want: OperatorKey(OpDivide)},
		{tok: "=", want: Key{Kind: KeyEquals}},
		{tok: "C", want: Key{Kind: KeyClear}},
		{tok: "clear", want: Key{Kind: KeyClear}},
		{tok: "CE", want: Key{Kind: KeyClearEntry}},
	}
	for _, tc := range cases {
		got, err := ParseKey(tc.tok)
		if err != nil {
			t.Fatalf("ParseKey(%q): unexpected error %v", tc.tok, err)
		}
		if got != tc.want {
			t.Fatalf("ParseKey(%q): got %+v, want %+v", tc.tok, got, tc.want)
		}
	}
}

func TestParseKey_Unknown(t *testing.T) {
	for _, tok := range []string{"", "%", "12", "sqrt"} {
		if _, err := ParseKey(tok); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("ParseKey(%q): got err %v, want ErrUnknownKey", tok, err)
		}
	}
}

func TestParseKeys_CompactAndSpaced(t *testing.T) {
	compact, err := ParseKeys("12+3×4=")
	if err != nil {
		t.Fatalf("compact: %v", err)
	}
	spaced, err := ParseKeys(" 1 2 + 3 x 4 = ")
	if err != nil {
		t.Fatalf("spaced: %v", err)
	}
	if len(compact) != 7 || len(spaced) != 7 {
		t.Fatalf("key counts: got (%d,%d), want (7,7)", len(compact), len(spaced))
	}
	for i := range compact {
		if compact[i] != spaced[i] {
			t.Fatalf("key %d: got %+v vs %+v", i, compact[i], spaced[i])
		}
	}
}

func TestParseKeys_Words(t *testing.T) {
	keys, err := ParseKeys("7+3ce5=")
	if err != nil {
		t.Fatalf("ParseKeys: %v", err)
	}
	if got := keys[3]; got.Kind != KeyClearEntry {
		t.Fatalf("key 3: got %+v, want clear entry", got)
	}

	if _, err := ParseKeys("1+bogus"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("ParseKeys bogus: got err %v, want ErrUnknownKey", err)
	}
}

func TestKeyLabel(t *testing.T) {
	cases := map[string]Key{
		"7":  DigitKey('7'),
		".":  {Kind: KeyDecimal},
		"×":  OperatorKey(OpMultiply),
		"=":  {Kind: KeyEquals},
		"C":  {Kind: KeyClear},
		"CE": {Kind: KeyClearEntry},
	}
	for want, k := range cases {
		if got := k.Label(); got != want {
			t.Fatalf("label: got %q, want %q", got, want)
		}
	}
}
