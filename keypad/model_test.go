package keypad

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/abacus/calc"
)

func TestNew_Defaults(t *testing.T) {
	m := New(Config{})
	if got := m.Display(); got != "0" {
		t.Fatalf("display: got %q, want %q", got, "0")
	}
	if !m.Focused() {
		t.Fatalf("new model should be focused")
	}
	if got := m.FocusedButton().Label; got != "5" {
		t.Fatalf("focused button: got %q, want %q", got, "5")
	}
	if got := m.Variant(); got != VariantBasic {
		t.Fatalf("variant: got %v, want %v", got, VariantBasic)
	}
}

func TestView_HeightPerVariant(t *testing.T) {
	cases := []struct {
		variant Variant
		want    int
	}{
		// display + spacer + 5 rows of 3 lines
		{variant: VariantBasic, want: 17},
		// display + pending + spacer + 5 rows of 3 lines
		{variant: VariantExtended, want: 18},
	}
	for _, tc := range cases {
		m := New(Config{Variant: tc.variant})
		if got := lipgloss.Height(m.View()); got != tc.want {
			t.Fatalf("%v view height: got %d, want %d", tc.variant, got, tc.want)
		}
	}
}

func TestView_DisplayRightAligned(t *testing.T) {
	m := New(Config{})
	m = typeKeys(t, m, "42")

	first := stripANSI(strings.Split(m.View(), "\n")[0])
	if got, want := lipgloss.Width(first), 4*defaultButtonWidth+3*gapX; got != want {
		t.Fatalf("display width: got %d, want %d", got, want)
	}
	if !strings.HasSuffix(first, "42") || strings.TrimSpace(first) != "42" {
		t.Fatalf("display line: got %q, want right-aligned %q", first, "42")
	}
}

func TestView_ButtonsPerVariant(t *testing.T) {
	basic := strings.Join(viewLines(New(Config{Variant: VariantBasic})), "\n")
	if !strings.Contains(basic, "Clear") {
		t.Fatalf("basic view should contain Clear:\n%s", basic)
	}
	if strings.Contains(basic, "CE") {
		t.Fatalf("basic view should not contain CE:\n%s", basic)
	}

	ext := strings.Join(viewLines(New(Config{Variant: VariantExtended})), "\n")
	for _, want := range []string{"CLEAR", "CE", "÷", "×", "−", "+", "="} {
		if !strings.Contains(ext, want) {
			t.Fatalf("extended view should contain %q:\n%s", want, ext)
		}
	}
}

func TestView_PendingLineOnlyInExtended(t *testing.T) {
	ext := typeKeys(t, New(Config{Variant: VariantExtended}), "7+")
	lines := viewLines(ext)
	if got := strings.TrimSpace(lines[1]); got != "7 +" {
		t.Fatalf("pending line: got %q, want %q", got, "7 +")
	}

	basic := typeKeys(t, New(Config{Variant: VariantBasic}), "7+")
	for _, line := range viewLines(basic) {
		if strings.Contains(line, "7 +") {
			t.Fatalf("basic view should not show pending line, got %q", line)
		}
	}
}

func TestView_LongDisplayTrimmedFromLeft(t *testing.T) {
	m := New(Config{})
	m = typeKeys(t, m, strings.Repeat("9", 40))

	first := strings.Split(stripANSI(m.View()), "\n")[0]
	if got, want := lipgloss.Width(first), 4*defaultButtonWidth+3*gapX; got != want {
		t.Fatalf("display width: got %d, want %d", got, want)
	}
	if !strings.HasPrefix(first, "…") {
		t.Fatalf("display should start with ellipsis, got %q", first)
	}
	if got := len(m.Display()); got != 40 {
		t.Fatalf("display text must not be trimmed: got %d digits", got)
	}
}

func TestView_TitleAndHelp(t *testing.T) {
	m := New(Config{Title: "NEXUS CALC", ShowHelp: true})
	m = m.SetSize(80, 24)
	got := stripANSI(m.View())
	if !strings.Contains(got, "NEXUS CALC") {
		t.Fatalf("view should contain title:\n%s", got)
	}
	if !strings.Contains(got, "equals") {
		t.Fatalf("view should contain help:\n%s", got)
	}
}

func TestView_HelpListsClearEntryOnlyWhenAvailable(t *testing.T) {
	for _, tc := range []struct {
		variant Variant
		want    bool
	}{
		{VariantBasic, false},
		{VariantExtended, true},
	} {
		m := New(Config{Variant: tc.variant, ShowHelp: true}).SetSize(80, 24)
		if got := strings.Contains(stripANSI(m.View()), "clear entry"); got != tc.want {
			t.Fatalf("%s help lists clear entry: got %v, want %v", tc.variant, got, tc.want)
		}
	}
}

func TestCalculator_SharedWithHost(t *testing.T) {
	m := New(Config{})
	m.Calculator().Press(calc.DigitKey('8'))
	if got := m.Display(); got != "8" {
		t.Fatalf("display after host press: got %q, want %q", got, "8")
	}
}

func TestParseVariant(t *testing.T) {
	if v, ok := ParseVariant("extended"); !ok || v != VariantExtended {
		t.Fatalf("ParseVariant(extended): got (%v,%v)", v, ok)
	}
	if v, ok := ParseVariant(""); !ok || v != VariantBasic {
		t.Fatalf("ParseVariant(empty): got (%v,%v)", v, ok)
	}
	if _, ok := ParseVariant("scientific"); ok {
		t.Fatalf("ParseVariant(scientific): got ok")
	}
}

func TestLayout_EveryCellCovered(t *testing.T) {
	for _, v := range []Variant{VariantBasic, VariantExtended} {
		l := v.Layout()
		for row := 0; row < l.Rows; row++ {
			for col := 0; col < l.Cols; col++ {
				if _, ok := l.ButtonAt(row, col); !ok {
					t.Fatalf("%v: cell (%d,%d) not covered", v, row, col)
				}
			}
		}
	}
}

func TestLayout_ClearEntryOnlyInExtended(t *testing.T) {
	ce := calc.Key{Kind: calc.KeyClearEntry}
	if _, ok := VariantBasic.Layout().IndexOf(ce); ok {
		t.Fatalf("basic layout should not have CE")
	}
	if _, ok := VariantExtended.Layout().IndexOf(ce); !ok {
		t.Fatalf("extended layout should have CE")
	}
}
