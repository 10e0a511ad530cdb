package keypad

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRender_GridLinesShareWidth(t *testing.T) {
	for _, v := range []Variant{VariantBasic, VariantExtended} {
		m := New(Config{Variant: v})
		grid := strings.Split(stripANSI(m.renderGrid()), "\n")
		if len(grid) != 15 {
			t.Fatalf("%v grid lines: got %d, want %d", v, len(grid), 15)
		}
		want := m.gridWidth()
		for i, line := range grid {
			if got := lipgloss.Width(line); got != want {
				t.Fatalf("%v grid line %d width: got %d, want %d (%q)", v, i, got, want, line)
			}
		}
	}
}

func TestRender_BasicEqualsSpansTwoRows(t *testing.T) {
	m := New(Config{Variant: VariantBasic})
	grid := strings.Split(stripANSI(m.renderGrid()), "\n")

	// Rows 3-4 are lines 9-14; a two-row "=" is centered on line 11 or 12.
	found := -1
	for i := 9; i < 15; i++ {
		if strings.Contains(grid[i], "=") {
			if found >= 0 {
				t.Fatalf("= rendered on lines %d and %d", found, i)
			}
			found = i
		}
	}
	if found != 11 && found != 12 {
		t.Fatalf("= line: got %d, want 11 or 12", found)
	}
}

func TestRender_ButtonWidthConfigurable(t *testing.T) {
	m := New(Config{ButtonWidth: 3, ButtonHeight: 1})
	grid := strings.Split(stripANSI(m.renderGrid()), "\n")
	if len(grid) != 5 {
		t.Fatalf("grid lines: got %d, want %d", len(grid), 5)
	}
	if got, want := strings.TrimRight(grid[1], " "), " 7   8   9   -"; got != want {
		t.Fatalf("row 1: got %q, want %q", got, want)
	}
}

func TestRender_FocusedButtonProducesANSIWhenFocused(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Digit:   r.NewStyle(),
		Focused: r.NewStyle().Reverse(true),
	}

	m := New(Config{Style: st, ButtonWidth: 1, ButtonHeight: 1})
	focused := m.renderGrid()
	if !strings.Contains(focused, "\x1b[") {
		t.Fatalf("focused grid should contain ANSI sequences: %q", focused)
	}

	b := m.Blur()
	blurred := b.renderGrid()
	if strings.Contains(blurred, "\x1b[") {
		t.Fatalf("blurred grid should be plain: %q", blurred)
	}
}

func TestRender_PressedButtonStyled(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	st := Style{Pressed: r.NewStyle().Bold(true)}
	m := New(Config{Style: st, FlashDuration: 1, ButtonWidth: 1, ButtonHeight: 1}).Blur()
	m.flash = 0

	got := m.renderGrid()
	if !strings.Contains(got, "\x1b[1m") {
		t.Fatalf("pressed button should render bold: %q", got)
	}
}
