package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "÷" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count empty=%d, want 0", c)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "123.5", want: 5},
		{text: "7 ×", want: 3},
		{text: "é", want: 1},
		{text: "計算", want: 4},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestTailToWidth(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{text: "12345", width: 5, want: "12345"},
		{text: "12345", width: 10, want: "12345"},
		{text: "1234567890", width: 5, want: "…7890"},
		{text: "0.30000000000000004", width: 8, want: "…0000004"},
		{text: "12345", width: 1, want: "…"},
		{text: "12345", width: 0, want: ""},
	}
	for _, tc := range cases {
		if got := TailToWidth(tc.text, tc.width); got != tc.want {
			t.Fatalf("TailToWidth(%q, %d)=%q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
