// Package grapheme measures and trims display text by terminal cells.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks text trimmed by TailToWidth.
const Ellipsis = "…"

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// ClusterWidth returns the cell width of a single cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// TailToWidth keeps the rightmost clusters of text that fit in width cells.
//
// Numbers are read from the least significant digit, so the head is dropped
// and replaced with Ellipsis. A width of zero or less yields "".
func TailToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	budget := width - runewidth.StringWidth(Ellipsis)
	clusters := Split(text)
	start := len(clusters)
	used := 0
	for start > 0 {
		w := ClusterWidth(clusters[start-1])
		if used+w > budget {
			break
		}
		used += w
		start--
	}

	var sb strings.Builder
	if budget >= 0 {
		sb.WriteString(Ellipsis)
	}
	for _, c := range clusters[start:] {
		sb.WriteString(c)
	}
	return sb.String()
}
