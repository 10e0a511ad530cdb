package keypad

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/abacus/internal/grapheme"
)

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderGrid())
	out := m.cfg.Style.Frame.Render(body)
	if m.cfg.ShowHelp {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.cfg.Style.Help.Render(m.help.View(m.cfg.KeyMap)))
	}
	return out
}

// blockWidth is the Width value that makes st render exactly total cells wide.
func blockWidth(st lipgloss.Style, total int) int {
	w := total - st.GetHorizontalMargins() - st.GetHorizontalBorderSize()
	if w < 0 {
		return 0
	}
	return w
}

// textBudget is the number of content cells left inside st at total width.
func textBudget(st lipgloss.Style, total int) int {
	w := total - st.GetHorizontalFrameSize()
	if w < 0 {
		return 0
	}
	return w
}

// renderHeader renders everything above the grid: title, display, pending
// line (extended only) and a spacer.
func (m *Model) renderHeader() string {
	w := m.gridWidth()
	s := m.cfg.Style

	var lines []string
	if m.cfg.Title != "" {
		lines = append(lines, s.Title.Width(blockWidth(s.Title, w)).Align(lipgloss.Center).
			Render(grapheme.TailToWidth(m.cfg.Title, textBudget(s.Title, w))))
	}

	display := grapheme.TailToWidth(m.calc.Display(), textBudget(s.Display, w))
	lines = append(lines, s.Display.Width(blockWidth(s.Display, w)).Align(lipgloss.Right).Render(display))

	if m.cfg.Variant == VariantExtended {
		// The line is reserved even when empty so the grid does not jump.
		pending, _ := m.calc.Pending()
		pending = grapheme.TailToWidth(pending, textBudget(s.Pending, w))
		lines = append(lines, s.Pending.Width(blockWidth(s.Pending, w)).Align(lipgloss.Right).Render(pending))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m *Model) renderGrid() string {
	cw, ch := m.cfg.ButtonWidth, m.cfg.ButtonHeight
	buttons := m.layout.Buttons

	blocks := make([][]string, len(buttons))
	for i, b := range buttons {
		_, _, bw, bh := m.buttonRect(b)
		st := m.cfg.Style.button(b.Kind)
		if m.focused && i == m.cursor {
			st = m.cfg.Style.Focused.Inherit(st)
		}
		if i == m.flash {
			st = m.cfg.Style.Pressed.Inherit(st)
		}
		innerW := blockWidth(st, bw)
		innerH := bh - st.GetVerticalBorderSize()
		if innerH < 1 {
			innerH = 1
		}
		label := grapheme.TailToWidth(b.Label, textBudget(st, bw))
		st = st.Width(innerW).Height(innerH).MaxHeight(bh).
			Align(lipgloss.Center).AlignVertical(lipgloss.Center)
		blocks[i] = strings.Split(st.Render(label), "\n")
	}

	total := m.layout.Rows * ch
	lines := make([]string, 0, total)
	for y := 0; y < total; y++ {
		gridRow := y / ch
		var sb strings.Builder
		for col := 0; col < m.layout.Cols; {
			if col > 0 {
				sb.WriteString(strings.Repeat(" ", gapX))
			}
			i, ok := m.layout.ButtonAt(gridRow, col)
			if !ok {
				sb.WriteString(strings.Repeat(" ", cw))
				col++
				continue
			}
			b := buttons[i]
			if li := y - b.Row*ch; li >= 0 && li < len(blocks[i]) {
				sb.WriteString(blocks[i][li])
			} else {
				_, _, bw, _ := m.buttonRect(b)
				sb.WriteString(strings.Repeat(" ", bw))
			}
			col = b.Col + b.ColSpan
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
