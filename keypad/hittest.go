package keypad

import "github.com/charmbracelet/lipgloss"

// gapX is the number of blank cells between grid columns.
const gapX = 1

// buttonRect returns the grid-local cell rectangle of b.
func (m *Model) buttonRect(b Button) (x, y, w, h int) {
	cw, ch := m.cfg.ButtonWidth, m.cfg.ButtonHeight
	x = b.Col * (cw + gapX)
	y = b.Row * ch
	w = b.ColSpan*cw + (b.ColSpan-1)*gapX
	h = b.RowSpan * ch
	return x, y, w, h
}

func (m *Model) gridWidth() int {
	return m.layout.Cols*m.cfg.ButtonWidth + (m.layout.Cols-1)*gapX
}

// gridOrigin returns where the grid starts relative to the top-left of View.
func (m *Model) gridOrigin() (x, y int) {
	fr := m.cfg.Style.Frame
	x = fr.GetMarginLeft() + fr.GetBorderLeftSize() + fr.GetPaddingLeft()
	y = fr.GetMarginTop() + fr.GetBorderTopSize() + fr.GetPaddingTop() + lipgloss.Height(m.renderHeader())
	return x, y
}

// buttonAt maps component-local mouse coordinates to a button index.
//
// (0,0) is the top-left cell of View's output.
func (m *Model) buttonAt(x, y int) (int, bool) {
	ox, oy := m.gridOrigin()
	x -= ox
	y -= oy
	for i, b := range m.layout.Buttons {
		bx, by, bw, bh := m.buttonRect(b)
		if x >= bx && x < bx+bw && y >= by && y < by+bh {
			return i, true
		}
	}
	return -1, false
}
