package keypad

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/calc"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Pasted text is tokenized into presses and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		cmd := m.pasteText(string(msg.Runes))
		return m, cmd
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Copy):
		m.copyDisplay()
		return m, nil
	case key.Matches(msg, km.Paste):
		cmd := m.pasteClipboard()
		return m, cmd

	case key.Matches(msg, km.Left):
		m.moveCursor(0, -1)
		return m, nil
	case key.Matches(msg, km.Right):
		m.moveCursor(0, 1)
		return m, nil
	case key.Matches(msg, km.Up):
		m.moveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, km.Down):
		m.moveCursor(1, 0)
		return m, nil
	case key.Matches(msg, km.PressFocused):
		cmd := m.dispatch([]calc.Key{m.layout.Buttons[m.cursor].Key}, SourceKeyboard)
		return m, cmd
	}

	if k, ok := keyForMsg(km, msg); ok {
		cmd := m.dispatch([]calc.Key{k}, SourceKeyboard)
		return m, cmd
	}
	return m, nil
}

func keyForMsg(km KeyMap, msg tea.KeyMsg) (calc.Key, bool) {
	for i, b := range km.Digits {
		if key.Matches(msg, b) {
			return calc.DigitKey(byte('0' + i)), true
		}
	}
	switch {
	case key.Matches(msg, km.Decimal):
		return calc.Key{Kind: calc.KeyDecimal}, true
	case key.Matches(msg, km.Add):
		return calc.OperatorKey(calc.OpAdd), true
	case key.Matches(msg, km.Sub):
		return calc.OperatorKey(calc.OpSubtract), true
	case key.Matches(msg, km.Mul):
		return calc.OperatorKey(calc.OpMultiply), true
	case key.Matches(msg, km.Div):
		return calc.OperatorKey(calc.OpDivide), true
	case key.Matches(msg, km.Equals):
		return calc.Key{Kind: calc.KeyEquals}, true
	case key.Matches(msg, km.Clear):
		return calc.Key{Kind: calc.KeyClear}, true
	case key.Matches(msg, km.ClearEntry):
		return calc.Key{Kind: calc.KeyClearEntry}, true
	}
	return calc.Key{}, false
}

// moveCursor moves keyboard focus to the neighbouring button, stepping over
// the full span of the current one.
func (m *Model) moveCursor(dRow, dCol int) {
	b := m.layout.Buttons[m.cursor]
	row, col := b.Row, b.Col
	switch {
	case dCol > 0:
		col = b.Col + b.ColSpan
	case dCol < 0:
		col = b.Col - 1
	case dRow > 0:
		row = b.Row + b.RowSpan
	case dRow < 0:
		row = b.Row - 1
	}
	if i, ok := m.layout.ButtonAt(row, col); ok {
		m.cursor = i
	}
}

func (m Model) copyDisplay() {
	if m.cfg.Clipboard == nil {
		return
	}
	_ = m.cfg.Clipboard.WriteText(m.calc.Display())
}

func (m *Model) pasteClipboard() tea.Cmd {
	if m.cfg.Clipboard == nil {
		return nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return nil
	}
	return m.pasteText(s)
}

func (m *Model) pasteText(s string) tea.Cmd {
	keys, err := calc.ParseKeys(s)
	if err != nil {
		m.cfg.Logger.Debug("keypad paste rejected", "error", err)
		return nil
	}
	return m.dispatch(keys, SourcePaste)
}
