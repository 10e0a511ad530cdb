package keypad

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/calc"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	// Only left button presses act on the grid; motion and release are ignored.
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	i, ok := m.buttonAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = i
	cmd := m.dispatch([]calc.Key{m.layout.Buttons[i].Key}, SourceMouse)
	return m, cmd
}
