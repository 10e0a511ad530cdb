package keypad

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keypad key bindings.
type KeyMap struct {
	Digits     [10]key.Binding
	Decimal    key.Binding
	Add, Sub   key.Binding
	Mul, Div   key.Binding
	Equals     key.Binding
	Clear      key.Binding
	ClearEntry key.Binding

	Left, Right, Up, Down key.Binding
	PressFocused          key.Binding

	Copy, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Decimal: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "point")),
		Add:     key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add")),
		Sub:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "subtract")),
		Mul:     key.NewBinding(key.WithKeys("*", "x"), key.WithHelp("*", "multiply")),
		Div:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "divide")),
		Equals:  key.NewBinding(key.WithKeys("=", "enter"), key.WithHelp("=/enter", "equals")),

		Clear:      key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "clear")),
		ClearEntry: key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear entry")),

		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		PressFocused: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
	for i := range km.Digits {
		d := string(rune('0' + i))
		km.Digits[i] = key.NewBinding(key.WithKeys(d))
	}
	km.Digits[0].SetHelp("0-9", "digits")
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Digits[0], km.Equals, km.Clear, km.ClearEntry}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Digits[0], km.Decimal, km.Add, km.Sub, km.Mul, km.Div, km.Equals},
		{km.Clear, km.ClearEntry},
		{km.Left, km.Right, km.Up, km.Down, km.PressFocused},
		{km.Copy, km.Paste},
	}
}
