package keypad

import "github.com/charmbracelet/lipgloss"

// Style controls the keypad's rendering.
type Style struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Display lipgloss.Style
	Pending lipgloss.Style

	Digit    lipgloss.Style
	Operator lipgloss.Style
	Equals   lipgloss.Style
	Clear    lipgloss.Style

	// Focused is layered over the focused button's kind style.
	Focused lipgloss.Style
	// Pressed is layered over a button while its press is highlighted.
	Pressed lipgloss.Style

	Help lipgloss.Style
}

func (s Style) button(kind ButtonKind) lipgloss.Style {
	switch kind {
	case ButtonOperator:
		return s.Operator
	case ButtonEquals:
		return s.Equals
	case ButtonClear:
		return s.Clear
	default:
		return s.Digit
	}
}

// DefaultStyle is the plain gray and orange palette.
func DefaultStyle() Style {
	btn := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	orange := btn.Background(lipgloss.Color("208"))
	return Style{
		Frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("236")).Padding(0, 1),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Display:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("16")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Digit:    btn.Background(lipgloss.Color("238")),
		Operator: orange,
		Equals:   orange,
		Clear:    btn.Background(lipgloss.Color("244")),
		Focused:  lipgloss.NewStyle().Underline(true),
		Pressed:  lipgloss.NewStyle().Reverse(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// NexusStyle is the slate, cyan and emerald palette.
func NexusStyle() Style {
	btn := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	return Style{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")).Bold(true),
		Display: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0F172A")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")).Faint(true),
		Digit:    btn.Background(lipgloss.Color("#334155")),
		Operator: btn.Background(lipgloss.Color("#06B6D4")),
		Equals:   btn.Background(lipgloss.Color("#10B981")),
		Clear:    btn.Background(lipgloss.Color("#EF4444")),
		Focused:  lipgloss.NewStyle().Bold(true).Underline(true),
		Pressed:  lipgloss.NewStyle().Reverse(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
	}
}

// StyleForTheme maps a theme name to a Style.
func StyleForTheme(name string) (Style, bool) {
	switch name {
	case "", "default":
		return DefaultStyle(), true
	case "nexus":
		return NexusStyle(), true
	case "plain":
		return Style{}, true
	default:
		return Style{}, false
	}
}
