package cli

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/abacus/internal/config"
	"github.com/iw2rmb/abacus/keypad"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive keypad",
		Long: `Start the interactive keypad.

Type digits and operators or click the buttons. Arrow keys move the focus,
space presses the focused button. Press q or ctrl+q to quit.`,
		Args: cobra.NoArgs,
		RunE: runKeypad,
	}
}

func runKeypad(cmd *cobra.Command, _ []string) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	m := newApp(cfg, logger, newOSC52Clipboard(os.Stderr))

	opts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info("keypad started", "variant", cfg.Variant, "theme", cfg.Theme)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return err
	}
	if a, ok := final.(app); ok {
		logger.Info("keypad stopped", "display", a.pad.Display(), "version", a.pad.Calculator().Version())
	}
	return nil
}

// app hosts the keypad and owns the quit binding.
type app struct {
	pad  keypad.Model
	quit key.Binding
}

func newApp(cfg *config.Config, logger *slog.Logger, clip keypad.Clipboard) app {
	variant, _ := keypad.ParseVariant(cfg.Variant)
	style, _ := keypad.StyleForTheme(cfg.Theme)

	pad := keypad.New(keypad.Config{
		Variant:       variant,
		Title:         "abacus",
		Style:         style,
		ShowHelp:      cfg.ShowHelp,
		FlashDuration: keypad.DefaultFlashDuration,
		Clipboard:     clip,
		Logger:        logger,
		OnChange: func(ev keypad.ChangeEvent) {
			logger.Debug("display changed", "display", ev.State.Display, "version", ev.Version)
		},
	})

	return app{
		pad: pad,
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (a app) Init() tea.Cmd { return a.pad.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.pad = a.pad.SetSize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.pad, cmd = a.pad.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.pad.View() + "\n" }
