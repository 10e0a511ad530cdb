// Package cli provides the command-line interface for abacus.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/abacus"
	"github.com/iw2rmb/abacus/internal/config"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command. Without a subcommand it
// starts the interactive keypad.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		logFile io.Closer
	)

	rootCmd := &cobra.Command{
		Use:   "abacus",
		Short: "abacus - terminal calculator",
		Long: `abacus is a keypad calculator for the terminal.

It evaluates key presses left to right, the way a pocket calculator does:
2 + 3 × 4 = gives 20. Run it without arguments for the interactive keypad,
or use "abacus eval" to feed key presses from the command line.`,
		Version: abacus.Version(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if cfg.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			logger, closer, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logFile = closer
			if used != "" {
				logger.Debug("config loaded", "file", used)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if logFile == nil {
				return nil
			}
			return logFile.Close()
		},
		RunE:          runKeypad,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./abacus.yaml)")
	pf.String("log-file", "", "Write debug logs to this file")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.Bool("no-color", false, "Disable colors")
	pf.String("variant", "", "Keypad variant (basic|extended)")
	pf.String("theme", "", "Color theme (default|nexus|plain)")
	pf.Bool("help-bar", true, "Show the key help bar")
	pf.Bool("mouse", true, "Enable mouse clicks on buttons")
	pf.Bool("alt-screen", false, "Run in the alternate screen buffer")

	_ = rootCmd.RegisterFlagCompletionFunc("variant", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"basic", "extended"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"default", "nexus", "plain"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newVersionCommand(abacus.Version()))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// newLogger writes text records to cfg.LogFile. The terminal belongs to the
// keypad, so without a log file records are discarded.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
