package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/iw2rmb/abacus/keypad"
)

// Validate checks that every enumerated setting names a known value.
func (c *Config) Validate() error {
	if _, ok := keypad.ParseVariant(c.Variant); !ok {
		return fmt.Errorf("unknown variant %q (want basic or extended)", c.Variant)
	}
	if _, ok := keypad.StyleForTheme(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (want default, nexus or plain)", c.Theme)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error onto slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
