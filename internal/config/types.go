// Package config loads abacus settings from defaults, an optional YAML file,
// ABACUS_ environment variables and command-line flags.
package config

// Default values applied before any other source.
const (
	DefaultVariant  = "basic"
	DefaultTheme    = "default"
	DefaultLogLevel = "info"
)

// Config holds the merged abacus settings.
type Config struct {
	Variant   string `koanf:"variant"`
	Theme     string `koanf:"theme"`
	ShowHelp  bool   `koanf:"show_help"`
	Mouse     bool   `koanf:"mouse"`
	AltScreen bool   `koanf:"alt_screen"`

	LogFile  string `koanf:"log_file"`
	LogLevel string `koanf:"log_level"`
	NoColor  bool   `koanf:"no_color"`
}

// Default returns the configuration used when no other source sets a key.
func Default() *Config {
	return &Config{
		Variant:   DefaultVariant,
		Theme:     DefaultTheme,
		ShowHelp:  true,
		Mouse:     true,
		AltScreen: false,
		LogLevel:  DefaultLogLevel,
	}
}
