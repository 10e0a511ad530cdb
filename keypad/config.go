package keypad

import (
	"log/slog"
	"time"
)

// Config configures the keypad Model.
type Config struct {
	Variant Variant

	// Rendering options.
	Title    string
	Style    Style
	ShowHelp bool
	// ButtonWidth is the cell width of one grid column (default 7).
	ButtonWidth int
	// ButtonHeight is the line height of one grid row (default 3).
	ButtonHeight int

	KeyMap KeyMap

	// FlashDuration is how long a pressed button stays highlighted.
	// Zero disables the highlight.
	FlashDuration time.Duration

	// OnChange is called after every effective state transition.
	OnChange func(ChangeEvent)

	// MutationMode and OnIntent let the host observe or veto presses.
	MutationMode MutationMode
	OnIntent     func(IntentBatch) IntentDecision

	Clipboard Clipboard

	// Logger receives a debug record per transition. Nil discards.
	Logger *slog.Logger
}

const (
	defaultButtonWidth  = 7
	defaultButtonHeight = 3
)

// DefaultFlashDuration is a press highlight long enough to notice.
const DefaultFlashDuration = 120 * time.Millisecond

func normalizeConfig(cfg Config) Config {
	if cfg.ButtonWidth <= 0 {
		cfg.ButtonWidth = defaultButtonWidth
	}
	if cfg.ButtonHeight <= 0 {
		cfg.ButtonHeight = defaultButtonHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	cfg.MutationMode = normalizeMutationMode(cfg.MutationMode)
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}

func isZeroKeyMap(km KeyMap) bool {
	return len(km.Equals.Keys()) == 0 && len(km.Digits[0].Keys()) == 0
}
