package keypad

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/calc"
)

var lastID atomic.Uint64

// Model is a Bubble Tea component that renders and drives a calculator.
type Model struct {
	id     uint64
	cfg    Config
	calc   *calc.Calculator
	layout Layout

	focused bool
	width   int
	height  int

	// cursor is the index of the keyboard-focused button.
	cursor int

	flash    int
	flashSeq uint64

	help help.Model

	lastVersion uint64
}

type flashEndMsg struct {
	id  uint64
	seq uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		id:      lastID.Add(1),
		cfg:     cfg,
		calc:    calc.New(),
		layout:  cfg.Variant.Layout(),
		focused: true,
		flash:   -1,
		help:    help.New(),
	}
	if _, ok := m.layout.IndexOf(calc.Key{Kind: calc.KeyClearEntry}); !ok {
		m.cfg.KeyMap.ClearEntry.SetEnabled(false)
	}
	if i, ok := m.layout.IndexOf(calc.DigitKey('5')); ok {
		m.cursor = i
	}
	m.lastVersion = m.calc.Version()
	return m
}

// Calculator exposes the underlying state machine. Hosts may press keys on it
// directly; the next Update reports the change through OnChange.
func (m Model) Calculator() *calc.Calculator { return m.calc }

func (m Model) Display() string { return m.calc.Display() }

func (m Model) Variant() Variant { return m.cfg.Variant }

func (m Model) Layout() Layout { return m.layout }

// FocusedButton returns the button that space presses.
func (m Model) FocusedButton() Button { return m.layout.Buttons[m.cursor] }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// ShowFullHelp toggles between the short and full help views.
func (m Model) ShowFullHelp(full bool) Model {
	m.help.ShowAll = full
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m.syncFromCalculator()
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.syncFromCalculator()
		return m.updateMouse(msg)
	case flashEndMsg:
		if msg.id == m.id && msg.seq == m.flashSeq {
			m.flash = -1
		}
		return m, nil
	default:
		// Hosts may drive the calculator directly between messages.
		m.syncFromCalculator()
		return m, nil
	}
}

// dispatch runs keys through the intent pipeline and applies them locally
// when the mutation mode allows it.
func (m *Model) dispatch(keys []calc.Key, src IntentSource) tea.Cmd {
	keys = m.supportedKeys(keys)
	if len(keys) == 0 {
		return nil
	}

	apply := true
	if m.cfg.MutationMode != MutateInKeypad {
		batch := buildIntentBatch(keys, src, m.calc.State())
		decision := IntentDecision{ApplyLocally: m.cfg.MutationMode == EmitIntentsAndMutate}
		if m.cfg.OnIntent != nil {
			decision = m.cfg.OnIntent(batch)
		}
		apply = m.cfg.MutationMode == EmitIntentsAndMutate && decision.ApplyLocally
	}

	cmd := m.startFlash(keys[len(keys)-1])
	if !apply {
		return cmd
	}

	for _, k := range keys {
		if !m.calc.Press(k) {
			m.cfg.Logger.Debug("keypad press ignored", "key", k.Label(), "display", m.calc.Display())
			continue
		}
		ch, _ := m.calc.LastChange()
		m.cfg.Logger.Debug("keypad press",
			"key", k.Label(),
			"display", ch.After.Display,
			"version", ch.VersionAfter,
		)
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(ch))
		}
	}
	m.lastVersion = m.calc.Version()
	return cmd
}

// supportedKeys drops keys the variant has no button for.
func (m *Model) supportedKeys(keys []calc.Key) []calc.Key {
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := m.layout.IndexOf(k); ok {
			out = append(out, k)
		}
	}
	return out
}

func (m *Model) startFlash(k calc.Key) tea.Cmd {
	if m.cfg.FlashDuration <= 0 {
		return nil
	}
	i, ok := m.layout.IndexOf(k)
	if !ok {
		return nil
	}
	m.flash = i
	m.flashSeq++
	id, seq := m.id, m.flashSeq
	return tea.Tick(m.cfg.FlashDuration, func(time.Time) tea.Msg {
		return flashEndMsg{id: id, seq: seq}
	})
}

func (m *Model) syncFromCalculator() {
	ver := m.calc.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	if m.cfg.OnChange == nil {
		return
	}
	if ch, ok := m.calc.LastChange(); ok {
		m.cfg.OnChange(buildChangeEvent(ch))
	}
}
