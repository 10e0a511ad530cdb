package keypad

import "github.com/iw2rmb/abacus/calc"

// MutationMode controls whether input handling mutates the local calculator,
// emits intents to the host, or both.
type MutationMode uint8

const (
	// MutateInKeypad applies presses locally without consulting the host.
	MutateInKeypad MutationMode = iota
	// EmitIntentsOnly emits intents and does not apply local mutations.
	EmitIntentsOnly
	// EmitIntentsAndMutate emits intents and applies local mutations when the
	// host decision allows it.
	EmitIntentsAndMutate
)

// IntentSource identifies which input produced an intent.
type IntentSource uint8

const (
	SourceKeyboard IntentSource = iota
	SourceMouse
	SourcePaste
)

// Intent is one button press requested by input handling.
type Intent struct {
	Key    calc.Key
	Source IntentSource
	Before calc.State
}

// IntentBatch groups intents produced from one input event. A paste yields
// one intent per key.
type IntentBatch struct {
	Intents []Intent
}

// IntentDecision controls whether the keypad applies mutations locally.
// It is used in EmitIntentsAndMutate mode.
type IntentDecision struct {
	ApplyLocally bool
}

func normalizeMutationMode(mode MutationMode) MutationMode {
	switch mode {
	case MutateInKeypad, EmitIntentsOnly, EmitIntentsAndMutate:
		return mode
	default:
		return MutateInKeypad
	}
}

func buildIntentBatch(keys []calc.Key, src IntentSource, before calc.State) IntentBatch {
	batch := IntentBatch{Intents: make([]Intent, 0, len(keys))}
	st := before
	for _, k := range keys {
		batch.Intents = append(batch.Intents, Intent{Key: k, Source: src, Before: st})
		st = calc.Step(st, k)
	}
	return batch
}
