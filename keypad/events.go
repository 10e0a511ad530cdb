package keypad

import "github.com/iw2rmb/abacus/calc"

// ChangeEvent reports one effective transition of the calculator.
type ChangeEvent struct {
	Version uint64
	Key     calc.Key
	Before  calc.State
	State   calc.State

	// Pending is the auxiliary "<previous> <operator>" line, empty when no
	// operation is pending.
	Pending string
}

func buildChangeEvent(ch calc.Change) ChangeEvent {
	pending, _ := ch.After.Pending()
	return ChangeEvent{
		Version: ch.VersionAfter,
		Key:     ch.Key,
		Before:  ch.Before,
		State:   ch.After,
		Pending: pending,
	}
}
