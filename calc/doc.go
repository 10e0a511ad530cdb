// Package calc implements the pure state machine behind the Abacus keypad.
//
// Arithmetic is sequential: each operator press folds the pending operation
// left to right, with no precedence. Values are float64 and follow IEEE-754,
// so division by zero yields +Inf, -Inf or NaN rather than an error.
package calc
