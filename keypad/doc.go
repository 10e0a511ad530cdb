// Package keypad provides a Bubble Tea calculator component backed by the
// calc package.
//
// The package is responsible for the button layout of each variant, key and
// mouse input, rendering the display and grid, and host integration hooks
// (change events, press intents, clipboard, and logging).
package keypad
