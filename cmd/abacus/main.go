// Command abacus is a keypad calculator for the terminal.
package main

import (
	"os"

	"github.com/iw2rmb/abacus/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
