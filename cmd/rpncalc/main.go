// Command rpncalc evaluates arithmetic expressions, either given as
// arguments or read one per line.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
