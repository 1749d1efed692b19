// The main package for the leadgen executable.
package main

import (
	"github.com/vikabot/leadgen/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
