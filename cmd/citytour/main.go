// Command citytour builds a city set, runs the selected tour solvers over it,
// times each one, and prints the resulting lengths, the final tour and its grid.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
