package main

// Must be first import - adjusts TERM before lipgloss loads
import _ "github.com/wahlandcase/repostatus/internal/termfix"

import (
	"errors"
	"fmt"
	"os"

	"github.com/wahlandcase/repostatus/internal/cli"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		// Validation failures have already been reported
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
