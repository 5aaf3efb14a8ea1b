// Package termfix adjusts the terminal environment before lipgloss and
// termenv detect capabilities. Import it FIRST in main:
//
//	_ "github.com/wahlandcase/repostatus/internal/termfix"
package termfix

import "os"

func init() {
	// Warp stalls on termenv's capability queries
	if os.Getenv("TERM_PROGRAM") == "WarpTerminal" {
		os.Setenv("TERM", "dumb")
		os.Setenv("COLORTERM", "truecolor")
	}
	// https://no-color.org
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		os.Setenv("TERM", "dumb")
		os.Unsetenv("COLORTERM")
	}
}
