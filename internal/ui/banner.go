package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art header for the interactive view
var Banner = []string{
	" ____   _____  ____    ___      ____   _____     _     _____  _   _  ____  ",
	"|  _ \\ | ____||  _ \\  / _ \\    / ___| |_   _|   / \\   |_   _|| | | |/ ___| ",
	"| |_) ||  _|  | |_) || | | |   \\___ \\   | |    / _ \\    | |  | | | |\\___ \\ ",
	"|  _ < | |___ |  __/ | |_| |    ___) |  | |   / ___ \\   | |  | |_| | ___) |",
	"|_| \\_\\|_____||_|     \\___/    |____/   |_|  /_/   \\_\\  |_|   \\___/ |____/ ",
}

// RenderBanner returns the styled banner as a string
func RenderBanner() string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}
