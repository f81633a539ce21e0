package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Ribbon.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient, indigo to rose.
	lines := []string{
		"        _  _     _                 ",
		"   _ __(_)| |__ | |__   ___  _ __  ",
		"  | '__| || '_ \\| '_ \\ / _ \\| '_ \\ ",
		"  | |  | || |_) | |_) | (_) | | | |",
		"  |_|  |_||_.__/|_.__/ \\___/|_| |_|",
	}
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

	fmt.Println()
	for i, line := range lines {
		fmt.Println(termenv.String(line).Foreground(p.Color(colors[i])))
	}
	fmt.Printf("  a turing machine playground (v%s)\n\n", strings.TrimSpace(version))
}
