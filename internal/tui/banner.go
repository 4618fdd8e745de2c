package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the LinkZero banner with the run mode.
func PrintBanner(version string, dryRun bool) {
	p := termenv.ColorProfile()
	title := termenv.String("LinkZero " + version).Foreground(p.Color("#38bdf8")).Bold()
	sub := termenv.String("mail submission hardening").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Printf("  %s — %s\n", title, sub)
	if dryRun {
		fmt.Printf("  %s\n", termenv.String("dry-run mode: no changes will be made").Foreground(p.Color("#facc15")))
	}
	fmt.Println()
}
