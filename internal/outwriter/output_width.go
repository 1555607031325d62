package outwriter

import (
	"os"

	"github.com/huangsam/salesrank/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for names in table output
// based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for pipes and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Score + Label with borders and padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
