package outwriter

import (
	"os"

	"github.com/huangsam/llmpick/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for model names in table output
// based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + Params + Bucket + Status + Bar with borders/padding

	// Benchmark value and label
	if cfg.Selection.Benchmark != "" {
		baseWidth += 16
	}

	// Relevant benchmarks, memory and cost
	if cfg.Detail {
		baseWidth += 50
	}

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	// Calculate available space for the name
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 40 {
		// Longest catalog names fit comfortably
		return 40
	}
	return available
}
