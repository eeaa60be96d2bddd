package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Metric rating constants.
const (
	StrongValue = "Strong" // Strong value
	FairValue   = "Fair"   // Fair value
	WeakValue   = "Weak"   // Weak value
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold)
	FairColor     = color.New(color.FgYellow)
	WeakColor     = color.New(color.FgRed)
	TopPickColor  = color.New(color.FgCyan, color.Bold)
	InactiveColor = color.New(color.Faint)
)

// GetPlainLabel returns a plain text rating for a benchmark value. Higher values
// are better unless lowerIsBetter is set, in which case latency-style thresholds apply.
func GetPlainLabel(value float64, lowerIsBetter bool) string {
	if lowerIsBetter {
		switch {
		case value < 20:
			return StrongValue
		case value < 50:
			return FairValue
		default:
			return WeakValue
		}
	}
	switch {
	case value > 80:
		return StrongValue
	case value > 60:
		return FairValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored rating for console output (table).
func GetColorLabel(value float64, lowerIsBetter bool) string {
	text := GetPlainLabel(value, lowerIsBetter)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for cache storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".llmpick_cache.db"
	}
	return filepath.Join(homeDir, ".llmpick_cache.db")
}

// TruncateName truncates a display name to a maximum terminal width with an
// ellipsis suffix. Wide runes count as two columns.
func TruncateName(name string, maxWidth int) string {
	if maxWidth <= 3 || runewidth.StringWidth(name) <= maxWidth {
		return name
	}
	return runewidth.Truncate(name, maxWidth, "...")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
