package contract

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/huangsam/salesrank/schema"
)

// Color variables for console output.
var (
	EliteColor      = color.New(color.FgGreen, color.Bold) // EliteColor marks the leading group.
	StrongColor     = color.New(color.FgCyan, color.Bold)
	SolidColor      = color.New(color.FgYellow)
	DevelopingColor = color.New(color.FgWhite)
)

// GetColorLabel returns a colored text label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score, best float64) string {
	text := schema.GetPlainLabel(score, best)

	switch text {
	case schema.EliteLabel:
		return EliteColor.Sprint(text)
	case schema.StrongLabel:
		return StrongColor.Sprint(text)
	case schema.SolidLabel:
		return SolidColor.Sprint(text)
	default: // "Developing"
		return DevelopingColor.Sprint(text)
	}
}

// Bounds of the plain decimal form; magnitudes outside use "1.5E7" notation.
const (
	minPlainScore = 1e-3
	maxPlainScore = 1e7
)

// FormatScore renders a score with the given number of decimals.
// A precision of 0 gives the shortest form that round-trips, with ".0"
// appended to integral values so 10 prints as "10.0". Non-zero magnitudes
// below 1e-3 or from 1e7 up switch to scientific form, e.g. "1.2345678E7".
func FormatScore(score float64, precision int) string {
	if precision > 0 {
		return strconv.FormatFloat(score, 'f', precision, 64)
	}
	if math.IsInf(score, 0) || math.IsNaN(score) {
		return strconv.FormatFloat(score, 'g', -1, 64)
	}
	if abs := math.Abs(score); abs != 0 && (abs < minPlainScore || abs >= maxPlainScore) {
		return formatScientific(score)
	}
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatScientific turns "1.5e+07" into "1.5E7" and "1e-04" into "1.0E-4".
func formatScientific(score float64) string {
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(score, 'e', -1, 64), "e")
	if !strings.ContainsRune(mantissa, '.') {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
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

// TruncateName truncates a name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the "..." and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
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
