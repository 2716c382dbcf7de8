package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Churn label constants.
const (
	HeavyValue    = "Heavy"    // Most of the repository was touched
	ModerateValue = "Moderate" // A noticeable share was touched
	LightValue    = "Light"    // Little or nothing was touched
)

// Color variables for console output.
var (
	HeavyColor    = color.New(color.FgRed, color.Bold) // HeavyColor represents standard danger.
	ModerateColor = color.New(color.FgYellow)          // ModerateColor represents standard caution, not bold.
	LightColor    = color.New(color.FgCyan)            // LightColor represents informational / low-priority signal.
	HeaderColor   = color.New(color.Bold)
)

// GetChurnLabel returns a plain text label for the share of the repository
// touched in one bucket. A zero total is always Light.
func GetChurnLabel(changed, total int) string {
	if total <= 0 {
		return LightValue
	}
	share := float64(changed) / float64(total)
	switch {
	case share >= 0.5:
		return HeavyValue
	case share >= 0.1:
		return ModerateValue
	default:
		return LightValue
	}
}

// ColorizePercent colors a percentage string according to GetChurnLabel.
func ColorizePercent(pct string, changed, total int) string {
	switch GetChurnLabel(changed, total) {
	case HeavyValue:
		return HeavyColor.Sprint(pct)
	case ModerateValue:
		return ModerateColor.Sprint(pct)
	default:
		return LightColor.Sprint(pct)
	}
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
