package schema

import (
	"fmt"
	"strings"
)

// ParsePeriod resolves a period by its first letter, case-insensitively.
// "w", "Week" and "weekly" all select WeeklyPeriod.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("%w: period is required (daily, weekly, monthly or yearly)", ErrInvalidConfiguration)
	}
	switch s[0] {
	case 'd':
		return DailyPeriod, nil
	case 'w':
		return WeeklyPeriod, nil
	case 'm':
		return MonthlyPeriod, nil
	case 'y':
		return YearlyPeriod, nil
	}
	return "", fmt.Errorf("%w: period %q should be daily (d), weekly (w), monthly (m) or yearly (y)", ErrInvalidConfiguration, s)
}

// ParseFirstDay resolves a first-day-of-week convention by its first three
// letters, case-insensitively. An empty string selects MondayFirst.
func ParseFirstDay(s string) (FirstDay, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MondayFirst, nil
	}
	prefix := s
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	switch prefix {
	case "mon":
		return MondayFirst, nil
	case "sun":
		return SundayFirst, nil
	case "sat":
		return SaturdayFirst, nil
	}
	return "", fmt.Errorf("%w: first day %q should be monday (mon), sunday (sun) or saturday (sat)", ErrInvalidConfiguration, s)
}

// DefaultNumber returns how many buckets a period reports when the caller
// does not ask for a specific count.
func DefaultNumber(p Period) int {
	switch p {
	case DailyPeriod:
		return 14
	case MonthlyPeriod:
		return 12
	case YearlyPeriod:
		return 5
	default: // WeeklyPeriod
		return 8
	}
}

// ResolveNumber applies the per-period default to a zero count and rejects
// negative counts.
func ResolveNumber(p Period, number int) (int, error) {
	if number < 0 {
		return 0, fmt.Errorf("%w: number must be a positive integer (received %d)", ErrInvalidConfiguration, number)
	}
	if number == 0 {
		return DefaultNumber(p), nil
	}
	return number, nil
}
