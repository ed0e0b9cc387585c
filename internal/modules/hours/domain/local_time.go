package domain

import (
	"fmt"
	"strings"
	"time"
)

const localTimeLayout = "15:04"

// LocalTime is a wall-clock time of day in canonical "HH:MM" form. The zero value means "unset".
type LocalTime string

// ParseLocalTime accepts "H:MM" or "HH:MM" with hour in [0,23] and minute in [0,59] and
// returns the zero-padded canonical value.
func ParseLocalTime(raw string) (LocalTime, error) {
	parsed, err := parseClock(raw)
	if err != nil {
		return "", err
	}
	return LocalTime(parsed.Format(localTimeLayout)), nil
}

// IsValidLocalTime reports whether s is a well-formed 24-hour time of day.
func IsValidLocalTime(s string) bool {
	_, err := parseClock(s)
	return err == nil
}

// Minutes returns minutes since midnight; ok is false for malformed values.
func (t LocalTime) Minutes() (int, bool) {
	parsed, err := parseClock(string(t))
	if err != nil {
		return 0, false
	}
	return parsed.Hour()*60 + parsed.Minute(), true
}

// Canonical returns the zero-padded form, or "" when t is malformed.
func (t LocalTime) Canonical() LocalTime {
	canonical, err := ParseLocalTime(string(t))
	if err != nil {
		return ""
	}
	return canonical
}

func (t LocalTime) IsZero() bool { return strings.TrimSpace(string(t)) == "" }

func (t LocalTime) String() string { return string(t) }

func parseClock(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidLocalTime)
	}
	parsed, err := time.Parse(localTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLocalTime, raw)
	}
	return parsed, nil
}

func minutesOf(at time.Time) int {
	return at.Hour()*60 + at.Minute()
}
