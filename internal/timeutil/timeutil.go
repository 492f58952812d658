// Package timeutil provides clock-time conversions and display formatting.
//
// All scheduling math runs on minutes since midnight (0..1439); clock strings
// only appear at the edges: user input, persistence, and display.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// MinutesPerDay is the size of the single-day minute scale.
const MinutesPerDay = 24 * 60

// DefaultFrequencyStep is the fallback ad-marker step when a campaign
// frequency is missing or degenerate.
const DefaultFrequencyStep = 30

// ToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for anything ValidClock rejects.
func ToMinutes(t string) int {
	if !ValidClock(t) {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// FromMinutes converts minutes since midnight to "HH:MM" format,
// clamped to the 0..1439 range.
func FromMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ValidClock reports whether s is a well-formed "HH:MM" clock string.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// Format12h renders minutes since midnight as a 12-hour clock string with a
// lowercase meridiem and no leading zero on the hour, e.g. "9:00am", "12:30pm".
func Format12h(m int) string {
	if m < 0 {
		m = 0
	}
	m %= MinutesPerDay
	h := m / 60
	min := m % 60
	meridiem := "am"
	if h >= 12 {
		meridiem = "pm"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, min, meridiem)
}

// FormatRange12h renders a start/duration pair as "9:00am–10:00am".
// The end is start+duration on the flat minute scale; cross-midnight
// programs are clipped by the caller before display.
func FormatRange12h(startMinutes, durationMinutes int) string {
	return Format12h(startMinutes) + "–" + Format12h(startMinutes+durationMinutes)
}

// DurationLabel renders a minute count as a compact label: "45m", "1h", "1h 30m".
func DurationLabel(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// ParseFrequency parses a campaign frequency of the form "HH:MM" with an
// optional trailing unit suffix ("00:30hr", "1:00 hr"). A malformed or
// non-positive frequency falls back to DefaultFrequencyStep so callers
// always receive a terminating step.
func ParseFrequency(s string) int {
	s = strings.TrimSpace(strings.ToLower(s))
	// Strip any trailing unit suffix after the minutes.
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != ':' {
			s = strings.TrimSpace(s[:i])
			break
		}
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return DefaultFrequencyStep
	}
	hours, ok1 := parseInt(parts[0])
	mins, ok2 := parseInt(parts[1])
	if !ok1 || !ok2 {
		return DefaultFrequencyStep
	}
	step := hours*60 + mins
	if step <= 0 {
		return DefaultFrequencyStep
	}
	return step
}

// parseInt parses a small non-negative decimal without pulling in strconv
// error plumbing; ok is false on empty or non-digit input.
func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
