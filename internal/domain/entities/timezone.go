package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LocationFor resolves a user-supplied timezone string. Supported forms:
// IANA names like "Europe/Berlin", plain "UTC"/"GMT", and fixed offsets
// like "UTC+3", "+5:30" or "-07:00". Fixed offsets are DST-agnostic.
func LocationFor(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, "UTC") || strings.EqualFold(tz, "GMT") || strings.EqualFold(tz, "Etc/UTC") {
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(tz); err == nil {
		return loc, nil
	}

	offset, ok := parseUTCOffset(tz)
	if !ok {
		return nil, fmt.Errorf("unsupported timezone %q", tz)
	}
	if offset == 0 {
		return time.UTC, nil
	}

	sign := "+"
	abs := offset
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/3600, abs%3600/60)
	return time.FixedZone(name, offset), nil
}

// parseUTCOffset parses "UTC+3", "GMT-7", "+05:30" or "-3" into seconds.
func parseUTCOffset(s string) (int, bool) {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"UTC", "utc", "GMT", "gmt"} {
		s = strings.TrimPrefix(s, prefix)
	}
	if s == "" {
		return 0, false
	}

	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	default:
		return 0, false
	}

	hh, mm := s, "0"
	if i := strings.IndexByte(s, ':'); i >= 0 {
		hh, mm = s[:i], s[i+1:]
	}

	hours, ok := parseDigits(hh)
	if !ok || hours > 14 {
		return 0, false
	}
	minutes, ok := parseDigits(mm)
	if !ok || minutes > 59 {
		return 0, false
	}

	return sign * (hours*3600 + minutes*60), true
}

// parseDigits parses a plain digit string, rejecting signs and spaces
// that strconv.Atoi would tolerate.
func parseDigits(s string) (int, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
