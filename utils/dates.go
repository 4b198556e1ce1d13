package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date key used by the catalog.
const DateLayout = "2006-01-02"

// NormalizeDate converts the date forms clients send into the catalog's
// "YYYY-MM-DD" key. Accepted: "M/D/YYYY" (with or without zero padding),
// "YYYY-MM-DD", and RFC 3339 timestamps, whose date part is kept as-is.
func NormalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return "", fmt.Errorf("date %q: want M/D/YYYY", raw)
		}
		if !digits(parts[0], 1, 2) || !digits(parts[1], 1, 2) || !digits(parts[2], 4, 4) {
			return "", fmt.Errorf("date %q: want M/D/YYYY", raw)
		}
		month, _ := strconv.Atoi(parts[0])
		day, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		return canonicalDate(year, month, day, raw)
	}

	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("date %q: %w", raw, err)
	}
	return t.Format(DateLayout), nil
}

// digits reports whether s is between min and max ASCII digits long and
// holds nothing else. strconv.Atoi alone would accept signs.
func digits(s string, min, max int) bool {
	if len(s) < min || len(s) > max {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func canonicalDate(year, month, day int, raw string) (string, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (2/30 -> 3/2); reject instead.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", fmt.Errorf("date %q is not a calendar date", raw)
	}
	return t.Format(DateLayout), nil
}

// TodayUTC returns now's calendar date at the UTC boundary.
func TodayUTC(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
