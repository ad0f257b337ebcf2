package clocktime

import (
	"fmt"
	"strconv"
	"strings"
)

// Min and Max bound a clock value encoded as HHMM
const (
	Min = 0
	Max = 2400
)

// Valid returns true if v is within [Min, Max].
// Minute rollover is not checked, so 1399 is valid.
func Valid(v int) bool {
	return v >= Min && v <= Max
}

// Parse parses a clock value in various formats
// Accepted: "09:00", "9:00", "0900", "900"
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty clock value")
	}

	var v int
	if hh, mm, ok := strings.Cut(s, ":"); ok {
		h, err := strconv.Atoi(hh)
		if err != nil {
			return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
		}
		m, err := strconv.Atoi(mm)
		if err != nil {
			return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
		}
		if h < 0 || m < 0 || m > 59 {
			return 0, fmt.Errorf("clock value %q out of range", s)
		}
		v = h*100 + m
	} else {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
		}
		v = n
	}

	if !Valid(v) {
		return 0, fmt.Errorf("clock value %q out of range [%d, %d]", s, Min, Max)
	}

	return v, nil
}

// Format formats v as HH:MM
// Example: 930 -> "09:30"
func Format(v int) string {
	return fmt.Sprintf("%02d:%02d", v/100, v%100)
}

// Minutes returns the number of minutes since midnight for v
func Minutes(v int) int {
	return (v/100)*60 + v%100
}

// Add adds minutes to v and returns the result encoded as HHMM.
// The result is not wrapped at midnight and may exceed Max.
func Add(v int, minutes int) int {
	total := Minutes(v) + minutes
	return (total/60)*100 + total%60
}
