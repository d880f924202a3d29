package utils

import (
	"fmt"
	"time"
)

var clockLayouts = []string{"15:04:05", "15:04"}

// ParseClock parses a facility-local wall-clock time ("09:00" or "09:00:00").
func ParseClock(value string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid clock time %q", value)
}

// HoursBetween returns end minus start in hours for two wall-clock times on the
// same day. Unparseable inputs contribute zero hours.
func HoursBetween(start, end string) float64 {
	s, err := ParseClock(start)
	if err != nil {
		return 0
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0
	}
	return e.Sub(s).Hours()
}
