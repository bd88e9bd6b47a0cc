package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClockStyle selects how a time of day is rendered.
type ClockStyle string

const (
	Clock12h ClockStyle = "12h"
	Clock24h ClockStyle = "24h"
)

const (
	layout12h = "3:04 PM"
	layout24h = "15:04"
)

// FormatClock renders hour:minute as a short time of day, no seconds and no date.
func FormatClock(hour, minute int, style ClockStyle) string {
	t := time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
	if style == Clock24h {
		return t.Format(layout24h)
	}
	return t.Format(layout12h)
}

// ParseClock accepts "22:48", "10:48 PM" and "10:48pm".
func ParseClock(s string) (WakeTime, error) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		suffix := upper[len(upper)-2:]
		body := strings.TrimSpace(upper[:len(upper)-2])
		t, err := time.Parse(layout12h, body+" "+suffix)
		if err != nil {
			return WakeTime{}, fmt.Errorf("%w: %q is not a valid time", ErrInvalidInput, s)
		}
		return WakeTimeOf(t), nil
	}

	t, err := time.Parse(layout24h, s)
	if err != nil {
		return WakeTime{}, fmt.Errorf("%w: %q is not a valid time", ErrInvalidInput, s)
	}
	return WakeTimeOf(t), nil
}
