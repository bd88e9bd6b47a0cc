package domain

import (
	"fmt"
	"strconv"
)

// CupLabel renders a coffee picker entry: "1 cup", otherwise "N cups".
func CupLabel(cups int) string {
	if cups == 1 {
		return "1 cup"
	}
	return fmt.Sprintf("%d cups", cups)
}

// SleepLabel renders the sleep stepper value with the shortest decimal form, e.g. "8 hours", "8.25 hours".
func SleepLabel(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + " hours"
}
