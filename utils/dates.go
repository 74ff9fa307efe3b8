package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used across the reception engine.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current calendar day at midnight UTC.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDateForSpeech renders a date as natural speech, e.g. "25 March 2025".
// Invalid input is returned unchanged so replies never show a parse artifact.
func FormatDateForSpeech(dateString string) string {
	d, err := ParseDate(dateString)
	if err != nil {
		return dateString
	}
	return fmt.Sprintf("%d %s %d", d.Day(), d.Month().String(), d.Year())
}

// Plural returns "s" if n is not 1, otherwise an empty string.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
