package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// DateLayout is the wire and storage format for calendar days.
const DateLayout = "2006-01-02"

// Today returns the current calendar day.
func Today() string {
	return now.BeginningOfDay().Format(DateLayout)
}

// Yesterday returns the previous calendar day.
func Yesterday() string {
	return now.BeginningOfDay().AddDate(0, 0, -1).Format(DateLayout)
}

// WeekStart returns the first day of the inclusive trailing 7-day window
// ending today.
func WeekStart() string {
	return now.BeginningOfDay().AddDate(0, 0, -6).Format(DateLayout)
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD day.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
