// Package model defines the domain models for pomotime.
package model

import (
	"time"
)

// Storage keys. Settings live under a single key; each calendar day of
// stats lives under its own key.
const (
	KeySettings = "pomodoro-settings"
	PrefixStats = "pomodoro-stats-"
)

// DateLayout is the layout of calendar dates used as stats keys.
const DateLayout = "2006-01-02"

// DateKey returns the local calendar date of t.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// StatsKey returns the storage key for the given calendar date.
func StatsKey(date string) string {
	return PrefixStats + date
}

// ParseDateKey parses a calendar date in local time.
func ParseDateKey(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.Local)
}
