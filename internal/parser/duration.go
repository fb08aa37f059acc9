// Package parser parses the human-friendly durations and dates accepted by
// the pomotime CLI.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/manav03panchal/pomotime/internal/errors"
)

// DurationResult represents the result of parsing a duration.
type DurationResult struct {
	Duration time.Duration
	Valid    bool
}

// durationPattern matches duration expressions like "2h", "30m", "1h30m", "2.5h", etc.
var durationPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes|s|sec|secs|second|seconds)?\s*(?:(\d+(?:\.\d+)?)\s*(m|min|mins|minute|minutes))?$`)

// ParseDuration parses a human-readable duration string. A bare number is
// a number of minutes.
// Supports formats like:
//   - "25" or "25m" or "25 minutes"
//   - "1h" or "1 hour"
//   - "1h30m" or "1 hour 30 minutes"
//   - "1.5h" (1 hour 30 minutes)
//   - "90s"
func ParseDuration(input string) DurationResult {
	d, ok := parseLength(input)
	if !ok || d <= 0 {
		return DurationResult{Valid: false}
	}
	return DurationResult{Duration: d, Valid: true}
}

// parseLength parses an unsigned length. Zero is accepted.
func parseLength(input string) (time.Duration, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}

	// Try standard Go duration format first (e.g., "1h30m")
	if d, err := time.ParseDuration(input); err == nil {
		return d, d >= 0
	}

	matches := durationPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, false
	}

	var totalDuration time.Duration

	// First number and unit
	if matches[1] != "" {
		value, _ := strconv.ParseFloat(matches[1], 64)
		totalDuration += unitToDuration(value, strings.ToLower(matches[2]))
	}

	// Second number and unit (for "1h30m" style)
	if matches[3] != "" {
		value, _ := strconv.ParseFloat(matches[3], 64)
		totalDuration += unitToDuration(value, strings.ToLower(matches[4]))
	}

	return totalDuration, true
}

// unitToDuration converts a value and unit to a duration.
func unitToDuration(value float64, unit string) time.Duration {
	switch unit {
	case "h", "hr", "hrs", "hour", "hours":
		return time.Duration(value * float64(time.Hour))
	case "s", "sec", "secs", "second", "seconds":
		return time.Duration(value * float64(time.Second))
	default:
		return time.Duration(value * float64(time.Minute))
	}
}

// ParseSettingMinutes parses a session length typed into the settings and
// returns it in minutes. Zero and negative lengths are returned as given;
// the caller clamps them. Only text that is not a length is an error.
func ParseSettingMinutes(input string) (float64, error) {
	s := strings.TrimSpace(input)
	sign := 1.0
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	d, ok := parseLength(s)
	if !ok {
		return 0, parseError("duration", input, "Invalid duration",
			errors.ErrInvalidDuration, DurationExamples)
	}
	return sign * d.Minutes(), nil
}
