// Package validate provides input validation helpers for the pomotime CLI.
package validate

import (
	"math"
	"strings"

	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/model"
)

const (
	// MinMinutes is the shortest session the settings form accepts.
	MinMinutes = 1
	// FallbackSeconds replaces stored durations that are zero or negative.
	FallbackSeconds = 60
	// MaxDurationSeconds caps any session at one day.
	MaxDurationSeconds = 24 * 60 * 60
)

// MinutesToSeconds converts a minutes value from the settings form to
// seconds, rounding to whole minutes with a floor of one minute.
func MinutesToSeconds(minutes float64) int {
	if math.IsNaN(minutes) {
		minutes = MinMinutes
	}
	m := math.Max(MinMinutes, math.Round(minutes))
	return clampSeconds(int(m) * 60)
}

// DurationSeconds clamps a stored duration into the accepted range.
func DurationSeconds(seconds int) int {
	if seconds < 1 {
		return FallbackSeconds
	}
	return clampSeconds(seconds)
}

func clampSeconds(seconds int) int {
	if seconds > MaxDurationSeconds {
		return MaxDurationSeconds
	}
	return seconds
}

// ClampSettings returns s with every duration clamped into range.
func ClampSettings(s model.Settings) model.Settings {
	s.WorkDuration = DurationSeconds(s.WorkDuration)
	s.BreakDuration = DurationSeconds(s.BreakDuration)
	s.LongBreakDuration = DurationSeconds(s.LongBreakDuration)
	return s
}

// SessionType parses a session type given on the command line.
func SessionType(input string) (model.SessionType, error) {
	t, err := model.ParseSessionType(input)
	if err != nil {
		return "", errors.NewUserErrorWithField("type", input,
			"Unknown session type",
			"Use one of: work, break, long-break",
		).WithCause(errors.ErrInvalidSessionType)
	}
	return t, nil
}

// Toggle parses an on/off value.
func Toggle(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "on", "true", "yes", "y", "1", "enable", "enabled":
		return true, nil
	case "off", "false", "no", "n", "0", "disable", "disabled":
		return false, nil
	}
	return false, errors.NewUserErrorWithField("value", input,
		"Invalid on/off value",
		"Use 'on' or 'off'",
	).WithCause(errors.ErrInvalidToggle)
}
