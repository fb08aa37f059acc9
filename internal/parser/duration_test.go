package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pomotime/internal/errors"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		valid    bool
	}{
		// Standard Go duration formats
		{"go_duration_minutes", "25m", 25 * time.Minute, true},
		{"go_duration_hours", "1h", time.Hour, true},
		{"go_duration_seconds", "90s", 90 * time.Second, true},
		{"go_duration_combined", "1h30m", 90 * time.Minute, true},

		// Bare numbers are minutes
		{"bare_number", "25", 25 * time.Minute, true},
		{"bare_decimal", "2.5", 150 * time.Second, true},

		// Human-readable formats
		{"minutes_word", "45 minutes", 45 * time.Minute, true},
		{"minutes_min", "30min", 30 * time.Minute, true},
		{"hours_word", "1 hour", time.Hour, true},
		{"hours_decimal", "1.5h", 90 * time.Minute, true},
		{"hour_and_minutes", "1 hour 30 minutes", 90 * time.Minute, true},
		{"seconds_sec", "45sec", 45 * time.Second, true},

		// Invalid
		{"empty", "", 0, false},
		{"whitespace", "   ", 0, false},
		{"zero", "0", 0, false},
		{"negative_go", "-5m", 0, false},
		{"text", "soon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseDuration(tt.input)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Equal(t, tt.expected, result.Duration)
			}
		})
	}
}

func TestParseSettingMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"25", 25},
		{"1h", 60},
		{"90s", 1.5},
		{"0", 0},
		{"0m", 0},
		{"-5", -5},
		{" -10m ", -10},
		{"+3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSettingMinutes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("garbage_rejected", func(t *testing.T) {
		for _, input := range []string{"", "soon", "-", "--5"} {
			_, err := ParseSettingMinutes(input)
			assert.True(t, errors.Is(err, errors.ErrInvalidDuration), input)
		}
	})

	t.Run("suggestion_lists_examples", func(t *testing.T) {
		_, err := ParseSettingMinutes("forever")
		ue, ok := errors.AsUserError(err)
		require.True(t, ok)
		assert.Contains(t, ue.Suggestion, "25m")
	})

	t.Run("duration_parser_still_rejects_zero", func(t *testing.T) {
		assert.False(t, ParseDuration("0").Valid)
		assert.False(t, ParseDuration("-5m").Valid)
	})
}
