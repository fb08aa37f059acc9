package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/model"
)

// =============================================================================
// Duration Tests
// =============================================================================

func TestMinutesToSeconds(t *testing.T) {
	tests := []struct {
		name     string
		minutes  float64
		expected int
	}{
		{"whole", 25, 1500},
		{"rounds_down", 4.4, 240},
		{"rounds_up", 4.5, 300},
		{"zero", 0, 60},
		{"negative", -10, 60},
		{"below_one", 0.3, 60},
		{"nan", math.NaN(), 60},
		{"over_a_day", 2000, MaxDurationSeconds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinutesToSeconds(tt.minutes))
		})
	}
}

func TestDurationSeconds(t *testing.T) {
	assert.Equal(t, 1500, DurationSeconds(1500))
	assert.Equal(t, 1, DurationSeconds(1))
	assert.Equal(t, FallbackSeconds, DurationSeconds(0))
	assert.Equal(t, FallbackSeconds, DurationSeconds(-5))
	assert.Equal(t, MaxDurationSeconds, DurationSeconds(MaxDurationSeconds+1))
}

func TestClampSettings(t *testing.T) {
	t.Run("valid_unchanged", func(t *testing.T) {
		s := model.DefaultSettings()
		assert.Equal(t, s, ClampSettings(s))
	})

	t.Run("clamps_each_duration", func(t *testing.T) {
		s := model.Settings{WorkDuration: 0, BreakDuration: -1, LongBreakDuration: 10 * MaxDurationSeconds, SoundEnabled: true}
		got := ClampSettings(s)
		assert.Equal(t, FallbackSeconds, got.WorkDuration)
		assert.Equal(t, FallbackSeconds, got.BreakDuration)
		assert.Equal(t, MaxDurationSeconds, got.LongBreakDuration)
		assert.True(t, got.SoundEnabled)
	})
}

// =============================================================================
// Session Type Tests
// =============================================================================

func TestSessionType(t *testing.T) {
	tests := []struct {
		input    string
		expected model.SessionType
		wantErr  bool
	}{
		{"work", model.SessionWork, false},
		{"Focus", model.SessionWork, false},
		{"break", model.SessionBreak, false},
		{"short", model.SessionBreak, false},
		{"long-break", model.SessionLongBreak, false},
		{"long", model.SessionLongBreak, false},
		{"nap", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := SessionType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidSessionType))
				assert.True(t, errors.IsUserError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// =============================================================================
// Toggle Tests
// =============================================================================

func TestToggle(t *testing.T) {
	for _, in := range []string{"on", "ON", "true", "yes", "1", " enabled "} {
		t.Run(in, func(t *testing.T) {
			v, err := Toggle(in)
			require.NoError(t, err)
			assert.True(t, v)
		})
	}

	for _, in := range []string{"off", "false", "no", "0", "disable"} {
		t.Run(in, func(t *testing.T) {
			v, err := Toggle(in)
			require.NoError(t, err)
			assert.False(t, v)
		})
	}

	_, err := Toggle("maybe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidToggle))
}
