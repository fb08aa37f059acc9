package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/timer"
)

// =============================================================================
// Settings Key Tests
// =============================================================================

func TestApplySetting(t *testing.T) {
	base := model.DefaultSettings()

	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s model.Settings)
	}{
		{"work_minutes", "work", "50", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 50*60, s.WorkDuration)
		}},
		{"break_duration_string", "break", "10m", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 10*60, s.BreakDuration)
		}},
		{"long_break_alias", "long", "1h", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 60*60, s.LongBreakDuration)
		}},
		{"rounds_to_whole_minutes", "work", "90s", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 2*60, s.WorkDuration)
		}},
		{"floor_of_one_minute", "work", "10s", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 60, s.WorkDuration)
		}},
		{"zero_raised_to_one_minute", "work", "0", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 60, s.WorkDuration)
		}},
		{"negative_raised_to_one_minute", "work", "-5", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 60, s.WorkDuration)
		}},
		{"zero_with_unit", "long-break", "0m", func(t *testing.T, s model.Settings) {
			assert.Equal(t, 60, s.LongBreakDuration)
		}},
		{"sound_off", "sound", "off", func(t *testing.T, s model.Settings) {
			assert.False(t, s.SoundEnabled)
		}},
		{"notify_alias", "notifications", "no", func(t *testing.T, s model.Settings) {
			assert.False(t, s.NotificationsEnabled)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := applySetting(base, tt.key, tt.value)
			require.NoError(t, err)
			tt.check(t, updated)
		})
	}

	t.Run("original_untouched", func(t *testing.T) {
		_, err := applySetting(base, "work", "40")
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), base)
	})
}

func TestApplySettingErrors(t *testing.T) {
	base := model.DefaultSettings()

	t.Run("unknown_key", func(t *testing.T) {
		_, err := applySetting(base, "volume", "10")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnknownSetting))
		ue, ok := errors.AsUserError(err)
		require.True(t, ok)
		assert.Contains(t, ue.Suggestion, "long-break")
	})

	t.Run("bad_duration", func(t *testing.T) {
		_, err := applySetting(base, "work", "soon")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidDuration))
	})

	t.Run("bad_toggle", func(t *testing.T) {
		_, err := applySetting(base, "sound", "loud")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidToggle))
	})
}

func TestSettingValue(t *testing.T) {
	s := model.DefaultSettings()

	v, err := settingValue(s, "work")
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, v)

	v, err = settingValue(s, "LONG-BREAK")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, v)

	v, err = settingValue(s, "sound")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = settingValue(s, "theme")
	assert.True(t, errors.Is(err, errors.ErrUnknownSetting))
}

func TestJSONSettingValue(t *testing.T) {
	s := model.DefaultSettings()

	v, err := settingValue(s, "work")
	require.NoError(t, err)
	assert.Equal(t, s.WorkDuration, jsonSettingValue(v))
	assert.Equal(t, 1500, jsonSettingValue(v))

	v, err = settingValue(s, "notify")
	require.NoError(t, err)
	assert.Equal(t, true, jsonSettingValue(v))
}

func TestFormatSettingValue(t *testing.T) {
	assert.Equal(t, "on", formatSettingValue(true))
	assert.Equal(t, "off", formatSettingValue(false))
	assert.Equal(t, "7", formatSettingValue(7))
	assert.NotEmpty(t, formatSettingValue(25*time.Minute))
}

// =============================================================================
// Completion Tests
// =============================================================================

func TestCompletions(t *testing.T) {
	t.Run("session_types_prefix", func(t *testing.T) {
		got, dir := completeSessionTypes(startCmd, nil, "l")
		assert.Equal(t, []string{"long-break\tlong break"}, got)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, dir)
	})

	t.Run("session_types_only_first_arg", func(t *testing.T) {
		got, _ := completeSessionTypes(startCmd, []string{"work"}, "")
		assert.Empty(t, got)
	})

	t.Run("stats_args", func(t *testing.T) {
		got, _ := completeStatsArgs(statsCmd, nil, "y")
		assert.Equal(t, []string{"yesterday\tyesterday's sessions"}, got)
	})

	t.Run("setting_keys", func(t *testing.T) {
		got, _ := completeSettingKeys(configGetCmd, nil, "")
		assert.Len(t, got, len(settingKeys))
	})

	t.Run("toggle_values_for_set", func(t *testing.T) {
		got, _ := completeSettingKeys(configSetCmd, []string{"notify"}, "o")
		assert.Equal(t, []string{"on", "off"}, got)
	})

	t.Run("no_values_for_get", func(t *testing.T) {
		got, _ := completeSettingKeys(configGetCmd, []string{"sound"}, "")
		assert.Empty(t, got)
	})

	t.Run("backends_and_formats", func(t *testing.T) {
		backends, _ := completeBackends(rootCmd, nil, "s")
		assert.Equal(t, []string{"sqlite\tsingle-file SQL database"}, backends)

		formats, _ := completeFormats(rootCmd, nil, "j")
		assert.Equal(t, []string{"json\tmachine readable"}, formats)
	})
}

// =============================================================================
// Headless Input Tests
// =============================================================================

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  byte
		kind timer.CommandKind
		typ  model.SessionType
	}{
		{' ', timer.CommandToggle, ""},
		{'r', timer.CommandReset, ""},
		{'1', timer.CommandSelect, model.SessionWork},
		{'2', timer.CommandSelect, model.SessionBreak},
		{'3', timer.CommandSelect, model.SessionLongBreak},
		{'q', timer.CommandQuit, ""},
		{3, timer.CommandQuit, ""},
	}

	for _, tt := range tests {
		cmd, ok := keyCommand(tt.key)
		require.True(t, ok, "key %q", tt.key)
		assert.Equal(t, tt.kind, cmd.Kind)
		assert.Equal(t, tt.typ, cmd.Session)
	}

	_, ok := keyCommand('x')
	assert.False(t, ok)
}

func TestCRLFWriter(t *testing.T) {
	var buf bytes.Buffer
	w := crlfWriter{w: &buf}

	n, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "one\r\ntwo\r\n", buf.String())
}

// =============================================================================
// Completion Script Tests
// =============================================================================

func TestWriteCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCompletion(rootCmd, &buf, shell, true))
			assert.Contains(t, buf.String(), "pomotime")
		})
	}

	t.Run("without_descriptions", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeCompletion(rootCmd, &buf, "fish", false))
		assert.NotEmpty(t, buf.String())
	})

	t.Run("unknown_shell", func(t *testing.T) {
		err := writeCompletion(rootCmd, &bytes.Buffer{}, "tcsh", true)
		assert.Error(t, err)
	})
}
