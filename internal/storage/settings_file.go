package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/validate"
)

type yamlSettings struct {
	WorkMinutes          *float64 `yaml:"work_minutes"`
	BreakMinutes         *float64 `yaml:"break_minutes"`
	LongBreakMinutes     *float64 `yaml:"long_break_minutes"`
	SoundEnabled         *bool    `yaml:"sound_enabled"`
	NotificationsEnabled *bool    `yaml:"notifications_enabled"`
}

// MarshalSettingsYAML renders settings as YAML with durations in minutes.
func MarshalSettingsYAML(s model.Settings) ([]byte, error) {
	work := float64(s.WorkDuration) / 60
	brk := float64(s.BreakDuration) / 60
	long := float64(s.LongBreakDuration) / 60
	fileData := yamlSettings{
		WorkMinutes:          &work,
		BreakMinutes:         &brk,
		LongBreakMinutes:     &long,
		SoundEnabled:         &s.SoundEnabled,
		NotificationsEnabled: &s.NotificationsEnabled,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

// UnmarshalSettingsYAML parses YAML produced by MarshalSettingsYAML. Fields
// that are missing keep their default values; lengths below one minute are
// raised to one minute.
func UnmarshalSettingsYAML(data []byte) (model.Settings, error) {
	settings := model.DefaultSettings()

	var fileData yamlSettings
	if err := yaml.Unmarshal(data, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if fileData.WorkMinutes != nil {
		settings.WorkDuration = validate.MinutesToSeconds(*fileData.WorkMinutes)
	}
	if fileData.BreakMinutes != nil {
		settings.BreakDuration = validate.MinutesToSeconds(*fileData.BreakMinutes)
	}
	if fileData.LongBreakMinutes != nil {
		settings.LongBreakDuration = validate.MinutesToSeconds(*fileData.LongBreakMinutes)
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
	return settings, nil
}

// ExportSettings writes settings to a YAML file.
func ExportSettings(path string, s model.Settings) error {
	serialized, err := MarshalSettingsYAML(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	return SafeWrite(path, serialized, 0o644)
}

// ImportSettings reads settings from a YAML file.
func ImportSettings(path string) (model.Settings, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Settings{}, fmt.Errorf("settings file %s does not exist", path)
		}
		return model.Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	return UnmarshalSettingsYAML(rawData)
}
