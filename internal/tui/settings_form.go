package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/parser"
	"github.com/manav03panchal/pomotime/internal/validate"
)

// SettingsFormValues are the form fields. Lengths are entered in minutes.
type SettingsFormValues struct {
	Work          string
	Break         string
	LongBreak     string
	Sound         bool
	Notifications bool
}

// NewSettingsFormValues fills the form from s.
func NewSettingsFormValues(s model.Settings) *SettingsFormValues {
	return &SettingsFormValues{
		Work:          secondsToMinutes(s.WorkDuration),
		Break:         secondsToMinutes(s.BreakDuration),
		LongBreak:     secondsToMinutes(s.LongBreakDuration),
		Sound:         s.SoundEnabled,
		Notifications: s.NotificationsEnabled,
	}
}

// Settings converts the form back to a settings record. Lengths are
// rounded to whole minutes, at least one.
func (v *SettingsFormValues) Settings() (model.Settings, error) {
	work, err := parser.ParseSettingMinutes(v.Work)
	if err != nil {
		return model.Settings{}, err
	}
	brk, err := parser.ParseSettingMinutes(v.Break)
	if err != nil {
		return model.Settings{}, err
	}
	long, err := parser.ParseSettingMinutes(v.LongBreak)
	if err != nil {
		return model.Settings{}, err
	}
	return model.Settings{
		WorkDuration:         validate.MinutesToSeconds(work),
		BreakDuration:        validate.MinutesToSeconds(brk),
		LongBreakDuration:    validate.MinutesToSeconds(long),
		SoundEnabled:         v.Sound,
		NotificationsEnabled: v.Notifications,
	}, nil
}

func secondsToMinutes(seconds int) string {
	return strconv.FormatFloat(float64(seconds)/60, 'f', -1, 64)
}

func validateMinutes(s string) error {
	_, err := parser.ParseSettingMinutes(s)
	return err
}

// minutesInput returns a huh.Input for a session length in minutes.
func minutesInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("25").
		Value(value).
		Validate(validateMinutes)
}

// NewSettingsForm returns the settings form bound to values.
func NewSettingsForm(values *SettingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			minutesInput("Work (minutes)", &values.Work),
			minutesInput("Short break (minutes)", &values.Break),
			minutesInput("Long break (minutes)", &values.LongBreak),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Sound").
				Affirmative("On").
				Negative("Off").
				Value(&values.Sound),
			huh.NewConfirm().
				Title("Desktop notifications").
				Affirmative("On").
				Negative("Off").
				Value(&values.Notifications),
		),
	).WithTheme(huh.ThemeCharm())
}

// RunSettingsForm shows the form for current and returns the edited
// settings. huh.ErrUserAborted is returned when the user cancels.
func RunSettingsForm(current model.Settings) (model.Settings, error) {
	values := NewSettingsFormValues(current)
	if err := NewSettingsForm(values).Run(); err != nil {
		return current, err
	}
	return values.Settings()
}
