package model

import "time"

// Default durations in seconds.
const (
	DefaultWorkDuration      = 25 * 60
	DefaultBreakDuration     = 5 * 60
	DefaultLongBreakDuration = 15 * 60
)

// Settings holds the user's timer preferences. It is always replaced
// wholesale; durations are whole seconds.
type Settings struct {
	WorkDuration         int  `json:"workDuration"`
	BreakDuration        int  `json:"breakDuration"`
	LongBreakDuration    int  `json:"longBreakDuration"`
	SoundEnabled         bool `json:"soundEnabled"`
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

// DefaultSettings returns the built-in settings: 25/5/15 minutes with sound
// and notifications on.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:         DefaultWorkDuration,
		BreakDuration:        DefaultBreakDuration,
		LongBreakDuration:    DefaultLongBreakDuration,
		SoundEnabled:         true,
		NotificationsEnabled: true,
	}
}

// Work returns the work duration.
func (s Settings) Work() time.Duration {
	return time.Duration(s.WorkDuration) * time.Second
}

// Break returns the short break duration.
func (s Settings) Break() time.Duration {
	return time.Duration(s.BreakDuration) * time.Second
}

// LongBreak returns the long break duration.
func (s Settings) LongBreak() time.Duration {
	return time.Duration(s.LongBreakDuration) * time.Second
}
