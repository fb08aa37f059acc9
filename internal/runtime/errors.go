package runtime

import (
	"github.com/manav03panchal/pomotime/internal/errors"
)

// Suggestions provides helpful suggestions for common errors.
var Suggestions = map[error]string{
	errors.ErrInvalidSessionType: "Use one of: work, break, long-break.",
	errors.ErrTimerRunning:       "Pause the timer (space) before switching sessions.",
	errors.ErrInvalidDuration:    "Use minutes like '25' or a duration like '1h30m'.",
	errors.ErrInvalidDate:        "Try 'today', 'yesterday', '2026-03-10' or '3 days ago'.",
	errors.ErrUnknownSetting:     "Use 'pomotime config get' to list the settings.",
	errors.ErrInvalidToggle:      "Use 'on' or 'off'.",
	errors.ErrDiskFull:           "Free up disk space and try again. The timer keeps running without saving.",
	errors.ErrStorageUnavailable: "Check the data directory, or pick another store with --backend.",
	errors.ErrUnsupported:        "Turn it off with 'pomotime config set notify off'.",
}

// GetSuggestion returns a suggestion for an error, if available. A
// suggestion carried by a UserError takes precedence.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}
	if ue, ok := errors.AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError formats an error with optional suggestion. System errors
// are labelled as such.
func FormatError(err error) string {
	msg := err.Error()
	if errors.Classify(err) == errors.CategorySystem {
		msg = "System error: " + msg
	}
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
