package timer

import "github.com/manav03panchal/pomotime/internal/model"

// SessionsBeforeLongBreak is the number of completed work sessions that earns
// a long break.
const SessionsBeforeLongBreak = 4

// Transition describes the session that follows a completed one.
type Transition struct {
	Next               model.SessionType
	Duration           int
	CompletedWorkCount int
}

// NextSession returns the session that follows current. Completing a work
// session increments the count; every fourth one is followed by a long break.
func NextSession(current model.SessionType, completedWorkCount int, settings model.Settings) Transition {
	if current != model.SessionWork {
		return Transition{
			Next:               model.SessionWork,
			Duration:           settings.WorkDuration,
			CompletedWorkCount: completedWorkCount,
		}
	}

	count := completedWorkCount + 1
	if count%SessionsBeforeLongBreak == 0 {
		return Transition{
			Next:               model.SessionLongBreak,
			Duration:           settings.LongBreakDuration,
			CompletedWorkCount: count,
		}
	}
	return Transition{
		Next:               model.SessionBreak,
		Duration:           settings.BreakDuration,
		CompletedWorkCount: count,
	}
}

// SessionDuration returns the full length of a session type in seconds.
// Unknown types get the work duration.
func SessionDuration(sessionType model.SessionType, settings model.Settings) int {
	switch sessionType {
	case model.SessionBreak:
		return settings.BreakDuration
	case model.SessionLongBreak:
		return settings.LongBreakDuration
	default:
		return settings.WorkDuration
	}
}
