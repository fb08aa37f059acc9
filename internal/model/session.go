package model

import (
	"fmt"
	"strings"
)

// SessionType is the kind of interval being timed.
type SessionType string

const (
	SessionWork      SessionType = "work"
	SessionBreak     SessionType = "break"
	SessionLongBreak SessionType = "long-break"
)

// SessionTypes lists every session type in tab order.
var SessionTypes = []SessionType{SessionWork, SessionBreak, SessionLongBreak}

// Valid reports whether s is one of the known session types.
func (s SessionType) Valid() bool {
	switch s {
	case SessionWork, SessionBreak, SessionLongBreak:
		return true
	}
	return false
}

// IsBreak reports whether s is a short or long break.
func (s SessionType) IsBreak() bool {
	return s == SessionBreak || s == SessionLongBreak
}

// Label returns the human-readable label for the session type.
func (s SessionType) Label() string {
	switch s {
	case SessionWork:
		return "Work Session"
	case SessionBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (s SessionType) String() string {
	return string(s)
}

// ParseSessionType parses a session type, accepting a few common aliases.
func ParseSessionType(input string) (SessionType, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "work", "focus", "pomodoro":
		return SessionWork, nil
	case "break", "short", "short-break", "short_break":
		return SessionBreak, nil
	case "long-break", "long", "longbreak", "long_break":
		return SessionLongBreak, nil
	}
	return "", fmt.Errorf("unknown session type %q", input)
}
