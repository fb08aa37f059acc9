package model

import (
	"math"
	"time"
)

// SessionRecord is one logged session. Records are appended to a day and
// never edited.
type SessionRecord struct {
	Date      string      `json:"date"`
	Type      SessionType `json:"type"`
	Duration  int         `json:"duration"`
	Completed bool        `json:"completed"`
	Timestamp int64       `json:"timestamp"`
}

// NewSessionRecord creates a completed record for a session that ended at t.
func NewSessionRecord(sessionType SessionType, duration int, t time.Time) SessionRecord {
	return SessionRecord{
		Date:      DateKey(t),
		Type:      sessionType,
		Duration:  duration,
		Completed: true,
		Timestamp: t.UnixMilli(),
	}
}

// Time returns the record's timestamp as a time.Time.
func (r SessionRecord) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// CountsAsWork reports whether the record contributes to work totals.
func (r SessionRecord) CountsAsWork() bool {
	return r.Type == SessionWork && r.Completed
}

// DailyStats is the per-day history of sessions.
type DailyStats struct {
	Date              string          `json:"date"`
	Sessions          []SessionRecord `json:"sessions"`
	TotalWorkTime     int             `json:"totalWorkTime"`
	SessionsCompleted int             `json:"sessionsCompleted"`
}

// NewDailyStats returns the empty record for date.
func NewDailyStats(date string) DailyStats {
	return DailyStats{
		Date:     date,
		Sessions: []SessionRecord{},
	}
}

// Add appends a record and updates the work totals when it counts as work.
func (d *DailyStats) Add(r SessionRecord) {
	d.Sessions = append(d.Sessions, r)
	if r.CountsAsWork() {
		d.SessionsCompleted++
		d.TotalWorkTime += r.Duration
	}
}

// Clone returns a copy that shares no session slice with d.
func (d DailyStats) Clone() DailyStats {
	sessions := make([]SessionRecord, len(d.Sessions))
	copy(sessions, d.Sessions)
	d.Sessions = sessions
	return d
}

// IsEmpty reports whether nothing was recorded on the day.
func (d DailyStats) IsEmpty() bool {
	return len(d.Sessions) == 0
}

// WorkTime returns the total completed work time.
func (d DailyStats) WorkTime() time.Duration {
	return time.Duration(d.TotalWorkTime) * time.Second
}

// CompletionRate returns completed work sessions as a rounded percentage of
// all recorded sessions.
func (d DailyStats) CompletionRate() int {
	if len(d.Sessions) == 0 {
		return 0
	}
	return int(math.Round(float64(d.SessionsCompleted) / float64(len(d.Sessions)) * 100))
}

// Dominant returns the session type that colours the day in charts: work
// wins over long breaks, which win over short breaks. It returns "" for an
// empty day.
func (d DailyStats) Dominant() SessionType {
	var hasLong, hasBreak bool
	for _, s := range d.Sessions {
		switch s.Type {
		case SessionWork:
			return SessionWork
		case SessionLongBreak:
			hasLong = true
		case SessionBreak:
			hasBreak = true
		}
	}
	if hasLong {
		return SessionLongBreak
	}
	if hasBreak {
		return SessionBreak
	}
	return ""
}

// Week is the seven days ending today, oldest first.
type Week []DailyStats

// MaxCompleted returns the highest daily completed count, at least 1.
func (w Week) MaxCompleted() int {
	highest := 1
	for _, d := range w {
		if d.SessionsCompleted > highest {
			highest = d.SessionsCompleted
		}
	}
	return highest
}

// TotalCompleted sums completed work sessions over the week.
func (w Week) TotalCompleted() int {
	total := 0
	for _, d := range w {
		total += d.SessionsCompleted
	}
	return total
}

// TotalWorkTime sums completed work time over the week.
func (w Week) TotalWorkTime() time.Duration {
	var total time.Duration
	for _, d := range w {
		total += d.WorkTime()
	}
	return total
}

// IsEmpty reports whether nothing was recorded during the week.
func (w Week) IsEmpty() bool {
	for _, d := range w {
		if !d.IsEmpty() {
			return false
		}
	}
	return true
}
