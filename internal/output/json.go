package output

import (
	"time"

	"github.com/manav03panchal/pomotime/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SessionOutput represents a session record in JSON output.
type SessionOutput struct {
	Type            string `json:"type"`
	DurationSeconds int    `json:"duration_seconds"`
	Completed       bool   `json:"completed"`
	EndedAt         string `json:"ended_at"`
}

// NewSessionOutput creates a SessionOutput from a record.
func NewSessionOutput(r model.SessionRecord) SessionOutput {
	return SessionOutput{
		Type:            string(r.Type),
		DurationSeconds: r.Duration,
		Completed:       r.Completed,
		EndedAt:         r.Time().Format(time.RFC3339),
	}
}

// DailyResponse represents one day's statistics in JSON.
type DailyResponse struct {
	Date                 string          `json:"date"`
	SessionsCompleted    int             `json:"sessions_completed"`
	TotalWorkTimeSeconds int             `json:"total_work_time_seconds"`
	CompletionRate       int             `json:"completion_rate"`
	Sessions             []SessionOutput `json:"sessions"`
}

// NewDailyResponse creates a DailyResponse from a day's statistics.
func NewDailyResponse(d model.DailyStats) DailyResponse {
	sessions := make([]SessionOutput, 0, len(d.Sessions))
	for _, s := range d.Sessions {
		sessions = append(sessions, NewSessionOutput(s))
	}
	return DailyResponse{
		Date:                 d.Date,
		SessionsCompleted:    d.SessionsCompleted,
		TotalWorkTimeSeconds: d.TotalWorkTime,
		CompletionRate:       d.CompletionRate(),
		Sessions:             sessions,
	}
}

// WeeklyResponse represents the seven day view in JSON.
type WeeklyResponse struct {
	Days                 []DailyResponse `json:"days"`
	TotalCompleted       int             `json:"total_completed"`
	TotalWorkTimeSeconds int64           `json:"total_work_time_seconds"`
}

// NewWeeklyResponse creates a WeeklyResponse from a week.
func NewWeeklyResponse(week model.Week) WeeklyResponse {
	days := make([]DailyResponse, 0, len(week))
	for _, d := range week {
		days = append(days, NewDailyResponse(d))
	}
	return WeeklyResponse{
		Days:                 days,
		TotalCompleted:       week.TotalCompleted(),
		TotalWorkTimeSeconds: int64(week.TotalWorkTime().Seconds()),
	}
}

// HistoryResponse represents every recorded day in JSON.
type HistoryResponse struct {
	Days       []DailyResponse `json:"days"`
	TotalCount int             `json:"total_count"`
}

// SettingsResponse represents the settings record in JSON.
type SettingsResponse struct {
	WorkDuration         int  `json:"work_duration"`
	BreakDuration        int  `json:"break_duration"`
	LongBreakDuration    int  `json:"long_break_duration"`
	SoundEnabled         bool `json:"sound_enabled"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

// NewSettingsResponse creates a SettingsResponse from settings.
func NewSettingsResponse(s model.Settings) SettingsResponse {
	return SettingsResponse{
		WorkDuration:         s.WorkDuration,
		BreakDuration:        s.BreakDuration,
		LongBreakDuration:    s.LongBreakDuration,
		SoundEnabled:         s.SoundEnabled,
		NotificationsEnabled: s.NotificationsEnabled,
	}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintDaily outputs one day as JSON.
func (j *JSONFormatter) PrintDaily(d model.DailyStats) error {
	return j.PrintJSON(NewDailyResponse(d))
}

// PrintWeekly outputs the week as JSON.
func (j *JSONFormatter) PrintWeekly(week model.Week) error {
	return j.PrintJSON(NewWeeklyResponse(week))
}

// PrintHistory outputs the recorded days as JSON.
func (j *JSONFormatter) PrintHistory(days []model.DailyStats) error {
	out := make([]DailyResponse, 0, len(days))
	for _, d := range days {
		out = append(out, NewDailyResponse(d))
	}
	return j.PrintJSON(HistoryResponse{Days: out, TotalCount: len(out)})
}

// PrintSettings outputs settings as JSON.
func (j *JSONFormatter) PrintSettings(s model.Settings) error {
	return j.PrintJSON(NewSettingsResponse(s))
}

// PrintError outputs an error as JSON.
func (j *JSONFormatter) PrintError(err error, suggestion string) error {
	return j.PrintJSON(ErrorResponse{
		Status:     "error",
		Error:      err.Error(),
		Suggestion: suggestion,
	})
}
