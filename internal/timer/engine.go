// Package timer provides the Pomodoro session sequencer, the countdown
// engine and a headless runner that drives it.
package timer

import (
	"log/slog"
	"time"

	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/model"
)

// Notification text for completed sessions.
const (
	NotificationTitle = "Pomodoro Timer"
	WorkDoneBody      = "Work session completed! Time for a break."
	BreakDoneBody     = "Break time is over! Ready for another session?"
)

// StatsRecorder loads and appends daily session history.
type StatsRecorder interface {
	Load(date string) model.DailyStats
	Append(record model.SessionRecord, date string) model.DailyStats
}

// State is a snapshot of the engine.
type State struct {
	TimeRemaining     int
	IsRunning         bool
	SessionType       model.SessionType
	SessionsCompleted int
}

// EventKind identifies an engine output event.
type EventKind int

const (
	// EventStarted is queued when a countdown starts or resumes.
	EventStarted EventKind = iota
	// EventCompleted is queued when a session runs out.
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is an output of the engine for the alert layer.
type Event struct {
	Kind     EventKind
	Finished model.SessionType
	Next     model.SessionType
	Title    string
	Body     string
}

// EngineOptions configures a new Engine.
type EngineOptions struct {
	Stats  StatsRecorder // nil disables history
	Clock  Clock         // defaults to SystemClock
	Logger *slog.Logger  // defaults to the package logger at call time
}

// Engine is the countdown state machine. It is not safe for concurrent use;
// one goroutine drives it.
type Engine struct {
	settings model.Settings
	state    State
	stats    StatsRecorder
	clock    Clock
	logger   *slog.Logger

	day    string
	events []Event
}

// NewEngine creates an idle engine on a full work session. The completed
// work count is taken from today's history.
func NewEngine(settings model.Settings, opts EngineOptions) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	e := &Engine{
		settings: settings,
		stats:    opts.Stats,
		clock:    clock,
		logger:   opts.Logger,
		day:      model.DateKey(clock.Now()),
	}
	e.state = State{
		TimeRemaining: settings.WorkDuration,
		SessionType:   model.SessionWork,
	}
	if e.stats != nil {
		e.state.SessionsCompleted = e.stats.Load(e.day).SessionsCompleted
	}
	return e
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return logging.Logger()
}

// Clock returns the engine's clock.
func (e *Engine) Clock() Clock {
	return e.clock
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Settings returns the settings in effect.
func (e *Engine) Settings() model.Settings {
	return e.settings
}

// TotalDuration returns the full length of the current session in seconds.
func (e *Engine) TotalDuration() int {
	return SessionDuration(e.state.SessionType, e.settings)
}

// Start begins or resumes the countdown. Starting a running engine does
// nothing.
func (e *Engine) Start() {
	if e.state.IsRunning {
		return
	}
	e.syncDay(e.clock.Now())
	e.state.IsRunning = true
	e.events = append(e.events, Event{
		Kind:     EventStarted,
		Finished: e.state.SessionType,
		Next:     e.state.SessionType,
	})
	e.log().Debug("timer started",
		logging.KeySession, e.state.SessionType,
		logging.KeyRemaining, e.state.TimeRemaining)
}

// Pause stops the countdown, keeping the remaining time.
func (e *Engine) Pause() {
	e.state.IsRunning = false
}

// Toggle starts a paused engine and pauses a running one.
func (e *Engine) Toggle() {
	if e.state.IsRunning {
		e.Pause()
		return
	}
	e.Start()
}

// Reset stops the countdown and returns to a full work session. The
// completed count and history are untouched.
func (e *Engine) Reset() {
	e.state.IsRunning = false
	e.state.SessionType = model.SessionWork
	e.state.TimeRemaining = e.settings.WorkDuration
}

// SelectSession switches to a full session of the given type. It is refused
// while the countdown runs.
func (e *Engine) SelectSession(sessionType model.SessionType) error {
	if e.state.IsRunning {
		return errors.NewUserError(
			"Cannot switch sessions while the timer is running",
			"Pause the timer first",
		).WithCause(errors.ErrTimerRunning)
	}
	if !sessionType.Valid() {
		return errors.NewUserErrorWithField("type", string(sessionType),
			"Unknown session type",
			"Use one of: work, break, long-break",
		).WithCause(errors.ErrInvalidSessionType)
	}
	e.state.SessionType = sessionType
	e.state.TimeRemaining = SessionDuration(sessionType, e.settings)
	return nil
}

// Tick advances the countdown by one second. It reports whether the tick
// completed the session. Ticks while paused are ignored.
func (e *Engine) Tick() bool {
	if !e.state.IsRunning {
		return false
	}
	if e.state.TimeRemaining <= 1 {
		e.complete()
		return true
	}
	e.state.TimeRemaining--
	return false
}

// ApplySettings adopts new settings. An idle engine sitting on a full
// session picks up the new length; a partly run session keeps its time.
func (e *Engine) ApplySettings(settings model.Settings) {
	old := SessionDuration(e.state.SessionType, e.settings)
	e.settings = settings
	if !e.state.IsRunning && e.state.TimeRemaining == old {
		e.state.TimeRemaining = SessionDuration(e.state.SessionType, settings)
	}
}

// SyncCompleted replaces the completed count, for example after another
// instance recorded a session today.
func (e *Engine) SyncCompleted(count int) {
	if count < 0 {
		count = 0
	}
	e.state.SessionsCompleted = count
}

// DrainEvents returns the queued events in order and clears the queue.
func (e *Engine) DrainEvents() []Event {
	if len(e.events) == 0 {
		return nil
	}
	events := e.events
	e.events = nil
	return events
}

func (e *Engine) complete() {
	finished := e.state.SessionType
	e.state.IsRunning = false
	e.state.TimeRemaining = 0

	now := e.clock.Now()
	today := e.syncDay(now)

	if e.stats != nil {
		record := model.NewSessionRecord(finished, SessionDuration(finished, e.settings), now)
		e.stats.Append(record, today)
	}

	body := BreakDoneBody
	if finished == model.SessionWork {
		body = WorkDoneBody
	}

	next := NextSession(finished, e.state.SessionsCompleted, e.settings)
	e.events = append(e.events, Event{
		Kind:     EventCompleted,
		Finished: finished,
		Next:     next.Next,
		Title:    NotificationTitle,
		Body:     body,
	})

	e.state.SessionType = next.Next
	e.state.TimeRemaining = next.Duration
	e.state.SessionsCompleted = next.CompletedWorkCount

	e.log().Info("session completed",
		logging.KeySession, finished,
		logging.KeyNext, next.Next,
		logging.KeyCompleted, next.CompletedWorkCount)
}

// syncDay reloads the completed count when the local date has moved on
// since the last sync, and returns the current date.
func (e *Engine) syncDay(now time.Time) string {
	today := model.DateKey(now)
	if today == e.day {
		return today
	}
	e.day = today
	e.state.SessionsCompleted = 0
	if e.stats != nil {
		e.state.SessionsCompleted = e.stats.Load(today).SessionsCompleted
	}
	return today
}
