package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/notify"
	"github.com/manav03panchal/pomotime/internal/storage"
	"github.com/manav03panchal/pomotime/internal/timer"
)

// tickMsg is sent when the countdown ticks.
type tickMsg time.Time

// changeMsg carries a storage change from the bus.
type changeMsg storage.Change

// busClosedMsg is sent when the bus subscription ends.
type busClosedMsg struct{}

// alertsDoneMsg is sent when event delivery finishes.
type alertsDoneMsg struct {
	results []notify.Result
}

// Alerter delivers engine events.
type Alerter interface {
	Handle(events []timer.Event, settings model.Settings) []notify.Result
}

// TimerConfig holds configuration for the widget.
type TimerConfig struct {
	Engine  *timer.Engine
	Stats   *storage.StatsRepo
	Bus     *storage.Bus
	Alerter Alerter

	// TickInterval is the time between countdown ticks.
	TickInterval time.Duration
	// ShowStats opens the weekly panel on start.
	ShowStats bool
	// Notice is shown under the timer until the first key press.
	Notice string
}

// TimerModel is the bubbletea model for the widget. The engine is only
// touched from Update.
type TimerModel struct {
	engine  *timer.Engine
	stats   *storage.StatsRepo
	alerter Alerter
	changes <-chan storage.Change

	keys     keyMap
	help     help.Model
	progress progress.Model

	// Data
	today model.DailyStats
	week  model.Week

	// UI state
	width     int
	height    int
	showStats bool
	message   string
	err       error

	tickInterval time.Duration
}

// NewTimerModel creates a new widget model.
func NewTimerModel(cfg TimerConfig) *TimerModel {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}

	m := &TimerModel{
		engine:       cfg.Engine,
		stats:        cfg.Stats,
		alerter:      cfg.Alerter,
		keys:         defaultKeyMap(),
		help:         help.New(),
		progress:     progress.New(progress.WithSolidFill(string(ColorPrimary)), progress.WithoutPercentage()),
		showStats:    cfg.ShowStats,
		message:      cfg.Notice,
		tickInterval: cfg.TickInterval,
	}
	if cfg.Bus != nil {
		m.changes = cfg.Bus.Subscribe(16)
	}
	m.loadStats()
	return m
}

// Init initializes the model.
func (m *TimerModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.waitForChange(),
	)
}

// Update handles messages and updates the model.
func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.engine.Tick()
		return m, tea.Batch(m.tickCmd(), m.alertCmd())

	case changeMsg:
		m.applyChange(storage.Change(msg))
		return m, m.waitForChange()

	case busClosedMsg:
		m.changes = nil
		return m, nil

	case alertsDoneMsg:
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *TimerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.engine.Toggle()

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()

	case key.Matches(msg, m.keys.Work):
		m.selectSession(model.SessionWork)

	case key.Matches(msg, m.keys.Break):
		m.selectSession(model.SessionBreak)

	case key.Matches(msg, m.keys.LongBreak):
		m.selectSession(model.SessionLongBreak)

	case key.Matches(msg, m.keys.NextTab):
		m.selectSession(nextTab(m.engine.State().SessionType))

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		if m.showStats {
			m.loadStats()
		}
	}

	return m, m.alertCmd()
}

func (m *TimerModel) selectSession(t model.SessionType) {
	if err := m.engine.SelectSession(t); err != nil {
		m.err = err
	}
}

// applyChange refreshes the widget after a write by this or another
// process.
func (m *TimerModel) applyChange(c storage.Change) {
	switch c.Kind {
	case storage.SettingsChanged:
		m.engine.ApplySettings(c.Settings)
	case storage.StatsChanged:
		if m.stats != nil && c.Stats.Date == m.stats.Today() {
			m.engine.SyncCompleted(c.Stats.SessionsCompleted)
		}
		m.loadStats()
	}
}

// loadStats loads today's record and the week from storage.
func (m *TimerModel) loadStats() {
	if m.stats == nil {
		return
	}
	m.today = m.stats.Load(m.stats.Today())
	m.week = m.stats.Weekly()
}

// View renders the widget.
func (m *TimerModel) View() string {
	width := m.width
	if width == 0 {
		width = 60
	}

	var sections []string

	state := m.engine.State()
	sections = append(sections, NewTimerComponent(state, m.engine.TotalDuration(), width, m.progress).View())

	if m.err != nil {
		msg := m.err.Error()
		if ue, ok := errors.AsUserError(m.err); ok && ue.Suggestion != "" {
			msg = fmt.Sprintf("%s. %s", msg, ue.Suggestion)
		}
		sections = append(sections, StyleError.Render(msg))
	}

	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	if m.showStats {
		sections = append(sections, NewStatsComponent(m.today, m.week, width).View())
	}

	sections = append(sections, StyleHelp.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// tickCmd returns a command that sends a tick message.
func (m *TimerModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange returns a command that waits for the next bus change.
func (m *TimerModel) waitForChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return busClosedMsg{}
		}
		return changeMsg(c)
	}
}

// alertCmd drains engine events and delivers them off the update loop.
func (m *TimerModel) alertCmd() tea.Cmd {
	events := m.engine.DrainEvents()
	if len(events) == 0 || m.alerter == nil {
		return nil
	}
	settings := m.engine.Settings()
	alerter := m.alerter
	return func() tea.Msg {
		return alertsDoneMsg{results: alerter.Handle(events, settings)}
	}
}

// Run starts the widget.
func Run(cfg TimerConfig) error {
	p := tea.NewProgram(NewTimerModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
