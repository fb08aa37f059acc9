package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/output"
	"github.com/manav03panchal/pomotime/internal/timer"
)

// TimerComponent displays the countdown for the current session.
type TimerComponent struct {
	State    timer.State
	Total    int
	Width    int
	Progress progress.Model
}

// NewTimerComponent creates a new timer component.
func NewTimerComponent(state timer.State, total, width int, bar progress.Model) *TimerComponent {
	return &TimerComponent{
		State:    state,
		Total:    total,
		Width:    width,
		Progress: bar,
	}
}

// View renders the timer component.
func (tc *TimerComponent) View() string {
	var content strings.Builder
	color := output.SessionColor(tc.State.SessionType)

	content.WriteString(RenderTabs(tc.State.SessionType))
	content.WriteString("\n\n")

	content.WriteString(StyleClock.Foreground(color).Render(timer.FormatClock(tc.State.TimeRemaining)))
	if !tc.State.IsRunning {
		content.WriteString(StyleSubtitle.Render(" [PAUSED]"))
	}
	content.WriteString("\n\n")

	bar := tc.Progress
	bar.FullColor = string(color)
	content.WriteString(bar.ViewAs(timer.Progress(tc.State.TimeRemaining, tc.Total)))
	content.WriteString("\n\n")

	content.WriteString(StyleSubtitle.Render(fmt.Sprintf("Sessions today: %d", tc.State.SessionsCompleted)))

	box := StyleTimerBox.BorderForeground(color)
	if tc.Width > 4 {
		box = box.Width(tc.Width - 4)
	}
	return box.Render(content.String())
}

// StatsComponent displays today's totals and the seven day chart.
type StatsComponent struct {
	Today model.DailyStats
	Week  model.Week
	Width int
}

// NewStatsComponent creates a new stats component.
func NewStatsComponent(today model.DailyStats, week model.Week, width int) *StatsComponent {
	return &StatsComponent{
		Today: today,
		Week:  week,
		Width: width,
	}
}

// View renders the stats component.
func (sc *StatsComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Today"))
	content.WriteString("\n")
	if sc.Today.IsEmpty() {
		content.WriteString(StyleSubtitle.Render(output.NoSessionsToday))
	} else {
		fmt.Fprintf(&content, "Completed   %d\n", sc.Today.SessionsCompleted)
		fmt.Fprintf(&content, "Focus time  %s\n", output.FormatDuration(sc.Today.WorkTime()))
		fmt.Fprintf(&content, "Completion  %d%%", sc.Today.CompletionRate())
	}
	content.WriteString("\n\n")

	content.WriteString(StyleTitle.Render("Last 7 days"))
	content.WriteString("\n")
	width := sc.Width - 8
	content.WriteString(output.RenderWeekChart(sc.Week, output.ChartOptions{Width: width, Color: true}))

	box := StyleStatsBox
	if sc.Width > 4 {
		box = box.Width(sc.Width - 4)
	}
	return box.Render(content.String())
}
