package timer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/pomotime/internal/model"
)

// CountdownDisplay renders the headless countdown as a single status line.
type CountdownDisplay struct {
	Writer   io.Writer
	UseColor bool
	BarWidth int
}

// NewCountdownDisplay creates a new countdown display.
func NewCountdownDisplay() *CountdownDisplay {
	return &CountdownDisplay{
		Writer:   os.Stdout,
		UseColor: true,
		BarWidth: 30,
	}
}

// Styles for countdown display.
var (
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	workStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6366F1")) // Indigo

	breakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	longBreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// FormatClock formats whole seconds as MM:SS, or HH:MM:SS past an hour.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// Progress returns the elapsed fraction of a session, clamped to [0, 1].
func Progress(remaining, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := 1.0 - float64(remaining)/float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func sessionStyle(t model.SessionType) lipgloss.Style {
	switch t {
	case model.SessionBreak:
		return breakStyle
	case model.SessionLongBreak:
		return longBreakStyle
	default:
		return workStyle
	}
}

func (cd *CountdownDisplay) paint(style lipgloss.Style, s string) string {
	if cd.UseColor {
		return style.Render(s)
	}
	return s
}

// RenderTimer renders one status line for the given state.
func (cd *CountdownDisplay) RenderTimer(state State, total int) string {
	var b strings.Builder

	b.WriteString(cd.paint(sessionStyle(state.SessionType), state.SessionType.Label()))
	b.WriteString("  ")
	b.WriteString(cd.paint(timerStyle, FormatClock(state.TimeRemaining)))
	b.WriteString("  ")
	b.WriteString(cd.paint(progressStyle, cd.renderProgressBar(Progress(state.TimeRemaining, total))))
	b.WriteString("  ")

	status := fmt.Sprintf("Sessions today: %d", state.SessionsCompleted)
	if !state.IsRunning {
		status += " [PAUSED]"
	}
	b.WriteString(cd.paint(statusStyle, status))

	return b.String()
}

// renderProgressBar creates a progress bar string.
func (cd *CountdownDisplay) renderProgressBar(progress float64) string {
	width := cd.BarWidth
	if width <= 0 {
		width = 30
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(progress*100))
}

// Update redraws the status line in place.
func (cd *CountdownDisplay) Update(state State, total int) {
	fmt.Fprintf(cd.Writer, "\r\033[K%s", cd.RenderTimer(state, total))
}

// RenderComplete renders the message for a completed session.
func (cd *CountdownDisplay) RenderComplete(ev Event) string {
	msg := fmt.Sprintf("%s complete. %s", ev.Finished.Label(), ev.Body)
	next := fmt.Sprintf("Next: %s", ev.Next.Label())
	return cd.paint(sessionStyle(ev.Finished), msg) + "\n" + cd.paint(statusStyle, next)
}

// Complete prints the completion message on its own lines.
func (cd *CountdownDisplay) Complete(ev Event) {
	fmt.Fprintf(cd.Writer, "\r\033[K%s\n", cd.RenderComplete(ev))
}

// RenderSummary renders the closing summary of a headless run.
func (cd *CountdownDisplay) RenderSummary(workSessions int, stats model.DailyStats) string {
	header := fmt.Sprintf("Completed %d work sessions this run", workSessions)
	detail := fmt.Sprintf("Today: %d sessions, %s focus time",
		stats.SessionsCompleted, FormatClock(stats.TotalWorkTime))
	return cd.paint(workStyle, header) + "\n" + cd.paint(statusStyle, detail)
}
