package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/pomotime/internal/model"
)

// Empty-state messages.
const (
	NoSessionsToday = "No sessions recorded today"
	NoRecordsWeek   = "No records for the last 7 days"
)

// WeekdayLabels are the chart's day labels, indexed by time.Weekday.
var WeekdayLabels = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Session colors shared by the CLI and the widget.
var (
	ColorWork      = lipgloss.Color("#6366F1") // Indigo
	ColorBreak     = lipgloss.Color("#10B981") // Green
	ColorLongBreak = lipgloss.Color("#60A5FA") // Blue
)

// SessionColor returns the color used for a session type.
func SessionColor(t model.SessionType) lipgloss.Color {
	switch t {
	case model.SessionBreak:
		return ColorBreak
	case model.SessionLongBreak:
		return ColorLongBreak
	default:
		return ColorWork
	}
}

// ChartOptions configures RenderWeekChart.
type ChartOptions struct {
	// Width is the total width available, labels included.
	Width int
	Color bool
}

const (
	minBarWidth = 10
	maxBarWidth = 40
)

// RenderWeekChart renders one bar per day, scaled to the busiest day. Bars
// take the color of the day's dominant session type.
func RenderWeekChart(week model.Week, opts ChartOptions) string {
	if week.IsEmpty() {
		if opts.Color {
			return styleMuted.Render(NoRecordsWeek)
		}
		return NoRecordsWeek
	}

	// "Mon " + bar + " 12  1h 40m"
	barWidth := opts.Width - 4 - 12
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	highest := week.MaxCompleted()
	lines := make([]string, 0, len(week))
	for i, d := range week {
		label := dayLabel(d.Date)
		n := barLength(d.SessionsCompleted, highest, barWidth)
		bar := strings.Repeat("█", n)
		pad := strings.Repeat(" ", barWidth-n)

		count := fmt.Sprintf("%2d", d.SessionsCompleted)
		focus := ""
		if d.TotalWorkTime > 0 {
			focus = "  " + FormatDurationShort(d.WorkTime())
		}

		if opts.Color {
			if i == len(week)-1 {
				label = styleBold.Render(label)
			}
			if dominant := d.Dominant(); dominant != "" {
				bar = lipgloss.NewStyle().Foreground(SessionColor(dominant)).Render(bar)
			}
			focus = styleMuted.Render(focus)
		}

		lines = append(lines, label+" "+bar+pad+" "+count+focus)
	}
	return strings.Join(lines, "\n")
}

func dayLabel(date string) string {
	t, err := model.ParseDateKey(date)
	if err != nil {
		return "???"
	}
	return WeekdayLabels[t.Weekday()]
}

func barLength(value, highest, width int) int {
	if value <= 0 || highest <= 0 {
		return 0
	}
	n := int(math.Round(float64(value) / float64(highest) * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
