package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/pomotime/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleDuration = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.Format == FormatPlain || !c.IsColorEnabled() {
		return text
	}
	return style.Render(text)
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Duration formats a duration string.
func (c *CLIFormatter) Duration(text string) string {
	return c.render(styleDuration, text)
}

// Session formats a session label in its color.
func (c *CLIFormatter) Session(t model.SessionType) string {
	return c.render(lipgloss.NewStyle().Foreground(SessionColor(t)), t.Label())
}

// PrintDaily prints one day's sessions and totals.
func (c *CLIFormatter) PrintDaily(d model.DailyStats) {
	c.Title(dayTitle(d.Date))

	if d.IsEmpty() {
		c.Muted(NoSessionsToday)
		return
	}

	c.Printf("  Sessions completed  %d\n", d.SessionsCompleted)
	c.Printf("  Focus time          %s\n", c.Duration(FormatDuration(d.WorkTime())))
	c.Printf("  Completion rate     %d%%\n", d.CompletionRate())
	c.Println()

	rows := make([]TableRow, 0, len(d.Sessions))
	for _, s := range d.Sessions {
		rows = append(rows, TableRow{Columns: []string{
			FormatTimeOnly(s.Time()),
			s.Type.Label(),
			FormatDuration(time.Duration(s.Duration) * time.Second),
		}})
	}
	c.PrintTable([]string{"TIME", "SESSION", "LENGTH"}, rows)
}

// PrintWeekly prints the seven day chart and totals.
func (c *CLIFormatter) PrintWeekly(week model.Week) {
	c.Title("Last 7 days")

	color := c.Format != FormatPlain && c.IsColorEnabled()
	c.Println(RenderWeekChart(week, ChartOptions{Width: c.Width(), Color: color}))
	if week.IsEmpty() {
		return
	}

	c.Println()
	c.Printf("  Total sessions  %d\n", week.TotalCompleted())
	c.Printf("  Focus time      %s\n", c.Duration(FormatDuration(week.TotalWorkTime())))
}

// PrintHistory prints a summary line for each recorded day.
func (c *CLIFormatter) PrintHistory(days []model.DailyStats) {
	if len(days) == 0 {
		c.Muted("No sessions recorded yet")
		return
	}

	rows := make([]TableRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, TableRow{Columns: []string{
			d.Date,
			fmt.Sprintf("%d", d.SessionsCompleted),
			FormatDuration(d.WorkTime()),
			fmt.Sprintf("%d%%", d.CompletionRate()),
		}})
	}
	c.PrintTable([]string{"DATE", "SESSIONS", "FOCUS", "RATE"}, rows)
}

// PrintSettings prints the settings record.
func (c *CLIFormatter) PrintSettings(s model.Settings) {
	c.Title("Settings")
	c.Printf("  work         %s\n", FormatDuration(s.Work()))
	c.Printf("  break        %s\n", FormatDuration(s.Break()))
	c.Printf("  long-break   %s\n", FormatDuration(s.LongBreak()))
	c.Printf("  sound        %s\n", onOff(s.SoundEnabled))
	c.Printf("  notify       %s\n", onOff(s.NotificationsEnabled))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func dayTitle(date string) string {
	t, err := model.ParseDateKey(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2 2006")
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
