// Package tui provides the terminal widget for pomotime.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/output"
)

// Color palette for the widget.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the widget.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleClock is used for the countdown digits.
	StyleClock = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			MarginTop(1)

	// StyleTab is an unselected session tab.
	StyleTab = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	// StyleActiveTab is the selected session tab; the color is set per session.
	StyleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Padding(0, 1)
)

// Box styles for different sections.
var (
	// StyleTimerBox frames the countdown; the border takes the session color.
	StyleTimerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			MarginBottom(1)

	// StyleStatsBox frames the weekly panel.
	StyleStatsBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)
)

// SessionTypes are the tabs in display order.
var SessionTypes = []model.SessionType{
	model.SessionWork,
	model.SessionBreak,
	model.SessionLongBreak,
}

// RenderTabs renders the session tabs with active highlighted.
func RenderTabs(active model.SessionType) string {
	tabs := make([]string, 0, len(SessionTypes))
	for _, t := range SessionTypes {
		if t == active {
			tabs = append(tabs, StyleActiveTab.Foreground(output.SessionColor(t)).Render(t.Label()))
			continue
		}
		tabs = append(tabs, StyleTab.Render(t.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// nextTab returns the tab after t, wrapping around.
func nextTab(t model.SessionType) model.SessionType {
	for i, st := range SessionTypes {
		if st == t {
			return SessionTypes[(i+1)%len(SessionTypes)]
		}
	}
	return model.SessionWork
}
