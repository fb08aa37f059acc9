package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/parser"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats [DATE]",
	Aliases: []string{"stat", "today"},
	Short:   "Show sessions for a day",
	Long: `Show the sessions recorded on one day, today by default.

Dates may be written naturally.

Examples:
  pomotime stats
  pomotime stats yesterday
  pomotime stats 3 days ago
  pomotime stats 2026-03-10
  pomotime stats --format json`,
	ValidArgsFunction: completeStatsArgs,
	RunE:              runStats,
}

// statsWeekCmd shows the last seven days.
var statsWeekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w", "weekly"},
	Short:   "Show the last 7 days",
	Args:    cobra.NoArgs,
	RunE:    runStatsWeek,
}

// statsHistoryCmd lists every recorded day.
var statsHistoryCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"all"},
	Short:   "List every day with recorded sessions",
	Args:    cobra.NoArgs,
	RunE:    runStatsHistory,
}

func init() {
	statsCmd.AddCommand(statsWeekCmd)
	statsCmd.AddCommand(statsHistoryCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	date, err := parser.ParseDate(strings.Join(args, " "), ctx.Clock.Now())
	if err != nil {
		return err
	}

	day := ctx.Stats.Load(date)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDaily(day)
	}

	ctx.CLIFormatter().PrintDaily(day)
	return nil
}

func runStatsWeek(cmd *cobra.Command, args []string) error {
	week := ctx.Stats.Weekly()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintWeekly(week)
	}

	ctx.CLIFormatter().PrintWeekly(week)
	return nil
}

func runStatsHistory(cmd *cobra.Command, args []string) error {
	dates, err := ctx.Stats.Dates()
	if err != nil {
		return err
	}

	days := make([]model.DailyStats, 0, len(dates))
	for _, date := range dates {
		days = append(days, ctx.Stats.Load(date))
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintHistory(days)
	}

	ctx.CLIFormatter().PrintHistory(days)
	return nil
}
