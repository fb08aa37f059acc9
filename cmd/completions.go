package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// filterCompletions keeps the "value\tdescription" entries whose value has
// the given prefix.
func filterCompletions(entries []string, toComplete string) []string {
	var filtered []string
	for _, e := range entries {
		if strings.HasPrefix(strings.Split(e, "\t")[0], toComplete) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// completeSessionTypes handles completion for the start command.
func completeSessionTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	types := []string{
		"work\twork session",
		"break\tshort break",
		"long-break\tlong break",
	}
	return filterCompletions(types, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeStatsArgs handles completion for the stats command.
func completeStatsArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	dates := []string{
		"today\ttoday's sessions",
		"yesterday\tyesterday's sessions",
		"week\tthe last 7 days",
		"history\tevery recorded day",
	}
	return filterCompletions(dates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeSettingKeys handles completion for config get and set.
func completeSettingKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		keys := []string{
			"work\twork session length",
			"break\tshort break length",
			"long-break\tlong break length",
			"sound\tsound on start and end",
			"notify\tdesktop notification on completion",
		}
		return filterCompletions(keys, toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		if cmd.Name() != "set" {
			break
		}
		switch normalizeKey(args[0]) {
		case "sound", "notify":
			return filterCompletions([]string{"on", "off"}, toComplete), cobra.ShellCompDirectiveNoFileComp
		default:
			return filterCompletions([]string{"15", "25", "50"}, toComplete), cobra.ShellCompDirectiveNoFileComp
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeBackends handles completion for the --backend flag.
func completeBackends(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	backends := []string{
		"badger\tembedded key-value store",
		"sqlite\tsingle-file SQL database",
		"memory\tnothing kept after exit",
	}
	return filterCompletions(backends, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats handles completion for the --format flag.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := []string{
		"cli\tstyled terminal output",
		"json\tmachine readable",
		"plain\tno styling",
	}
	return filterCompletions(formats, toComplete), cobra.ShellCompDirectiveNoFileComp
}
