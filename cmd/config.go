package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/notify"
	"github.com/manav03panchal/pomotime/internal/output"
	"github.com/manav03panchal/pomotime/internal/parser"
	"github.com/manav03panchal/pomotime/internal/storage"
	"github.com/manav03panchal/pomotime/internal/tui"
	"github.com/manav03panchal/pomotime/internal/validate"
)

// settingKeys are the keys accepted by config get and set.
var settingKeys = []string{"work", "break", "long-break", "sound", "notify"}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Manage timer settings",
	Long: `View and change the timer settings.

Keys:
  work        Work session length
  break       Short break length
  long-break  Long break length
  sound       Sound on session start and end (on/off)
  notify      Desktop notification when a session ends (on/off)

Lengths are given in minutes or as a duration and rounded to whole
minutes, at least one.

Examples:
  pomotime config get
  pomotime config set work 50
  pomotime config set long-break 20m
  pomotime config set sound off
  pomotime config edit`,
}

// configGetCmd gets settings.
var configGetCmd = &cobra.Command{
	Use:               "get [KEY]",
	Short:             "Show settings",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runConfigGet,
}

// configSetCmd sets one setting.
var configSetCmd = &cobra.Command{
	Use:               "set KEY VALUE",
	Short:             "Change a setting",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runConfigSet,
}

// configEditCmd opens the settings form.
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings in a form",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

// configResetCmd restores the defaults.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

// configExportCmd writes settings to YAML.
var configExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write settings to a YAML file (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigExport,
}

// configImportCmd reads settings from YAML.
var configImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Read settings from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigImport,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configExportCmd)
	configCmd.AddCommand(configImportCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigGet handles the config get command.
func runConfigGet(cmd *cobra.Command, args []string) error {
	settings := ctx.Settings.Load()

	if len(args) == 0 {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintSettings(settings)
		}
		ctx.CLIFormatter().PrintSettings(settings)
		return nil
	}

	value, err := settingValue(settings, args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.PrintJSON(map[string]any{
			"key":   normalizeKey(args[0]),
			"value": jsonSettingValue(value),
		})
	}

	ctx.Formatter.Println(formatSettingValue(value))
	return nil
}

// runConfigSet handles the config set command.
func runConfigSet(cmd *cobra.Command, args []string) error {
	current := ctx.Settings.Load()
	updated, err := applySetting(current, args[0], args[1])
	if err != nil {
		return err
	}

	if err := saveSettings(current, updated); err != nil {
		return err
	}

	value, _ := settingValue(updated, args[0])
	if ctx.IsJSON() {
		return ctx.Formatter.PrintJSON(map[string]any{
			"status": "updated",
			"key":    normalizeKey(args[0]),
			"value":  jsonSettingValue(value),
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Updated %s = %s", args[0], formatSettingValue(value)))
	return nil
}

// runConfigEdit handles the config edit command.
func runConfigEdit(cmd *cobra.Command, args []string) error {
	current := ctx.Settings.Load()
	updated, err := tui.RunSettingsForm(current)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			ctx.CLIFormatter().Muted("No changes made")
			return nil
		}
		return err
	}

	if err := saveSettings(current, updated); err != nil {
		return err
	}
	ctx.CLIFormatter().PrintSettings(ctx.Settings.Load())
	return nil
}

// runConfigReset handles the config reset command.
func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := model.DefaultSettings()
	if err := ctx.Settings.Save(defaults); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(defaults)
	}
	ctx.CLIFormatter().Success("Settings restored to defaults")
	return nil
}

// runConfigExport handles the config export command.
func runConfigExport(cmd *cobra.Command, args []string) error {
	settings := ctx.Settings.Load()

	if len(args) == 0 || args[0] == "-" {
		data, err := storage.MarshalSettingsYAML(settings)
		if err != nil {
			return err
		}
		ctx.Formatter.Print(string(data))
		return nil
	}

	if err := storage.ExportSettings(args[0], settings); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Settings written to " + args[0])
	return nil
}

// runConfigImport handles the config import command.
func runConfigImport(cmd *cobra.Command, args []string) error {
	imported, err := storage.ImportSettings(args[0])
	if err != nil {
		return err
	}

	if err := saveSettings(ctx.Settings.Load(), imported); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Settings imported from " + args[0])
	return nil
}

// saveSettings stores updated and, when desktop notifications were just
// switched on, checks that they can be shown.
func saveSettings(current, updated model.Settings) error {
	if err := ctx.Settings.Save(updated); err != nil {
		return err
	}

	if updated.NotificationsEnabled && !current.NotificationsEnabled {
		if err := notify.New(notify.Options{}).Prepare(); err != nil {
			ctx.CLIFormatter().Warning("Desktop notifications are not available: " + err.Error())
		}
	}
	return nil
}

// settingValue returns the value of key in s.
func settingValue(s model.Settings, key string) (any, error) {
	switch normalizeKey(key) {
	case "work":
		return s.Work(), nil
	case "break":
		return s.Break(), nil
	case "long-break":
		return s.LongBreak(), nil
	case "sound":
		return s.SoundEnabled, nil
	case "notify":
		return s.NotificationsEnabled, nil
	}
	return nil, unknownSetting(key)
}

// applySetting returns s with key set from value.
func applySetting(s model.Settings, key, value string) (model.Settings, error) {
	switch normalizeKey(key) {
	case "work", "break", "long-break":
		minutes, err := parser.ParseSettingMinutes(value)
		if err != nil {
			return s, err
		}
		seconds := validate.MinutesToSeconds(minutes)
		switch normalizeKey(key) {
		case "work":
			s.WorkDuration = seconds
		case "break":
			s.BreakDuration = seconds
		default:
			s.LongBreakDuration = seconds
		}

	case "sound", "notify":
		on, err := validate.Toggle(value)
		if err != nil {
			return s, err
		}
		if normalizeKey(key) == "sound" {
			s.SoundEnabled = on
		} else {
			s.NotificationsEnabled = on
		}

	default:
		return s, unknownSetting(key)
	}
	return s, nil
}

// normalizeKey maps accepted spellings to the canonical key.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "long", "long_break", "longbreak", "long-break":
		return "long-break"
	case "short-break", "short_break":
		return "break"
	case "notifications", "notification":
		return "notify"
	}
	return key
}

func unknownSetting(key string) error {
	return errors.NewUserErrorWithField("key", key,
		"Unknown setting",
		"Use one of: "+strings.Join(settingKeys, ", "),
	).WithCause(errors.ErrUnknownSetting)
}

// jsonSettingValue converts a setting value for JSON output. Lengths are
// whole seconds, as in the full settings response.
func jsonSettingValue(v any) any {
	if d, ok := v.(time.Duration); ok {
		return int(d / time.Second)
	}
	return v
}

// formatSettingValue renders a setting value for the terminal.
func formatSettingValue(v any) string {
	switch val := v.(type) {
	case time.Duration:
		return output.FormatDuration(val)
	case bool:
		if val {
			return "on"
		}
		return "off"
	}
	return fmt.Sprint(v)
}
