// Package cmd provides the CLI commands for pomotime.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pomotime/internal/config"
	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/output"
	"github.com/manav03panchal/pomotime/internal/runtime"
	"github.com/manav03panchal/pomotime/internal/storage"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat  string
	flagColor   string
	flagDebug   bool
	flagBackend string
	flagDB      string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pomotime",
	Short: "A Pomodoro timer for the terminal",
	Long: `Pomotime runs work sessions and breaks in your terminal and keeps a
history of completed sessions.

Every fourth work session is followed by a long break. Sound and desktop
notifications mark the end of each session.

Examples:
  pomotime
  pomotime start break
  pomotime start --headless --sessions 4
  pomotime stats week
  pomotime config set work 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if err := config.LoadDotEnv(); err != nil {
			logging.Warn("loading .env failed", logging.KeyError, err)
		}
		config.Global.ReloadFromEnv()

		if flagDebug {
			logging.InitDebug()
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		colorMode, err := output.ParseColorMode(flagColor)
		if err != nil {
			return err
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if flagBackend != "" {
			if opts.Backend, err = storage.ParseBackend(flagBackend); err != nil {
				return err
			}
		}
		if flagDB != "" {
			opts.DBPath = flagDB
		}

		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Debugf("backend %s", ctx.Backend)
		if ctx.StoreErr != nil {
			ctx.Debugf("%s", errors.FormatDebugError(ctx.StoreErr, runtime.GetSuggestion(ctx.StoreErr)))
		}
		// The widget and start show the warning themselves.
		if ctx.Warning != "" && cmd.HasParent() && cmd.Name() != "start" {
			logging.Warn(ctx.Warning)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the widget
		return runStart(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		if ctx != nil {
			ctx.Close()
		}
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "",
		"Storage backend: badger, sqlite, memory (default from POMOTIME_BACKEND or badger)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"Database location (default under the XDG data directory)")

	rootCmd.RegisterFlagCompletionFunc("backend", completeBackends)
	rootCmd.RegisterFlagCompletionFunc("format", completeFormats)

	// Add commands
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("pomotime %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// printError prints an error with its suggestion, as JSON when asked for.
func printError(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError(err, runtime.GetSuggestion(err))
		return
	}
	if logging.Debug {
		os.Stderr.WriteString(errors.FormatDebugError(err, runtime.GetSuggestion(err)))
		return
	}
	os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
}
