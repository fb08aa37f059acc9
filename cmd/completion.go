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
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionFlagNoDescriptions bool

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for pomotime.

Completions cover session types, stats dates, setting keys and their
values, and the --backend and --format flags.

Bash:
  $ source <(pomotime completion bash)
  $ pomotime completion bash > /etc/bash_completion.d/pomotime

Zsh:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  $ pomotime completion zsh > "${fpath[1]}/_pomotime"

Fish:
  $ pomotime completion fish > ~/.config/fish/completions/pomotime.fish

PowerShell:
  PS> pomotime completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletion(cmd.Root(), cmd.OutOrStdout(), args[0], !completionFlagNoDescriptions)
	},
}

func init() {
	completionCmd.Flags().BoolVar(&completionFlagNoDescriptions, "no-descriptions", false,
		"Leave out the description next to each suggestion")
	rootCmd.AddCommand(completionCmd)
}

// writeCompletion writes the completion script for shell to w.
func writeCompletion(root *cobra.Command, w io.Writer, shell string, descriptions bool) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, descriptions)
	case "zsh":
		if descriptions {
			return root.GenZshCompletion(w)
		}
		return root.GenZshCompletionNoDesc(w)
	case "fish":
		return root.GenFishCompletion(w, descriptions)
	case "powershell":
		if descriptions {
			return root.GenPowerShellCompletionWithDesc(w)
		}
		return root.GenPowerShellCompletion(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}
