/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"os"

	"github.com/sony-level/ai/internal/assistant"
	"github.com/sony-level/ai/internal/driver"
	"github.com/sony-level/ai/internal/exec"
	"github.com/sony-level/ai/internal/prereq"
	"github.com/sony-level/ai/internal/ui"
	"github.com/spf13/cobra"
)

// doCmd represents the do command
var doCmd = &cobra.Command{
	Use:   "do [query]",
	Short: "Suggest a one-off shell command, then run it after confirmation",
	Long: `Ask the assistant for a single shell command, show what it does and run
it once you confirm. Values the assistant could not know are written as
<name> placeholders and asked for before the command runs.

ai exits with the status of the executed command.

Examples:
  ai do "show the ten largest files in this repo"
  ai do "switch to a branch"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := readQuery(args)
		if err != nil {
			return err
		}
		return executeDo(cmd, query)
	},
}

func init() {
	rootCmd.AddCommand(doCmd)
}

func executeDo(cmd *cobra.Command, query string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := prereq.NewChecker().Require(cfg.Assistant, shellTool(cfg.Shell)); err != nil {
		return err
	}

	d := &driver.Driver{
		Assistant: assistant.NewClient(cfg.Assistant, cfg.Model, logger),
		Prompter:  ui.NewPrompter(),
		Shell:     exec.NewShell(cfg.Shell),
		Out:       os.Stdout,
		Logger:    logger,
		Busy: func(message string) func() {
			return ui.Spin(os.Stderr, message, ui.IsTerminal(os.Stderr))
		},
	}
	if ui.ColorEnabled(os.Stdout) {
		d.Highlight = ui.HighlightBash
	}

	code, err := d.Run(cmd.Context(), query)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitStatus(code)
	}
	return nil
}
