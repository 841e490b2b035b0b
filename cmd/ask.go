/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sony-level/ai/internal/assistant"
	"github.com/sony-level/ai/internal/prereq"
	"github.com/sony-level/ai/internal/ui"
	"github.com/spf13/cobra"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask the assistant a question",
	Long: `Send a question to the assistant and print its answer. The assistant may
read files in the current directory and search the web.

Examples:
  ai ask "what is the difference between git merge and git rebase?"
  ai ask -m haiku "which package in this repo parses the config?"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := readQuery(args)
		if err != nil {
			return err
		}
		return executeAsk(cmd, query)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func executeAsk(cmd *cobra.Command, query string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := prereq.NewChecker().Require(cfg.Assistant); err != nil {
		return err
	}

	client := assistant.NewClient(cfg.Assistant, cfg.Model, logger)

	stop := ui.Spin(os.Stderr, "Thinking ...", ui.IsTerminal(os.Stderr))
	answer, err := client.Ask(cmd.Context(), query)
	stop()
	if err != nil {
		return err
	}

	if ui.ColorEnabled(os.Stdout) {
		answer = ui.HighlightMarkdown(answer)
	}
	fmt.Println(answer)
	return nil
}
