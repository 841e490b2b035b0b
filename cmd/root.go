/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sony-level/ai/internal/config"
	"github.com/sony-level/ai/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	// Global flags
	modelFlag string
	verbose   bool

	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ai",
	Short: "Run a coding assistant in isolated git worktrees and turn questions into shell commands",
	Long: `ai is an opinionated wrapper around the Claude Code CLI.

It spawns the assistant in a dedicated git worktree (carrying over your
uncommitted changes), suggests one-off shell commands you can confirm and
run, and answers quick questions.

Examples:
  ai agent "add a health check endpoint"
  ai agent -n login-fix -s "npm ci" -k
  ai do "find files larger than 100MB"
  ai ask "what does git rebase --onto do?"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// exitStatus ends the process with a specific code and no message
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err == nil {
		return
	}

	var status exitStatus
	if errors.As(err, &status) {
		os.Exit(int(status))
	}
	if errors.Is(err, ui.ErrInterrupted) {
		os.Exit(130)
	}

	ui.Failure(os.Stderr, err)
	os.Exit(1)
}

func init() {
	// Persistent flags - available to all subcommands
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use for the assistant (e.g. sonnet, opus, haiku) (env: AI_MODEL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return l, nil
}

// loadConfig resolves configuration for the working directory. flagNames
// maps configuration keys to the names of the command's flags.
func loadConfig(cmd *cobra.Command, flagNames map[string]string) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	flags := map[string]*pflag.Flag{
		config.KeyModel: cmd.Flags().Lookup("model"),
	}
	for key, name := range flagNames {
		flags[key] = cmd.Flags().Lookup(name)
	}

	cfg, err := config.Load(cwd, flags)
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		logger.Debug("loaded config file", zap.String("path", cfg.Source))
	}
	return cfg, nil
}

// readQuery joins the positional arguments, or asks for a query when there
// are none and a terminal is attached
func readQuery(args []string) (string, error) {
	if query := strings.TrimSpace(strings.Join(args, " ")); query != "" {
		return query, nil
	}
	if !ui.IsInteractive() {
		return "", errors.New("a query is required when not running in a terminal")
	}

	query, err := ui.NewPrompter().Input("Query")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(query) == "" {
		return "", errors.New("query is empty")
	}
	return query, nil
}

// shellTool is the prerequisite name for the configured shell
func shellTool(shell string) string {
	if shell == "" {
		return "shell"
	}
	return shell
}
