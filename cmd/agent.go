/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sony-level/ai/internal/assistant"
	"github.com/sony-level/ai/internal/config"
	"github.com/sony-level/ai/internal/exec"
	"github.com/sony-level/ai/internal/naming"
	"github.com/sony-level/ai/internal/prereq"
	"github.com/sony-level/ai/internal/stacks"
	"github.com/sony-level/ai/internal/ui"
	"github.com/sony-level/ai/internal/vcs"
	"github.com/sony-level/ai/internal/workspace"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupAuto selects the install command of the detected project stack
const setupAuto = "auto"

var (
	agentName         string
	agentSetupCommand string
	agentWorktreesDir string
	agentKeepWorktree bool
	agentEditor       bool
	agentNoExec       bool
)

// agentCmd represents the agent command
var agentCmd = &cobra.Command{
	Use:   "agent [query]",
	Short: "Spawn the assistant in a separate git worktree",
	Long: `Create a git worktree on a new branch ai/<name>, replay your uncommitted
changes into it, copy the .claude directory, run the optional setup command
and start the assistant there.

When the assistant exits the worktree is removed, unless --keep-worktree
is set. The branch is always kept.

Examples:
  ai agent
  ai agent "fix the flaky login test"
  ai agent -n search -s "npm install" -w ~/worktrees
  ai agent -k -e "refactor the config loader"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeAgent(cmd, strings.TrimSpace(strings.Join(args, " ")))
	},
}

var agentListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List worktrees created by ai agent",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeAgentList(cmd)
	},
}

var agentRemoveCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove the worktree of a kept or failed agent (the branch is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeAgentRemove(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)
	agentCmd.AddCommand(agentListCmd)
	agentCmd.AddCommand(agentRemoveCmd)

	agentCmd.Flags().StringVarP(&agentName, "name", "n", "", "Name of the git worktree and branch")
	agentCmd.Flags().StringVarP(&agentSetupCommand, "setup-command", "s", "", "Command run in the worktree once it is created, e.g. \"npm install\"; \"auto\" detects it (env: AI_SETUP_COMMAND)")
	agentCmd.Flags().StringVarP(&agentWorktreesDir, "worktrees-dir", "w", "", "Parent directory for worktrees; a temporary directory is used when omitted (env: AI_WORKTREES_DIR)")
	agentCmd.Flags().BoolVarP(&agentKeepWorktree, "keep-worktree", "k", false, "Keep the worktree after the assistant exits")
	agentCmd.Flags().BoolVarP(&agentEditor, "editor", "e", false, "Open $VISUAL in the worktree directory")
	agentCmd.Flags().BoolVar(&agentNoExec, "no-exec", false, "Run the assistant as a child process instead of replacing ai")
	_ = agentCmd.Flags().MarkHidden("no-exec")
}

func executeAgent(cmd *cobra.Command, query string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		config.KeySetupCommand: "setup-command",
		config.KeyWorktreesDir: "worktrees-dir",
		config.KeyKeepWorktree: "keep-worktree",
	})
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	root, err := vcs.RepoRoot(cwd)
	if err != nil {
		return err
	}
	if err := vcs.HasCommits(cwd); err != nil {
		return err
	}
	if err := prereq.NewChecker().Require("git", cfg.Assistant, shellTool(cfg.Shell)); err != nil {
		return err
	}

	setup := resolveSetup(cfg.SetupCommand, root)

	feature := naming.Resolve(agentName, query)
	path, err := workspace.DefaultPath(cfg.WorktreesDir, filepath.Base(root), feature)
	if err != nil {
		return err
	}

	editor := ""
	if agentEditor {
		editor = editorCommand(os.Getenv)
		if editor == "" {
			ui.Warning(os.Stderr, "--editor is set but $VISUAL is empty, not opening an editor (e.g. VISUAL=\"zed --wait\")")
		}
	}

	orch := newOrchestrator(cfg)
	var child *exec.ChildLauncher
	if agentNoExec {
		child = &exec.ChildLauncher{Shell: cfg.Shell, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
		orch.Launcher = child
	}

	fmt.Printf("Starting agent %s\n", ui.Bold(feature))
	ws, err := orch.Prepare(cmd.Context(), workspace.Options{
		Feature:      feature,
		SourceDir:    cwd,
		Path:         path,
		SetupCommand: setup,
		ConfigRoot:   root,
		ConfigDir:    cfg.ConfigDir,
		Keep:         cfg.KeepWorktree,
	})
	if err != nil {
		var stepErr *workspace.StepError
		if errors.As(err, &stepErr) && stepErr.Workspace != nil {
			return leftBehind(err, stepErr.Workspace.Path, feature)
		}
		return err
	}

	client := assistant.NewClient(cfg.Assistant, cfg.Model, logger)
	if ws.ShouldKeep() {
		ui.Step(os.Stdout, "Worktree will be kept after the assistant exits")
	}
	ui.Step(os.Stdout, "Launching %s in %s", client.Binary, ws.Path)

	if err := orch.Launch(ws, workspace.LaunchOptions{
		Command: client.InteractiveCommand(query),
		Editor:  editor,
	}); err != nil {
		return leftBehind(err, ws.Path, feature)
	}

	// Only reached with --no-exec
	if child != nil && child.ExitCode != 0 {
		return exitStatus(child.ExitCode)
	}
	return nil
}

func executeAgentList(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	workspaces, err := newOrchestrator(cfg).List(cmd.Context(), cwd)
	if err != nil {
		return err
	}
	if len(workspaces) == 0 {
		fmt.Println("No agent worktrees")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "BRANCH", "PATH")
	for _, ws := range workspaces {
		t.Row(ws.Feature, ws.Branch, ws.Path)
	}
	fmt.Println(t.String())
	return nil
}

func executeAgentRemove(cmd *cobra.Command, feature string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	orch := newOrchestrator(cfg)
	ws, err := orch.Find(cmd.Context(), cwd, feature)
	if err != nil {
		return err
	}
	if ws == nil {
		return fmt.Errorf("no worktree found for %s (branch %s)", feature, workspace.BranchName(feature))
	}

	if err := orch.Remove(cmd.Context(), ws); err != nil {
		return err
	}
	ui.Step(os.Stdout, "Removed worktree %s (branch %s kept)", ws.Path, ws.Branch)
	return nil
}

// resolveSetup expands "auto" into the detected install command. Without a
// setup command it only prints what was detected.
func resolveSetup(setup, root string) string {
	if setup != "" && setup != setupAuto {
		return setup
	}

	match, ok := stacks.SetupCommand(afero.NewOsFs(), root)
	logger.Debug("stack detection", zap.Bool("found", ok), zap.String("stack", match.Name), zap.String("signal", match.Signal))

	if setup == setupAuto {
		if !ok {
			ui.Warning(os.Stderr, "no known project stack found, skipping setup")
			return ""
		}
		ui.Step(os.Stdout, "Detected %s project (%s)", match.Name, match.Signal)
		return match.Setup
	}

	if ok {
		ui.Step(os.Stdout, "%s", ui.Faint(fmt.Sprintf("Detected %s project; pass -s %q to install dependencies", match.Name, match.Setup)))
	}
	return ""
}

// editorCommand returns the GUI editor to start next to the assistant.
// $EDITOR is ignored: terminal editors would fight the assistant for the tty.
func editorCommand(getenv func(string) string) string {
	return strings.TrimSpace(getenv("VISUAL"))
}

// leftBehind tells the user how to remove a worktree that a failed run left on disk
func leftBehind(err error, path, feature string) error {
	return fmt.Errorf("%w\nThe worktree was left at %s for inspection; remove it with: ai agent rm %s",
		err, path, feature)
}

func newOrchestrator(cfg *config.Config) *workspace.Orchestrator {
	orch := workspace.New(logger.With(zap.String("component", "workspace")), os.Stdout)
	if cfg.Shell != "" {
		orch.Setup = exec.NewShell(cfg.Shell)
		orch.Launcher = &exec.ShellLauncher{Shell: cfg.Shell}
	}
	return orch
}
