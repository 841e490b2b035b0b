// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Main workspace logic

package workspace

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sony-level/ai/internal/exec"
	"github.com/sony-level/ai/internal/vcs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// CommandRunner runs a shell command in a directory and reports its exit status
type CommandRunner interface {
	Run(ctx context.Context, dir, command string) (int, error)
}

// Orchestrator prepares isolated worktrees and hands them to the assistant.
// It is not safe to orchestrate the same workspace twice concurrently.
type Orchestrator struct {
	VCS      vcs.VCS
	Setup    CommandRunner
	Launcher exec.Launcher
	Fs       afero.Fs
	Logger   *zap.Logger
	Progress io.Writer
}

// New creates an orchestrator backed by git, sh and process replacement
func New(logger *zap.Logger, progress io.Writer) *Orchestrator {
	return &Orchestrator{
		VCS:      vcs.NewGit(logger),
		Setup:    exec.NewShell("sh"),
		Launcher: &exec.ShellLauncher{},
		Fs:       afero.NewOsFs(),
		Logger:   logger,
		Progress: progress,
	}
}

// Prepare captures pending changes, creates the worktree, replays the
// changes, copies the assistant configuration and runs the setup command.
//
// Failures before the worktree exists leave nothing behind. Later failures
// return a *StepError whose Workspace is still on disk for inspection.
func (o *Orchestrator) Prepare(ctx context.Context, opts Options) (*Workspace, error) {
	ws, err := o.newWorkspace(opts)
	if err != nil {
		return nil, err
	}
	log := o.logger().With(zap.String("feature", ws.Feature), zap.String("path", ws.Path))

	diff, err := o.VCS.Diff(ctx, ws.SourceDir)
	if err != nil {
		return nil, &StepError{Step: StepCaptureDiff, Err: err}
	}
	ws.State = StateDiffCaptured
	log.Debug("captured pending changes", zap.Int("bytes", len(diff)))

	o.progress("  → Creating worktree %s on branch %s\n", ws.Path, ws.Branch)
	if err := o.VCS.AddWorktree(ctx, ws.SourceDir, ws.Branch, ws.Path); err != nil {
		return nil, &StepError{Step: StepCreateWorktree, Err: err}
	}
	ws.State = StateWorktreeCreated

	if strings.TrimSpace(diff) != "" {
		o.progress("  → Replaying uncommitted changes\n")
		if err := o.VCS.ApplyPatch(ctx, ws.Path, diff); err != nil {
			return ws, &StepError{Step: StepReplayChanges, Workspace: ws, Err: err}
		}
		ws.State = StateChangesReplayed
	} else {
		log.Debug("no pending changes to replay")
	}

	copied, err := o.copyConfig(ws, opts)
	if err != nil {
		return ws, &StepError{Step: StepCopyConfig, Workspace: ws, Err: err}
	}
	if copied > 0 {
		o.progress("  → Copied %d configuration files\n", copied)
		ws.State = StateConfigCopied
	}

	if opts.SetupCommand != "" {
		o.progress("  → Running setup: %s\n", opts.SetupCommand)
		code, err := o.Setup.Run(ctx, ws.Path, opts.SetupCommand)
		if err != nil || code != 0 {
			return ws, &StepError{
				Step:      StepSetup,
				Command:   opts.SetupCommand,
				ExitCode:  code,
				Workspace: ws,
				Err:       err,
			}
		}
		ws.State = StateSetupRun
	}

	return ws, nil
}

// Launch hands control to a shell running the assistant inside ws.
// With the default launcher a successful call never returns.
func (o *Orchestrator) Launch(ws *Workspace, opts LaunchOptions) error {
	if len(opts.Command) == 0 {
		return fmt.Errorf("%w: empty assistant command", ErrInvalidOptions)
	}

	script := BuildScript(ws, opts)
	o.logger().Debug("handing off", zap.String("script", script))

	ws.State = StateAssistantLaunched
	if err := o.Launcher.Handoff(script); err != nil {
		return err
	}

	// Only reached with launchers that wait for the shell
	if ws.ShouldKeep() {
		ws.State = StateKeptAlive
	} else {
		ws.State = StateCleanedUp
	}
	return nil
}

func (o *Orchestrator) newWorkspace(opts Options) (*Workspace, error) {
	if opts.Feature == "" {
		return nil, fmt.Errorf("%w: feature name is empty", ErrInvalidOptions)
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("%w: worktree path is empty", ErrInvalidOptions)
	}

	source := opts.SourceDir
	if source == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		source = cwd
	}

	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve worktree path: %w", err)
	}
	source, err = filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source directory: %w", err)
	}

	return &Workspace{
		Feature:   opts.Feature,
		Branch:    BranchName(opts.Feature),
		Path:      path,
		SourceDir: source,
		State:     StateInitial,
		keep:      opts.Keep,
	}, nil
}

func (o *Orchestrator) copyConfig(ws *Workspace, opts Options) (int, error) {
	name := opts.ConfigDir
	if name == "" {
		name = DefaultConfigDir
	}
	root := opts.ConfigRoot
	if root == "" {
		root = ws.SourceDir
	}

	src := filepath.Join(root, name)
	info, err := o.fs().Stat(src)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, nil
	}

	return CopyDir(o.fs(), src, filepath.Join(ws.Path, name))
}

func (o *Orchestrator) fs() afero.Fs {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return o.Fs
}

func (o *Orchestrator) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Orchestrator) progress(format string, args ...any) {
	if o.Progress != nil {
		fmt.Fprintf(o.Progress, format, args...)
	}
}
