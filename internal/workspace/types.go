// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// workspace types/constants

package workspace

import (
	"errors"
	"fmt"
)

const (
	// BranchPrefix namespaces every branch created for a workspace
	BranchPrefix = "ai/"
	// DefaultConfigDir is the per-project assistant configuration copied into new worktrees
	DefaultConfigDir = ".claude"
	// TempDirName is the directory under os.TempDir() holding worktrees by default
	TempDirName = "ai-worktrees"
)

// State is how far orchestration got for a workspace
type State int

const (
	StateInitial State = iota
	StateDiffCaptured
	StateWorktreeCreated
	StateChangesReplayed
	StateConfigCopied
	StateSetupRun
	StateAssistantLaunched
	StateCleanedUp
	StateKeptAlive
)

var stateNames = map[State]string{
	StateInitial:           "initial",
	StateDiffCaptured:      "diff-captured",
	StateWorktreeCreated:   "worktree-created",
	StateChangesReplayed:   "changes-replayed",
	StateConfigCopied:      "config-copied",
	StateSetupRun:          "setup-run",
	StateAssistantLaunched: "assistant-launched",
	StateCleanedUp:         "cleaned-up",
	StateKeptAlive:         "kept-alive",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Workspace is one isolated checkout bound to its own branch
type Workspace struct {
	Feature   string
	Branch    string
	Path      string // absolute worktree directory
	SourceDir string // directory orchestration started from
	State     State
	keep      bool
}

// Options configures Orchestrator.Prepare
type Options struct {
	Feature      string
	SourceDir    string // where the diff is read and cleanup returns to; cwd when empty
	Path         string // worktree directory
	SetupCommand string
	ConfigRoot   string // where ConfigDir is looked up; SourceDir when empty
	ConfigDir    string // relative directory copied into the worktree; DefaultConfigDir when empty
	Keep         bool
}

// LaunchOptions configures Orchestrator.Launch
type LaunchOptions struct {
	Command []string // assistant argv, query included
	Editor  string   // command line started in the background inside the worktree
}

// Step identifies an orchestration step that can fail
type Step string

const (
	StepCaptureDiff    Step = "capture pending changes"
	StepCreateWorktree Step = "create worktree"
	StepReplayChanges  Step = "replay pending changes"
	StepCopyConfig     Step = "copy assistant configuration"
	StepSetup          Step = "run setup command"
)

var (
	ErrInvalidOptions   = errors.New("invalid workspace options")
	ErrDiffCapture      = errors.New("failed to capture pending changes")
	ErrWorktreeCreation = errors.New("failed to create worktree")
	ErrPatchApply       = errors.New("failed to apply pending changes")
	ErrConfigCopy       = errors.New("failed to copy assistant configuration")
	ErrSetupCommand     = errors.New("setup command failed")
)

var stepErrors = map[Step]error{
	StepCaptureDiff:    ErrDiffCapture,
	StepCreateWorktree: ErrWorktreeCreation,
	StepReplayChanges:  ErrPatchApply,
	StepCopyConfig:     ErrConfigCopy,
	StepSetup:          ErrSetupCommand,
}

// StepError reports a failed orchestration step.
// Workspace is set once the worktree exists and is left on disk.
type StepError struct {
	Step      Step
	Command   string // setup command text, for StepSetup
	ExitCode  int
	Workspace *Workspace
	Err       error
}

func (e *StepError) Error() string {
	msg := stepErrors[e.Step].Error()
	if e.Command != "" {
		msg += fmt.Sprintf(" (%q exited with code %d)", e.Command, e.ExitCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the failed step
func (e *StepError) Is(target error) bool {
	return stepErrors[e.Step] == target
}

// ShouldKeep returns whether the worktree survives the assistant's exit
func (w *Workspace) ShouldKeep() bool {
	return w.keep
}

// SetKeep sets whether the worktree survives the assistant's exit
func (w *Workspace) SetKeep(keep bool) {
	w.keep = keep
}

// String returns a string representation of the workspace
func (w *Workspace) String() string {
	return fmt.Sprintf("Workspace{Feature: %s, Branch: %s, Path: %s, Keep: %v}", w.Feature, w.Branch, w.Path, w.keep)
}

// BranchName returns the branch used for feature
func BranchName(feature string) string {
	return BranchPrefix + feature
}
