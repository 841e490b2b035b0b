// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Version-control types and errors

package vcs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultBinary is the git executable looked up on PATH
const DefaultBinary = "git"

var (
	// ErrNotRepository is returned when a directory is not inside a git repository
	ErrNotRepository = errors.New("not a git repository")
	// ErrNoCommits is returned when HEAD does not resolve to a commit yet
	ErrNoCommits = errors.New("repository has no commits")
)

// VCS is the set of version-control operations the orchestrator needs.
// Every method blocks until the underlying tool exits.
type VCS interface {
	// Diff returns the uncommitted changes of dir as a patch
	Diff(ctx context.Context, dir string) (string, error)
	// AddWorktree creates a worktree at path on a new branch
	AddWorktree(ctx context.Context, dir, branch, path string) error
	// ApplyPatch applies patch to the working tree at dir
	ApplyPatch(ctx context.Context, dir, patch string) error
	// RemoveWorktree removes the worktree at path
	RemoveWorktree(ctx context.Context, dir, path string) error
	// ListWorktrees lists the worktrees of the repository containing dir
	ListWorktrees(ctx context.Context, dir string) ([]Worktree, error)
}

// Worktree is one entry of `git worktree list --porcelain`
type Worktree struct {
	Path     string
	Head     string
	Branch   string // short name, empty when detached
	Bare     bool
	Detached bool
}

// CommandError reports a git invocation that exited non-zero or could not start
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s", DefaultBinary, strings.Join(e.Args, " "))
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" exited with code %d", e.ExitCode)
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
