// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Test doubles for the orchestrator's collaborators

package tests

import (
	"context"

	"github.com/sony-level/ai/internal/vcs"
)

type fakeVCS struct {
	diff      string
	diffErr   error
	addErr    error
	applyErr  error
	removeErr error
	worktrees []vcs.Worktree

	calls   []string
	patches []string
}

func (f *fakeVCS) Diff(ctx context.Context, dir string) (string, error) {
	f.calls = append(f.calls, "diff")
	return f.diff, f.diffErr
}

func (f *fakeVCS) AddWorktree(ctx context.Context, dir, branch, path string) error {
	f.calls = append(f.calls, "add "+branch)
	return f.addErr
}

func (f *fakeVCS) ApplyPatch(ctx context.Context, dir, patch string) error {
	f.calls = append(f.calls, "apply")
	f.patches = append(f.patches, patch)
	return f.applyErr
}

func (f *fakeVCS) RemoveWorktree(ctx context.Context, dir, path string) error {
	f.calls = append(f.calls, "remove "+path)
	return f.removeErr
}

func (f *fakeVCS) ListWorktrees(ctx context.Context, dir string) ([]vcs.Worktree, error) {
	f.calls = append(f.calls, "list")
	return f.worktrees, nil
}

type fakeRunner struct {
	code     int
	err      error
	commands []string
	dirs     []string
}

func (f *fakeRunner) Run(ctx context.Context, dir, command string) (int, error) {
	f.commands = append(f.commands, command)
	f.dirs = append(f.dirs, dir)
	return f.code, f.err
}

type fakeLauncher struct {
	script string
	err    error
}

func (f *fakeLauncher) Handoff(script string) error {
	f.script = script
	return f.err
}
