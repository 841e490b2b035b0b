// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// git CLI implementation of the VCS interface

package vcs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Git runs the git binary. The zero value is usable.
type Git struct {
	Binary string
	Logger *zap.Logger
}

// NewGit creates a Git collaborator logging to logger (nil for no logging)
func NewGit(logger *zap.Logger) *Git {
	return &Git{Binary: DefaultBinary, Logger: logger}
}

// Diff returns staged and unstaged changes to tracked files relative to HEAD.
// Untracked files are not part of the patch.
// User config that changes the patch format (color, prefixes, relative
// paths, external drivers) is overridden so the output always applies.
func (g *Git) Diff(ctx context.Context, dir string) (string, error) {
	return g.run(ctx, dir, nil, diffArgs...)
}

var diffArgs = []string{
	"-c", "color.ui=false",
	"-c", "diff.noprefix=false",
	"-c", "diff.mnemonicPrefix=false",
	"-c", "diff.relative=false",
	"diff", "HEAD", "--binary",
	"--no-color", "--no-ext-diff", "--no-relative",
	"--src-prefix=a/", "--dst-prefix=b/",
}

// AddWorktree runs `git worktree add -b <branch> <path>`.
// An existing branch or path makes git fail; nothing is overwritten.
func (g *Git) AddWorktree(ctx context.Context, dir, branch, path string) error {
	_, err := g.run(ctx, dir, nil, "worktree", "add", "-b", branch, path)
	return err
}

// ApplyPatch feeds patch to `git apply` inside dir
func (g *Git) ApplyPatch(ctx context.Context, dir, patch string) error {
	_, err := g.run(ctx, dir, strings.NewReader(patch), "apply", "--whitespace=nowarn", "-")
	return err
}

// RemoveWorktree runs `git worktree remove --force <path>`
func (g *Git) RemoveWorktree(ctx context.Context, dir, path string) error {
	_, err := g.run(ctx, dir, nil, "worktree", "remove", "--force", path)
	return err
}

// ListWorktrees parses `git worktree list --porcelain`
func (g *Git) ListWorktrees(ctx context.Context, dir string) ([]Worktree, error) {
	out, err := g.run(ctx, dir, nil, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseWorktreeList(out), nil
}

// ParseWorktreeList parses porcelain output; records are separated by blank lines
func ParseWorktreeList(out string) []Worktree {
	var worktrees []Worktree
	var current *Worktree

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			current = nil
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		if key == "worktree" {
			worktrees = append(worktrees, Worktree{Path: value})
			current = &worktrees[len(worktrees)-1]
			continue
		}
		if current == nil {
			continue
		}

		switch key {
		case "HEAD":
			current.Head = value
		case "branch":
			current.Branch = strings.TrimPrefix(value, "refs/heads/")
		case "bare":
			current.Bare = true
		case "detached":
			current.Detached = true
		}
	}

	return worktrees
}

func (g *Git) run(ctx context.Context, dir string, stdin io.Reader, args ...string) (string, error) {
	binary := g.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	g.logger().Debug("running git", zap.String("dir", dir), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{Args: args, Stderr: stderr.String(), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		g.logger().Debug("git failed", zap.Strings("args", args), zap.Error(cmdErr))
		return "", cmdErr
	}

	return stdout.String(), nil
}

func (g *Git) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
