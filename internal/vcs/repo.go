// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Repository discovery with go-git

package vcs

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/kballard/go-shellquote"
)

// open finds the repository containing dir, walking up parent directories
func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}
	return repo, nil
}

// RepoRoot returns the top-level directory of the working tree containing dir
func RepoRoot(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to read worktree of %s: %w", dir, err)
	}

	return filepath.Clean(wt.Filesystem.Root()), nil
}

// HasCommits reports whether HEAD of the repository containing dir resolves.
// `git worktree add -b` and `git diff HEAD` both need a commit to start from.
func HasCommits(dir string) error {
	repo, err := open(dir)
	if err != nil {
		return err
	}

	if _, err := repo.Head(); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return ErrNoCommits
		}
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return nil
}

// BranchExists reports whether refs/heads/<branch> exists
func BranchExists(dir, branch string) (bool, error) {
	repo, err := open(dir)
	if err != nil {
		return false, err
	}

	_, err = repo.Reference(plumbing.NewBranchReferenceName(branch), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up branch %s: %w", branch, err)
	}
	return true, nil
}

// RemoveWorktreeScript renders a shell snippet that returns to origDir and
// removes the worktree at path, reporting the result
func RemoveWorktreeScript(origDir, path string) string {
	dir := shellquote.Join(origDir)
	wt := shellquote.Join(path)
	return fmt.Sprintf(
		"cd %s && %s worktree remove --force %s && echo %s",
		dir, DefaultBinary, wt, shellquote.Join("Removed worktree "+path),
	)
}
