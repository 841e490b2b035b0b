// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Tests for the git collaborator

package tests

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/sony-level/ai/internal/vcs"
	"github.com/sony-level/ai/internal/vcs/vcstest"
)

func TestParseWorktreeList(t *testing.T) {
	out := `worktree /repo
HEAD 1111111111111111111111111111111111111111
branch refs/heads/main

worktree /tmp/ai-worktrees/repo/feature
HEAD 2222222222222222222222222222222222222222
branch refs/heads/ai/feature

worktree /tmp/detached
HEAD 3333333333333333333333333333333333333333
detached
`

	worktrees := vcs.ParseWorktreeList(out)
	if len(worktrees) != 3 {
		t.Fatalf("expected 3 worktrees, got %d", len(worktrees))
	}

	if worktrees[0].Path != "/repo" || worktrees[0].Branch != "main" {
		t.Errorf("unexpected first worktree: %+v", worktrees[0])
	}
	if worktrees[1].Branch != "ai/feature" {
		t.Errorf("Branch = %q, want ai/feature", worktrees[1].Branch)
	}
	if !worktrees[2].Detached || worktrees[2].Branch != "" {
		t.Errorf("expected detached worktree, got %+v", worktrees[2])
	}
	if worktrees[2].Head != "3333333333333333333333333333333333333333" {
		t.Errorf("Head = %q", worktrees[2].Head)
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &vcs.CommandError{
		Args:     []string{"worktree", "add", "-b", "ai/x", "/tmp/x"},
		ExitCode: 128,
		Stderr:   "fatal: a branch named 'ai/x' already exists\n",
	}

	msg := err.Error()
	for _, want := range []string{"git worktree add -b ai/x /tmp/x", "code 128", "already exists"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestRemoveWorktreeScriptQuotes(t *testing.T) {
	script := vcs.RemoveWorktreeScript("/home/me/my repo", "/tmp/it's here")

	words, err := shellquote.Split(script)
	if err != nil {
		t.Fatalf("script does not split as shell words: %v", err)
	}

	want := []string{
		"cd", "/home/me/my repo", "&&",
		"git", "worktree", "remove", "--force", "/tmp/it's here", "&&",
		"echo", "Removed worktree /tmp/it's here",
	}
	if strings.Join(words, "|") != strings.Join(want, "|") {
		t.Errorf("words = %q, want %q", words, want)
	}
}

func TestRepoRootAndCommits(t *testing.T) {
	dir := vcstest.InitRepo(t, nil)
	sub := filepath.Join(dir, "nested", "deeper")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	root, err := vcs.RepoRoot(sub)
	if err != nil {
		t.Fatalf("RepoRoot() error = %v", err)
	}
	if root != dir {
		t.Errorf("RepoRoot() = %q, want %q", root, dir)
	}

	if err := vcs.HasCommits(dir); err != nil {
		t.Errorf("HasCommits() error = %v", err)
	}
}

func TestHasCommits_EmptyRepository(t *testing.T) {
	dir := vcstest.InitEmptyRepo(t)

	if err := vcs.HasCommits(dir); !errors.Is(err, vcs.ErrNoCommits) {
		t.Errorf("HasCommits() error = %v, want ErrNoCommits", err)
	}
}

func TestRepoRoot_NotRepository(t *testing.T) {
	_, err := vcs.RepoRoot(t.TempDir())
	if !errors.Is(err, vcs.ErrNotRepository) {
		t.Errorf("RepoRoot() error = %v, want ErrNotRepository", err)
	}
}

func TestGitWorktreeLifecycle(t *testing.T) {
	vcstest.RequireGit(t)

	ctx := context.Background()
	dir := vcstest.InitRepo(t, map[string]string{"main.txt": "one\n"})
	g := vcs.NewGit(nil)

	diff, err := g.Diff(ctx, dir)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if diff != "" {
		t.Errorf("Diff() on clean repo = %q, want empty", diff)
	}

	vcstest.WriteFile(t, dir, "main.txt", "one\ntwo\n")
	diff, err = g.Diff(ctx, dir)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if !strings.Contains(diff, "+two") {
		t.Errorf("Diff() = %q, want it to contain +two", diff)
	}

	path := filepath.Join(t.TempDir(), "feature")
	if err := g.AddWorktree(ctx, dir, "ai/feature", path); err != nil {
		t.Fatalf("AddWorktree() error = %v", err)
	}

	exists, err := vcs.BranchExists(dir, "ai/feature")
	if err != nil || !exists {
		t.Errorf("BranchExists() = %v, %v; want true", exists, err)
	}

	if err := g.ApplyPatch(ctx, path, diff); err != nil {
		t.Fatalf("ApplyPatch() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(path, "main.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("patched file = %q", data)
	}

	// The source directory keeps its own change untouched
	data, _ = os.ReadFile(filepath.Join(dir, "main.txt"))
	if string(data) != "one\ntwo\n" {
		t.Errorf("source file changed: %q", data)
	}

	list, err := g.ListWorktrees(ctx, dir)
	if err != nil {
		t.Fatalf("ListWorktrees() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 worktrees, got %d: %+v", len(list), list)
	}

	if err := g.AddWorktree(ctx, dir, "ai/feature", path+"-again"); err == nil {
		t.Error("AddWorktree() with an existing branch should fail")
	} else {
		var cmdErr *vcs.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.ExitCode == 0 {
			t.Errorf("expected CommandError with exit code, got %v", err)
		}
	}

	if err := g.RemoveWorktree(ctx, dir, path); err != nil {
		t.Fatalf("RemoveWorktree() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("worktree directory still present: %v", err)
	}

	exists, _ = vcs.BranchExists(dir, "ai/feature")
	if !exists {
		t.Error("branch should outlive its worktree")
	}
}

func TestApplyPatch_Failure(t *testing.T) {
	vcstest.RequireGit(t)

	dir := vcstest.InitRepo(t, nil)
	err := vcs.NewGit(nil).ApplyPatch(context.Background(), dir, "this is not a patch\n")
	if err == nil {
		t.Fatal("ApplyPatch() with garbage should fail")
	}
}
