// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// End-to-end orchestration against a real git repository

package tests

import (
	"bytes"
	"context"
	"os"
	osexec "os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sony-level/ai/internal/exec"
	"github.com/sony-level/ai/internal/vcs"
	"github.com/sony-level/ai/internal/vcs/vcstest"
	"github.com/sony-level/ai/internal/workspace"
)

func prepareRealWorkspace(t *testing.T, keep bool) (*workspace.Orchestrator, *workspace.Workspace, *exec.ChildLauncher) {
	t.Helper()
	vcstest.RequireGit(t)
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	src := vcstest.InitRepo(t, map[string]string{"app.txt": "v1\n"})
	vcstest.WriteFile(t, src, "app.txt", "v1\nwork in progress\n")
	vcstest.WriteFile(t, src, ".claude/settings.local.json", `{"permissions":{}}`)

	var out bytes.Buffer
	launcher := &exec.ChildLauncher{Shell: "sh", Stdout: &out, Stderr: &out}
	o := workspace.New(nil, nil)
	o.Launcher = launcher
	o.Setup = &exec.Shell{Path: "sh"}

	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(base, "wt", "feature")
	ws, err := o.Prepare(context.Background(), workspace.Options{
		Feature:      "feature",
		SourceDir:    src,
		Path:         path,
		SetupCommand: "touch setup-ran",
		Keep:         keep,
	})
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	t.Cleanup(func() {
		_ = vcs.NewGit(nil).RemoveWorktree(context.Background(), src, ws.Path)
	})
	return o, ws, launcher
}

func worktreeListed(t *testing.T, ws *workspace.Workspace) bool {
	t.Helper()
	list, err := vcs.NewGit(nil).ListWorktrees(context.Background(), ws.SourceDir)
	if err != nil {
		t.Fatalf("ListWorktrees() error = %v", err)
	}
	for _, wt := range list {
		if filepath.Clean(wt.Path) == filepath.Clean(ws.Path) {
			return true
		}
	}
	return false
}

func TestOrchestration_PreparesWorktree(t *testing.T) {
	_, ws, _ := prepareRealWorkspace(t, true)

	data, err := os.ReadFile(filepath.Join(ws.Path, "app.txt"))
	if err != nil || string(data) != "v1\nwork in progress\n" {
		t.Errorf("pending change not replayed: %q, %v", data, err)
	}
	if _, err := os.Stat(filepath.Join(ws.Path, ".claude", "settings.local.json")); err != nil {
		t.Errorf("config not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws.Path, "setup-ran")); err != nil {
		t.Errorf("setup did not run in the worktree: %v", err)
	}

	exists, err := vcs.BranchExists(ws.SourceDir, "ai/feature")
	if err != nil || !exists {
		t.Errorf("BranchExists() = %v, %v", exists, err)
	}

	// The caller's directory is only read
	if _, err := os.Stat(filepath.Join(ws.SourceDir, "setup-ran")); !os.IsNotExist(err) {
		t.Error("setup must not touch the source directory")
	}
}

func TestOrchestration_ReplaysDiffUnderUserGitConfig(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "color always", key: "color.ui", value: "always"},
		{name: "no prefix", key: "diff.noprefix", value: "true"},
		{name: "mnemonic prefix", key: "diff.mnemonicPrefix", value: "true"},
		{name: "relative", key: "diff.relative", value: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GIT_CONFIG_COUNT", "1")
			t.Setenv("GIT_CONFIG_KEY_0", tt.key)
			t.Setenv("GIT_CONFIG_VALUE_0", tt.value)

			_, ws, _ := prepareRealWorkspace(t, true)

			data, err := os.ReadFile(filepath.Join(ws.Path, "app.txt"))
			if err != nil || string(data) != "v1\nwork in progress\n" {
				t.Errorf("pending change not replayed with %s=%s: %q, %v", tt.key, tt.value, data, err)
			}
		})
	}
}

func TestOrchestration_CleanupVariantRemovesWorktree(t *testing.T) {
	o, ws, launcher := prepareRealWorkspace(t, false)

	if !worktreeListed(t, ws) {
		t.Fatal("worktree should be listed before launch")
	}

	if err := o.Launch(ws, workspace.LaunchOptions{Command: []string{"true"}}); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if launcher.ExitCode != 0 {
		t.Errorf("ExitCode = %d", launcher.ExitCode)
	}

	if worktreeListed(t, ws) {
		t.Error("worktree still listed after the assistant exited")
	}
	if _, err := os.Stat(ws.Path); !os.IsNotExist(err) {
		t.Errorf("worktree directory still exists: %v", err)
	}
}

func TestOrchestration_CleanupRunsWhenAssistantFails(t *testing.T) {
	o, ws, launcher := prepareRealWorkspace(t, false)

	if err := o.Launch(ws, workspace.LaunchOptions{Command: []string{"sh", "-c", "exit 9"}}); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if launcher.ExitCode != 9 {
		t.Errorf("ExitCode = %d, want 9", launcher.ExitCode)
	}
	if worktreeListed(t, ws) {
		t.Error("worktree still listed after the assistant failed")
	}
}

func TestOrchestration_KeepVariantLeavesWorktree(t *testing.T) {
	o, ws, _ := prepareRealWorkspace(t, true)

	if err := o.Launch(ws, workspace.LaunchOptions{Command: []string{"true"}}); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if !worktreeListed(t, ws) {
		t.Error("keep variant removed the worktree")
	}
	if ws.State != workspace.StateKeptAlive {
		t.Errorf("State = %v, want %v", ws.State, workspace.StateKeptAlive)
	}
}

func TestOrchestration_CleanupRunsWhenShellIsTerminated(t *testing.T) {
	for _, shell := range []string{"sh", "bash"} {
		t.Run(shell, func(t *testing.T) {
			if _, err := osexec.LookPath(shell); err != nil {
				t.Skipf("%s not available", shell)
			}
			o, ws, launcher := prepareRealWorkspace(t, false)
			launcher.Shell = shell

			// The assistant terminates the hand-off shell, then keeps running briefly
			err := o.Launch(ws, workspace.LaunchOptions{
				Command: []string{"sh", "-c", "kill -TERM $PPID; sleep 1"},
			})
			if err != nil {
				t.Fatalf("Launch() error = %v", err)
			}
			if launcher.ExitCode != 143 {
				t.Errorf("ExitCode = %d, want 143", launcher.ExitCode)
			}
			if worktreeListed(t, ws) {
				t.Error("worktree still listed after the shell was terminated")
			}
		})
	}
}
