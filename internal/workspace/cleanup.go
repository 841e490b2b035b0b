// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Hand-off script generation and worktree removal

package workspace

import (
	"context"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/sony-level/ai/internal/vcs"
)

// BuildScript renders the shell script the assistant runs under.
//
// Unless the workspace is kept, the script installs an EXIT trap that removes
// the worktree, plus HUP/INT/TERM traps that turn those signals into an exit
// so the EXIT trap also runs on interrupts. The trap lives in the shell
// because the process that prepared the workspace has been replaced by then.
func BuildScript(ws *Workspace, opts LaunchOptions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("cd %s || exit 1\n", shellquote.Join(ws.Path)))

	if !ws.ShouldKeep() {
		sb.WriteString("ai_cleanup() {\n")
		sb.WriteString("  " + vcs.RemoveWorktreeScript(ws.SourceDir, ws.Path) + "\n")
		sb.WriteString("}\n")
		sb.WriteString("trap ai_cleanup EXIT\n")
		sb.WriteString("trap 'exit 129' HUP\n")
		sb.WriteString("trap 'exit 130' INT\n")
		sb.WriteString("trap 'exit 143' TERM\n")
	}

	if opts.Editor != "" {
		sb.WriteString(opts.Editor + " . &\n")
	}

	sb.WriteString(shellquote.Join(opts.Command...) + "\n")

	return sb.String()
}

// Remove deletes the worktree of ws; its branch is kept
func (o *Orchestrator) Remove(ctx context.Context, ws *Workspace) error {
	if err := o.VCS.RemoveWorktree(ctx, ws.SourceDir, ws.Path); err != nil {
		return fmt.Errorf("failed to remove worktree %s: %w", ws.Path, err)
	}
	ws.State = StateCleanedUp
	return nil
}

// List returns the workspaces of the repository containing dir, identified
// by their branch prefix
func (o *Orchestrator) List(ctx context.Context, dir string) ([]*Workspace, error) {
	worktrees, err := o.VCS.ListWorktrees(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	var workspaces []*Workspace
	for _, wt := range worktrees {
		feature, ok := strings.CutPrefix(wt.Branch, BranchPrefix)
		if !ok || feature == "" {
			continue
		}
		workspaces = append(workspaces, &Workspace{
			Feature:   feature,
			Branch:    wt.Branch,
			Path:      wt.Path,
			SourceDir: dir,
			State:     StateWorktreeCreated,
		})
	}
	return workspaces, nil
}

// Find returns the workspace for feature, or nil when it has no worktree
func (o *Orchestrator) Find(ctx context.Context, dir, feature string) (*Workspace, error) {
	workspaces, err := o.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	for _, ws := range workspaces {
		if ws.Feature == feature {
			return ws, nil
		}
	}
	return nil, nil
}
