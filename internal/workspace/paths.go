// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Worktree location

package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns where the worktree for feature goes.
// With worktreesDir set it is created and used as the parent; otherwise the
// worktree lives in the temp dir, namespaced by the project name.
func DefaultPath(worktreesDir, project, feature string) (string, error) {
	if worktreesDir != "" {
		if err := os.MkdirAll(worktreesDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create worktrees directory %s: %w", worktreesDir, err)
		}
		abs, err := filepath.Abs(worktreesDir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve worktrees directory: %w", err)
		}
		return filepath.Join(abs, feature), nil
	}

	if project == "" || project == "." || project == string(filepath.Separator) {
		project = "unknown"
	}
	return filepath.Join(os.TempDir(), TempDirName, project, feature), nil
}
