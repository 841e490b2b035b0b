// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Stack detection tests

package tests

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/sony-level/ai/internal/stacks"
)

func newFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		if err := afero.WriteFile(fs, "/repo/"+f, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func TestNodeDetector_LockFiles(t *testing.T) {
	tests := []struct {
		files     []string
		wantSetup string
	}{
		{[]string{"package.json"}, "npm install"},
		{[]string{"package.json", "package-lock.json"}, "npm ci"},
		{[]string{"package.json", "yarn.lock"}, "yarn install --frozen-lockfile"},
		{[]string{"package.json", "pnpm-lock.yaml", "package-lock.json"}, "pnpm install --frozen-lockfile"},
		{[]string{"package.json", "bun.lockb"}, "bun install"},
	}

	for _, tt := range tests {
		t.Run(tt.wantSetup, func(t *testing.T) {
			match, found := stacks.NewNodeDetector().Detect(newFs(t, tt.files...), "/repo")
			if !found {
				t.Fatal("Node.js should be detected")
			}
			if match.Setup != tt.wantSetup {
				t.Errorf("Setup = %q, want %q", match.Setup, tt.wantSetup)
			}
			if match.Name != stacks.StackNode || match.Priority != stacks.PriorityNode {
				t.Errorf("match = %+v", match)
			}
		})
	}
}

func TestNodeDetector_LockWithoutManifest(t *testing.T) {
	if _, found := stacks.NewNodeDetector().Detect(newFs(t, "yarn.lock"), "/repo"); found {
		t.Error("a lock file alone is not a Node.js project")
	}
}

func TestPythonDetector(t *testing.T) {
	match, found := stacks.NewPythonDetector().Detect(newFs(t, "requirements.txt", "poetry.lock"), "/repo")
	if !found {
		t.Fatal("Python should be detected")
	}
	if match.Setup != "poetry install" || match.Signal != "poetry.lock" {
		t.Errorf("match = %+v", match)
	}
}

func TestRubyDetector(t *testing.T) {
	match, found := stacks.NewRubyDetector().Detect(newFs(t, "Gemfile"), "/repo")
	if !found {
		t.Fatal("Ruby should be detected")
	}
	if match.Setup != "bundle install" || match.Name != stacks.StackRuby || match.Priority != stacks.PriorityRuby {
		t.Errorf("match = %+v", match)
	}

	if _, found := stacks.NewRubyDetector().Detect(newFs(t, "Cargo.toml"), "/repo"); found {
		t.Error("a Cargo project is not a Ruby project")
	}
}

func TestDetect_OrdersByPriority(t *testing.T) {
	fs := newFs(t, "go.mod", "package.json", "Gemfile")

	matches := stacks.Detect(fs, "/repo")
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %+v", matches)
	}
	if matches[0].Name != stacks.StackNode {
		t.Errorf("dominant = %s, want node", matches[0].Name)
	}
	if matches[2].Name != stacks.StackRuby {
		t.Errorf("last = %s, want ruby", matches[2].Name)
	}
}

func TestSetupCommand(t *testing.T) {
	match, ok := stacks.SetupCommand(newFs(t, "Cargo.toml"), "/repo")
	if !ok || match.Setup != "cargo fetch" {
		t.Errorf("SetupCommand() = %+v, %v", match, ok)
	}

	if _, ok := stacks.SetupCommand(newFs(t, "README.md"), "/repo"); ok {
		t.Error("no stack expected")
	}

	// Directories named like marker files do not count
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/repo/go.mod", 0755)
	if _, ok := stacks.SetupCommand(fs, "/repo"); ok {
		t.Error("a directory is not a marker file")
	}
}
