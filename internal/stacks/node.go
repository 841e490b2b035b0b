// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Node.js stack detector

package stacks

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// NodeDetector detects Node.js projects and their package manager
type NodeDetector struct {
	BaseDetector
}

// NewNodeDetector creates a new Node.js detector
func NewNodeDetector() *NodeDetector {
	return &NodeDetector{
		BaseDetector: NewBaseDetector(StackNode, PriorityNode),
	}
}

// Detect checks for package.json and picks the install command from the
// lock file
func (d *NodeDetector) Detect(fs afero.Fs, dir string) (StackMatch, bool) {
	if !exists(fs, filepath.Join(dir, "package.json")) {
		return StackMatch{}, false
	}

	rule, ok := firstMatch(fs, dir, []lockRule{
		{"pnpm-lock.yaml", "pnpm install --frozen-lockfile"},
		{"yarn.lock", "yarn install --frozen-lockfile"},
		{"bun.lockb", "bun install"},
		{"bun.lock", "bun install"},
		{"package-lock.json", "npm ci"},
	})
	if !ok {
		// npm assumed (no lock file)
		return d.match("npm install", "package.json"), true
	}
	return d.match(rule.setup, rule.file), true
}
