// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Stack detection types and interfaces

package stacks

import "github.com/spf13/afero"

// Detector recognises one ecosystem from the files at a project root
type Detector interface {
	Name() string
	Priority() int
	Detect(fs afero.Fs, dir string) (StackMatch, bool)
}

// StackMatch is a detected stack and the command that installs its
// dependencies
type StackMatch struct {
	Name     string // node, python, go, rust, ruby
	Setup    string // install command run inside a fresh worktree
	Signal   string // file that triggered the match
	Priority int    // higher wins when several stacks match
}

// Stack priorities (higher = more dominant)
const (
	PriorityNode   = 80
	PriorityPython = 80
	PriorityGo     = 70
	PriorityRust   = 70
	PriorityRuby   = 60
)

// Stack names
const (
	StackNode   = "node"
	StackPython = "python"
	StackGo     = "go"
	StackRust   = "rust"
	StackRuby   = "ruby"
)
