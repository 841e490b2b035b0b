// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Go stack detector

package stacks

import "github.com/spf13/afero"

// GoDetector detects Go modules
type GoDetector struct {
	BaseDetector
}

// NewGoDetector creates a new Go detector
func NewGoDetector() *GoDetector {
	return &GoDetector{
		BaseDetector: NewBaseDetector(StackGo, PriorityGo),
	}
}

// Detect checks for go.mod
func (d *GoDetector) Detect(fs afero.Fs, dir string) (StackMatch, bool) {
	if _, ok := firstMatch(fs, dir, []lockRule{{"go.mod", ""}}); !ok {
		return StackMatch{}, false
	}
	return d.match("go mod download", "go.mod"), true
}
