// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Base detector functionality and aggregation

package stacks

import (
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// BaseDetector provides common functionality for detectors
type BaseDetector struct {
	name     string
	priority int
}

// NewBaseDetector creates a new base detector
func NewBaseDetector(name string, priority int) BaseDetector {
	return BaseDetector{name: name, priority: priority}
}

// Name returns the detector name
func (d BaseDetector) Name() string {
	return d.name
}

// Priority returns the detector priority
func (d BaseDetector) Priority() int {
	return d.priority
}

func (d BaseDetector) match(setup, signal string) StackMatch {
	return StackMatch{Name: d.name, Setup: setup, Signal: signal, Priority: d.priority}
}

// lockRule maps a marker file to the install command it implies
type lockRule struct {
	file  string
	setup string
}

// firstMatch returns the first rule whose file exists in dir
func firstMatch(fs afero.Fs, dir string, rules []lockRule) (lockRule, bool) {
	for _, r := range rules {
		if exists(fs, filepath.Join(dir, r.file)) {
			return r, true
		}
	}
	return lockRule{}, false
}

func exists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// DefaultDetectors returns all built-in detectors
func DefaultDetectors() []Detector {
	return []Detector{
		NewNodeDetector(),
		NewPythonDetector(),
		NewGoDetector(),
		NewRustDetector(),
		NewRubyDetector(),
	}
}

// Detect runs every detector against dir and returns the matches, highest
// priority first
func Detect(fs afero.Fs, dir string, detectors ...Detector) []StackMatch {
	if len(detectors) == 0 {
		detectors = DefaultDetectors()
	}

	var matches []StackMatch
	for _, d := range detectors {
		if m, ok := d.Detect(fs, dir); ok {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority > matches[j].Priority
	})
	return matches
}

// SetupCommand returns the install command of the dominant stack in dir
func SetupCommand(fs afero.Fs, dir string) (StackMatch, bool) {
	matches := Detect(fs, dir)
	if len(matches) == 0 {
		return StackMatch{}, false
	}
	return matches[0], true
}
