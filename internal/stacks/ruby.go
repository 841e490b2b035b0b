// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Ruby stack detector

package stacks

import "github.com/spf13/afero"

// RubyDetector detects Bundler projects
type RubyDetector struct {
	BaseDetector
}

// NewRubyDetector creates a new Ruby detector
func NewRubyDetector() *RubyDetector {
	return &RubyDetector{
		BaseDetector: NewBaseDetector(StackRuby, PriorityRuby),
	}
}

// Detect checks for a Gemfile
func (d *RubyDetector) Detect(fs afero.Fs, dir string) (StackMatch, bool) {
	if _, ok := firstMatch(fs, dir, []lockRule{{"Gemfile", ""}}); !ok {
		return StackMatch{}, false
	}
	return d.match("bundle install", "Gemfile"), true
}
