// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Rust stack detector

package stacks

import "github.com/spf13/afero"

// RustDetector detects Cargo projects
type RustDetector struct {
	BaseDetector
}

// NewRustDetector creates a new Rust detector
func NewRustDetector() *RustDetector {
	return &RustDetector{
		BaseDetector: NewBaseDetector(StackRust, PriorityRust),
	}
}

// Detect checks for Cargo.toml
func (d *RustDetector) Detect(fs afero.Fs, dir string) (StackMatch, bool) {
	if _, ok := firstMatch(fs, dir, []lockRule{{"Cargo.toml", ""}}); !ok {
		return StackMatch{}, false
	}
	return d.match("cargo fetch", "Cargo.toml"), true
}
