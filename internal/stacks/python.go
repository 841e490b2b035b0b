// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Python stack detector

package stacks

import "github.com/spf13/afero"

// PythonDetector detects Python projects
type PythonDetector struct {
	BaseDetector
}

// NewPythonDetector creates a new Python detector
func NewPythonDetector() *PythonDetector {
	return &PythonDetector{
		BaseDetector: NewBaseDetector(StackPython, PriorityPython),
	}
}

// Detect prefers lock files over plain requirement lists
func (d *PythonDetector) Detect(fs afero.Fs, dir string) (StackMatch, bool) {
	rule, ok := firstMatch(fs, dir, []lockRule{
		{"uv.lock", "uv sync"},
		{"poetry.lock", "poetry install"},
		{"Pipfile.lock", "pipenv install --dev"},
		{"requirements.txt", "pip install -r requirements.txt"},
	})
	if !ok {
		return StackMatch{}, false
	}
	return d.match(rule.setup, rule.file), true
}
