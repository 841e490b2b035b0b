// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Prerequisite types and tool definitions

package prereq

import (
	"fmt"
	"strings"
)

// Tool represents a prerequisite tool
type Tool struct {
	Name         string   // Tool name
	Command      string   // Command to check existence
	Alternatives []string // Alternative command names
	InstallGuide string   // Installation instructions
}

// DefaultTools returns the tools the CLI may depend on
func DefaultTools() map[string]*Tool {
	return map[string]*Tool{
		"git": {
			Name:    "git",
			Command: "git",
			InstallGuide: `Install git:
  macOS:   brew install git
  Ubuntu:  sudo apt install git
  Fedora:  sudo dnf install git
  Windows: https://git-scm.com/download/win`,
		},
		"claude": {
			Name:    "claude",
			Command: "claude",
			InstallGuide: `Install Claude Code:
  npm:     npm install -g @anthropic-ai/claude-code
  Docs:    https://docs.anthropic.com/en/docs/claude-code`,
		},
		"shell": {
			Name:         "shell",
			Command:      "bash",
			Alternatives: []string{"sh"},
			InstallGuide: `A POSIX shell is required (bash or sh).
  Windows: install Git for Windows, which ships bash`,
		},
	}
}

// CheckResult contains the result of checking a single tool
type CheckResult struct {
	Name  string
	Found bool
	Path  string
}

// CheckSummary contains results of checking multiple tools
type CheckSummary struct {
	Results      []CheckResult
	AllFound     bool
	MissingTools []string
}

// NewCheckSummary creates an empty summary
func NewCheckSummary() *CheckSummary {
	return &CheckSummary{
		Results:      []CheckResult{},
		AllFound:     true,
		MissingTools: []string{},
	}
}

// AddResult adds a check result to the summary
func (s *CheckSummary) AddResult(result CheckResult) {
	s.Results = append(s.Results, result)
	if !result.Found {
		s.AllFound = false
		s.MissingTools = append(s.MissingTools, result.Name)
	}
}

// MissingToolError lists tools that are not on PATH together with how to
// install them
type MissingToolError struct {
	Tools  []string
	Guides map[string]string
}

func (e *MissingToolError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "missing prerequisites: %s", strings.Join(e.Tools, ", "))
	for _, name := range e.Tools {
		if guide := e.Guides[name]; guide != "" {
			sb.WriteString("\n\n")
			sb.WriteString(guide)
		}
	}
	return sb.String()
}
