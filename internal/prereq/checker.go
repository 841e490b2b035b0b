// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Prerequisite checker for tool existence

package prereq

import (
	"os/exec"
	"strings"
)

// Checker verifies tool existence
type Checker struct {
	tools    map[string]*Tool
	lookPath func(string) (string, error)
}

// NewChecker creates a new prerequisite checker
func NewChecker() *Checker {
	return NewCheckerWithTools(DefaultTools())
}

// NewCheckerWithTools creates a checker with custom tools
func NewCheckerWithTools(tools map[string]*Tool) *Checker {
	return &Checker{
		tools:    tools,
		lookPath: exec.LookPath,
	}
}

// WithLookPath replaces the PATH lookup, for tests
func (c *Checker) WithLookPath(fn func(string) (string, error)) *Checker {
	c.lookPath = fn
	return c
}

// Require checks every named tool and returns a *MissingToolError naming
// all that are absent
func (c *Checker) Require(names ...string) error {
	summary := c.CheckMultiple(names)
	if summary.AllFound {
		return nil
	}

	guides := make(map[string]string, len(summary.MissingTools))
	for _, name := range summary.MissingTools {
		guides[name] = c.GetInstallGuide(name)
	}
	return &MissingToolError{Tools: summary.MissingTools, Guides: guides}
}

// CheckTool checks if a specific tool exists
func (c *Checker) CheckTool(name string) CheckResult {
	result := CheckResult{Name: name}

	tool, ok := c.tools[strings.ToLower(name)]
	if !ok {
		// Unknown tool, check the name directly
		result.Path, result.Found = c.which(name)
		return result
	}

	for _, cmd := range append([]string{tool.Command}, tool.Alternatives...) {
		if path, found := c.which(cmd); found {
			result.Found = true
			result.Path = path
			return result
		}
	}

	return result
}

// CheckMultiple checks multiple tools and returns a summary
func (c *Checker) CheckMultiple(names []string) *CheckSummary {
	summary := NewCheckSummary()
	for _, name := range names {
		summary.AddResult(c.CheckTool(name))
	}
	return summary
}

// GetTool returns a tool definition by name
func (c *Checker) GetTool(name string) *Tool {
	return c.tools[strings.ToLower(name)]
}

// GetInstallGuide returns installation instructions for a tool
func (c *Checker) GetInstallGuide(name string) string {
	tool := c.GetTool(name)
	if tool == nil {
		return "No installation guide available for " + name
	}
	return tool.InstallGuide
}

func (c *Checker) which(cmd string) (string, bool) {
	path, err := c.lookPath(cmd)
	if err != nil {
		return "", false
	}
	return path, true
}
