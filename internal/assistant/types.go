// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Assistant types and errors

package assistant

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultBinary is the assistant CLI invoked when none is configured
const DefaultBinary = "claude"

// Tool allowlists passed to one-shot invocations
var (
	AskTools     = []string{"Read", "Grep", "Glob", "WebFetch", "WebSearch"}
	SuggestTools = []string{"Read", "Grep"}
)

var (
	// ErrMalformedResponse matches every *MalformedResponseError
	ErrMalformedResponse = errors.New("assistant response does not match the expected structure")
	// ErrEmptyQuery is returned when there is nothing to ask
	ErrEmptyQuery = errors.New("query is empty")
)

// Suggestion is the structured answer to a command request
type Suggestion struct {
	Command     string `json:"bashCommand" jsonschema:"description=A one-off bash command or script. Unknown values are written as <name> placeholders"`
	Explanation string `json:"explanation" jsonschema:"description=One short sentence describing what the command does"`
	Comment     string `json:"comment,omitempty" jsonschema:"description=Optional remarks worth knowing before running the command"`
}

// MalformedResponseError carries the literal text that failed to parse
type MalformedResponseError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	reason := e.Reason
	if e.Err != nil {
		reason = e.Err.Error()
	}
	return fmt.Sprintf("assistant did not respond in conformance to the schema (%s); instead we got:\n%s", reason, e.Raw)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// ToolError reports a non-zero exit of the assistant process
type ToolError struct {
	Binary   string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Binary, e.ExitCode)
	if e.ExitCode < 0 && e.Err != nil {
		msg = fmt.Sprintf("failed to run %s: %v", e.Binary, e.Err)
	}
	if stderr := tail(strings.TrimSpace(e.Stderr), 10); stderr != "" {
		msg += ":\n" + stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// tail keeps the last n lines of s
func tail(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
