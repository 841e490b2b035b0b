// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Shell execution types and errors

package exec

import (
	"errors"
	"fmt"
)

// ErrNoShell is returned when none of the candidate shells is on PATH
var ErrNoShell = errors.New("no usable shell found")

// DefaultShells are tried in order when no shell is configured
var DefaultShells = []string{"bash", "sh"}

// Launcher transfers control to a shell running script.
// A successful Handoff does not return to the caller.
type Launcher interface {
	Handoff(script string) error
}

// LaunchError reports that the hand-off shell could not be started
type LaunchError struct {
	Shell string
	Err   error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Shell, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
