// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Process runner for one-shot assistant invocations

package assistant

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Output is what a finished assistant process produced
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts the assistant process and waits for it
type Runner interface {
	Run(ctx context.Context, binary string, args []string) (*Output, error)
}

// ExecRunner runs the assistant binary with captured output
type ExecRunner struct {
	Dir string
}

// Run blocks until the process exits. A non-zero exit is reported through
// Output.ExitCode, not err.
func (r *ExecRunner) Run(ctx context.Context, binary string, args []string) (*Output, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		out.ExitCode = -1
		return out, err
	}
	return out, nil
}
