// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Synchronous shell commands attached to the terminal

package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Shell runs command strings through `<shell> -c`
type Shell struct {
	Path   string // shell binary; resolved from DefaultShells when empty
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    []string // nil inherits the current environment
}

// NewShell returns a Shell on the given binary attached to the process stdio
func NewShell(path string) *Shell {
	return &Shell{
		Path:   path,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes command in dir and waits for it.
// The exit status is returned as-is; err is only set when the shell could
// not be started or was killed before reporting a status.
func (s *Shell) Run(ctx context.Context, dir, command string) (int, error) {
	path, err := ResolveShell(s.Path)
	if err != nil {
		return -1, err
	}

	cmd := exec.CommandContext(ctx, path, "-c", command)
	cmd.Dir = dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	cmd.Env = s.Env

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to run %s: %w", path, err)
}

// ResolveShell looks up preferred on PATH, or the first of DefaultShells
func ResolveShell(preferred string) (string, error) {
	candidates := DefaultShells
	if preferred != "" {
		candidates = []string{preferred}
	}

	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w (tried %v)", ErrNoShell, candidates)
}
