// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Hand-off launchers

package exec

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
)

// ShellLauncher replaces the current process with `<shell> -c <script>`.
// Where the platform cannot replace the process image it spawns the shell,
// forwards interrupts, and exits with the shell's status.
type ShellLauncher struct {
	Shell string
	Env   []string // nil inherits the current environment
}

// Handoff only returns when the shell could not be started
func (l *ShellLauncher) Handoff(script string) error {
	path, err := ResolveShell(l.Shell)
	if err != nil {
		return &LaunchError{Shell: l.Shell, Err: err}
	}

	env := l.Env
	if env == nil {
		env = os.Environ()
	}

	if err := handoff(path, []string{path, "-c", script}, env); err != nil {
		return &LaunchError{Shell: path, Err: err}
	}
	return nil
}

// ChildLauncher runs the shell as a child and waits for it instead of
// replacing the process. Tests and --no-exec use it.
type ChildLauncher struct {
	Shell    string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	ExitCode int // status of the last Handoff
}

// Handoff runs script to completion and records its exit status
func (l *ChildLauncher) Handoff(script string) error {
	path, err := ResolveShell(l.Shell)
	if err != nil {
		return &LaunchError{Shell: l.Shell, Err: err}
	}

	cmd := exec.Command(path, "-c", script)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	code, err := spawnAndWait(cmd)
	if err != nil {
		return &LaunchError{Shell: path, Err: err}
	}
	l.ExitCode = code
	return nil
}

// spawnAndWait starts cmd, relays interrupts to it while it runs and
// returns its exit status
func spawnAndWait(cmd *exec.Cmd) (int, error) {
	if err := cmd.Start(); err != nil {
		return -1, err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, forwardedSignals...)
	defer signal.Stop(signals)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	for {
		select {
		case sig := <-signals:
			_ = cmd.Process.Signal(sig)
		case err := <-done:
			if err == nil {
				return 0, nil
			}
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				if code := exitErr.ExitCode(); code >= 0 {
					return code, nil
				}
				// Killed by a signal the shell did not handle
				return 128 + signalNumber(exitErr), nil
			}
			return -1, err
		}
	}
}
