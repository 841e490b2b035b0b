// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Windows has no exec(2); the shell runs as a child instead

//go:build windows

package exec

import (
	"os"
	"os/exec"
)

var forwardedSignals = []os.Signal{os.Interrupt}

// handoff spawns the shell, waits for it and exits with its status.
// Nothing in this process runs after the shell finishes.
func handoff(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	code, err := spawnAndWait(cmd)
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil
}

func signalNumber(exitErr *exec.ExitError) int {
	return 0
}
