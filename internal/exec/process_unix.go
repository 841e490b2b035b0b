// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Unix process replacement

//go:build !windows

package exec

import (
	"os"
	"os/exec"
	"syscall"
)

var forwardedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// handoff replaces the current process image. It returns only on failure.
func handoff(path string, argv []string, env []string) error {
	return syscall.Exec(path, argv, env)
}

func signalNumber(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return int(status.Signal())
	}
	return 0
}
