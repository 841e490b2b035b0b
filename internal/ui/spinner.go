// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Progress spinner for blocking assistant calls

package ui

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spin shows message with a spinner on w until the returned function is
// called. When enabled is false nothing is drawn.
func Spin(w io.Writer, message string, enabled bool) (stop func()) {
	if !enabled {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
