// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Terminal styles for user-facing output

package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

func Accent(s string) string  { return accentStyle.Render(s) }
func Success(s string) string { return successStyle.Render(s) }
func Warn(s string) string    { return warnStyle.Render(s) }
func Error(s string) string   { return errorStyle.Render(s) }
func Faint(s string) string   { return faintStyle.Render(s) }
func Bold(s string) string    { return boldStyle.Render(s) }

// Step prints a progress line: "  → message"
func Step(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "  %s %s\n", Accent("→"), fmt.Sprintf(format, args...))
}

// Warning prints a highlighted warning line: "  ⚠ message"
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "  %s %s\n", Warn("⚠"), fmt.Sprintf(format, args...))
}

// Failure prints an error in the style used for fatal messages
func Failure(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", Error("✗"), err)
}
