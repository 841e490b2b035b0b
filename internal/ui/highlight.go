// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Shell syntax highlighting

package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "catppuccin-mocha"
)

// HighlightBash returns command with ANSI syntax colors
func HighlightBash(command string) string {
	return Highlight(command, "bash")
}

// HighlightMarkdown colors an assistant answer
func HighlightMarkdown(text string) string {
	return Highlight(text, "markdown")
}

// Highlight renders source with the lexer for language. The source is
// returned as-is when highlighting fails.
func Highlight(source, language string) string {
	var sb strings.Builder
	if err := quick.Highlight(&sb, source, language, highlightFormatter, highlightStyle); err != nil {
		return source
	}
	return sb.String()
}
