// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Defensive parsing of assistant output

package assistant

import (
	"encoding/json"
	"regexp"
	"strings"
)

// codeFencePattern matches the first fenced block, with or without a language tag
var codeFencePattern = regexp.MustCompile("(?s)```[^\\n]*\\n(.*?)\\n\\s*```")

// StripCodeFence returns the body of the first fenced code block in s, or s
// trimmed when there is none
func StripCodeFence(s string) string {
	if m := codeFencePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

// ParseSuggestion parses the assistant's answer to a suggestion prompt.
// Any deviation from the schema yields a *MalformedResponseError.
func ParseSuggestion(raw string) (*Suggestion, error) {
	body := StripCodeFence(raw)
	if body == "" {
		return nil, &MalformedResponseError{Raw: raw, Reason: "empty response"}
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		// Prose around an unfenced object
		obj, ok := extractObject(body)
		if !ok {
			return nil, &MalformedResponseError{Raw: body, Err: err}
		}
		if err := json.Unmarshal([]byte(obj), &s); err != nil {
			return nil, &MalformedResponseError{Raw: body, Err: err}
		}
	}

	s.Command = strings.TrimSpace(s.Command)
	s.Explanation = strings.TrimSpace(s.Explanation)
	s.Comment = strings.TrimSpace(s.Comment)

	if s.Command == "" {
		return nil, &MalformedResponseError{Raw: body, Reason: "missing bashCommand"}
	}
	if s.Explanation == "" {
		return nil, &MalformedResponseError{Raw: body, Reason: "missing explanation"}
	}

	return &s, nil
}

// extractObject finds the first balanced JSON object in content, skipping
// braces inside string literals
func extractObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start : i+1], true
			}
		}
	}
	return "", false
}
