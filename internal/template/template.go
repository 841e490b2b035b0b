// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Placeholder extraction and substitution for suggested commands

package template

import (
	"regexp"
)

// placeholderPattern matches `<name>` where name is [A-Za-z0-9_-]+.
// Compiled once; regexp.Regexp is safe for concurrent use.
var placeholderPattern = regexp.MustCompile(`<([A-Za-z0-9_-]+)>`)

// Placeholder is one `<name>` occurrence in a command string
type Placeholder struct {
	Name  string
	Start int // byte offset of '<'
	End   int // byte offset just past '>'
}

// Set holds the placeholders found in exactly one command string.
// A Set is never modified after Parse returns it.
type Set struct {
	command      string
	placeholders []Placeholder
}

// Parse scans command for placeholders.
// The second return value is false when there is nothing to resolve.
func Parse(command string) (*Set, bool) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(command, -1)
	if len(matches) == 0 {
		return nil, false
	}

	placeholders := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		placeholders = append(placeholders, Placeholder{
			Name:  command[m[2]:m[3]],
			Start: m[0],
			End:   m[1],
		})
	}

	return &Set{command: command, placeholders: placeholders}, true
}

// Command returns the original command string
func (s *Set) Command() string {
	return s.command
}

// Placeholders returns a copy of the parsed occurrences in order of appearance
func (s *Set) Placeholders() []Placeholder {
	out := make([]Placeholder, len(s.placeholders))
	copy(out, s.placeholders)
	return out
}

// Parameters returns one identifier per occurrence, left to right, duplicates kept
func (s *Set) Parameters() []string {
	names := make([]string, 0, len(s.placeholders))
	for _, p := range s.placeholders {
		names = append(names, p.Name)
	}
	return names
}

// Distinct returns each identifier once, in order of first appearance
func (s *Set) Distinct() []string {
	seen := make(map[string]bool, len(s.placeholders))
	var names []string
	for _, p := range s.placeholders {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		names = append(names, p.Name)
	}
	return names
}

// Apply returns the command with every occurrence whose name is in values
// replaced by its value. Unknown names are left as they are.
//
// Occurrences are replaced from last to first so earlier byte ranges stay
// valid while the string changes length. Substituted values are not scanned
// again.
func (s *Set) Apply(values map[string]string) string {
	result := s.command
	for i := len(s.placeholders) - 1; i >= 0; i-- {
		p := s.placeholders[i]
		value, ok := values[p.Name]
		if !ok {
			continue
		}
		result = result[:p.Start] + value + result[p.End:]
	}
	return result
}
