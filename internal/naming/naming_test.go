// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Feature name tests

package naming

import (
	"regexp"
	"strings"
	"testing"
)

var suffixPattern = regexp.MustCompile(`-[1-9][0-9]{2}$`)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		query string
		base  string
	}{
		{"add login form", "add-login-form"},
		{"fix the flaky retry test in ci", "fix-the-flaky-retry"},
		{"  refactor: parser?  ", "refactor-parser"},
		{"émoji ✓ support", "moji--support"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FromQuery(tt.query)
			if !suffixPattern.MatchString(got) {
				t.Fatalf("FromQuery(%q) = %q, missing numeric suffix", tt.query, got)
			}
			base := suffixPattern.ReplaceAllString(got, "")
			if base != tt.base {
				t.Errorf("FromQuery(%q) base = %q, want %q", tt.query, base, tt.base)
			}
		})
	}
}

func TestFromQuery_Empty(t *testing.T) {
	for _, q := range []string{"", "   ", "???"} {
		if got := FromQuery(q); got != "" {
			t.Errorf("FromQuery(%q) = %q, want empty", q, got)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("explicit", "some query"); got != "explicit" {
		t.Errorf("Resolve() = %q, want explicit", got)
	}
	if got := Resolve("", "some query"); !strings.HasPrefix(got, "some-query-") {
		t.Errorf("Resolve() = %q, want query-derived", got)
	}

	random := Resolve("", "")
	if random == "" || !strings.Contains(random, "-") {
		t.Errorf("Resolve() = %q, want adjective-noun", random)
	}
}
