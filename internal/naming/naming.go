// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Feature names for new workspaces

package naming

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

// MaxQueryRunes is how much of the query ends up in a derived name
const MaxQueryRunes = 20

// Resolve picks the feature name: an explicit name wins, then one derived
// from the query, then a random one
func Resolve(name, query string) string {
	if name != "" {
		return name
	}
	if derived := FromQuery(query); derived != "" {
		return derived
	}
	return Random()
}

// FromQuery derives a branch-safe name from the start of query with a
// random three-digit suffix. Returns "" when nothing usable remains.
func FromQuery(query string) string {
	var sb strings.Builder
	count := 0
	for _, r := range strings.TrimSpace(query) {
		if count >= MaxQueryRunes {
			break
		}
		count++

		switch {
		case unicode.IsSpace(r):
			sb.WriteRune('-')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'):
			sb.WriteRune(r)
		}
	}

	base := strings.Trim(sb.String(), "-")
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s-%d", base, 100+rand.IntN(900))
}

// Random returns an adjective-noun pair such as "brave-otter"
func Random() string {
	return petname.Generate(2, "-")
}
