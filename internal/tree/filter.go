package tree

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher matches entry names against a wildcard exclude pattern.
// The pattern language is deliberately tiny: `*` matches any run of
// characters, `?` matches exactly one, everything else is a literal.
// Matching is case-insensitive and anchored at both ends.
type Matcher struct {
	pattern string
	empty   bool
}

// NewMatcher compiles a wildcard pattern. An empty pattern disables
// matching entirely.
func NewMatcher(pattern string) *Matcher {
	return &Matcher{
		pattern: escapeGlobMeta(strings.ToLower(pattern)),
		empty:   pattern == "",
	}
}

// Matches reports whether the whole name matches the whole pattern.
// An empty pattern never matches.
func (m *Matcher) Matches(name string) bool {
	if m.empty {
		return false
	}

	matched, err := doublestar.Match(m.pattern, strings.ToLower(name))
	if err != nil {
		return false
	}

	return matched
}

// escapeGlobMeta neutralizes every glob metacharacter except `*` and `?`,
// so character classes, alternates, and backslashes stay literal.
func escapeGlobMeta(pattern string) string {
	var sb strings.Builder

	for _, r := range pattern {
		switch r {
		case '\\', '[', ']', '{', '}':
			sb.WriteRune('\\')
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
