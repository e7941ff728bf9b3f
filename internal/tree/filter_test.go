//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package tree_test

import (
	"testing"

	"github.com/joe/etree/internal/tree"
)

//nolint:funlen // Table-driven test with comprehensive cases
func TestMatcherMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pattern     string
		input       string
		shouldMatch bool
	}{
		{
			name:        "empty pattern never matches",
			pattern:     "",
			input:       "anything",
			shouldMatch: false,
		},
		{
			name:        "empty pattern does not match empty name",
			pattern:     "",
			input:       "",
			shouldMatch: false,
		},
		{
			name:        "star suffix match",
			pattern:     "*.tmp",
			input:       "file.tmp",
			shouldMatch: true,
		},
		{
			name:        "case insensitive pattern",
			pattern:     "*.TMP",
			input:       "file.tmp",
			shouldMatch: true,
		},
		{
			name:        "case insensitive name",
			pattern:     "*.tmp",
			input:       "FILE.TMP",
			shouldMatch: true,
		},
		{
			name:        "question matches one character",
			pattern:     "?",
			input:       "a",
			shouldMatch: true,
		},
		{
			name:        "question rejects two characters",
			pattern:     "?",
			input:       "ab",
			shouldMatch: false,
		},
		{
			name:        "question rejects empty name",
			pattern:     "?",
			input:       "",
			shouldMatch: false,
		},
		{
			name:        "star alone matches anything",
			pattern:     "*",
			input:       "any name at all",
			shouldMatch: true,
		},
		{
			name:        "star alone matches empty name",
			pattern:     "*",
			input:       "",
			shouldMatch: true,
		},
		{
			name:        "anchored at both ends",
			pattern:     "a*",
			input:       "ba",
			shouldMatch: false,
		},
		{
			name:        "no partial match",
			pattern:     "file",
			input:       "file.txt",
			shouldMatch: false,
		},
		{
			name:        "mixed wildcards",
			pattern:     "?at*",
			input:       "catalog",
			shouldMatch: true,
		},
		{
			name:        "brackets are literal not a class",
			pattern:     "[abc]",
			input:       "a",
			shouldMatch: false,
		},
		{
			name:        "brackets match themselves",
			pattern:     "[abc]",
			input:       "[abc]",
			shouldMatch: true,
		},
		{
			name:        "braces are literal",
			pattern:     "{a,b}",
			input:       "{a,b}",
			shouldMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matcher := tree.NewMatcher(tt.pattern)

			if got := matcher.Matches(tt.input); got != tt.shouldMatch {
				t.Errorf("Matches(%q) with pattern %q = %v, want %v",
					tt.input, tt.pattern, got, tt.shouldMatch)
			}
		})
	}
}
