// Package errors enriches failures with categories and actionable
// suggestions so diagnostics tell the user what to try, not just what broke.
//
// Usage:
//
//	entries, err := fs.List(dir)
//	if err != nil {
//	    enriched := errors.Enrich(err, dir)
//	    fmt.Fprintln(os.Stderr, enriched)
//	    fmt.Fprintln(os.Stderr, errors.FormatSuggestions(enriched))
//	}
package errors

import (
	stderrors "errors"
	"strings"
)

// Category represents the type of failure that occurred.
type Category string

// Categories a read-only tree walk can run into.
const (
	CategoryPermission Category = "permission"
	CategoryPath       Category = "path"
	CategoryConnection Category = "connection"
	CategoryExport     Category = "export"
	CategoryUnknown    Category = "unknown"
)

// ActionableError is an error carrying a category and user-facing suggestions.
type ActionableError interface {
	error
	Category() Category
	Suggestions() []string
	AffectedPath() string
}

type actionableError struct {
	err         error
	category    Category
	suggestions []string
	path        string
}

func (e *actionableError) Error() string         { return e.err.Error() }
func (e *actionableError) Unwrap() error         { return e.err }
func (e *actionableError) Category() Category    { return e.category }
func (e *actionableError) Suggestions() []string { return e.suggestions }
func (e *actionableError) AffectedPath() string  { return e.path }

// Enrich wraps err with a category and suggestions derived from its
// message. An error that is already actionable passes through unchanged.
func Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionable ActionableError
	if stderrors.As(err, &actionable) {
		return err
	}

	category := categorize(err.Error())

	return &actionableError{
		err:         err,
		category:    category,
		suggestions: suggestionsFor(category, affectedPath),
		path:        affectedPath,
	}
}

// FormatSuggestions formats an actionable error's suggestions as a
// bulleted list with a two-space indent. Returns "" when there is
// nothing to suggest.
func FormatSuggestions(err error) string {
	var actionable ActionableError
	if !stderrors.As(err, &actionable) {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, suggestion := range suggestions {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString("  • ")
		sb.WriteString(suggestion)
	}

	return sb.String()
}
