package errors

import "strings"

// categoryPatterns maps message substrings to categories. First match wins,
// in the order listed here.
var categoryPatterns = []struct { //nolint:gochecknoglobals // Immutable lookup table
	category Category
	needles  []string
}{
	{CategoryPermission, []string{
		"permission denied",
		"access is denied",
		"operation not permitted",
	}},
	{CategoryPath, []string{
		"no such file or directory",
		"not a directory",
		"cannot find the file",
		"cannot find the path",
		"file does not exist",
	}},
	{CategoryConnection, []string{
		"connection refused",
		"connection reset",
		"ssh",
		"sftp",
		"handshake",
		"no route to host",
		"timeout",
	}},
	{CategoryExport, []string{
		"no space left",
		"disk full",
		"read-only file system",
		"file exists",
	}},
}

// categorize maps an error message to a Category.
func categorize(msg string) Category {
	lowered := strings.ToLower(msg)

	for _, pattern := range categoryPatterns {
		for _, needle := range pattern.needles {
			if strings.Contains(lowered, needle) {
				return pattern.category
			}
		}
	}

	return CategoryUnknown
}
