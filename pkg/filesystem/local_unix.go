//go:build !windows

package filesystem

import "os"

// Hidden always reports false on unix-like systems: the only hidden
// convention is the leading dot, which the caller checks against the name.
func (fs *LocalFileSystem) Hidden(path string) bool {
	return false
}

// Permissions returns the unix rwxrwxrwx descriptor for path,
// or "-" when the entry cannot be stat'd.
func (fs *LocalFileSystem) Permissions(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "-"
	}

	return permString(info.Mode())
}
