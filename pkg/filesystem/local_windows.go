//go:build windows

package filesystem

import (
	"strings"

	"golang.org/x/sys/windows"
)

// Hidden reports whether the FILE_ATTRIBUTE_HIDDEN bit is set for path.
func (fs *LocalFileSystem) Hidden(path string) bool {
	attrs, err := fileAttributes(path)
	if err != nil {
		return false
	}

	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// Permissions returns the Windows attribute descriptor for path:
// R (read-only), H (hidden), S (system), A (archive).
// Returns "-" when no attribute is set or the query fails.
func (fs *LocalFileSystem) Permissions(path string) string {
	attrs, err := fileAttributes(path)
	if err != nil {
		return "-"
	}

	var sb strings.Builder

	if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
		sb.WriteByte('R')
	}
	if attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0 {
		sb.WriteByte('H')
	}
	if attrs&windows.FILE_ATTRIBUTE_SYSTEM != 0 {
		sb.WriteByte('S')
	}
	if attrs&windows.FILE_ATTRIBUTE_ARCHIVE != 0 {
		sb.WriteByte('A')
	}

	if sb.Len() == 0 {
		return "-"
	}

	return sb.String()
}

func fileAttributes(path string) (uint32, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	return windows.GetFileAttributes(name)
}
