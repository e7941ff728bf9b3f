// Package filesystem provides an abstraction layer over directory listing
// and entry metadata so the tree walker can run unchanged against local
// disks, remote SFTP servers, and in-memory test fixtures.
package filesystem

import (
	"os"
	"time"
)

// Entry is one directory child as returned by List.
// This is our own type (not os.DirEntry) to keep implementations narrow.
type Entry struct {
	// Name is the entry's base name, without any path components.
	Name string

	// IsDir indicates if this is a directory.
	IsDir bool

	// Size is the file size in bytes. Zero for directories and when the
	// size could not be read.
	Size int64
}

// FileSystem is the capability interface the tree walker needs.
// One implementation exists per target platform; the walker itself is
// written once against this interface.
type FileSystem interface {
	// List returns the direct children of dir, in no particular order.
	List(dir string) ([]Entry, error)

	// Hidden reports whether the entry at path carries a platform hidden
	// flag beyond the leading-dot naming convention.
	Hidden(path string) bool

	// Permissions returns a platform permission descriptor for path.
	// Always non-empty: "-" when the information is unavailable.
	Permissions(path string) string

	// Times returns the creation and modification timestamps for path.
	// Either may be zero when the platform cannot supply it.
	Times(path string) (created, modified time.Time)

	// Join joins path elements using the filesystem's separator convention.
	Join(elem ...string) string
}

// permString builds a unix-style rwxrwxrwx descriptor from mode bits.
func permString(mode os.FileMode) string {
	const rwx = "rwxrwxrwx"

	perm := mode.Perm()
	buf := make([]byte, len(rwx))

	for i := range buf {
		if perm&(1<<uint(len(rwx)-1-i)) != 0 {
			buf[i] = rwx[i]
		} else {
			buf[i] = '-'
		}
	}

	return string(buf)
}
