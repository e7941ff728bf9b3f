//go:build !linux && !darwin && !windows

package filesystem

import (
	"os"
	"time"
)

// Times returns the modification timestamp for path. Creation time is
// not available on this platform and stays zero.
func (fs *LocalFileSystem) Times(path string) (created, modified time.Time) {
	if info, err := os.Stat(path); err == nil {
		modified = info.ModTime()
	}

	return created, modified
}
