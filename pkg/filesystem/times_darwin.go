//go:build darwin

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Times returns the creation and modification timestamps for path.
// Darwin carries a real birth time in Stat_t.
func (fs *LocalFileSystem) Times(path string) (created, modified time.Time) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err == nil {
		created = time.Unix(st.Birthtimespec.Unix())
	}

	if info, err := os.Stat(path); err == nil {
		modified = info.ModTime()
	}

	return created, modified
}
