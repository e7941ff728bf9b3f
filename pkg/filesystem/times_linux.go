//go:build linux

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Times returns the creation and modification timestamps for path.
// Creation time comes from statx birth time where the kernel and the
// underlying filesystem support it; it stays zero otherwise.
func (fs *LocalFileSystem) Times(path string) (created, modified time.Time) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME|unix.STATX_MTIME, &stx)
	if err == nil {
		if stx.Mask&unix.STATX_BTIME != 0 {
			created = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
		}
		if stx.Mask&unix.STATX_MTIME != 0 {
			modified = time.Unix(stx.Mtime.Sec, int64(stx.Mtime.Nsec))
		}

		return created, modified
	}

	// statx unavailable: fall back to a plain stat for the modification time.
	if info, statErr := os.Stat(path); statErr == nil {
		modified = info.ModTime()
	}

	return created, modified
}
