package filesystem

import (
	"fmt"
	"path"
	"time"

	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem against a remote SFTP server.
// Remote servers are treated as unix-like: permissions use the rwx
// descriptor and the hidden convention is the leading dot only.
type SFTPFileSystem struct {
	client *sftp.Client
}

// NewSFTPFileSystem creates a FileSystem backed by an open connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{client: conn.Client()}
}

// List returns the direct children of the remote directory.
func (fs *SFTPFileSystem) List(dir string) ([]Entry, error) {
	infos, err := fs.client.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))

	for _, info := range infos {
		entry := Entry{Name: info.Name(), IsDir: info.IsDir()}
		if !entry.IsDir {
			entry.Size = info.Size()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Hidden always reports false for remote entries; the protocol exposes
// no hidden flag beyond the name itself.
func (fs *SFTPFileSystem) Hidden(p string) bool {
	return false
}

// Permissions returns the remote rwxrwxrwx descriptor,
// or "-" when the entry cannot be stat'd.
func (fs *SFTPFileSystem) Permissions(p string) string {
	info, err := fs.client.Stat(p)
	if err != nil {
		return "-"
	}

	return permString(info.Mode())
}

// Times returns the remote modification timestamp. SFTP does not carry
// a creation time, so it stays zero.
func (fs *SFTPFileSystem) Times(p string) (created, modified time.Time) {
	info, err := fs.client.Stat(p)
	if err != nil {
		return created, modified
	}

	return created, info.ModTime()
}

// Join joins remote path elements with forward slashes.
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}
