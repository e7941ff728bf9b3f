package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalFileSystem implements FileSystem using the os package.
// Hidden, Permissions, and Times are platform-specific; see the
// build-tagged files alongside this one.
type LocalFileSystem struct{}

// NewLocalFileSystem creates a new LocalFileSystem instance.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// List returns the direct children of dir.
// Per-entry stat failures degrade to a zero size rather than failing the
// listing; only the directory read itself can error.
func (fs *LocalFileSystem) List(dir string) ([]Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(children))

	for _, child := range children {
		entry := Entry{Name: child.Name(), IsDir: child.IsDir()}

		if !entry.IsDir {
			if info, err := child.Info(); err == nil {
				entry.Size = info.Size()
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Join joins path elements using the host separator.
func (fs *LocalFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}
