package filesystem

import (
	"fmt"
	"path"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem implementation for testing.
// Paths are slash-separated. Parent directories are created implicitly.
type MockFileSystem struct {
	mu       sync.RWMutex
	children map[string]map[string]Entry
	hidden   map[string]bool
	perms    map[string]string
	created  map[string]time.Time
	modified map[string]time.Time
	listErrs map[string]error
}

// NewMockFileSystem creates an empty mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		children: make(map[string]map[string]Entry),
		hidden:   make(map[string]bool),
		perms:    make(map[string]string),
		created:  make(map[string]time.Time),
		modified: make(map[string]time.Time),
		listErrs: make(map[string]error),
	}
}

// AddFile adds a file at p, creating ancestor directories as needed.
func (m *MockFileSystem) AddFile(p string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.add(path.Clean(p), Entry{Name: path.Base(p), Size: size})
}

// AddDir adds a directory at p, creating ancestor directories as needed.
func (m *MockFileSystem) AddDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureDir(path.Clean(p))
}

// SetHidden marks p with the platform hidden flag.
func (m *MockFileSystem) SetHidden(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hidden[path.Clean(p)] = true
}

// SetPermissions sets the permission descriptor reported for p.
func (m *MockFileSystem) SetPermissions(p, perms string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.perms[path.Clean(p)] = perms
}

// SetTimes sets the timestamps reported for p.
func (m *MockFileSystem) SetTimes(p string, created, modified time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.created[path.Clean(p)] = created
	m.modified[path.Clean(p)] = modified
}

// FailList makes List return err for the directory at p.
func (m *MockFileSystem) FailList(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureDir(path.Clean(p))
	m.listErrs[path.Clean(p)] = err
}

// List returns the direct children of dir, in insertion-independent
// (map) order, so callers must sort.
func (m *MockFileSystem) List(dir string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir = path.Clean(dir)

	if err := m.listErrs[dir]; err != nil {
		return nil, err
	}

	names, ok := m.children[dir]
	if !ok {
		return nil, fmt.Errorf("failed to read directory %s: no such directory", dir)
	}

	entries := make([]Entry, 0, len(names))
	for _, entry := range names {
		entries = append(entries, entry)
	}

	return entries, nil
}

// Hidden reports whether p was marked hidden via SetHidden.
func (m *MockFileSystem) Hidden(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.hidden[path.Clean(p)]
}

// Permissions returns the descriptor set via SetPermissions, or "-".
func (m *MockFileSystem) Permissions(p string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if perms, ok := m.perms[path.Clean(p)]; ok {
		return perms
	}

	return "-"
}

// Times returns the timestamps set via SetTimes, zero otherwise.
func (m *MockFileSystem) Times(p string) (created, modified time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.created[path.Clean(p)], m.modified[path.Clean(p)]
}

// Join joins path elements with forward slashes.
func (m *MockFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// add records an entry under its parent directory. Callers hold the lock.
func (m *MockFileSystem) add(p string, entry Entry) {
	parent := path.Dir(p)
	m.ensureDir(parent)
	m.children[parent][entry.Name] = entry
}

// ensureDir creates the directory at p and its ancestors. Callers hold the lock.
func (m *MockFileSystem) ensureDir(p string) {
	if _, ok := m.children[p]; ok {
		return
	}

	m.children[p] = make(map[string]Entry)

	if parent := path.Dir(p); parent != p {
		m.ensureDir(parent)
		m.children[parent][path.Base(p)] = Entry{Name: path.Base(p), IsDir: true}
	}
}
