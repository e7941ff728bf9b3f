package tree

import (
	"time"

	"github.com/joe/etree/pkg/filesystem"
)

// timestampFormat is the human-readable absolute form used for exported
// timestamps.
const timestampFormat = "2006-01-02 15:04:05"

// Entry kind tags used in export rows.
const (
	KindFile   = "file"
	KindFolder = "folder"
)

// ExportRecord is one row of the tabular export: exactly one per visited,
// non-filtered entry.
type ExportRecord struct {
	RelPath  string // root-relative, /-joined
	Name     string
	Kind     string // KindFile or KindFolder
	Size     int64
	Created  string // empty when the platform cannot supply it
	Modified string // empty when the platform cannot supply it
	Perms    string
}

// Stats accumulates traversal counters and, in export mode, the ordered
// record sequence. Counters only increase; MaxDepth tracks the deepest
// level at which an entry was actually emitted.
type Stats struct {
	MaxDepth int
	Folders  int
	Files    int
	Records  []ExportRecord
}

// observe counts one emitted entry at the given depth.
func (s *Stats) observe(isDir bool, depth int) {
	if isDir {
		s.Folders++
	} else {
		s.Files++
	}

	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

// newRecord builds the export row for one visited entry.
func newRecord(relPath string, entry filesystem.Entry, attrs Attributes) ExportRecord {
	kind := KindFile
	if entry.IsDir {
		kind = KindFolder
	}

	return ExportRecord{
		RelPath:  relPath,
		Name:     entry.Name,
		Kind:     kind,
		Size:     attrs.Size,
		Created:  formatTimestamp(attrs.Created),
		Modified: formatTimestamp(attrs.Modified),
		Perms:    attrs.Permissions,
	}
}

// formatTimestamp renders t, or "" for a zero time. A missing timestamp
// must stay empty rather than being fabricated.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(timestampFormat)
}
