package tree

import (
	"strings"
	"time"

	"github.com/joe/etree/internal/config"
	"github.com/joe/etree/pkg/filesystem"
)

// Reason explains why the classifier rejected an entry.
type Reason int

const (
	// ReasonNone means the entry is included.
	ReasonNone Reason = iota
	// ReasonHidden means the entry is hidden and hidden entries are off.
	ReasonHidden
	// ReasonExcluded means the entry name matched the exclude pattern.
	ReasonExcluded
	// ReasonNotDirectory means the entry is a file in a dirs-only run.
	ReasonNotDirectory
)

// Attributes holds the metadata computed for an included entry.
// Computation is best-effort: unavailable values fall back to zero, "-",
// or a zero time rather than failing the entry.
type Attributes struct {
	Size        int64
	Permissions string
	Created     time.Time
	Modified    time.Time
}

// Classifier decides per-entry visibility and computes display attributes.
type Classifier struct {
	fs      filesystem.FileSystem
	cfg     *config.Config
	matcher *Matcher
}

// NewClassifier creates a classifier for one traversal configuration.
func NewClassifier(fs filesystem.FileSystem, cfg *config.Config) *Classifier {
	return &Classifier{fs: fs, cfg: cfg, matcher: NewMatcher(cfg.Exclude)}
}

// Classify applies the filter rules in order (hidden, exclude pattern,
// directories-only) and returns the entry's attributes when it survives.
// The first matching rule wins.
func (c *Classifier) Classify(fullPath string, entry filesystem.Entry) (Attributes, Reason) {
	if !c.cfg.ShowHidden {
		if strings.HasPrefix(entry.Name, ".") || c.fs.Hidden(fullPath) {
			return Attributes{}, ReasonHidden
		}
	}

	if c.matcher.Matches(entry.Name) {
		return Attributes{}, ReasonExcluded
	}

	if c.cfg.DirsOnly && !entry.IsDir {
		return Attributes{}, ReasonNotDirectory
	}

	size := entry.Size
	if entry.IsDir {
		size = 0
	}

	created, modified := c.fs.Times(fullPath)

	return Attributes{
		Size:        size,
		Permissions: c.fs.Permissions(fullPath),
		Created:     created,
		Modified:    modified,
	}, ReasonNone
}
