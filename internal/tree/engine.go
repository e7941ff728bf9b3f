// Package tree implements the traversal engine: recursive descent with
// depth limiting, filtering, deterministic ordering, and branch
// assignment, reported as a stream of events.
package tree

import (
	"sort"

	"github.com/joe/etree/internal/config"
	"github.com/joe/etree/pkg/filesystem"
)

// Branch glyphs and the prefix pieces that extend under them.
const (
	// BranchLast marks the last entry of a directory.
	BranchLast = "└── "
	// BranchMore marks an entry with siblings after it.
	BranchMore = "├── "

	indentLast = "    "
	indentMore = "│   "
)

// Engine performs the single-threaded depth-first walk. It never fails:
// unreadable directories are skipped with a DirSkipped event and the
// final counters always reflect whatever traversal reached.
type Engine struct {
	fs         filesystem.FileSystem
	cfg        *config.Config
	root       string
	classifier *Classifier
	emitter    EventEmitter
	stats      Stats
}

// NewEngine creates an engine walking root on fs. Events go to emitter;
// a nil emitter discards them.
func NewEngine(fs filesystem.FileSystem, root string, cfg *config.Config, emitter EventEmitter) *Engine {
	return &Engine{
		fs:         fs,
		cfg:        cfg,
		root:       root,
		classifier: NewClassifier(fs, cfg),
		emitter:    emitter,
	}
}

// Run walks the configured root and returns the final statistics.
func (e *Engine) Run() *Stats {
	e.emit(WalkStarted{Root: e.cfg.Root})
	e.walk(e.root, "", "", 1)
	e.emit(WalkComplete{Stats: &e.stats})

	return &e.stats
}

// walk lists one directory, filters and sorts its children, emits one
// visit event per surviving entry, and recurses into subdirectories.
func (e *Engine) walk(dir, relPath, prefix string, depth int) {
	if e.cfg.MaxDepth > 0 && depth > e.cfg.MaxDepth {
		return
	}

	children, err := e.fs.List(dir)
	if err != nil {
		e.emit(DirSkipped{Path: dir, Err: err})

		return
	}

	type kept struct {
		entry filesystem.Entry
		attrs Attributes
	}

	included := make([]kept, 0, len(children))

	for _, child := range children {
		attrs, reason := e.classifier.Classify(e.fs.Join(dir, child.Name), child)
		if reason != ReasonNone {
			continue
		}

		included = append(included, kept{entry: child, attrs: attrs})
	}

	// Byte-wise name order keeps output deterministic across platforms
	// regardless of enumeration order.
	sort.Slice(included, func(i, j int) bool {
		return included[i].entry.Name < included[j].entry.Name
	})

	for i, in := range included {
		last := i == len(included)-1
		rel := joinRel(relPath, in.entry.Name)

		e.stats.observe(in.entry.IsDir, depth)

		record := newRecord(rel, in.entry, in.attrs)
		if e.cfg.ExportMode() {
			e.stats.Records = append(e.stats.Records, record)
		}

		e.emit(EntryVisited{
			Name:   in.entry.Name,
			IsDir:  in.entry.IsDir,
			Depth:  depth,
			Prefix: prefix,
			Last:   last,
			Attrs:  in.attrs,
			Record: record,
		})

		if in.entry.IsDir {
			childPrefix := prefix + indentMore
			if last {
				childPrefix = prefix + indentLast
			}

			e.walk(e.fs.Join(dir, in.entry.Name), rel, childPrefix, depth+1)
		}
	}
}

func (e *Engine) emit(event Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}

// joinRel extends the root-relative accumulator with one more name.
// Export paths are always /-joined, independent of the filesystem.
func joinRel(relPath, name string) string {
	if relPath == "" {
		return name
	}

	return relPath + "/" + name
}
