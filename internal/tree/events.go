package tree

// Event is the interface implemented by all walker events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for consuming walker events.
type EventEmitter interface {
	Emit(event Event)
}

// WalkStarted is emitted once, before the root directory is listed.
type WalkStarted struct {
	Root string
}

func (WalkStarted) isEvent() {}

// EntryVisited is emitted once per surviving entry, in render order.
// It carries everything a consumer needs to draw the line or export the
// row without touching the filesystem again.
type EntryVisited struct {
	Name   string
	IsDir  bool
	Depth  int
	Prefix string
	Last   bool
	Attrs  Attributes
	Record ExportRecord
}

func (EntryVisited) isEvent() {}

// DirSkipped is emitted when a directory cannot be enumerated.
// The walk continues with the remaining siblings.
type DirSkipped struct {
	Path string
	Err  error
}

func (DirSkipped) isEvent() {}

// WalkComplete is emitted once, after traversal finishes.
type WalkComplete struct {
	Stats *Stats
}

func (WalkComplete) isEvent() {}
