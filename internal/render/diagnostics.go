package render

import (
	"fmt"
	"io"

	"github.com/joe/etree/internal/tree"
	"github.com/joe/etree/pkg/errors"
)

// Diagnostics reports non-fatal traversal failures to an error stream.
// It implements tree.EventEmitter and ignores everything but DirSkipped,
// which makes it the emitter of choice for export mode, where no console
// lines are drawn but failures must still surface.
type Diagnostics struct {
	errOut io.Writer
}

// NewDiagnostics creates a diagnostics emitter writing to errOut.
func NewDiagnostics(errOut io.Writer) *Diagnostics {
	return &Diagnostics{errOut: errOut}
}

// Emit implements tree.EventEmitter.
func (d *Diagnostics) Emit(event tree.Event) {
	skipped, ok := event.(tree.DirSkipped)
	if !ok {
		return
	}

	enriched := errors.Enrich(skipped.Err, skipped.Path)

	fmt.Fprintf(d.errOut, "etree: skipping %s: %v\n", skipped.Path, enriched)

	if suggestions := errors.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintln(d.errOut, suggestions)
	}
}
