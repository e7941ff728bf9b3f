package render

import (
	"fmt"
	"io"

	"github.com/joe/etree/internal/config"
	"github.com/joe/etree/internal/tree"
)

// Console renders walker events as formatted tree lines: root line,
// one line per visited entry, then a summary line. It implements
// tree.EventEmitter.
type Console struct {
	out        io.Writer
	diag       *Diagnostics
	cfg        *config.Config
	palette    Palette
	composeRTL bool
}

// NewConsole creates a console renderer writing lines to out and
// diagnostics to errOut. RTL composition is applied only when the run
// targets an actual terminal; clipboard and file destinations keep
// logical order.
func NewConsole(out, errOut io.Writer, cfg *config.Config, palette Palette) *Console {
	return &Console{
		out:        out,
		diag:       NewDiagnostics(errOut),
		cfg:        cfg,
		palette:    palette,
		composeRTL: cfg.IsTerminal && !cfg.Clipboard,
	}
}

// Emit implements tree.EventEmitter.
func (c *Console) Emit(event tree.Event) {
	switch event := event.(type) {
	case tree.WalkStarted:
		fmt.Fprintln(c.out, c.palette.Dir.Render(event.Root))
	case tree.EntryVisited:
		c.entryLine(event)
	case tree.DirSkipped:
		c.diag.Emit(event)
	case tree.WalkComplete:
		fmt.Fprintf(c.out, "\nThe tree counts %d layers, %d folders, %d files.\n",
			event.Stats.MaxDepth, event.Stats.Folders, event.Stats.Files)
	}
}

func (c *Console) entryLine(event tree.EntryVisited) {
	branch := tree.BranchMore
	if event.Last {
		branch = tree.BranchLast
	}

	name := event.Name
	if c.composeRTL && NeedsComposition(name) {
		name = Compose(name)
	}

	style := c.palette.File
	if event.IsDir {
		style = c.palette.Dir
	}

	fmt.Fprint(c.out, event.Prefix, style.Render(branch+name))

	if c.cfg.ShowSize {
		fmt.Fprint(c.out, " ", c.palette.Size.Render("["+SizeBytes(event.Attrs.Size)+"]"))
	}

	if c.cfg.ShowPerms {
		fmt.Fprint(c.out, " ", c.palette.Perm.Render("("+event.Attrs.Permissions+")"))
	}

	fmt.Fprintln(c.out)
}
