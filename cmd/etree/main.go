// Package main is the entry point for the etree application.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/joe/etree/internal/config"
	"github.com/joe/etree/internal/render"
	"github.com/joe/etree/internal/tree"
	"github.com/joe/etree/internal/tui"
	"github.com/joe/etree/pkg/errors"
	"github.com/joe/etree/pkg/filesystem"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Interactive && !cfg.IsTerminal {
		fmt.Fprintln(os.Stderr, "etree: stdout is not a terminal, printing instead")
		cfg.Interactive = false
	}

	if err := run(cfg); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	fs, root, closer, err := filesystem.Create(cfg.Root)
	if err != nil {
		return errors.Enrich(err, cfg.Root)
	}

	if closer != nil {
		defer closer()
	}

	if cfg.ExportMode() {
		return runExport(fs, root, cfg)
	}

	return runConsole(fs, root, cfg)
}

// runExport walks the tree collecting records only, then writes the
// tab-separated file. Diagnostics still reach stderr during the walk.
func runExport(fs filesystem.FileSystem, root string, cfg *config.Config) error {
	stats := tree.NewEngine(fs, root, cfg, render.NewDiagnostics(os.Stderr)).Run()

	if err := writeExportFile(cfg.Output, stats.Records); err != nil {
		return errors.Enrich(err, cfg.Output)
	}

	return nil
}

// runConsole renders the tree to the terminal, the interactive viewer,
// or the clipboard, depending on the resolved configuration.
func runConsole(fs filesystem.FileSystem, root string, cfg *config.Config) error {
	palette := render.NewPalette(cfg.ColorsEnabled)

	var out io.Writer = os.Stdout

	var buf bytes.Buffer
	if cfg.Interactive || cfg.Clipboard {
		out = &buf
	}

	console := render.NewConsole(out, os.Stderr, cfg, palette)
	tree.NewEngine(fs, root, cfg, console).Run()

	switch {
	case cfg.Interactive:
		return tui.Run(cfg.Root, buf.String())
	case cfg.Clipboard:
		if err := clipboard.WriteAll(buf.String()); err != nil {
			// Clipboard unavailable: fall back to plain printing.
			fmt.Fprintf(os.Stderr, "etree: clipboard failed (%v), printing instead\n", err)
			fmt.Print(buf.String())

			return nil
		}

		fmt.Println("Tree copied to clipboard.")
	}

	return nil
}

func writeExportFile(path string, records []tree.ExportRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := render.WriteTSV(file, records); err != nil {
		file.Close()

		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	return nil
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	if suggestions := errors.FormatSuggestions(err); suggestions != "" {
		fmt.Fprintln(os.Stderr, suggestions)
	}
}
