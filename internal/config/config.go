// Package config handles application configuration and command-line
// argument parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"golang.org/x/term"
)

// Config holds the application configuration. The flag fields come
// straight from the command line; the resolved fields are filled in by
// PostProcessConfig and are the only ones the rest of the program reads
// for terminal behavior.
type Config struct {
	Root        string `arg:"positional" default:"." help:"directory to display (local path or sftp://user@host/path URL)"`
	MaxDepth    int    `arg:"-l,--level" placeholder:"N" help:"maximum depth to traverse (0 = unlimited)"`
	ShowHidden  bool   `arg:"-a,--all" help:"show hidden files and directories"`
	DirsOnly    bool   `arg:"-d,--dirs" help:"list directories only"`
	ShowSize    bool   `arg:"-s,--size" help:"show file sizes"`
	ShowPerms   bool   `arg:"-p,--perms" help:"show permissions"`
	Exclude     string `arg:"-I,--exclude" placeholder:"PATTERN" help:"wildcard pattern of names to exclude (* and ? only)"`
	Output      string `arg:"-o,--output" placeholder:"FILE" help:"export the tree to FILE as a tab-separated table"`
	NoColors    bool   `arg:"--no-colors" help:"disable colored output"`
	Clipboard   bool   `arg:"-c,--clipboard" help:"copy the rendered tree to the clipboard"`
	Interactive bool   `arg:"-i,--interactive" help:"browse the tree in an interactive viewer"`

	// Resolved by PostProcessConfig.
	IsTerminal    bool `arg:"-"`
	ColorsEnabled bool `arg:"-"`
}

// Description returns the program description for go-arg.
func (Config) Description() string {
	return "etree displays a directory tree with optional metadata and tab-separated export."
}

// Version returns the version string for go-arg.
func (Config) Version() string {
	return "etree 1.0.0"
}

// ExportMode reports whether the run collects records for a tabular
// export instead of rendering console lines.
func (c *Config) ExportMode() bool {
	return c.Output != ""
}

// RemoteRoot reports whether the root is an SFTP URL rather than a
// local path.
func (c *Config) RemoteRoot() bool {
	return strings.HasPrefix(c.Root, "sftp://")
}

// ParseFlags parses command-line flags and returns the resolved configuration.
func ParseFlags() (*Config, error) {
	cfg := &Config{Root: "."}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg, term.IsTerminal(int(os.Stdout.Fd())))
}

// PostProcessConfig validates a parsed config and resolves the output
// mode precedence: export beats clipboard and interactive, clipboard
// beats interactive. Color is enabled only for plain console rendering
// on a terminal.
func PostProcessConfig(cfg *Config, isTerminal bool) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ExportMode() {
		cfg.Clipboard = false
		cfg.Interactive = false
	}

	if cfg.Clipboard {
		cfg.Interactive = false
	}

	cfg.IsTerminal = isTerminal
	cfg.ColorsEnabled = !cfg.NoColors && isTerminal && !cfg.ExportMode() && !cfg.Clipboard

	return cfg, nil
}

// Validate checks the parts of the config that can be checked without
// touching the network. Remote roots are validated at connect time.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("depth limit must be zero or positive, got %d", c.MaxDepth)
	}

	if c.RemoteRoot() {
		return nil
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("cannot access root %s: %w", c.Root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", c.Root)
	}

	return nil
}
