//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/etree/internal/config"
	"github.com/joe/etree/internal/render"
	"github.com/joe/etree/internal/tree"
	"github.com/joe/etree/pkg/filesystem"
)

// buildFixture creates a small real directory tree:
//
//	root/
//	├── .hidden.txt
//	├── docs/
//	│   └── readme.md
//	├── a.txt
//	└── scratch.tmp
func buildFixture(t *testing.T) string {
	t.Helper()

	g := NewWithT(t)
	root := t.TempDir()

	g.Expect(os.Mkdir(filepath.Join(root, "docs"), 0o755)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(root, "docs", "readme.md"), []byte("# readme"), 0o644)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(root, "scratch.tmp"), []byte("tmp"), 0o644)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(root, ".hidden.txt"), []byte("x"), 0o644)).To(Succeed())

	return root
}

// TestIntegration_ConsoleRender_RealFilesystem walks a real directory and
// verifies the complete rendered output.
func TestIntegration_ConsoleRender_RealFilesystem(t *testing.T) {
	g := NewWithT(t)

	root := buildFixture(t)

	cfg := &config.Config{Root: root}
	fs := filesystem.NewLocalFileSystem()

	var out, errOut bytes.Buffer
	console := render.NewConsole(&out, &errOut, cfg, render.NewPalette(false))

	stats := tree.NewEngine(fs, root, cfg, console).Run()

	g.Expect(stats.Files).To(Equal(3))
	g.Expect(stats.Folders).To(Equal(1))
	g.Expect(stats.MaxDepth).To(Equal(2))

	want := strings.Join([]string{
		root,
		"├── a.txt",
		"├── docs",
		"│   └── readme.md",
		"└── scratch.tmp",
		"",
		"The tree counts 2 layers, 1 folders, 3 files.",
		"",
	}, "\n")

	g.Expect(out.String()).To(Equal(want))
	g.Expect(errOut.String()).To(BeEmpty())
}

// TestIntegration_Filters_RealFilesystem verifies hidden, exclude, and
// dirs-only filtering against a real directory.
func TestIntegration_Filters_RealFilesystem(t *testing.T) {
	g := NewWithT(t)

	root := buildFixture(t)
	fs := filesystem.NewLocalFileSystem()

	hidden := &config.Config{Root: root, ShowHidden: true}
	stats := tree.NewEngine(fs, root, hidden, nil).Run()
	g.Expect(stats.Files).To(Equal(4))

	excluded := &config.Config{Root: root, Exclude: "*.tmp"}
	stats = tree.NewEngine(fs, root, excluded, nil).Run()
	g.Expect(stats.Files).To(Equal(2))

	dirsOnly := &config.Config{Root: root, DirsOnly: true}
	stats = tree.NewEngine(fs, root, dirsOnly, nil).Run()
	g.Expect(stats.Files).To(Equal(0))
	g.Expect(stats.Folders).To(Equal(1))
}

// TestIntegration_Export_RealFilesystem exports a real directory and
// verifies the table structure.
func TestIntegration_Export_RealFilesystem(t *testing.T) {
	g := NewWithT(t)

	root := buildFixture(t)
	fs := filesystem.NewLocalFileSystem()

	cfg := &config.Config{Root: root, Output: filepath.Join(t.TempDir(), "tree.tsv")}
	stats := tree.NewEngine(fs, root, cfg, render.NewDiagnostics(os.Stderr)).Run()

	g.Expect(stats.Records).To(HaveLen(4))

	var buf bytes.Buffer
	g.Expect(render.WriteTSV(&buf, stats.Records)).To(Succeed())

	lines := strings.Split(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF"), "\n")
	g.Expect(lines[0]).To(HavePrefix("Relative Path\t"))
	g.Expect(lines).To(HaveLen(6)) // header + 4 rows + trailing newline

	g.Expect(lines[1]).To(HavePrefix("a.txt\ta.txt\tfile\t5\t"))
	g.Expect(lines[3]).To(HavePrefix("docs/readme.md\treadme.md\tfile\t8\t"))

	// Every row carries a modified timestamp on a real filesystem.
	for _, row := range lines[1:5] {
		fields := strings.Split(row, "\t")
		g.Expect(fields).To(HaveLen(7))
		g.Expect(fields[5]).NotTo(BeEmpty())
	}
}
