//nolint:varnamelen // Test files use idiomatic short variable names (t, fs, etc.)
package filesystem_test

import (
	"errors"
	"testing"
	"time"

	"github.com/joe/etree/pkg/filesystem"
)

func TestMockFileSystemCreatesAncestors(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/root/a/b/c.txt", 7)

	entries, err := fs.List("/root/a")
	if err != nil {
		t.Fatalf("List(/root/a): %v", err)
	}

	if len(entries) != 1 || entries[0].Name != "b" || !entries[0].IsDir {
		t.Errorf("List(/root/a) = %+v, want the implicit directory b", entries)
	}

	entries, err = fs.List("/root/a/b")
	if err != nil {
		t.Fatalf("List(/root/a/b): %v", err)
	}

	if len(entries) != 1 || entries[0].Name != "c.txt" || entries[0].Size != 7 {
		t.Errorf("List(/root/a/b) = %+v, want c.txt of size 7", entries)
	}
}

func TestMockFileSystemUnknownDirectory(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMockFileSystem()

	if _, err := fs.List("/nowhere"); err == nil {
		t.Error("List of an unknown directory succeeded, want error")
	}
}

func TestMockFileSystemFailList(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("permission denied")

	fs := filesystem.NewMockFileSystem()
	fs.FailList("/root/locked", sentinel)

	if _, err := fs.List("/root/locked"); !errors.Is(err, sentinel) {
		t.Errorf("List error = %v, want the configured failure", err)
	}

	// The failing directory is still visible from its parent.
	entries, err := fs.List("/root")
	if err != nil {
		t.Fatalf("List(/root): %v", err)
	}

	if len(entries) != 1 || entries[0].Name != "locked" {
		t.Errorf("List(/root) = %+v, want the locked directory entry", entries)
	}
}

func TestMockFileSystemMetadata(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	modified := time.Date(2024, 3, 2, 11, 30, 0, 0, time.UTC)

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/root/a.txt", 5)
	fs.SetHidden("/root/a.txt")
	fs.SetPermissions("/root/a.txt", "rw-------")
	fs.SetTimes("/root/a.txt", created, modified)

	if !fs.Hidden("/root/a.txt") {
		t.Error("Hidden = false after SetHidden")
	}

	if fs.Hidden("/root/other") {
		t.Error("Hidden = true for an unmarked path")
	}

	if got := fs.Permissions("/root/a.txt"); got != "rw-------" {
		t.Errorf("Permissions = %q, want %q", got, "rw-------")
	}

	if got := fs.Permissions("/root/other"); got != "-" {
		t.Errorf("default Permissions = %q, want %q", got, "-")
	}

	gotCreated, gotModified := fs.Times("/root/a.txt")
	if !gotCreated.Equal(created) || !gotModified.Equal(modified) {
		t.Errorf("Times = (%v, %v), want (%v, %v)", gotCreated, gotModified, created, modified)
	}
}

func TestMockFileSystemJoin(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMockFileSystem()

	if got := fs.Join("a", "b", "c.txt"); got != "a/b/c.txt" {
		t.Errorf("Join = %q, want %q", got, "a/b/c.txt")
	}
}
