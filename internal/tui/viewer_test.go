//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/etree/internal/tui"
)

func TestModelQuitKeys(t *testing.T) {
	t.Parallel()

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			t.Parallel()

			model := tui.NewModel("root", "content")

			_, cmd := model.Update(key)
			if cmd == nil {
				t.Fatalf("key %q did not produce a command", key.String())
			}

			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("key %q produced %T, want tea.QuitMsg", key.String(), cmd())
			}
		})
	}
}

func TestModelScrollKeyDoesNotQuit(t *testing.T) {
	t.Parallel()

	model := tui.NewModel("root", "content")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("scroll key quit the viewer")
		}
	}
}

func TestModelViewBeforeSizing(t *testing.T) {
	t.Parallel()

	model := tui.NewModel("root", "content")

	if got := model.View(); got != "loading..." {
		t.Errorf("View before sizing = %q, want loading placeholder", got)
	}
}

func TestModelWindowSizeShowsContent(t *testing.T) {
	t.Parallel()

	model := tui.NewModel("myroot", "line one\nline two")

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := updated.(tui.Model).View()
	if !strings.Contains(view, "myroot") {
		t.Errorf("view missing title:\n%s", view)
	}

	if !strings.Contains(view, "line one") {
		t.Errorf("view missing content:\n%s", view)
	}
}

func TestModelResize(t *testing.T) {
	t.Parallel()

	model := tui.NewModel("root", "content")

	sized, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	resized, _ := sized.(tui.Model).Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if view := resized.(tui.Model).View(); view == "loading..." {
		t.Error("resize reset readiness")
	}
}
