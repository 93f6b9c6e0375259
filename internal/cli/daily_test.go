package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/novanotes/nova/internal/config"
	"github.com/novanotes/nova/internal/notes"
	"github.com/novanotes/nova/internal/ui"
)

func TestDailyCreatesNoteAndOpensEditor(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := filepath.Join(env.root(), "17-10-2026.md")
	if len(env.edited) != 1 || env.edited[0] != want {
		t.Fatalf("edited = %v, want [%s]", env.edited, want)
	}
	if !strings.Contains(out, "Created: "+want) {
		t.Fatalf("expected created path in output, got %q", out)
	}
	content, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("daily note missing: %v", err)
	}
	if len(content) != 0 {
		t.Fatalf("new daily note should be empty, got %q", content)
	}
}

func TestDailyReusesExistingNote(t *testing.T) {
	env := newTestEnv(t)
	env.writeNote("17-10-2026.md", "# already here\n")

	out, err := env.execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Today's note: ") {
		t.Fatalf("expected existing-note message, got %q", out)
	}
	content, err := os.ReadFile(filepath.Join(env.root(), "17-10-2026.md"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "# already here\n" {
		t.Fatalf("existing note changed: %q", content)
	}
}

func TestDailyEditorLaunchFailure(t *testing.T) {
	env := newTestEnv(t)
	newEditor = func(*config.Config, *slog.Logger) notes.Editor {
		return notes.NewExecEditor("nova-no-such-editor", nil)
	}

	_, err := env.execute()
	if err == nil {
		t.Fatal("expected launch failure")
	}
	if !strings.Contains(env.stderr.String(), "failed to launch editor") {
		t.Fatalf("stderr = %q", env.stderr.String())
	}
}

func TestDailyUsesConfiguredEditor(t *testing.T) {
	env := newTestEnv(t)
	var gotCommand string
	newEditor = func(c *config.Config, _ *slog.Logger) notes.Editor {
		gotCommand = c.GetEditor()
		return notes.EditorFunc(func(string) error { return nil })
	}

	if _, err := env.execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if gotCommand != "fake" {
		t.Fatalf("editor command = %q, want value from config", gotCommand)
	}
}

func TestPrintWithoutNote(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.execute("--print")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "No note for today yet") {
		t.Fatalf("output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(env.root(), "17-10-2026.md")); err == nil {
		t.Fatal("--print must not create the daily note")
	}
	if len(env.edited) != 0 {
		t.Fatal("--print must not open the editor")
	}
}

func TestPrintRawWhenNotATerminal(t *testing.T) {
	env := newTestEnv(t)
	env.writeNote("17-10-2026.md", "# Today\n\n- item\n")
	newDisplay = func() *ui.DisplayContext {
		return &ui.DisplayContext{TermWidth: 80, IsTTY: false}
	}

	out, err := env.execute("--print")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "# Today\n\n- item\n" {
		t.Fatalf("output = %q, want raw note", out)
	}
}

func TestPrintRendersOnTerminal(t *testing.T) {
	env := newTestEnv(t)
	env.writeNote("17-10-2026.md", "# Today\n\n- item\n")
	newDisplay = func() *ui.DisplayContext {
		return ui.NewDisplayContextWithWidth(80)
	}

	out, err := env.execute("-p")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Today") || !strings.Contains(out, "item") || out == "# Today\n\n- item\n" {
		t.Fatalf("expected rendered markdown, got %q", out)
	}
}
