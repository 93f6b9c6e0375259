// Package testutil provides reusable test utilities for nova tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// NotesDir represents a temporary notes root for testing.
type NotesDir struct {
	Path      string
	t         *testing.T
	files     map[string]string
	order     []string
	links     map[string]string
	linkOrder []string
}

// NewNotesDir creates a new notes directory builder.
// Call Build() to create the actual directory.
func NewNotesDir(t *testing.T) *NotesDir {
	t.Helper()
	return &NotesDir{
		t:     t,
		files: make(map[string]string),
		links: make(map[string]string),
	}
}

// WithFile adds a file to the notes directory.
// The path is relative to the root and may include subdirectories.
func (n *NotesDir) WithFile(path, content string) *NotesDir {
	if _, ok := n.files[path]; !ok {
		n.order = append(n.order, path)
	}
	n.files[path] = content
	return n
}

// WithSymlink adds a symlink at path pointing to target.
// A relative target is resolved against the root, so it may name a file that
// never gets written. Links are created after all files.
func (n *NotesDir) WithSymlink(path, target string) *NotesDir {
	if _, ok := n.links[path]; !ok {
		n.linkOrder = append(n.linkOrder, path)
	}
	n.links[path] = target
	return n
}

// Build creates the directory and all configured files.
// Returns the NotesDir for method chaining.
func (n *NotesDir) Build() *NotesDir {
	n.t.Helper()

	n.Path = n.t.TempDir()
	for _, path := range n.order {
		n.writeFile(path, n.files[path])
	}
	for _, path := range n.linkOrder {
		n.symlink(path, n.links[path])
	}
	return n
}

// Abs returns the absolute path of a root-relative path.
func (n *NotesDir) Abs(relPath string) string {
	return filepath.Join(n.Path, filepath.FromSlash(relPath))
}

// writeFile writes a file to the root, creating directories as needed.
func (n *NotesDir) writeFile(relPath, content string) {
	n.t.Helper()
	fullPath := n.Abs(relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		n.t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		n.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

func (n *NotesDir) symlink(relPath, target string) {
	n.t.Helper()
	if runtime.GOOS == "windows" {
		n.t.Skip("symlinks need privileges on windows")
	}
	if !filepath.IsAbs(target) {
		target = n.Abs(target)
	}
	fullPath := n.Abs(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		n.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.Symlink(target, fullPath); err != nil {
		n.t.Fatalf("failed to symlink %s: %v", relPath, err)
	}
}

// ReadFile reads a file from the root.
func (n *NotesDir) ReadFile(relPath string) string {
	n.t.Helper()
	content, err := os.ReadFile(n.Abs(relPath))
	if err != nil {
		n.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// AssertFileExists fails the test if the file does not exist.
func (n *NotesDir) AssertFileExists(relPath string) {
	n.t.Helper()
	if _, err := os.Stat(n.Abs(relPath)); os.IsNotExist(err) {
		n.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (n *NotesDir) AssertFileNotExists(relPath string) {
	n.t.Helper()
	if _, err := os.Stat(n.Abs(relPath)); err == nil {
		n.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// MakeUnreadable removes all permissions from relPath for the rest of the test.
// Skips the test when running as root, since permission bits don't apply.
func (n *NotesDir) MakeUnreadable(relPath string) {
	n.t.Helper()
	if os.Geteuid() == 0 {
		n.t.Skip("permission checks are bypassed for root")
	}
	full := n.Abs(relPath)
	info, err := os.Stat(full)
	if err != nil {
		n.t.Fatalf("stat %s: %v", relPath, err)
	}
	if err := os.Chmod(full, 0); err != nil {
		n.t.Fatalf("chmod %s: %v", relPath, err)
	}
	n.t.Cleanup(func() {
		_ = os.Chmod(full, info.Mode().Perm())
	})
}
