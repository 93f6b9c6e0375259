// Package notes implements the notes directory: root resolution, text search,
// and the daily note.
package notes

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/novanotes/nova/internal/config"
)

// RootDirName is the notes directory created inside the user's home.
const RootDirName = ".nova"

// ErrRootUnavailable is returned when the notes root cannot be created or used.
var ErrRootUnavailable = errors.New("notes root unavailable")

// Root is a resolved notes directory.
type Root struct {
	Path    string
	Created bool // true if this call created the directory
}

// RootPath returns <home>/.nova without touching the filesystem.
func RootPath(home string) string {
	return filepath.Join(home, RootDirName)
}

// ResolveRoot returns the notes root for home, creating it if it doesn't exist.
// Only the final directory is created; home itself must already exist.
func ResolveRoot(home string, logger *slog.Logger) (Root, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(home) == "" {
		return Root{}, config.ErrHomeNotSet
	}

	path := RootPath(home)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return Root{}, fmt.Errorf("%w: %s is not a directory", ErrRootUnavailable, path)
		}
		logger.Info("using notes root", "path", path)
		return Root{Path: path}, nil
	case errors.Is(err, os.ErrNotExist):
		if err := os.Mkdir(path, 0o755); err != nil {
			return Root{}, fmt.Errorf("%w: cannot create %s: %w", ErrRootUnavailable, path, err)
		}
		logger.Info("created notes root", "path", path)
		return Root{Path: path, Created: true}, nil
	default:
		return Root{}, fmt.Errorf("%w: %w", ErrRootUnavailable, err)
	}
}
