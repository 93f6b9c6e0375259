package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// errNotRegular marks entries that resolve to something other than a regular file.
var errNotRegular = errors.New("not a regular file")

// WalkResult describes one file found under the notes root.
// Error is set when the entry could not be read; Path is still populated.
type WalkResult struct {
	Path         string
	RelativePath string
	Error        error
}

// WalkFiles calls handler for every file under root, in lexical order.
//
// root itself may be a symlink to a directory; the walk runs over its target
// but every reported Path stays under root. Below root, directories are
// descended but never passed to handler. Symlinks are followed for files only,
// and entries that resolve to neither a directory nor a regular file are
// skipped. Unreadable entries are reported through WalkResult.Error rather
// than stopping the walk; the walk stops only when handler returns an error.
func WalkFiles(root string, handler func(result WalkResult) error) error {
	target, err := filepath.EvalSymlinks(root)
	if err != nil {
		return skipAll(handler(WalkResult{
			Path:         root,
			RelativePath: ".",
			Error:        err,
		}))
	}

	err = filepath.WalkDir(target, func(walked string, d fs.DirEntry, err error) error {
		relativePath, _ := filepath.Rel(target, walked)
		path := filepath.Join(root, relativePath)
		if err != nil {
			return handler(WalkResult{
				Path:         path,
				RelativePath: relativePath,
				Error:        err,
			})
		}
		if d.IsDir() {
			return nil
		}

		// Stat follows symlinks; a broken link surfaces as an error here.
		info, err := os.Stat(walked)
		if err != nil {
			return handler(WalkResult{
				Path:         path,
				RelativePath: relativePath,
				Error:        err,
			})
		}
		if info.IsDir() {
			return nil
		}
		if !info.Mode().IsRegular() {
			return handler(WalkResult{
				Path:         path,
				RelativePath: relativePath,
				Error:        fmt.Errorf("%s: %w", path, errNotRegular),
			})
		}

		return handler(WalkResult{
			Path:         path,
			RelativePath: relativePath,
		})
	})
	return skipAll(err)
}

func skipAll(err error) error {
	if errors.Is(err, filepath.SkipAll) {
		return nil
	}
	return err
}
