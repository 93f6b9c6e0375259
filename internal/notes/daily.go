package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DailyNote is the note file for one calendar day.
type DailyNote struct {
	Path    string
	Name    string
	Created bool // true if this call created the file
}

// DailyNotePath returns the path of the daily note for now under root.
func DailyNotePath(root string, now time.Time) string {
	return filepath.Join(root, DailyNoteName(now))
}

// EnsureDailyNote creates an empty daily note for now if none exists.
// An existing file is never truncated or rewritten.
func EnsureDailyNote(root string, now time.Time) (DailyNote, error) {
	note := DailyNote{
		Path: DailyNotePath(root, now),
		Name: DailyNoteName(now),
	}

	f, err := os.OpenFile(note.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return note, nil
		}
		return DailyNote{}, fmt.Errorf("failed to create daily note: %w", err)
	}
	if err := f.Close(); err != nil {
		return DailyNote{}, fmt.Errorf("failed to create daily note: %w", err)
	}
	note.Created = true
	return note, nil
}

// OpenDaily ensures today's note exists and opens it in editor.
// announce, if non-nil, is called with the note before the editor starts.
// It blocks until the editor exits.
func OpenDaily(root string, clock Clock, editor Editor, announce func(DailyNote)) (DailyNote, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	if editor == nil {
		return DailyNote{}, fmt.Errorf("%w: no editor configured", ErrEditorLaunch)
	}

	note, err := EnsureDailyNote(root, clock.Now())
	if err != nil {
		return DailyNote{}, err
	}
	if announce != nil {
		announce(note)
	}
	if err := editor.Edit(note.Path); err != nil {
		return note, err
	}
	return note, nil
}
