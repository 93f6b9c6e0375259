package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/novanotes/nova/internal/notes"
	"github.com/novanotes/nova/internal/ui"
)

// newDisplay is replaced in tests to fake a terminal.
var newDisplay = ui.NewDisplayContext

// runDaily creates today's note if needed and blocks in the editor.
func runDaily(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	editor := newEditor(getConfig(), getLogger())

	_, err := notes.OpenDaily(getRoot(), clock, editor, func(note notes.DailyNote) {
		if note.Created {
			fmt.Fprintln(out, ui.Successf("Created: %s", ui.FilePath(note.Path)))
		} else {
			fmt.Fprintln(out, ui.Infof("Today's note: %s", ui.FilePath(note.Path)))
		}
	})
	return err
}

// runPrint writes today's note to stdout without creating it.
func runPrint(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := notes.DailyNotePath(getRoot(), clock.Now())

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, ui.Infof("No note for today yet: %s", ui.FilePath(path)))
		fmt.Fprintln(out, ui.Hint("(Run 'nova' to create it)"))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read daily note: %w", err)
	}

	display := newDisplay()
	if !display.IsTTY {
		_, err := out.Write(content)
		return err
	}

	rendered, err := ui.RenderMarkdown(string(content), display.AvailableWidth())
	if err != nil {
		// Fall back to the raw note rather than failing the command.
		getLogger().Debug("markdown render failed", "path", path, "error", err)
		_, err := out.Write(content)
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
