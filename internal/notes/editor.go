package notes

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/novanotes/nova/internal/shellquote"
)

// ErrEditorLaunch is returned when the editor process cannot be started.
var ErrEditorLaunch = errors.New("failed to launch editor")

// Editor opens a file for interactive editing and returns once the user is done.
type Editor interface {
	Edit(path string) error
}

// EditorFunc adapts a function to the Editor interface.
type EditorFunc func(path string) error

// Edit implements Editor.
func (f EditorFunc) Edit(path string) error { return f(path) }

// ExecEditor runs an external editor as a child process with the
// terminal handed over to it.
type ExecEditor struct {
	// Command is the editor to run, e.g. "nvim" or "code --wait".
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger
}

// NewExecEditor returns an ExecEditor wired to the process's standard streams.
func NewExecEditor(command string, logger *slog.Logger) *ExecEditor {
	return &ExecEditor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
	}
}

// Edit starts the editor on path and waits for it to exit.
// The editor's own exit status is not treated as an error.
func (e *ExecEditor) Edit(path string) error {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	command := strings.TrimSpace(e.Command)
	if command == "" {
		return fmt.Errorf("%w: no editor configured", ErrEditorLaunch)
	}

	cmd := e.command(command, path)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrEditorLaunch, command, err)
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// sh reports a missing command as 127; that's a launch failure, not an editor exit.
		if viaShell(command) && exitErr.ExitCode() == 127 {
			return fmt.Errorf("%w '%s': command not found", ErrEditorLaunch, command)
		}
		logger.Debug("editor exited", "editor", command, "code", exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return fmt.Errorf("editor '%s': %w", command, err)
	}
	return nil
}

// command builds the child process. Commands with arguments ("code --wait")
// go through sh so the user's quoting is honored.
func (e *ExecEditor) command(command, path string) *exec.Cmd {
	if viaShell(command) {
		return exec.Command("sh", "-c", command+" "+shellquote.Quote(path))
	}
	return exec.Command(command, path)
}

func viaShell(command string) bool {
	return strings.Contains(command, " ")
}
