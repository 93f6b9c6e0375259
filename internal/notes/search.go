package notes

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Match is a single line containing the search term.
type Match struct {
	Path string
	Line string
}

// SearchOptions configures Search. A nil *SearchOptions is valid.
type SearchOptions struct {
	// Report is called for every match as soon as it is found.
	Report func(Match)

	// Logger receives debug records for skipped entries. Defaults to slog.Default().
	Logger *slog.Logger
}

// Search returns every line under root that contains term, in walk order.
// Matching is literal and case-sensitive; an empty term matches every line.
// Entries that cannot be traversed, opened or read are skipped.
func Search(root, term string, opts *SearchOptions) []string {
	var report func(Match)
	logger := slog.Default()
	if opts != nil {
		report = opts.Report
		if opts.Logger != nil {
			logger = opts.Logger
		}
	}

	var found []string
	_ = WalkFiles(root, func(result WalkResult) error {
		if result.Error != nil {
			logger.Debug("skipping entry", "path", result.Path, "error", result.Error)
			return nil
		}
		err := scanFile(result.Path, term, func(line string) {
			if report != nil {
				report(Match{Path: result.Path, Line: line})
			}
			found = append(found, line)
		})
		if err != nil {
			logger.Debug("skipping file", "path", result.Path, "error", err)
		}
		return nil
	})
	return found
}

// scanFile calls onMatch for each line of path containing term.
// Matches already delivered stand even if a later read fails.
func scanFile(path, term string, onMatch func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			line = trimLineEnding(line)
			// Text search only; lines that aren't UTF-8 can't be matched meaningfully.
			if utf8.ValidString(line) && strings.Contains(line, term) {
				onMatch(line)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
