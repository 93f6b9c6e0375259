package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novanotes/nova/internal/notes"
	"github.com/novanotes/nova/internal/ui"
)

// runSearch prints each matching line as it is found.
func runSearch(cmd *cobra.Command, term string) error {
	out := cmd.OutOrStdout()

	notes.Search(getRoot(), term, &notes.SearchOptions{
		Report: func(m notes.Match) {
			fmt.Fprintln(out, ui.MatchLine(m.Line, m.Path))
		},
		Logger: getLogger(),
	})
	return nil
}
