package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/jsonfile"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the journal of stock changes",
		Long: `History prints every successful add and remove recorded in the data
directory journal, oldest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal := jsonfile.NewJournalFile(a.layout.JournalPath())
			entries, err := journal.Entries()
			if err != nil {
				return sysError(fmt.Errorf("read journal %s: %w", journal.Path(), err))
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show only the last N entries (0 for all)")
	return cmd
}
