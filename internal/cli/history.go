package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tintlab/dyeseq/pkg/store"
)

// historyCommand creates the history command for listing recent searches.
func (c *CLI) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent searches",
		Long: fmt.Sprintf(`List recent searches, newest first.

Every 'find' run is appended to a local history log. The log keeps the
%d most recent entries; older ones are discarded automatically.`, store.HistoryLimit),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newFileStore()
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.History(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}
			if len(recs) == 0 {
				printInfo("No searches yet")
				return nil
			}
			printRecords(recs, false)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", store.HistoryLimit, "maximum number of entries to show")

	return cmd
}

// printRecords renders a list of search records. With withID the
// record's ID is shown so it can be passed to delete/play commands.
func printRecords(recs []store.Record, withID bool) {
	for i, rec := range recs {
		if i > 0 {
			fmt.Println()
		}
		header := fmt.Sprintf("%s  %s", swatch(rec.Target), rec.CreatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Println(StyleTitle.Render(header))
		if withID {
			printKeyValue("id", rec.ID)
		}
		printColor("target", rec.Target)
		printColor("result", rec.Color)
		printSequence("sequence", rec.Steps)
		printKeyValue("distance", fmt.Sprintf("%d", rec.Distance))
	}
}
