package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// savedCommand creates the saved command group for managing the saved
// results collection.
func (c *CLI) savedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved search results",
		Long: `Manage saved search results.

Results marked with 'find --save' are kept indefinitely. Unlike the
history log they are never discarded automatically.`,
	}

	cmd.AddCommand(c.savedListCommand())
	cmd.AddCommand(c.savedDeleteCommand())

	return cmd
}

// savedListCommand lists all saved results.
func (c *CLI) savedListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newFileStore()
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.SavedResults(cmd.Context())
			if err != nil {
				return fmt.Errorf("list saved results: %w", err)
			}
			if len(recs) == 0 {
				printInfo("No saved results")
				return nil
			}
			printRecords(recs, true)
			return nil
		},
	}
}

// savedDeleteCommand removes one saved result by ID.
func (c *CLI) savedDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newFileStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteSaved(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete saved result %s: %w", args[0], err)
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
