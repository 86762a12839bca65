package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List the selected cases grouped by function and criterion without
evaluating them. Selection flags (--function, --criterion, --exclude,
--cases) narrow the list the same way they narrow "run".`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cases of the suite",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			estimateArgs, err := selectionArgs()
			if err != nil {
				return err
			}

			return workflow.Estimate(estimateArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
