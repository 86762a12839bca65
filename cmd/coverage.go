package cmd

import (
	"github.com/spf13/cobra"
)

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Show branch and condition coverage of the selected cases",
		Long: `Evaluate the selected cases and show which branches and condition
outcomes of each function they exercise, whether or not the cases pass.
Nothing is written to the reports directory.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			estimateArgs, err := selectionArgs()
			if err != nil {
				return err
			}

			return workflow.Coverage(estimateArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
