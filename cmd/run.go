package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/piecewise/internal/domain"
	m "github.com/mouse-blink/piecewise/internal/model"
)

const runLongDescription = `Evaluate the selected cases on a pool of workers and write a report to
the reports directory. The command fails when any case fails or is
invalid.

Large suites can be split across machines with --shard INDEX/TOTAL; each
shard writes its own report file and "view" merges them.`

var runParallelFlag int
var runShardFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the case suite",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			estimateArgs, err := selectionArgs()
			if err != nil {
				return err
			}

			shardIndex, totalShards, err := parseShardFlag(runShardFlag)
			if err != nil {
				return err
			}

			return workflow.Test(domain.TestArgs{
				EstimateArgs:    estimateArgs,
				Reports:         m.Path(reportsOutputDirFlag),
				Threads:         runParallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers evaluating cases")
	cmd.Flags().StringVarP(&runShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
