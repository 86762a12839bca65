package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/piecewise/internal/domain"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated suite reports",
		Long:  "View previously generated suite reports from a reports directory. Shard reports are merged.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: m.Path(reportsOutputDirFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
