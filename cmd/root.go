// Package cmd provides the root command and CLI setup for piecewise.
package cmd

import (
	goflag "flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mouse-blink/piecewise/internal/adapter"
	"github.com/mouse-blink/piecewise/internal/controller"
	"github.com/mouse-blink/piecewise/internal/domain"
	m "github.com/mouse-blink/piecewise/internal/model"
)

const defaultReportsDir = ".piecewise-reports"

var caseStore adapter.CaseStore
var reportStore adapter.ReportStore
var evaluator domain.Evaluator
var workflow domain.Workflow
var ui controller.UI

func init() {
	// glog registers on the standard flag set; expose -v, --logtostderr
	// and friends on every command.
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	caseStore = adapter.NewLocalCaseStore()
	reportStore = adapter.NewReportStore()
	evaluator = domain.NewEvaluator()
	workflow = domain.NewWorkflow(
		caseStore,
		reportStore,
		ui,
		evaluator,
	)
}

var listFlag bool
var parallelFlag int
var shardFlag string

var reportsOutputDirFlag string
var casesFileFlag string
var noBuiltinFlag bool
var functionFlags []string
var criterionFlags []string
var excludeFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "piecewise",
		Short: "Coverage-driven test suite for two piecewise integer functions",
		Long: `Piecewise evaluates two small branchy integer functions against a suite of
cases grouped by coverage criterion (statement, decision, condition,
boundary, combination, path, property) and reports which branches and
condition outcomes the suite exercised.

  calculate(x, y)  sum of magnitudes, one branch per sign combination
  func(a, b, x)    two guarded blocks; the second sees the first's update

Without a subcommand the whole suite runs, like "piecewise run".`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			estimateArgs, err := selectionArgs()
			if err != nil {
				return err
			}

			if listFlag {
				return workflow.Estimate(estimateArgs)
			}

			shardIndex, totalShards, err := parseShardFlag(shardFlag)
			if err != nil {
				return err
			}

			return workflow.Test(domain.TestArgs{
				EstimateArgs:    estimateArgs,
				Reports:         m.Path(reportsOutputDirFlag),
				Threads:         parallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list the selected cases without running them")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers evaluating cases")
	cmd.Flags().StringVarP(&shardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	addSelectionFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "o", defaultReportsDir, "directory reports are written to and read from")

	return cmd
}

func addSelectionFlags(fs *pflag.FlagSet) {
	fs.StringVar(&casesFileFlag, "cases", "", "YAML file with additional cases")
	fs.BoolVar(&noBuiltinFlag, "no-builtin", false, "skip the built-in suite (use with --cases)")
	fs.StringSliceVarP(&functionFlags, "function", "f", nil, "only cases of these functions (calculate, func)")
	fs.StringSliceVarP(&criterionFlags, "criterion", "c", nil,
		"only cases of these criteria ("+strings.Join(criterionNames(), ", ")+")")
	fs.StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude cases whose ID matches regex (can be repeated)")
}

// selectionArgs turns the shared selection flags into EstimateArgs.
func selectionArgs() (domain.EstimateArgs, error) {
	functions, err := parseFunctions(functionFlags)
	if err != nil {
		return domain.EstimateArgs{}, err
	}

	criteria, err := parseCriteria(criterionFlags)
	if err != nil {
		return domain.EstimateArgs{}, err
	}

	if noBuiltinFlag && casesFileFlag == "" {
		return domain.EstimateArgs{}, fmt.Errorf("--no-builtin requires --cases")
	}

	return domain.EstimateArgs{
		CasesFile: m.Path(casesFileFlag),
		NoBuiltin: noBuiltinFlag,
		Functions: functions,
		Criteria:  criteria,
		Exclude:   excludeFlags,
	}, nil
}

func parseFunctions(names []string) ([]m.Function, error) {
	functions := make([]m.Function, 0, len(names))

	for _, name := range names {
		fn := m.Function(strings.ToLower(strings.TrimSpace(name)))
		if fn.Arity() == 0 {
			return nil, fmt.Errorf("unknown function %q", name)
		}

		functions = append(functions, fn)
	}

	return functions, nil
}

func parseCriteria(names []string) ([]m.Criterion, error) {
	criteria := make([]m.Criterion, 0, len(names))

	for _, name := range names {
		criterion := m.Criterion(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(m.Criteria(), criterion) {
			return nil, fmt.Errorf("unknown criterion %q", name)
		}

		criteria = append(criteria, criterion)
	}

	return criteria, nil
}

func criterionNames() []string {
	names := make([]string, 0, len(m.Criteria()))
	for _, c := range m.Criteria() {
		names = append(names, string(c))
	}

	return names
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	glog.Flush()

	if err != nil {
		os.Exit(1)
	}
}

// parseShardFlag parses "INDEX/TOTAL". An empty value means no sharding.
func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	indexText, totalText, found := strings.Cut(shard, "/")
	if !found {
		return 0, 0, fmt.Errorf("invalid --shard %q: want INDEX/TOTAL (e.g., 0/3)", shard)
	}

	index, indexErr := strconv.Atoi(strings.TrimSpace(indexText))
	total, totalErr := strconv.Atoi(strings.TrimSpace(totalText))

	if indexErr != nil || totalErr != nil {
		return 0, 0, fmt.Errorf("invalid --shard %q: want INDEX/TOTAL (e.g., 0/3)", shard)
	}

	if total <= 0 || index < 0 || index >= total {
		return 0, 0, fmt.Errorf("invalid --shard %q: need 0 <= INDEX < TOTAL", shard)
	}

	return index, total, nil
}
