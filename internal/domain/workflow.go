// Package domain runs case suites against the calc functions.
package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/piecewise/internal/adapter"
	"github.com/mouse-blink/piecewise/internal/controller"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// ErrCasesFailed is returned by Test when at least one case did not pass.
var ErrCasesFailed = errors.New("cases failed")

// EstimateArgs selects which cases a command works on.
type EstimateArgs struct {
	// CasesFile optionally adds cases from a YAML file to the built-in suite.
	CasesFile m.Path
	// NoBuiltin drops the built-in suite, leaving only CasesFile.
	NoBuiltin bool
	Functions []m.Function
	Criteria  []m.Criterion
	// Exclude holds regular expressions matched against case IDs.
	Exclude []string
}

// TestArgs configures a suite run.
type TestArgs struct {
	EstimateArgs
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// ViewArgs points at a previously written report.
type ViewArgs struct {
	Reports m.Path
}

// EvalArgs is a single call to evaluate.
type EvalArgs struct {
	Function m.Function
	Args     []int
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Estimate(args EstimateArgs) error
	Test(args TestArgs) error
	View(args ViewArgs) error
	Eval(args EvalArgs) error
	Coverage(args EstimateArgs) error
}

type workflow struct {
	caseStore   adapter.CaseStore
	reportStore adapter.ReportStore
	ui          controller.UI
	evaluator   Evaluator
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	caseStore adapter.CaseStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	evaluator Evaluator,
) Workflow {
	return &workflow{
		caseStore:   caseStore,
		reportStore: reportStore,
		ui:          ui,
		evaluator:   evaluator,
	}
}

// Estimate lists the selected cases without running them.
func (w *workflow) Estimate(args EstimateArgs) error {
	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	cases, err := w.selectCases(args)
	if displayErr := w.ui.DisplayEstimation(cases, err); displayErr != nil {
		return displayErr
	}

	w.ui.Wait()

	return nil
}

// Test runs the selected cases of one shard and persists the report.
func (w *workflow) Test(args TestArgs) error {
	cases, err := w.selectCases(args.EstimateArgs)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	shardIndex, shardCount := args.ShardIndex, args.TotalShardCount
	if shardCount <= 0 {
		shardIndex, shardCount = 0, 1
	}

	cases = shardCases(cases, shardIndex, shardCount)

	if err := w.ui.Start(controller.WithTestMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads, shardIndex, shardCount)
	w.ui.DisplayUpcomingTestsInfo(len(cases))

	started := time.Now()

	results, err := w.runCases(cases, threads)
	if err != nil {
		return err
	}

	report := m.Report{
		Started:  started,
		Duration: time.Since(started).String(),
		Results:  results,
		Coverage: Coverage(results),
	}
	if shardCount > 1 {
		report.Shard = fmt.Sprintf("%d/%d", shardIndex, shardCount)
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReport(args.Reports, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if err := w.ui.DisplayReport(report); err != nil {
		return err
	}

	w.ui.Wait()

	if _, failed, errored := report.Counts(); failed+errored > 0 {
		return fmt.Errorf("%d failed, %d errored: %w", failed, errored, ErrCasesFailed)
	}

	return nil
}

// View loads a saved report and displays it.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.reportStore.LoadReport(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	// Merged shard reports carry no coverage of their own.
	if len(report.Coverage) == 0 {
		report.Coverage = Coverage(report.Results)
	}

	if err := w.ui.Start(controller.WithTestMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayReport(report); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Eval evaluates a single call and shows its value and path.
func (w *workflow) Eval(args EvalArgs) error {
	result, err := w.evaluator.Evaluate(m.Case{
		ID:       "eval",
		Function: args.Function,
		Args:     args.Args,
	})
	if err != nil {
		return err
	}

	return w.ui.DisplayEvaluation(result)
}

// Coverage runs the selected cases and reports what they exercise,
// regardless of whether the cases pass.
func (w *workflow) Coverage(args EstimateArgs) error {
	cases, err := w.selectCases(args)
	if err != nil {
		return err
	}

	results, err := w.runCases(cases, 1)
	if err != nil {
		return err
	}

	return w.ui.DisplayCoverage(Coverage(results))
}

func (w *workflow) selectCases(args EstimateArgs) ([]m.Case, error) {
	var cases []m.Case
	if !args.NoBuiltin {
		cases = Catalog()
	}

	if args.CasesFile != "" {
		extra, err := w.caseStore.LoadCases(args.CasesFile)
		if err != nil {
			return nil, fmt.Errorf("load cases: %w", err)
		}

		cases = append(cases, extra...)
	}

	return filterCases(cases, args)
}

func filterCases(cases []m.Case, args EstimateArgs) ([]m.Case, error) {
	excludes := make([]*regexp.Regexp, 0, len(args.Exclude))

	for _, pattern := range args.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	filtered := make([]m.Case, 0, len(cases))

	for _, c := range cases {
		if len(args.Functions) > 0 && !slices.Contains(args.Functions, c.Function) {
			continue
		}

		if len(args.Criteria) > 0 && !slices.Contains(args.Criteria, c.Criterion) {
			continue
		}

		if slices.ContainsFunc(excludes, func(re *regexp.Regexp) bool { return re.MatchString(c.ID) }) {
			continue
		}

		filtered = append(filtered, c)
	}

	return filtered, nil
}

func shardCases(cases []m.Case, shardIndex, shardCount int) []m.Case {
	if shardCount <= 1 {
		return cases
	}

	shard := make([]m.Case, 0, len(cases)/shardCount+1)

	for i, c := range cases {
		if i%shardCount == shardIndex {
			shard = append(shard, c)
		}
	}

	return shard
}

// runCases evaluates cases on a pool of workers. Results keep the order of
// cases. Invalid cases become error results instead of aborting the run.
func (w *workflow) runCases(cases []m.Case, threads int) ([]m.Result, error) {
	results := make([]m.Result, len(cases))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(context.Background())

	for thread := range threads {
		g.Go(func() error {
			for i := range jobs {
				c := cases[i]
				w.ui.DisplayStartingCase(c, thread)

				result, err := w.evaluator.Evaluate(c)
				if err != nil && !errors.Is(err, ErrInvalidArgument) {
					return fmt.Errorf("evaluate %s: %w", c.ID, err)
				}

				if err != nil {
					glog.Warningf("case %s: %v", c.ID, err)
				}

				glog.V(1).Infof("case %s: %s = %d (want %d), path %s, %s",
					c.ID, c.Call(), result.Got, c.Expected, result.Path, result.Status)

				results[i] = result
				w.ui.DisplayCompletedCase(result)
			}

			return nil
		})
	}

send:
	for i := range cases {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break send
		}
	}

	close(jobs)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
