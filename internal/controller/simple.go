package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/piecewise/internal/model"
)

// SimpleUI implements UI with plain text tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to close interactively.
func (s *SimpleUI) Wait() {}

// DisplayEstimation prints the selected cases or the selection error.
func (s *SimpleUI) DisplayEstimation(cases []m.Case, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	if len(cases) == 0 {
		s.printf("No cases selected\n")
		return nil
	}

	table, buf := newTable([]string{"ID", "Call", "Expected", "Path", "Criterion"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	functions := make(map[m.Function]int)

	for _, c := range cases {
		table.Append([]string{c.ID, c.Call(), fmt.Sprintf("%d", c.Expected), c.ExpectPath, string(c.Criterion)})
		functions[c.Function]++
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Cases %d", len(cases)),
		summarizeFunctions(functions),
		"", "", "",
	})

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayConcurrencyInfo prints the worker and shard settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	s.printf("Running with %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)
}

// DisplayUpcomingTestsInfo prints the number of cases about to run.
func (s *SimpleUI) DisplayUpcomingTestsInfo(count int) {
	s.printf("Upcoming cases: %d\n", count)
}

// DisplayStartingCase is silent in plain text mode.
func (s *SimpleUI) DisplayStartingCase(_ m.Case, _ int) {}

// DisplayCompletedCase prints cases that did not pass as they finish.
func (s *SimpleUI) DisplayCompletedCase(result m.Result) {
	switch result.Status {
	case m.StatusFail:
		s.printf("FAIL %s: %s = %d (path %s), expected %d%s\n",
			result.Case.ID, result.Case.Call(), result.Got, result.Path,
			result.Case.Expected, expectedPathSuffix(result.Case))
	case m.StatusError:
		s.printf("ERROR %s: %s\n", result.Case.ID, result.Err)
	}
}

// DisplayReport prints per-criterion totals followed by coverage.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	type key struct {
		fn        m.Function
		criterion m.Criterion
	}

	counts := make(map[key][3]int)

	for _, res := range report.Results {
		k := key{fn: res.Case.Function, criterion: res.Case.Criterion}
		c := counts[k]

		switch res.Status {
		case m.StatusPass:
			c[0]++
		case m.StatusFail:
			c[1]++
		case m.StatusError:
			c[2]++
		}

		counts[k] = c
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].fn != keys[j].fn {
			return keys[i].fn < keys[j].fn
		}

		return keys[i].criterion < keys[j].criterion
	})

	table, buf := newTable([]string{"Function", "Criterion", "Pass", "Fail", "Error"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, k := range keys {
		c := counts[k]
		table.Append([]string{string(k.fn), string(k.criterion),
			fmt.Sprintf("%d", c[0]), fmt.Sprintf("%d", c[1]), fmt.Sprintf("%d", c[2])})
	}

	passed, failed, errored := report.Counts()
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(report.Results)), "",
		fmt.Sprintf("%d", passed), fmt.Sprintf("%d", failed), fmt.Sprintf("%d", errored),
	})

	table.Render()

	s.mu.Lock()
	defer s.mu.Unlock()

	if report.Shard != "" {
		s.printfLocked("\nShard %s", report.Shard)
	}

	s.printfLocked("\n%s", buf.String())

	if len(report.Coverage) > 0 {
		s.printfLocked("\n%s", renderCoverageTable(report.Coverage))
	}

	return nil
}

// DisplayEvaluation prints the value and path of a single call.
func (s *SimpleUI) DisplayEvaluation(result m.Result) error {
	s.printf("%s = %d\npath: %s\n", result.Case.Call(), result.Got, result.Path)
	return nil
}

// DisplayCoverage prints branch and condition coverage per function.
func (s *SimpleUI) DisplayCoverage(coverage []m.Coverage) error {
	if len(coverage) == 0 {
		s.printf("No coverage: no cases were evaluated\n")
		return nil
	}

	s.printf("\n%s", renderCoverageTable(coverage))

	return nil
}

func renderCoverageTable(coverage []m.Coverage) string {
	table, buf := newTable([]string{"Function", "Cases", "Branches", "Conditions", "Missing"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, cov := range coverage {
		missing := "-"
		if len(cov.Missing) > 0 {
			missing = strings.Join(cov.Missing, "; ")
		}

		table.Append([]string{
			string(cov.Function),
			fmt.Sprintf("%d", cov.Cases),
			fmt.Sprintf("%d/%d (%.0f%%)", cov.BranchesHit, cov.BranchesTotal, cov.BranchPercent()),
			fmt.Sprintf("%d/%d (%.0f%%)", cov.ConditionsHit, cov.ConditionsTotal, cov.ConditionPercent()),
			missing,
		})
	}

	table.Render()

	return buf.String()
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func summarizeFunctions(functions map[m.Function]int) string {
	names := make([]string, 0, len(functions))
	for fn := range functions {
		names = append(names, string(fn))
	}

	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d", name, functions[m.Function(name)]))
	}

	return strings.Join(parts, ", ")
}

func expectedPathSuffix(c m.Case) string {
	if c.ExpectPath == "" {
		return ""
	}

	return " (path " + c.ExpectPath + ")"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printfLocked(format, args...)
}

func (s *SimpleUI) printfLocked(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
