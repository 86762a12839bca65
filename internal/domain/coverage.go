package domain

import (
	"fmt"

	"github.com/mouse-blink/piecewise/internal/calc"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// Coverage reports the branch and condition-outcome coverage that results
// achieve, one entry per function that appears in them. Errored results
// contribute nothing.
func Coverage(results []m.Result) []m.Coverage {
	var coverage []m.Coverage

	for _, fn := range []m.Function{m.FunctionCalculate, m.FunctionFunc} {
		branches, conditions := universe(fn)

		cov, ok := coverageFor(fn, results, branches, conditions)
		if ok {
			coverage = append(coverage, cov)
		}
	}

	return coverage
}

func universe(fn m.Function) ([]calc.Branch, []string) {
	if fn == m.FunctionCalculate {
		return calc.CalculateBranches(), calc.CalculateConditions()
	}

	return calc.FuncBranches(), calc.FuncConditions()
}

func coverageFor(fn m.Function, results []m.Result, branches []calc.Branch, conditions []string) (m.Coverage, bool) {
	hitBranches := make(map[string]bool)
	hitOutcomes := make(map[string]bool)
	cases := 0

	for _, res := range results {
		if res.Case.Function != fn || res.Status == m.StatusError {
			continue
		}

		cases++

		for _, b := range res.Branches {
			hitBranches[b] = true
		}

		for name, value := range res.Conditions {
			hitOutcomes[outcome(name, value)] = true
		}
	}

	if cases == 0 {
		return m.Coverage{}, false
	}

	cov := m.Coverage{
		Function:        fn,
		Cases:           cases,
		BranchesTotal:   len(branches),
		ConditionsTotal: 2 * len(conditions),
	}

	for _, b := range branches {
		if hitBranches[string(b)] {
			cov.BranchesHit++
			continue
		}

		cov.Missing = append(cov.Missing, "branch "+string(b))
	}

	for _, name := range conditions {
		for _, value := range []bool{true, false} {
			key := outcome(name, value)
			if hitOutcomes[key] {
				cov.ConditionsHit++
				continue
			}

			cov.Missing = append(cov.Missing, "condition "+key)
		}
	}

	return cov, true
}

func outcome(name string, value bool) string {
	return fmt.Sprintf("%s=%t", name, value)
}
