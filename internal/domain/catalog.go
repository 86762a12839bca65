package domain

import (
	"fmt"

	"github.com/mouse-blink/piecewise/internal/calc"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// Grid bounds of the property cases for calculate.
const (
	gridMin = -10
	gridMax = 10
)

type vector struct {
	args     []int
	expected int
	path     string
	desc     string
}

func v(expected int, args ...int) vector {
	return vector{args: args, expected: expected}
}

// Catalog returns the built-in suite. IDs have the form
// "<function>/<criterion>/<nn>" and are unique.
func Catalog() []m.Case {
	var cases []m.Case

	cases = append(cases, calculateCases()...)
	cases = append(cases, funcCases()...)

	return cases
}

func calculateCases() []m.Case {
	fn := m.FunctionCalculate

	var cases []m.Case

	cases = append(cases, build(fn, m.CriterionStatement,
		vector{args: []int{5, 3}, expected: 8, desc: "x > 0 and y > 0"},
		vector{args: []int{5, -3}, expected: 8, desc: "x > 0 and y <= 0"},
		vector{args: []int{-5, 3}, expected: 8, desc: "x <= 0 and y > 0"},
		vector{args: []int{-5, -3}, expected: 8, desc: "x <= 0 and y <= 0"},
	)...)

	cases = append(cases, build(fn, m.CriterionDecision,
		v(8, 5, 3), v(17, 10, 7), v(2, 1, 1),
		v(8, 5, -3), v(10, 10, 0), v(9, 7, -2),
		v(8, -5, 3), v(7, 0, 7), v(7, -2, 5),
		v(8, -5, -3), v(0, 0, 0), v(6, -2, -4),
	)...)

	cases = append(cases, build(fn, m.CriterionCondition,
		v(2, 1, 1), v(2, 1, -1), v(2, -1, 1), v(2, -1, -1),
	)...)

	cases = append(cases, build(fn, m.CriterionBoundary,
		v(5, 0, 5), v(5, 0, -5), v(1, 1, 0), v(1, -1, 0), v(0, 0, 0),
	)...)

	cases = append(cases, build(fn, m.CriterionCombination,
		vector{args: []int{2, 3}, expected: 5, desc: "typed collection"},
		vector{args: []int{-1, -2}, expected: 3, desc: "typed collection"},
		vector{args: []int{0, 0}, expected: 0, desc: "typed collection"},
		vector{args: []int{1, 1}, expected: 2, desc: "simple positive"},
		vector{args: []int{-1, -1}, expected: 2, desc: "simple negative"},
		vector{args: []int{100, 50}, expected: 150, desc: "large numbers"},
		vector{args: []int{-100, -50}, expected: 150, desc: "large numbers"},
		vector{args: []int{999, -999}, expected: 1998, desc: "large numbers"},
	)...)

	cases = append(cases, build(fn, m.CriterionPath,
		vector{args: []int{1, 1}, expected: 2, path: string(calc.BranchPosPos)},
		vector{args: []int{1, -1}, expected: 2, path: string(calc.BranchPosNonPos)},
		vector{args: []int{-1, 1}, expected: 2, path: string(calc.BranchNonPosPos)},
		vector{args: []int{-1, -1}, expected: 2, path: string(calc.BranchNonPosNonPos)},
	)...)

	grid := make([]vector, 0, (gridMax-gridMin+1)*(gridMax-gridMin+1))
	for x := gridMin; x <= gridMax; x++ {
		for y := gridMin; y <= gridMax; y++ {
			grid = append(grid, vector{
				args:     []int{x, y},
				expected: absInt(x) + absInt(y),
				desc:     "|x| + |y|",
			})
		}
	}

	cases = append(cases, build(fn, m.CriterionProperty, grid...)...)

	return cases
}

func funcCases() []m.Case {
	fn := m.FunctionFunc

	var cases []m.Case

	cases = append(cases, build(fn, m.CriterionStatement,
		v(22, 8, 5, 2), v(2, 10, 3, 1), v(1, 1, 4, 1),
	)...)

	cases = append(cases, build(fn, m.CriterionDecision,
		v(14, 8, 5, 1), v(2, 8, 4, 1), v(2, 3, 4, 1), v(11, 1, 4, 10), v(1, 1, 4, 1),
	)...)

	cases = append(cases, build(fn, m.CriterionCondition,
		v(14, 8, 5, 1), v(16, 1, 5, 10), v(5, 1, 5, 0), v(2, 5, 1, 1),
		v(11, 1, 1, 10), v(1, 1, 1, 1), v(22, 8, 5, 2), v(3, 9, 5, 2),
		v(12, 2, 5, 3), v(12, 3, 5, 2), v(6, 5, 1, 5), v(7, 5, 1, 6),
		v(8, 5, 1, 7), v(5, 1, 1, 5), v(6, 1, 1, 6), v(8, 1, 1, 7),
		v(54, 8, 5, 6), v(7, 9, 1, 6), v(20, 2, 5, 7), v(5, 0, 5, 2),
		v(1, 5, 1, 0), v(2, -1, 5, 3), v(-9, 5, 1, -10),
	)...)

	cases = append(cases, build(fn, m.CriterionBoundary,
		vector{args: []int{8, 5, 1}, expected: 14, desc: "a = 8 just below 9"},
		vector{args: []int{9, 5, 1}, expected: 2, desc: "a = 9 on the bound"},
		vector{args: []int{8, 4, 1}, expected: 2, desc: "b = 4 next to 5"},
		vector{args: []int{3, 4, 1}, expected: 2, desc: "a = 3 just above 2"},
		vector{args: []int{2, 4, 1}, expected: 1, desc: "a = 2 on the bound"},
		vector{args: []int{1, 4, 7}, expected: 8, desc: "x = 7 just above 6"},
		vector{args: []int{1, 4, 6}, expected: 6, desc: "x = 6 on the bound"},
	)...)

	cases = append(cases, build(fn, m.CriterionCombination,
		v(22, 8, 5, 2), v(2, 10, 3, 1), v(8, 1, 5, 2), v(1, 1, 4, 1),
		vector{args: []int{1, 5, 10}, expected: 16, desc: "scenario"},
	)...)

	cases = append(cases, build(fn, m.CriterionPath,
		vector{args: []int{8, 5, 2}, expected: 22, path: "block1→block2", desc: "both blocks"},
		vector{args: []int{10, 3, 1}, expected: 2, path: "block2", desc: "second block"},
		vector{args: []int{1, 5, 2}, expected: 8, path: "block1→block2", desc: "both blocks via x > 6"},
		vector{args: []int{1, 5, 0}, expected: 5, path: "block1", desc: "first block"},
		vector{args: []int{1, 4, 1}, expected: 1, path: calc.PathNone, desc: "no blocks"},
	)...)

	return cases
}

func build(fn m.Function, criterion m.Criterion, vectors ...vector) []m.Case {
	cases := make([]m.Case, 0, len(vectors))

	for i, vec := range vectors {
		cases = append(cases, m.Case{
			ID:          fmt.Sprintf("%s/%s/%02d", fn, criterion, i+1),
			Function:    fn,
			Args:        vec.args,
			Expected:    vec.expected,
			Criterion:   criterion,
			Description: vec.desc,
			ExpectPath:  vec.path,
		})
	}

	return cases
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
