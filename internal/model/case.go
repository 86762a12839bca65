// Package model defines the data structures for case suites and their reports.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// Function names one of the functions under test.
type Function string

const (
	// FunctionCalculate is calc.Calculate(x, y).
	FunctionCalculate Function = "calculate"
	// FunctionFunc is calc.Func(a, b, x).
	FunctionFunc Function = "func"
)

// Arity returns the number of arguments the function takes, or 0 when unknown.
func (f Function) Arity() int {
	switch f {
	case FunctionCalculate:
		return 2
	case FunctionFunc:
		return 3
	default:
		return 0
	}
}

// Criterion is the test-design criterion a case was written for.
type Criterion string

const (
	// CriterionStatement cases execute every statement at least once.
	CriterionStatement Criterion = "statement"
	// CriterionDecision cases take every decision both ways.
	CriterionDecision Criterion = "decision"
	// CriterionCondition cases give every atomic condition both outcomes.
	CriterionCondition Criterion = "condition"
	// CriterionBoundary cases sit on either side of a threshold.
	CriterionBoundary Criterion = "boundary"
	// CriterionCombination cases combine the main scenarios.
	CriterionCombination Criterion = "combination"
	// CriterionPath cases pin the execution path as well as the value.
	CriterionPath Criterion = "path"
	// CriterionProperty cases come from algebraic properties over a grid.
	CriterionProperty Criterion = "property"
)

// Criteria lists every criterion in display order.
func Criteria() []Criterion {
	return []Criterion{
		CriterionStatement,
		CriterionDecision,
		CriterionCondition,
		CriterionBoundary,
		CriterionCombination,
		CriterionPath,
		CriterionProperty,
	}
}

// Case is a single input/expected-output vector.
type Case struct {
	ID          string    `yaml:"id"`
	Function    Function  `yaml:"function"`
	Args        []int     `yaml:"args,flow"`
	Expected    int       `yaml:"expected"`
	Criterion   Criterion `yaml:"criterion"`
	Description string    `yaml:"description,omitempty"`
	// ExpectPath, when set, must equal the rendered trace path.
	ExpectPath string `yaml:"path,omitempty"`
}

// Call renders the case as a call expression, e.g. "func(8, 5, 2)".
func (c Case) Call() string {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("%s(%s)", c.Function, strings.Join(args, ", "))
}
