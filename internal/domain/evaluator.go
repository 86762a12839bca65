package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/piecewise/internal/calc"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// ErrInvalidArgument is returned for cases naming an unknown function or
// carrying the wrong number of arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// Evaluator runs a single case against the function it names and decides
// whether the case passes.
type Evaluator interface {
	Evaluate(c m.Case) (m.Result, error)
}

type evaluator struct{}

// NewEvaluator constructs an Evaluator backed by the calc package.
func NewEvaluator() Evaluator {
	return &evaluator{}
}

func (e *evaluator) Evaluate(c m.Case) (m.Result, error) {
	if err := validateCase(c); err != nil {
		return m.Result{Case: c, Status: m.StatusError, Err: err.Error()}, err
	}

	got, trace := trace(c.Function, c.Args)

	result := m.Result{
		Case:       c,
		Got:        got,
		Path:       trace.Path(),
		Status:     m.StatusPass,
		Branches:   make([]string, 0, len(trace.Branches)),
		Conditions: make(map[string]bool, len(trace.Conditions)),
	}

	for _, b := range trace.Branches {
		result.Branches = append(result.Branches, string(b))
	}

	for _, cond := range trace.Conditions {
		result.Conditions[cond.Name] = cond.Value
	}

	if got != c.Expected || (c.ExpectPath != "" && result.Path != calc.NormalizePath(c.ExpectPath)) {
		result.Status = m.StatusFail
	}

	return result, nil
}

func validateCase(c m.Case) error {
	arity := c.Function.Arity()
	if arity == 0 {
		return fmt.Errorf("case %s: unknown function %q: %w", c.ID, c.Function, ErrInvalidArgument)
	}

	if len(c.Args) != arity {
		return fmt.Errorf("case %s: %s takes %d arguments, got %d: %w",
			c.ID, c.Function, arity, len(c.Args), ErrInvalidArgument)
	}

	return nil
}

func trace(fn m.Function, args []int) (int, calc.Trace) {
	if fn == m.FunctionCalculate {
		return calc.CalculateTrace(args[0], args[1])
	}

	return calc.FuncTrace(args[0], args[1], args[2])
}
