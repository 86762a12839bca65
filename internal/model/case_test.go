package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunction_Arity(t *testing.T) {
	assert.Equal(t, 2, FunctionCalculate.Arity())
	assert.Equal(t, 3, FunctionFunc.Arity())
	assert.Equal(t, 0, Function("sqrt").Arity())
}

func TestCase_Call(t *testing.T) {
	c := Case{Function: FunctionFunc, Args: []int{8, 5, -2}}
	assert.Equal(t, "func(8, 5, -2)", c.Call())

	assert.Equal(t, "calculate()", Case{Function: FunctionCalculate}.Call())
}

func TestReport_Counts(t *testing.T) {
	r := Report{Results: []Result{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusFail},
		{Status: StatusError},
	}}

	passed, failed, errored := r.Counts()
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, errored)
}

func TestCoverage_Percentages(t *testing.T) {
	c := Coverage{BranchesHit: 3, BranchesTotal: 4, ConditionsHit: 0, ConditionsTotal: 0}

	assert.InDelta(t, 75.0, c.BranchPercent(), 0.001)
	assert.InDelta(t, 0.0, c.ConditionPercent(), 0.001)
}
