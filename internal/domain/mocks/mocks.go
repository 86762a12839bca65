// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/piecewise/internal/domain"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// MockWorkflow is a mock type for the domain.Workflow type.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow and registers a cleanup that
// asserts expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	wf := &MockWorkflow{}
	wf.Mock.Test(t)

	t.Cleanup(func() { wf.AssertExpectations(t) })

	return wf
}

// Estimate provides a mock function.
func (_m *MockWorkflow) Estimate(args domain.EstimateArgs) error {
	return _m.Called(args).Error(0)
}

// Test provides a mock function.
func (_m *MockWorkflow) Test(args domain.TestArgs) error {
	return _m.Called(args).Error(0)
}

// View provides a mock function.
func (_m *MockWorkflow) View(args domain.ViewArgs) error {
	return _m.Called(args).Error(0)
}

// Eval provides a mock function.
func (_m *MockWorkflow) Eval(args domain.EvalArgs) error {
	return _m.Called(args).Error(0)
}

// Coverage provides a mock function.
func (_m *MockWorkflow) Coverage(args domain.EstimateArgs) error {
	return _m.Called(args).Error(0)
}

// MockEvaluator is a mock type for the domain.Evaluator type.
type MockEvaluator struct {
	mock.Mock
}

var _ domain.Evaluator = (*MockEvaluator)(nil)

// Evaluate provides a mock function.
func (_m *MockEvaluator) Evaluate(c m.Case) (m.Result, error) {
	args := _m.Called(c)
	return args.Get(0).(m.Result), args.Error(1)
}
