// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/piecewise/internal/controller"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// MockUI is a mock type for the controller.UI type.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a MockUI and registers a cleanup that asserts expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// Start provides a mock function.
func (_m *MockUI) Start(options ...controller.StartOption) error {
	args := _m.Called()
	return args.Error(0)
}

// Close provides a mock function.
func (_m *MockUI) Close() {
	_m.Called()
}

// Wait provides a mock function.
func (_m *MockUI) Wait() {
	_m.Called()
}

// DisplayEstimation provides a mock function.
func (_m *MockUI) DisplayEstimation(cases []m.Case, err error) error {
	args := _m.Called(cases, err)
	return args.Error(0)
}

// DisplayConcurrencyInfo provides a mock function.
func (_m *MockUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	_m.Called(threads, shardIndex, shardCount)
}

// DisplayUpcomingTestsInfo provides a mock function.
func (_m *MockUI) DisplayUpcomingTestsInfo(count int) {
	_m.Called(count)
}

// DisplayStartingCase provides a mock function.
func (_m *MockUI) DisplayStartingCase(c m.Case, threadID int) {
	_m.Called(c, threadID)
}

// DisplayCompletedCase provides a mock function.
func (_m *MockUI) DisplayCompletedCase(result m.Result) {
	_m.Called(result)
}

// DisplayReport provides a mock function.
func (_m *MockUI) DisplayReport(report m.Report) error {
	args := _m.Called(report)
	return args.Error(0)
}

// DisplayEvaluation provides a mock function.
func (_m *MockUI) DisplayEvaluation(result m.Result) error {
	args := _m.Called(result)
	return args.Error(0)
}

// DisplayCoverage provides a mock function.
func (_m *MockUI) DisplayCoverage(coverage []m.Coverage) error {
	args := _m.Called(coverage)
	return args.Error(0)
}
