// Package mocks provides testify mocks for the adapter package.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/piecewise/internal/adapter"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// MockCaseStore is a mock type for the adapter.CaseStore type.
type MockCaseStore struct {
	mock.Mock
}

var _ adapter.CaseStore = (*MockCaseStore)(nil)

// NewMockCaseStore creates a MockCaseStore and registers a cleanup that
// asserts expectations.
func NewMockCaseStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCaseStore {
	store := &MockCaseStore{}
	store.Mock.Test(t)

	t.Cleanup(func() { store.AssertExpectations(t) })

	return store
}

// LoadCases provides a mock function.
func (_m *MockCaseStore) LoadCases(path m.Path) ([]m.Case, error) {
	args := _m.Called(path)

	var cases []m.Case
	if v := args.Get(0); v != nil {
		cases = v.([]m.Case)
	}

	return cases, args.Error(1)
}

// MockReportStore is a mock type for the adapter.ReportStore type.
type MockReportStore struct {
	mock.Mock
}

var _ adapter.ReportStore = (*MockReportStore)(nil)

// NewMockReportStore creates a MockReportStore and registers a cleanup that
// asserts expectations.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	store := &MockReportStore{}
	store.Mock.Test(t)

	t.Cleanup(func() { store.AssertExpectations(t) })

	return store
}

// SaveReport provides a mock function.
func (_m *MockReportStore) SaveReport(dir m.Path, report m.Report) error {
	args := _m.Called(dir, report)
	return args.Error(0)
}

// LoadReport provides a mock function.
func (_m *MockReportStore) LoadReport(dir m.Path) (m.Report, error) {
	args := _m.Called(dir)
	return args.Get(0).(m.Report), args.Error(1)
}

// CleanReports provides a mock function.
func (_m *MockReportStore) CleanReports(dir m.Path) error {
	args := _m.Called(dir)
	return args.Error(0)
}
