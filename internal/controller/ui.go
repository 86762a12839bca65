// Package controller provides output adapters for displaying suite runs.
package controller

import (
	m "github.com/mouse-blink/piecewise/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeTest
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithTestMode sets the UI to test execution mode.
func WithTestMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTest
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeEstimate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying cases, runs and reports.
// Implementations can use different output methods (simple text, TUI, etc).
// DisplayStartingCase and DisplayCompletedCase are called concurrently
// from worker goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayEstimation(cases []m.Case, err error) error
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	DisplayUpcomingTestsInfo(count int)
	DisplayStartingCase(c m.Case, threadID int)
	DisplayCompletedCase(result m.Result)
	DisplayReport(report m.Report) error
	DisplayEvaluation(result m.Result) error
	DisplayCoverage(coverage []m.Coverage) error
}
