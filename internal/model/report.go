package model

import (
	"time"
)

// Status is the outcome of evaluating a case.
type Status string

const (
	// StatusPass means the function returned the expected value (and path).
	StatusPass Status = "pass"
	// StatusFail means the value or path differed from the expectation.
	StatusFail Status = "fail"
	// StatusError means the case could not be evaluated at all.
	StatusError Status = "error"
)

// Result represents the outcome of evaluating one case.
type Result struct {
	Case   Case   `yaml:"case"`
	Got    int    `yaml:"got"`
	Path   string `yaml:"path"`
	Status Status `yaml:"status"`
	// Branches and Conditions are what the call executed; coverage is
	// recomputed from them when shard reports are merged.
	Branches   []string        `yaml:"branches,flow,omitempty"`
	Conditions map[string]bool `yaml:"conditions,flow,omitempty"`
	Err        string          `yaml:"error,omitempty"`
}

// Coverage is what a set of results exercised in one function.
type Coverage struct {
	Function        Function `yaml:"function"`
	Cases           int      `yaml:"cases"`
	BranchesHit     int      `yaml:"branches_hit"`
	BranchesTotal   int      `yaml:"branches_total"`
	ConditionsHit   int      `yaml:"conditions_hit"`
	ConditionsTotal int      `yaml:"conditions_total"`
	Missing         []string `yaml:"missing,omitempty"`
}

// BranchPercent returns branch coverage in the range [0, 100].
func (c Coverage) BranchPercent() float64 {
	return percent(c.BranchesHit, c.BranchesTotal)
}

// ConditionPercent returns condition-outcome coverage in the range [0, 100].
func (c Coverage) ConditionPercent() float64 {
	return percent(c.ConditionsHit, c.ConditionsTotal)
}

func percent(hit, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(hit) * 100 / float64(total)
}

// Report is a persisted suite run.
type Report struct {
	Started  time.Time  `yaml:"started"`
	Duration string     `yaml:"duration"`
	Shard    string     `yaml:"shard,omitempty"`
	Results  []Result   `yaml:"results"`
	Coverage []Coverage `yaml:"coverage,omitempty"`
}

// Counts returns the number of passing, failing and erroring results.
func (r Report) Counts() (passed, failed, errored int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusPass:
			passed++
		case StatusFail:
			failed++
		case StatusError:
			errored++
		}
	}

	return passed, failed, errored
}
