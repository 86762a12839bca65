package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/piecewise/internal/model"
)

type tickMsg time.Time

// Message types.
type estimationMsg struct {
	cases []m.Case
	err   error
}

type upcomingMsg struct {
	count int
}

type startCaseMsg struct {
	id     string
	call   string
	thread int
}

type completedCaseMsg struct {
	result m.Result
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shards     int
}

type reportMsg struct {
	report m.Report
}

// List item types.
type caseItem struct {
	c m.Case
}

func (i caseItem) FilterValue() string {
	return i.c.ID + " " + i.c.Call() + " " + string(i.c.Criterion)
}

type resultItem struct {
	r m.Result
}

func (i resultItem) FilterValue() string {
	return i.r.Case.ID + " " + i.r.Case.Call() + " " + string(i.r.Status) + " " + i.r.Path
}

func (i resultItem) summary() string {
	if i.r.Status == m.StatusError {
		return i.r.Err
	}

	return fmt.Sprintf("%s = %d (want %d) %s", i.r.Case.Call(), i.r.Got, i.r.Case.Expected, i.r.Path)
}
