package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/piecewise/internal/model"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	got := animateScroll("abcdef", 3, 10)
	if got == "ab…" || len([]rune(got)) != 3 {
		t.Fatalf("animateScroll scrolled = %q, want len 3 and not truncated", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestEstimateModel_Lifecycle(t *testing.T) {
	model := newEstimateModel()

	if got := model.View(); got != "Loading case list…\n" {
		t.Fatalf("View() before render = %q", got)
	}

	cmd := model.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil")
	}

	if _, ok := cmd().(tickMsg); !ok {
		t.Fatal("Init() cmd did not return tickMsg")
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(estimateModel)

	updated, _ = model.Update(estimationMsg{cases: []m.Case{
		{ID: "calculate/statement/01", Function: m.FunctionCalculate, Args: []int{5, 3}, Expected: 8},
		{ID: "func/statement/01", Function: m.FunctionFunc, Args: []int{8, 5, 2}, Expected: 22},
		{ID: "func/statement/02", Function: m.FunctionFunc, Args: []int{10, 3, 1}, Expected: 2},
	}})
	model = updated.(estimateModel)

	view := model.View()
	for _, want := range []string{"Piecewise Case Suite", "Total Cases", "3", "calculate/statement/01"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q\n%s", want, view)
		}
	}

	if model.perFunction[m.FunctionFunc] != 2 || model.perFunction[m.FunctionCalculate] != 1 {
		t.Fatalf("perFunction = %v", model.perFunction)
	}

	updated, cmd = model.Update(tickMsg(time.Now()))
	model = updated.(estimateModel)

	if cmd == nil {
		t.Fatal("tick after render should schedule the next tick")
	}

	if model.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", model.animOffset)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(estimateModel)

	if model.lastSelected != 1 || model.animOffset != 0 {
		t.Fatalf("selection change should reset animation, got selected=%d offset=%d", model.lastSelected, model.animOffset)
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q did not return tea.Quit")
	}
}

func TestEstimateModel_TickBeforeRenderStops(t *testing.T) {
	model := newEstimateModel()

	_, cmd := model.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Fatal("tick before render should not reschedule")
	}
}

func TestEstimateModel_ErrorView(t *testing.T) {
	model := newEstimateModel()

	updated, _ := model.Update(estimationMsg{err: errors.New("bad pattern")})
	view := updated.(estimateModel).View()

	if !strings.Contains(view, "estimation error: bad pattern") {
		t.Fatalf("View missing error\n%s", view)
	}
}

func TestCaseItem_FilterValue(t *testing.T) {
	item := caseItem{c: m.Case{ID: "func/path/01", Function: m.FunctionFunc, Args: []int{1, 4, 1}, Criterion: m.CriterionPath}}

	if got := item.FilterValue(); got != "func/path/01 func(1, 4, 1) path" {
		t.Fatalf("FilterValue() = %q", got)
	}
}
