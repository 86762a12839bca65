package controller

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/piecewise/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI writing to output and reading keys from stdin.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	if cfg.mode == ModeTest {
		return t.startWithModel(newTestExecutionModel())
	}

	return t.startWithModel(newEstimateModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("tui already started")
	}

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done
	t.started = true

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the program if it is still running. Safe to call repeatedly.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayEstimation hands the selected cases to the list view.
func (t *TUI) DisplayEstimation(cases []m.Case, err error) error {
	t.ensureStarted()
	t.send(estimationMsg{cases: cases, err: err})

	return err
}

// DisplayConcurrencyInfo shows worker and shard settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shards: shardCount})
}

// DisplayUpcomingTestsInfo shows the number of cases about to run.
func (t *TUI) DisplayUpcomingTestsInfo(count int) {
	t.send(upcomingMsg{count: count})
}

// DisplayStartingCase marks a worker as busy with c.
func (t *TUI) DisplayStartingCase(c m.Case, threadID int) {
	t.send(startCaseMsg{id: c.ID, call: c.Call(), thread: threadID})
}

// DisplayCompletedCase advances the progress bar.
func (t *TUI) DisplayCompletedCase(result m.Result) {
	t.send(completedCaseMsg{result: result})
}

// DisplayReport switches to the results view.
func (t *TUI) DisplayReport(report m.Report) error {
	t.ensureStarted()
	t.send(reportMsg{report: report})

	return nil
}

// DisplayEvaluation prints a single call result without starting a program.
func (t *TUI) DisplayEvaluation(result m.Result) error {
	call := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(result.Case.Call())
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Render(fmt.Sprintf("%d", result.Got))
	path := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("path: " + result.Path)

	_, err := fmt.Fprintf(t.output, "%s = %s\n%s\n", call, value, path)

	return err
}

// DisplayCoverage prints coverage lines without starting a program.
func (t *TUI) DisplayCoverage(coverage []m.Coverage) error {
	if len(coverage) == 0 {
		_, err := fmt.Fprintln(t.output, "No coverage: no cases were evaluated")
		return err
	}

	title := titleStyle().Render("Piecewise Coverage")
	if _, err := fmt.Fprintln(t.output, title); err != nil {
		return err
	}

	for _, cov := range coverage {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		if len(cov.Missing) > 0 {
			style = style.Foreground(lipgloss.Color("3"))
		}

		if _, err := fmt.Fprintln(t.output, "  "+style.Render(coverageLine(cov))); err != nil {
			return err
		}
	}

	return nil
}
