package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/piecewise/internal/model"
)

var statusColors = map[m.Status]lipgloss.Color{
	m.StatusPass:  lipgloss.Color("2"), // Green
	m.StatusFail:  lipgloss.Color("1"), // Red
	m.StatusError: lipgloss.Color("1"),
}

// resultDelegate renders one result per line.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ri, ok := item.(resultItem)
	if !ok {
		return
	}

	width := lm.Width() - 34 // ID (24) + status (6) + spacing (4)

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(24)
	statusStyle := lipgloss.NewStyle().Bold(true).Width(6)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	color, ok := statusColors[ri.r.Status]
	if !ok {
		color = lipgloss.Color("8")
	}

	statusStyle = statusStyle.Foreground(color)
	display := truncateToWidth(ri.summary(), width)

	if index == lm.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		idStyle = selected.Width(24)
		statusStyle = selected.Width(6)
		textStyle = selected
		display = animateScroll(ri.summary(), width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		idStyle.Render(truncateToWidth(ri.r.Case.ID, 24)),
		statusStyle.Render(string(ri.r.Status)),
		textStyle.Render(display),
	)
}

// testExecutionModel shows progress while cases run and the results after.
type testExecutionModel struct {
	width           int
	height          int
	progressBar     progress.Model
	totalCases      int
	completedCount  int
	failedCount     int
	progressPercent float64
	threads         int
	shardIndex      int
	totalShards     int
	threadCases     map[int]string // thread ID -> call being evaluated
	rendered        bool
	finished        bool
	report          m.Report
	resultsList     list.Model
	delegate        resultDelegate
	animOffset      int
	lastSelected    int
}

func newTestExecutionModel() testExecutionModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return testExecutionModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		threads:      1,
		totalShards:  1,
		threadCases:  make(map[int]string),
		lastSelected: -1,
	}
}

func (tm testExecutionModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (tm testExecutionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.width = msg.Width
		tm.height = msg.Height
		tm.resultsList.SetWidth(tm.width)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && tm.resultsList.FilterState() != list.Filtering) {
			return tm, tea.Quit
		}

		if tm.finished {
			tm.resultsList, cmd = tm.resultsList.Update(msg)
			if tm.resultsList.Index() != tm.lastSelected {
				tm.lastSelected = tm.resultsList.Index()
				tm.animOffset = 0
				tm.delegate.offset = 0
				tm.resultsList.SetDelegate(tm.delegate)
			}
		}

	case tickMsg:
		if tm.finished && tm.resultsList.FilterState() != list.Filtering {
			tm.animOffset++
			tm.delegate.offset = tm.animOffset
			tm.resultsList.SetDelegate(tm.delegate)
		}

		return tm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case concurrencyMsg:
		tm.rendered = true
		tm.threads = msg.threads
		tm.shardIndex = msg.shardIndex
		tm.totalShards = msg.shards

	case upcomingMsg:
		tm.rendered = true
		tm.totalCases = msg.count
		tm.completedCount = 0
		tm.failedCount = 0
		tm.progressPercent = 0

	case startCaseMsg:
		tm.rendered = true
		tm.threadCases[msg.thread] = msg.id + " " + msg.call

	case completedCaseMsg:
		tm = tm.handleCompletedCase(msg)

	case reportMsg:
		tm = tm.handleReport(msg)
	}

	return tm, cmd
}

func (tm testExecutionModel) handleCompletedCase(msg completedCaseMsg) testExecutionModel {
	tm.rendered = true
	tm.completedCount++

	if msg.result.Status != m.StatusPass {
		tm.failedCount++
	}

	for thread, current := range tm.threadCases {
		if strings.HasPrefix(current, msg.result.Case.ID+" ") {
			delete(tm.threadCases, thread)
		}
	}

	if tm.totalCases > 0 {
		tm.progressPercent = float64(tm.completedCount) / float64(tm.totalCases)
	}

	return tm
}

func (tm testExecutionModel) handleReport(msg reportMsg) testExecutionModel {
	tm.rendered = true
	tm.finished = true
	tm.report = msg.report
	tm.progressPercent = 1

	// Failures first so they are visible without scrolling.
	items := make([]list.Item, 0, len(msg.report.Results))
	for _, res := range msg.report.Results {
		if res.Status != m.StatusPass {
			items = append(items, resultItem{r: res})
		}
	}

	for _, res := range msg.report.Results {
		if res.Status == m.StatusPass {
			items = append(items, resultItem{r: res})
		}
	}

	tm.resultsList.SetItems(items)

	if len(items) > 0 {
		tm.lastSelected = 0
	}

	return tm
}

func (tm testExecutionModel) View() string {
	if !tm.rendered {
		return "Initializing suite run…\n"
	}

	if tm.finished {
		return tm.viewResults()
	}

	return tm.viewProgress()
}

func (tm testExecutionModel) viewProgress() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle().Render("Piecewise Suite Run")

	summary := summaryStyle().Render(fmt.Sprintf(
		"Progress: %s / %s  •  Failed: %s  •  Threads: %s  •  Shard: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", tm.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", tm.totalCases)),
		accentStyle.Render(fmt.Sprintf("%d", tm.failedCount)),
		accentStyle.Render(fmt.Sprintf("%d", tm.threads)),
		accentStyle.Render(fmt.Sprintf("%d", tm.shardIndex)),
		accentStyle.Render(fmt.Sprintf("%d", tm.totalShards)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(tm.progressBar.ViewAs(tm.progressPercent))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		tm.renderThreadBox(),
		footerStyle(tm.width).Render("Press q to quit"),
	)
}

func (tm testExecutionModel) renderThreadBox() string {
	boxWidth := tm.width - 4
	if boxWidth < 20 {
		boxWidth = 20
	}

	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(boxWidth)

	caseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	lines := make([]string, 0, tm.threads)

	for i := range tm.threads {
		current := tm.threadCases[i]
		if current == "" {
			current = "idle"
		}

		line := caseStyle.Render(truncateToWidth(current, boxWidth-16))
		if tm.threads > 1 {
			line = fmt.Sprintf("Thread %d: %s", i, line)
		}

		lines = append(lines, line)
	}

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (tm testExecutionModel) viewResults() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	passed, failed, errored := tm.report.Counts()

	title := titleStyle().Render("Piecewise Suite Results")

	summary := summaryStyle().Render(fmt.Sprintf(
		"Total: %s  •  Passed: %s  •  Failed: %s  •  Errors: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(tm.report.Results))),
		accentStyle.Render(fmt.Sprintf("%d", passed)),
		accentStyle.Render(fmt.Sprintf("%d", failed)),
		accentStyle.Render(fmt.Sprintf("%d", errored)),
	))

	sections := []string{title, summary, tm.renderResultsBox()}

	if len(tm.report.Coverage) > 0 {
		sections = append(sections, tm.renderCoverage())
	}

	sections = append(sections, footerStyle(tm.width).Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (tm testExecutionModel) renderResultsBox() string {
	listWidth := tm.width - 4
	if listWidth < 40 {
		listWidth = 40
	}

	listHeight := tm.height - 10 - 2*len(tm.report.Coverage)
	if listHeight < 5 {
		listHeight = 5
	}

	tm.resultsList.SetHeight(listHeight)
	tm.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-24s  %-6s  %s", "Case", "Status", "Call = Got (Want) Path"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, tm.resultsList.View()))
}

func (tm testExecutionModel) renderCoverage() string {
	lines := make([]string, 0, len(tm.report.Coverage))
	for _, cov := range tm.report.Coverage {
		lines = append(lines, coverageLine(cov))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func coverageLine(cov m.Coverage) string {
	line := fmt.Sprintf("%-9s branches %d/%d (%.0f%%)  conditions %d/%d (%.0f%%)",
		cov.Function,
		cov.BranchesHit, cov.BranchesTotal, cov.BranchPercent(),
		cov.ConditionsHit, cov.ConditionsTotal, cov.ConditionPercent())

	if len(cov.Missing) > 0 {
		line += "  missing: " + strings.Join(cov.Missing, ", ")
	}

	return line
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)
}

func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)
}

func footerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(width)
}
