package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/piecewise/internal/model"
)

// Simple delegate for estimate list items.
type estimateDelegate struct {
	offset int
}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ci, ok := item.(caseItem)
	if !ok {
		return
	}

	width := lm.Width() - 26 // ID column (24) + spacing (2)
	text := fmt.Sprintf("%s -> %d  %s", ci.c.Call(), ci.c.Expected, ci.c.ExpectPath)

	var idStyle, textStyle lipgloss.Style

	var display string

	if index == lm.Index() {
		idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(24)
		textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		display = animateScroll(text, width, d.offset)
	} else {
		idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(24)
		textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		display = truncateToWidth(text, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		idStyle.Render(truncateToWidth(ci.c.ID, 24)),
		textStyle.Render(display),
	)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// estimateModel lists the selected cases without running them.
type estimateModel struct {
	width        int
	height       int
	caseList     list.Model
	delegate     estimateDelegate
	total        int
	perFunction  map[m.Function]int
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newEstimateModel() estimateModel {
	delegate := estimateDelegate{}
	caseList := list.New([]list.Item{}, delegate, 80, 20)
	caseList.SetShowPagination(false)
	caseList.SetShowFilter(true)
	caseList.SetShowHelp(false)
	caseList.SetShowTitle(false)
	caseList.SetShowStatusBar(false)
	caseList.FilterInput.Placeholder = "Filter by id, call or criterion…"

	return estimateModel{
		caseList:     caseList,
		delegate:     delegate,
		perFunction:  make(map[m.Function]int),
		lastSelected: -1,
	}
}

func (em estimateModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (em estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height
		em.caseList.SetWidth(em.width)

	case tickMsg:
		if em.caseList.FilterState() != list.Filtering && em.rendered {
			em.animOffset++
			em.delegate.offset = em.animOffset
			em.caseList.SetDelegate(em.delegate)

			return em, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return em, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && em.caseList.FilterState() != list.Filtering) {
			return em, tea.Quit
		}

		em.caseList, cmd = em.caseList.Update(msg)

		if em.caseList.Index() != em.lastSelected {
			em.lastSelected = em.caseList.Index()
			em.animOffset = 0
			em.delegate.offset = 0
			em.caseList.SetDelegate(em.delegate)
		}

		return em, cmd

	case estimationMsg:
		em = em.handleEstimationMsg(msg)
	}

	return em, cmd
}

func (em estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	em.rendered = true
	em.err = msg.err

	if msg.err != nil {
		return em
	}

	em.total = len(msg.cases)
	em.perFunction = make(map[m.Function]int)

	items := make([]list.Item, 0, len(msg.cases))
	for _, c := range msg.cases {
		items = append(items, caseItem{c: c})
		em.perFunction[c.Function]++
	}

	em.caseList.SetItems(items)

	if len(items) > 0 && em.lastSelected == -1 {
		em.lastSelected = 0
	}

	return em
}

func (em estimateModel) View() string {
	if !em.rendered {
		return "Loading case list…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Piecewise Case Suite")

	if em.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 0, 1, 2)
		return lipgloss.JoinVertical(lipgloss.Left, title, errStyle.Render("estimation error: "+em.err.Error()))
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Total Cases: %s   calculate: %s   func: %s",
		accentStyle.Render(fmt.Sprintf("%d", em.total)),
		accentStyle.Render(fmt.Sprintf("%d", em.perFunction[m.FunctionCalculate])),
		accentStyle.Render(fmt.Sprintf("%d", em.perFunction[m.FunctionFunc])),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(em.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		em.renderTable(),
		footer,
	)
}

func (em estimateModel) renderTable() string {
	// Title (2) + summary (2) + footer (1) + border (2) + header (2)
	listHeight := em.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin (2) + border (2) + padding (2)
	listWidth := em.width - 6
	if listWidth < 40 {
		listWidth = 40
	}

	em.caseList.SetHeight(listHeight)
	em.caseList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-24s  %s", "Case", "Call -> Expected  Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			em.caseList.View(),
		),
	)
}
