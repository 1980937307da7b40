// Package tui provides the interactive Bubble Tea dashboard for copgauge.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"
	"github.com/copgauge/copgauge/internal/tui/components"
	"github.com/copgauge/copgauge/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UsageLoadedMsg is sent when the metrics load finishes.
type UsageLoadedMsg struct {
	Snapshots []model.Snapshot
	Report    model.QualityReport
	Err       error
}

// PremiumLoadedMsg is sent when the premium billing load finishes.
type PremiumLoadedMsg struct {
	Report model.PremiumReport
	Err    error
}

// Options configures the dashboard. The load functions run off the UI
// goroutine, so they may block on the network.
type Options struct {
	Org  string
	Days int
	TopN int

	LoadUsage   func() ([]model.Snapshot, model.QualityReport, error)
	LoadPremium func() (model.PremiumReport, error)
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	// Data
	snapshots []model.Snapshot
	agg       model.Aggregate
	dailies   []model.DailyMetrics
	dateRange model.DateRange
	report    model.QualityReport
	loaded    bool
	loadErr   error

	premium    model.PremiumReport
	premiumOK  bool
	premiumErr error

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	refreshing bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// New builds the dashboard model.
func New(opts Options) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return App{opts: opts, spinner: s}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		loadUsageCmd(a.opts.LoadUsage),
		loadPremiumCmd(a.opts.LoadPremium),
	)
}

func loadUsageCmd(load func() ([]model.Snapshot, model.QualityReport, error)) tea.Cmd {
	return func() tea.Msg {
		snaps, report, err := load()
		return UsageLoadedMsg{Snapshots: snaps, Report: report, Err: err}
	}
}

func loadPremiumCmd(load func() (model.PremiumReport, error)) tea.Cmd {
	return func() tea.Msg {
		report, err := load()
		return PremiumLoadedMsg{Report: report, Err: err}
	}
}

func (a *App) recompute() {
	a.agg = pipeline.Aggregate(a.snapshots)
	a.dateRange, _ = pipeline.ResolveDateRange(a.snapshots)

	a.dailies = a.dailies[:0]
	for _, s := range a.snapshots {
		a.dailies = append(a.dailies, pipeline.ReduceDay(s))
	}
	sort.Slice(a.dailies, func(i, j int) bool { return a.dailies[i].Date < a.dailies[j].Date })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "?":
			a.showHelp = true
			return a, nil
		case "r":
			if a.loaded && !a.refreshing {
				a.refreshing = true
				return a, tea.Batch(
					loadUsageCmd(a.opts.LoadUsage),
					loadPremiumCmd(a.opts.LoadPremium),
				)
			}
			return a, nil
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if r := []rune(msg.String()); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case UsageLoadedMsg:
		a.loaded = true
		a.refreshing = false
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.snapshots = msg.Snapshots
			a.report = msg.Report
			a.recompute()
		}
		return a, nil

	case PremiumLoadedMsg:
		a.premiumErr = msg.Err
		if msg.Err == nil {
			a.premium = msg.Report
			a.premiumOK = true
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded || a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  copgauge needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ copgauge"))
	b.WriteString(subtitleStyle.Render(" · Copilot Usage Metrics"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf(" Loading metrics for %s...", a.opts.Org)))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o l e m p", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"r", "Refresh data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	filterDimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	filterAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	filterStr := filterDimStyle.Render(" ") +
		filterAccentStyle.Render(a.opts.Org) +
		filterDimStyle.Render(" │ ") +
		filterAccentStyle.Render(fmt.Sprintf("%dd", a.opts.Days))
	if a.refreshing {
		filterStr += filterDimStyle.Render(" │ ") + filterDimStyle.Render("refreshing "+a.spinner.View())
	}

	filterRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		filterRowStyle.Render(filterStr)

	dataAge := ""
	if a.dateRange.Days > 0 {
		dataAge = fmt.Sprintf("%s – %s", a.dateRange.Start, a.dateRange.End)
	}
	statusBar := components.RenderStatusBar(w, dataAge)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderLanguagesTab(cw)
	case 2:
		content = a.renderEditorsTab(cw)
	case 3:
		content = a.renderModelsTab(cw)
	case 4:
		content = a.renderPremiumTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) topN() int {
	if a.opts.TopN > 0 {
		return a.opts.TopN
	}
	return pipeline.DefaultTopN
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
