// Package components provides the widgets of the copgauge dashboard.
package components

import (
	"strings"

	"github.com/copgauge/copgauge/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline number for the card row. A zero Accent renders the
// value in the primary text color.
type Metric struct {
	Label  string
	Value  string
	Note   string // secondary line under the value, often a ratio or window
	Accent lipgloss.Color
}

// LayoutRow splits totalWidth into n column widths that sum to exactly
// totalWidth; later columns absorb the remainder of the division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	rem := totalWidth
	for i := range widths {
		w := rem / (n - i)
		widths[i] = w
		rem -= w
	}
	return widths
}

// MetricCard renders one bordered metric. outerWidth is the total rendered
// width including the border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	accent := m.Accent
	if accent == "" {
		accent = t.TextPrimary
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label),
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(m.Value),
	}
	if m.Note != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note))
	}

	return box.Render(strings.Join(lines, "\n"))
}

// MetricCardRow renders the metrics side by side, filling totalWidth exactly.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content block with an optional title line.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n" + body
	}

	return box.Render(content)
}

// CardInnerWidth returns the usable text width inside a card given its outer
// width (subtracts border and padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
