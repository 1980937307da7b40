package components

import (
	"strings"

	"github.com/copgauge/copgauge/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom key-hint bar with the loaded date range
// right-aligned.
func RenderStatusBar(width int, dataRange string) string {
	t := theme.Active

	left := " [?]help  [r]efresh  [q]uit"
	right := ""
	if dataRange != "" {
		right = "Data: " + dataRange + " "
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}

	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width).
		Render(left + strings.Repeat(" ", pad) + right)
}
