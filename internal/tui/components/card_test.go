package components

import (
	"strings"
	"testing"

	"github.com/copgauge/copgauge/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{120, 4},
		{121, 4},
		{10, 3},
		{7, 1},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d): widths sum to %d", tc.total, tc.n, sum)
		}
	}
}

func TestMetricCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	// A card with a note is one line taller; the joined row must pad the
	// shorter cards to match.
	row := MetricCardRow([]Metric{
		{Label: "Active Users", Value: "1,234", Note: "28 days"},
		{Label: "Chats", Value: "987"},
	}, 60)

	tall := MetricCard(Metric{Label: "Active Users", Value: "1,234", Note: "28 days"}, 30)
	if got, want := lipgloss.Height(row), lipgloss.Height(tall); got != want {
		t.Errorf("row height = %d, want tallest card height %d", got, want)
	}
}

func TestMetricCardRowRendersAllCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Active Users", Value: "1,234"},
		{Label: "Engaged Users", Value: "987"},
		{Label: "Acceptance Rate", Value: "38%", Accent: theme.Active.RateColor(38)},
	}, 90)

	for _, want := range []string{"Active Users", "Engaged Users", "Acceptance Rate", "1,234", "38%"} {
		if !strings.Contains(row, want) {
			t.Errorf("metric card row missing %q", want)
		}
	}
}

func TestContentCardKeepsBodyHeight(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "Content", 22)
	tall := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	if lipgloss.Height(short) >= lipgloss.Height(tall) {
		t.Errorf("heights: short %d, tall %d; want tall card taller",
			lipgloss.Height(short), lipgloss.Height(tall))
	}
}
