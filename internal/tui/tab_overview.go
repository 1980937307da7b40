package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/pipeline"
	"github.com/copgauge/copgauge/internal/tui/components"
	"github.com/copgauge/copgauge/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	agg := a.agg
	var b strings.Builder

	if a.loadErr != nil {
		return fmt.Sprintf("\n  Could not load metrics: %s\n", a.loadErr)
	}
	if agg.IsEmpty() {
		return noDataMessage(a.opts.Org)
	}

	innerW := components.CardInnerWidth(cw)

	// Row 1: Metric cards, the acceptance rate colored by its quality band.
	cards := []components.Metric{
		{Label: "Active Users", Value: cli.FormatNumber(int64(agg.ActiveUsers)), Note: fmt.Sprintf("%d days", agg.Days)},
		{Label: "Engaged Users", Value: cli.FormatNumber(int64(agg.EngagedUsers))},
		{Label: "Acceptance Rate", Value: cli.FormatRate(agg.AcceptanceRate), Note: cli.FormatRatio(agg.Acceptances, agg.Suggestions), Accent: t.RateColor(agg.AcceptanceRate)},
		{Label: "Chats", Value: cli.FormatCount(agg.Chats)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Daily engaged users chart
	if len(a.dailies) > 0 {
		chartVals := make([]float64, len(a.dailies))
		chartLabels := make([]string, len(a.dailies))
		for i, d := range a.dailies {
			chartVals[i] = float64(d.EngagedUsers)
			chartLabels[i] = shortDateLabel(d.Date)
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Daily Engaged Users (%dd)", a.opts.Days),
			components.BarChart(components.BarSeries{Values: chartVals, Labels: chartLabels, Color: t.Blue}, innerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Feature adoption bars
	if agg.ActiveUsers > 0 {
		active := float64(agg.ActiveUsers)
		barW := innerW - 16 - 6
		if barW > 50 {
			barW = 50
		}
		if barW < 10 {
			barW = 10
		}

		var bars []string
		for _, f := range []struct {
			label string
			users int
		}{
			{"Completions", agg.CompletionUsers},
			{"IDE Chat", agg.IDEChatUsers},
			{"GitHub.com Chat", agg.PlatformChatUsers},
			{"PR Summaries", agg.PRUsers},
		} {
			bars = append(bars, components.AdoptionBar(f.label, float64(f.users)/active, 16, barW))
		}

		b.WriteString(components.ContentCard(
			"Feature Adoption (of active users)",
			strings.Join(bars, "\n"),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 4: Daily acceptance rate on a fixed percent axis, each bar colored
	// by its band so weak days stand out.
	if len(a.dailies) > 1 {
		rateVals := make([]float64, len(a.dailies))
		rateLabels := make([]string, len(a.dailies))
		for i, d := range a.dailies {
			rateVals[i] = float64(pipeline.Rate(d.Acceptances, d.Suggestions))
			rateLabels[i] = shortDateLabel(d.Date)
		}
		b.WriteString(components.ContentCard(
			"Daily Acceptance Rate",
			components.BarChart(components.BarSeries{Values: rateVals, Labels: rateLabels, Percent: true}, innerW, 8),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 5: Chat volume sparkline
	if len(a.dailies) > 1 {
		vals := make([]float64, len(a.dailies))
		for i, d := range a.dailies {
			vals[i] = float64(d.Chats)
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Daily Chats · %s total", cli.FormatCount(agg.Chats)),
			components.Sparkline(vals, t.Magenta),
			cw,
		))
	}

	return b.String()
}

func noDataMessage(org string) string {
	return fmt.Sprintf(
		"\n  No Copilot usage data available for %s.\n  Metrics appear once the org has 5+ active Copilot licenses.\n",
		org,
	)
}

// shortDateLabel turns "2025-06-03" into "3/6" for chart axes.
func shortDateLabel(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d", d.Day(), int(d.Month()))
}
