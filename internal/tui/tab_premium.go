package tui

import (
	"fmt"
	"strings"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/tui/components"
	"github.com/copgauge/copgauge/internal/tui/theme"
)

func (a App) renderPremiumTab(cw int) string {
	if a.premiumErr != nil {
		return fmt.Sprintf("\n  Could not load premium usage: %s\n", a.premiumErr)
	}
	if !a.premiumOK {
		return fmt.Sprintf("\n  %s Loading premium request usage...\n", a.spinner.View())
	}

	report := a.premium
	if report.IsEmpty() {
		return "\n  No premium request usage recorded for this month.\n"
	}

	var b strings.Builder

	t := theme.Active
	cards := []components.Metric{
		{Label: "Requests", Value: cli.FormatNumber(report.Requests), Note: fmt.Sprintf("%s billed", cli.FormatNumber(report.BilledRequests))},
		{Label: "Gross", Value: cli.FormatUSD(report.Gross)},
		{Label: "Discount", Value: cli.FormatUSD(report.Discount), Accent: t.Green},
		{Label: "Net Cost", Value: cli.FormatUSD(report.Net), Accent: t.AccentBright},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	nameW := 10
	for _, m := range report.Models {
		if len(m.Model) > nameW {
			nameW = len(m.Model)
		}
	}
	if nameW > 32 {
		nameW = 32
	}

	var rows []string
	for _, m := range report.Models {
		rows = append(rows, fmt.Sprintf("%-*s  %9s req  %10s  −%9s  %10s",
			nameW, m.Model,
			cli.FormatNumber(m.Requests),
			cli.FormatUSD(m.Gross),
			cli.FormatUSD(m.Discount),
			cli.FormatUSD(m.Net),
		))
	}

	b.WriteString(components.ContentCard(
		"Cost by Model (current month)",
		strings.Join(rows, "\n"),
		cw,
	))

	return b.String()
}
