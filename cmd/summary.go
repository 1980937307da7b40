package cmd

import (
	"fmt"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Window summary of Copilot usage",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, org, err := loadData()
	if err != nil {
		return err
	}

	agg := pipeline.Aggregate(result.Snapshots)
	if agg.IsEmpty() {
		printNoData(org)
		return nil
	}

	dateRange, _ := pipeline.ResolveDateRange(result.Snapshots)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("COPILOT USAGE  %s", org)))
	fmt.Println()
	fmt.Printf("  %s – %s (%d days)\n\n", dateRange.Start, dateRange.End, dateRange.Days)

	rows := [][]string{
		{"Active Users", cli.FormatNumber(int64(agg.ActiveUsers))},
		{"Engaged Users", cli.FormatNumber(int64(agg.EngagedUsers))},
		{"---"},
		{"Suggestions", cli.FormatNumber(agg.Suggestions)},
		{"Acceptances", cli.FormatNumber(agg.Acceptances)},
		{"Acceptance Rate", cli.FormatRate(agg.AcceptanceRate)},
		{"Lines Suggested", cli.FormatNumber(agg.LinesSuggested)},
		{"Lines Accepted", cli.FormatNumber(agg.LinesAccepted)},
		{"Line Rate", cli.FormatRate(agg.LinesAcceptanceRate)},
		{"---"},
		{"Chats", cli.FormatNumber(agg.Chats)},
		{"Chat Copies", cli.FormatNumber(agg.ChatCopyEvents)},
		{"Chat Insertions", cli.FormatNumber(agg.ChatInsertions)},
		{"PR Summaries", cli.FormatNumber(agg.PRSummaries)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Feature adoption as share of active users
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Feature adoption",
		Headers: []string{"Feature", "Users", "Of Active"},
		Rows: [][]string{
			{"Code completions", cli.FormatNumber(int64(agg.CompletionUsers)), cli.FormatRate(pipeline.AdoptionRate(agg.CompletionUsers, agg.ActiveUsers))},
			{"IDE chat", cli.FormatNumber(int64(agg.IDEChatUsers)), cli.FormatRate(pipeline.AdoptionRate(agg.IDEChatUsers, agg.ActiveUsers))},
			{"Platform chat", cli.FormatNumber(int64(agg.PlatformChatUsers)), cli.FormatRate(pipeline.AdoptionRate(agg.PlatformChatUsers, agg.ActiveUsers))},
			{"PR summaries", cli.FormatNumber(int64(agg.PRUsers)), cli.FormatRate(pipeline.AdoptionRate(agg.PRUsers, agg.ActiveUsers))},
		},
	}))

	return nil
}
