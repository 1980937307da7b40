package cmd

import (
	"fmt"
	"sort"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Per-day usage table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	result, org, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Snapshots) == 0 {
		printNoData(org)
		return nil
	}

	days := make([]model.DailyMetrics, 0, len(result.Snapshots))
	for _, s := range result.Snapshots {
		days = append(days, pipeline.ReduceDay(s))
	}
	// Most recent first
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY USAGE  %s", org)))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Date,
			cli.FormatDayOfWeek(d.Date),
			cli.FormatNumber(int64(d.ActiveUsers)),
			cli.FormatNumber(int64(d.EngagedUsers)),
			cli.FormatNumber(d.Suggestions),
			cli.FormatNumber(d.Acceptances),
			cli.FormatNumber(d.Chats),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Active", "Engaged", "Suggested", "Accepted", "Chats"},
		Rows:    rows,
	}))

	return nil
}
