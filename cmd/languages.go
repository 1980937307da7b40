package cmd

import (
	"fmt"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Top languages by engaged users",
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(_ *cobra.Command, _ []string) error {
	result, org, err := loadData()
	if err != nil {
		return err
	}

	agg := pipeline.Aggregate(result.Snapshots)
	if agg.IsEmpty() {
		printNoData(org)
		return nil
	}

	cfg, _ := config.Load()
	top := pipeline.TopN(agg.Breakdown(model.BreakdownLanguages), resolveTop(cfg))
	if len(top) == 0 {
		fmt.Println("\n  No language data in the selected window.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP LANGUAGES  %s", org)))
	fmt.Println()

	rows := make([][]string, 0, len(top))
	for i, e := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, e.Name),
			cli.FormatNumber(int64(e.EngagedUsers)),
			cli.FormatRate(pipeline.AcceptanceRate(e)),
			cli.FormatRatio(e.Acceptances, e.Suggestions),
			cli.FormatRatio(e.LinesAccepted, e.LinesSuggested),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Language", "Users", "Rate", "Accepted / Suggested", "Lines Acc / Sug"},
		Rows:    rows,
	}))

	return nil
}
