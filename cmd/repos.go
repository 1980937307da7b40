package cmd

import (
	"fmt"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Top repositories by PR summary activity",
	RunE:  runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

func runRepos(_ *cobra.Command, _ []string) error {
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
	top := pipeline.TopN(agg.Breakdown(model.BreakdownRepositories), resolveTop(cfg))
	if len(top) == 0 {
		fmt.Println("\n  No pull request data in the selected window.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PR SUMMARIES  %s", org)))
	fmt.Println()

	rows := make([][]string, 0, len(top))
	for i, e := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, e.Name),
			cli.FormatNumber(int64(e.EngagedUsers)),
			cli.FormatNumber(e.PRSummaries),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Repository", "Users", "Summaries"},
		Rows:    rows,
	}))

	return nil
}
