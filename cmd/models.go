package cmd

import (
	"fmt"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Top models across completions and chat",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(_ *cobra.Command, _ []string) error {
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
	n := resolveTop(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MODELS  %s", org)))

	printed := 0

	completion := pipeline.TopN(agg.Breakdown(model.BreakdownCompletionModels), n)
	if len(completion) > 0 {
		rows := make([][]string, 0, len(completion))
		for i, e := range completion {
			rows = append(rows, []string{
				fmt.Sprintf("%d. %s", i+1, e.Name),
				cli.FormatNumber(int64(e.EngagedUsers)),
				cli.FormatRate(pipeline.AcceptanceRate(e)),
				cli.FormatRatio(e.Acceptances, e.Suggestions),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Code Completions",
			Headers: []string{"Model", "Users", "Rate", "Accepted / Suggested"},
			Rows:    rows,
		}))
		printed++
	}

	ideChat := pipeline.TopN(agg.Breakdown(model.BreakdownChatModels), n)
	if len(ideChat) > 0 {
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "IDE Chat",
			Headers: []string{"Model", "Users", "Chats"},
			Rows:    chatModelRows(ideChat),
		}))
		printed++
	}

	dotcom := pipeline.TopN(agg.Breakdown(model.BreakdownDotcomChatModels), n)
	if len(dotcom) > 0 {
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "GitHub.com Chat",
			Headers: []string{"Model", "Users", "Chats"},
			Rows:    chatModelRows(dotcom),
		}))
		printed++
	}

	pr := pipeline.TopN(agg.Breakdown(model.BreakdownPRModels), n)
	if len(pr) > 0 {
		rows := make([][]string, 0, len(pr))
		for i, e := range pr {
			rows = append(rows, []string{
				fmt.Sprintf("%d. %s", i+1, e.Name),
				cli.FormatNumber(int64(e.EngagedUsers)),
				cli.FormatNumber(e.PRSummaries),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "PR Summaries",
			Headers: []string{"Model", "Users", "Summaries"},
			Rows:    rows,
		}))
		printed++
	}

	if printed == 0 {
		fmt.Println("\n  No model data in the selected window.")
	}

	return nil
}

func chatModelRows(entities []model.Entity) [][]string {
	rows := make([][]string, 0, len(entities))
	for i, e := range entities {
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, e.Name),
			cli.FormatNumber(int64(e.EngagedUsers)),
			cli.FormatNumber(e.Chats),
		})
	}
	return rows
}
