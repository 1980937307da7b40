package cmd

import (
	"fmt"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var editorsCmd = &cobra.Command{
	Use:   "editors",
	Short: "Top editors for completions and chat",
	RunE:  runEditors,
}

func init() {
	rootCmd.AddCommand(editorsCmd)
}

func runEditors(_ *cobra.Command, _ []string) error {
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
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EDITORS  %s", org)))

	completion := pipeline.TopN(agg.Breakdown(model.BreakdownEditors), n)
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
			Headers: []string{"Editor", "Users", "Rate", "Accepted / Suggested"},
			Rows:    rows,
		}))
	}

	chat := pipeline.TopN(agg.Breakdown(model.BreakdownChatEditors), n)
	if len(chat) > 0 {
		rows := make([][]string, 0, len(chat))
		for i, e := range chat {
			rows = append(rows, []string{
				fmt.Sprintf("%d. %s", i+1, e.Name),
				cli.FormatNumber(int64(e.EngagedUsers)),
				cli.FormatNumber(e.Chats),
				cli.FormatNumber(e.CopyEvents),
				cli.FormatNumber(e.InsertionEvents),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Chat",
			Headers: []string{"Editor", "Users", "Chats", "Copies", "Insertions"},
			Rows:    rows,
		}))
	}

	if len(completion) == 0 && len(chat) == 0 {
		fmt.Println("\n  No editor data in the selected window.")
	}

	return nil
}
