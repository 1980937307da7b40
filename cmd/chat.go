package cmd

import (
	"fmt"
	"sort"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat volume per day",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

type chatDay struct {
	date        string
	users       int
	chats       int64
	copies      int64
	insertions  int64
	dotcomChats int64
}

func runChat(_ *cobra.Command, _ []string) error {
	result, org, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Snapshots) == 0 {
		printNoData(org)
		return nil
	}

	days := make([]chatDay, 0, len(result.Snapshots))
	for _, snap := range result.Snapshots {
		dm := pipeline.ReduceDay(snap)
		d := chatDay{
			date:       dm.Date,
			users:      snap.IDEChatUsers,
			chats:      dm.Chats,
			copies:     dm.ChatCopyEvents,
			insertions: dm.ChatInsertions,
		}
		for _, e := range snap.Entities(model.BreakdownDotcomChatModels) {
			d.dotcomChats += e.Chats
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date < days[j].date })

	series := make([]float64, 0, len(days))
	for _, d := range days {
		series = append(series, float64(d.chats))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CHAT  %s", org)))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderSparkline(series))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		rows = append(rows, []string{
			d.date,
			cli.FormatDayOfWeek(d.date),
			cli.FormatNumber(int64(d.users)),
			cli.FormatNumber(d.chats),
			cli.FormatNumber(d.copies),
			cli.FormatNumber(d.insertions),
			cli.FormatNumber(d.dotcomChats),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "IDE Users", "Chats", "Copies", "Insertions", "GitHub.com"},
		Rows:    rows,
	}))

	return nil
}
