package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/copgauge/copgauge/internal/github"
	"github.com/copgauge/copgauge/internal/model"
)

// benchDays builds a synthetic feed of n days, each with a handful of
// languages, editors and chat models, sized like a mid-size org window.
func benchDays(n int) []github.MetricsDay {
	langs := []string{"go", "typescript", "python", "java", "ruby", "rust", "c", "kotlin"}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	days := make([]github.MetricsDay, 0, n)
	for i := 0; i < n; i++ {
		var perModel []github.LanguageUsage
		var topLevel []github.LanguageUsage
		for j, name := range langs {
			perModel = append(perModel, github.LanguageUsage{
				Name:                    name,
				TotalEngagedUsers:       10 + j,
				TotalCodeSuggestions:    int64(1000 + 10*j),
				TotalCodeAcceptances:    int64(400 + 5*j),
				TotalCodeLinesSuggested: int64(3000 + 30*j),
				TotalCodeLinesAccepted:  int64(1200 + 12*j),
			})
			topLevel = append(topLevel, github.LanguageUsage{Name: name, TotalEngagedUsers: 12 + j})
		}

		days = append(days, github.MetricsDay{
			Date:              start.AddDate(0, 0, i).Format("2006-01-02"),
			TotalActiveUsers:  250,
			TotalEngagedUsers: 180,
			IDECodeCompletions: &github.CodeCompletions{
				TotalEngagedUsers: 160,
				Languages:         topLevel,
				Editors: []github.CompletionEditor{
					{
						Name:              "vscode",
						TotalEngagedUsers: 120,
						Models: []github.CompletionModel{
							{Name: "default", TotalEngagedUsers: 120, Languages: perModel},
						},
					},
					{
						Name:              "jetbrains",
						TotalEngagedUsers: 40,
						Models: []github.CompletionModel{
							{Name: "default", TotalEngagedUsers: 40, Languages: perModel},
						},
					},
				},
			},
			IDEChat: &github.IDEChat{
				TotalEngagedUsers: 90,
				Editors: []github.ChatEditor{
					{
						Name:              "vscode",
						TotalEngagedUsers: 90,
						Models: []github.ChatModel{
							{Name: "default", TotalEngagedUsers: 90, TotalChats: 600, TotalChatCopyEvents: 80, TotalChatInsertionEvents: 40},
						},
					},
				},
			},
		})
	}
	return days
}

func benchSnapshots(b *testing.B, n int) []model.Snapshot {
	b.Helper()
	snaps, report := NormalizeAll(benchDays(n))
	if report.SkippedSnapshots != 0 {
		b.Fatalf("skipped %d snapshots in benchmark fixture", report.SkippedSnapshots)
	}
	return snaps
}

func BenchmarkNormalizeAll(b *testing.B) {
	days := benchDays(90)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		snaps, _ := NormalizeAll(days)
		_ = snaps
	}
}

func BenchmarkAggregate(b *testing.B) {
	for _, n := range []int{7, 28, 90} {
		b.Run(fmt.Sprintf("days=%d", n), func(b *testing.B) {
			snaps := benchSnapshots(b, n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				agg := Aggregate(snaps)
				_ = agg
			}
		})
	}
}

func BenchmarkReduceDay(b *testing.B) {
	snaps := benchSnapshots(b, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dm := ReduceDay(snaps[0])
		_ = dm
	}
}

func BenchmarkTopN(b *testing.B) {
	snaps := benchSnapshots(b, 28)
	agg := Aggregate(snaps)
	entities := agg.Breakdown(model.BreakdownLanguages)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		top := TopN(entities, DefaultTopN)
		_ = top
	}
}
