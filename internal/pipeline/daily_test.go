package pipeline

import (
	"testing"

	"github.com/copgauge/copgauge/internal/model"
)

func TestReduceDay(t *testing.T) {
	snap := day("2025-06-01", 50, 42, map[model.Breakdown][]model.Entity{
		model.BreakdownLanguages: {
			{Name: "go", Suggestions: 100, Acceptances: 40, LinesSuggested: 300, LinesAccepted: 120},
			{Name: "python", Suggestions: 60, Acceptances: 12},
		},
		// The editor view carries the same completion events bucketed
		// differently; it must not double the day's totals.
		model.BreakdownEditors: {
			{Name: "vscode", Suggestions: 160, Acceptances: 52},
		},
		model.BreakdownChatEditors: {
			{Name: "vscode", Chats: 80, CopyEvents: 20, InsertionEvents: 8},
			{Name: "jetbrains", Chats: 30},
		},
		model.BreakdownDotcomChatModels: {
			{Name: "default", Chats: 15},
		},
		model.BreakdownRepositories: {
			{Name: "acme/api", PRSummaries: 6},
		},
	})

	dm := ReduceDay(snap)
	if dm.Date != "2025-06-01" {
		t.Errorf("date = %s, want 2025-06-01", dm.Date)
	}
	if dm.ActiveUsers != 50 || dm.EngagedUsers != 42 {
		t.Errorf("users = %d/%d, want 50/42", dm.ActiveUsers, dm.EngagedUsers)
	}
	if dm.Suggestions != 160 || dm.Acceptances != 52 {
		t.Errorf("completions = %d/%d, want 160/52 (language view only)",
			dm.Suggestions, dm.Acceptances)
	}
	if dm.LinesSuggested != 300 || dm.LinesAccepted != 120 {
		t.Errorf("lines = %d/%d, want 300/120", dm.LinesSuggested, dm.LinesAccepted)
	}
	if dm.Chats != 125 {
		t.Errorf("chats = %d, want 125 (IDE chat + github.com chat)", dm.Chats)
	}
	if dm.ChatCopyEvents != 20 || dm.ChatInsertions != 8 {
		t.Errorf("chat events = %d/%d, want 20/8", dm.ChatCopyEvents, dm.ChatInsertions)
	}
	if dm.PRSummaries != 6 {
		t.Errorf("PR summaries = %d, want 6", dm.PRSummaries)
	}
}

func TestReduceDayEmptySnapshot(t *testing.T) {
	dm := ReduceDay(day("2025-06-01", 0, 0, nil))
	if dm.Suggestions != 0 || dm.Chats != 0 || dm.PRSummaries != 0 {
		t.Errorf("empty snapshot reduced to non-zero KPIs: %+v", dm)
	}
}
