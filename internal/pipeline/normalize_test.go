package pipeline

import (
	"errors"
	"testing"

	"github.com/copgauge/copgauge/internal/github"
	"github.com/copgauge/copgauge/internal/model"
)

func findEntity(t *testing.T, s model.Snapshot, b model.Breakdown, name string) model.Entity {
	t.Helper()
	for _, e := range s.Entities(b) {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entity %q not found in %s breakdown", name, b)
	return model.Entity{}
}

func TestNormalizeMissingDate(t *testing.T) {
	_, _, err := Normalize(github.MetricsDay{TotalActiveUsers: 5})
	if !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("got err %v, want ErrInvalidSnapshot", err)
	}
}

func TestNormalizeAbsentGroups(t *testing.T) {
	snap, dropped, err := Normalize(github.MetricsDay{Date: "2025-06-01", TotalActiveUsers: 7})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if snap.TotalActiveUsers != 7 {
		t.Errorf("active users = %d, want 7", snap.TotalActiveUsers)
	}
	// Every breakdown view must be present even when the feed omits the group.
	for _, b := range model.AllBreakdowns() {
		if snap.Breakdowns[b] == nil {
			t.Errorf("breakdown %s is nil, want empty slice", b)
		}
		if len(snap.Breakdowns[b]) != 0 {
			t.Errorf("breakdown %s has %d entries, want 0", b, len(snap.Breakdowns[b]))
		}
	}
}

func TestNormalizeLanguageRollup(t *testing.T) {
	raw := github.MetricsDay{
		Date: "2025-06-01",
		IDECodeCompletions: &github.CodeCompletions{
			TotalEngagedUsers: 20,
			Languages: []github.LanguageUsage{
				{Name: "go", TotalEngagedUsers: 12},
			},
			Editors: []github.CompletionEditor{
				{
					Name:              "vscode",
					TotalEngagedUsers: 18,
					Models: []github.CompletionModel{
						{
							Name:              "default",
							TotalEngagedUsers: 18,
							Languages: []github.LanguageUsage{
								{Name: "go", TotalEngagedUsers: 10, TotalCodeSuggestions: 100, TotalCodeAcceptances: 40, TotalCodeLinesSuggested: 300, TotalCodeLinesAccepted: 120},
								{Name: "python", TotalEngagedUsers: 6, TotalCodeSuggestions: 50, TotalCodeAcceptances: 10},
							},
						},
					},
				},
			},
		},
	}

	snap, dropped, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if snap.CompletionUsers != 20 {
		t.Errorf("completion users = %d, want 20", snap.CompletionUsers)
	}

	goLang := findEntity(t, snap, model.BreakdownLanguages, "go")
	// The top-level language entry reported 12 engaged users, the nested one
	// 10. Both describe the same users, so the larger count wins.
	if goLang.EngagedUsers != 12 {
		t.Errorf("go engaged users = %d, want 12 (max-merge)", goLang.EngagedUsers)
	}
	if goLang.Suggestions != 100 || goLang.Acceptances != 40 {
		t.Errorf("go counts = %d/%d, want 100/40", goLang.Suggestions, goLang.Acceptances)
	}
	if goLang.LinesSuggested != 300 || goLang.LinesAccepted != 120 {
		t.Errorf("go lines = %d/%d, want 300/120", goLang.LinesSuggested, goLang.LinesAccepted)
	}

	// The nested per-model counts roll up to the editor and model views.
	editor := findEntity(t, snap, model.BreakdownEditors, "vscode")
	if editor.Suggestions != 150 {
		t.Errorf("editor suggestions = %d, want 150", editor.Suggestions)
	}
	mdl := findEntity(t, snap, model.BreakdownCompletionModels, "default")
	if mdl.Suggestions != 150 || mdl.Acceptances != 50 {
		t.Errorf("model counts = %d/%d, want 150/50", mdl.Suggestions, mdl.Acceptances)
	}
}

func TestNormalizeModelAcrossEditorsSameDay(t *testing.T) {
	raw := github.MetricsDay{
		Date: "2025-06-01",
		IDECodeCompletions: &github.CodeCompletions{
			Editors: []github.CompletionEditor{
				{
					Name:              "vscode",
					TotalEngagedUsers: 30,
					Models: []github.CompletionModel{
						{
							Name:              "default",
							TotalEngagedUsers: 30,
							Languages: []github.LanguageUsage{
								{Name: "go", TotalEngagedUsers: 30, TotalCodeSuggestions: 200, TotalCodeAcceptances: 80},
							},
						},
					},
				},
				{
					Name:              "jetbrains",
					TotalEngagedUsers: 12,
					Models: []github.CompletionModel{
						{
							Name:              "default",
							TotalEngagedUsers: 12,
							Languages: []github.LanguageUsage{
								{Name: "go", TotalEngagedUsers: 12, TotalCodeSuggestions: 50, TotalCodeAcceptances: 20},
							},
						},
					},
				},
			},
		},
		IDEChat: &github.IDEChat{
			Editors: []github.ChatEditor{
				{
					Name:              "vscode",
					TotalEngagedUsers: 25,
					Models: []github.ChatModel{
						{Name: "default", TotalEngagedUsers: 25, TotalChats: 100},
					},
				},
				{
					Name:              "jetbrains",
					TotalEngagedUsers: 8,
					Models: []github.ChatModel{
						{Name: "default", TotalEngagedUsers: 8, TotalChats: 40},
					},
				},
			},
		},
	}

	snap, _, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// A user running the same model in both editors appears in both per-editor
	// counts, so engaged users take the larger count while the activity
	// totals, which are disjoint per editor, still sum.
	mdl := findEntity(t, snap, model.BreakdownCompletionModels, "default")
	if mdl.EngagedUsers != 30 {
		t.Errorf("completion model engaged users = %d, want 30 (max across editors)", mdl.EngagedUsers)
	}
	if mdl.Suggestions != 250 || mdl.Acceptances != 100 {
		t.Errorf("completion model counts = %d/%d, want 250/100", mdl.Suggestions, mdl.Acceptances)
	}

	chat := findEntity(t, snap, model.BreakdownChatModels, "default")
	if chat.EngagedUsers != 25 {
		t.Errorf("chat model engaged users = %d, want 25 (max across editors)", chat.EngagedUsers)
	}
	if chat.Chats != 140 {
		t.Errorf("chat model chats = %d, want 140", chat.Chats)
	}
}

func TestNormalizeDropsNamelessEntries(t *testing.T) {
	raw := github.MetricsDay{
		Date: "2025-06-01",
		IDECodeCompletions: &github.CodeCompletions{
			Languages: []github.LanguageUsage{
				{Name: "", TotalCodeSuggestions: 99},
				{Name: "go", TotalCodeSuggestions: 10},
			},
		},
		DotcomChat: &github.DotcomChat{
			Models: []github.ChatModel{
				{Name: "", TotalChats: 5},
			},
		},
	}

	snap, dropped, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if got := len(snap.Entities(model.BreakdownLanguages)); got != 1 {
		t.Errorf("language entries = %d, want 1", got)
	}
	if got := len(snap.Entities(model.BreakdownDotcomChatModels)); got != 0 {
		t.Errorf("dotcom chat entries = %d, want 0", got)
	}
}

func TestNormalizeChatAndPRGroups(t *testing.T) {
	raw := github.MetricsDay{
		Date: "2025-06-01",
		IDEChat: &github.IDEChat{
			TotalEngagedUsers: 9,
			Editors: []github.ChatEditor{
				{
					Name:              "vscode",
					TotalEngagedUsers: 9,
					Models: []github.ChatModel{
						{Name: "default", TotalEngagedUsers: 9, TotalChats: 120, TotalChatCopyEvents: 30, TotalChatInsertionEvents: 12},
					},
				},
			},
		},
		DotcomPullRequests: &github.DotcomPullRequests{
			TotalEngagedUsers: 3,
			Repositories: []github.PRRepository{
				{
					Name:              "acme/api",
					TotalEngagedUsers: 3,
					Models: []github.PRModel{
						{Name: "default", TotalEngagedUsers: 3, TotalPRSummariesCreated: 7},
					},
				},
			},
		},
	}

	snap, _, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	chatEd := findEntity(t, snap, model.BreakdownChatEditors, "vscode")
	if chatEd.Chats != 120 || chatEd.CopyEvents != 30 || chatEd.InsertionEvents != 12 {
		t.Errorf("chat editor counts = %d/%d/%d, want 120/30/12",
			chatEd.Chats, chatEd.CopyEvents, chatEd.InsertionEvents)
	}

	repo := findEntity(t, snap, model.BreakdownRepositories, "acme/api")
	if repo.PRSummaries != 7 {
		t.Errorf("repo PR summaries = %d, want 7", repo.PRSummaries)
	}
	prModel := findEntity(t, snap, model.BreakdownPRModels, "default")
	if prModel.PRSummaries != 7 {
		t.Errorf("PR model summaries = %d, want 7", prModel.PRSummaries)
	}
}

func TestNormalizeAllSkipsAndCounts(t *testing.T) {
	raws := []github.MetricsDay{
		{Date: "2025-06-01"},
		{}, // no date
		{Date: "2025-06-02"},
		{}, // no date
	}

	snaps, report := NormalizeAll(raws)
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	if report.SkippedSnapshots != 2 {
		t.Errorf("skipped = %d, want 2", report.SkippedSnapshots)
	}
}

func TestNormalizeDeterministicOrder(t *testing.T) {
	raw := github.MetricsDay{
		Date: "2025-06-01",
		IDECodeCompletions: &github.CodeCompletions{
			Languages: []github.LanguageUsage{
				{Name: "typescript"}, {Name: "go"}, {Name: "python"},
			},
		},
	}

	snap, _, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	langs := snap.Entities(model.BreakdownLanguages)
	want := []string{"go", "python", "typescript"}
	for i, name := range want {
		if langs[i].Name != name {
			t.Fatalf("languages[%d] = %q, want %q (sorted)", i, langs[i].Name, name)
		}
	}
}
