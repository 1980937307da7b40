package pipeline

import (
	"reflect"
	"testing"

	"github.com/copgauge/copgauge/internal/model"
)

// day builds a minimal normalized snapshot for aggregation tests.
func day(date string, active, engaged int, breakdowns map[model.Breakdown][]model.Entity) model.Snapshot {
	s := model.Snapshot{
		Date:              date,
		TotalActiveUsers:  active,
		TotalEngagedUsers: engaged,
		Breakdowns:        make(map[model.Breakdown][]model.Entity),
	}
	for _, b := range model.AllBreakdowns() {
		s.Breakdowns[b] = nil
	}
	for b, es := range breakdowns {
		s.Breakdowns[b] = es
	}
	return s
}

func TestAggregateMergesAcrossDays(t *testing.T) {
	snaps := []model.Snapshot{
		day("2025-06-01", 50, 40, map[model.Breakdown][]model.Entity{
			model.BreakdownLanguages: {
				{Name: "typescript", EngagedUsers: 10, Suggestions: 100, Acceptances: 40},
			},
		}),
		day("2025-06-02", 52, 45, map[model.Breakdown][]model.Entity{
			model.BreakdownLanguages: {
				{Name: "typescript", EngagedUsers: 12, Suggestions: 150, Acceptances: 60},
			},
		}),
		day("2025-06-03", 48, 30, map[model.Breakdown][]model.Entity{
			model.BreakdownLanguages: {
				{Name: "typescript", EngagedUsers: 8, Suggestions: 50, Acceptances: 20},
			},
		}),
	}

	agg := Aggregate(snaps)

	ts, ok := agg.Breakdown(model.BreakdownLanguages)["typescript"]
	if !ok {
		t.Fatal("typescript missing from aggregate")
	}
	if ts.Suggestions != 300 {
		t.Errorf("suggestions = %d, want 300", ts.Suggestions)
	}
	if ts.Acceptances != 120 {
		t.Errorf("acceptances = %d, want 120", ts.Acceptances)
	}
	if got := AcceptanceRate(ts); got != 40 {
		t.Errorf("acceptance rate = %d, want 40", got)
	}
	if agg.AcceptanceRate != 40 {
		t.Errorf("window acceptance rate = %d, want 40", agg.AcceptanceRate)
	}
}

func TestAggregateDisjointFieldsAcrossDays(t *testing.T) {
	// Day 1 has only completion counts for the entity, day 2 only chat
	// counts. The merged entity must carry both.
	snaps := []model.Snapshot{
		day("2025-06-01", 10, 8, map[model.Breakdown][]model.Entity{
			model.BreakdownChatEditors: {
				{Name: "vscode", EngagedUsers: 5, Chats: 40},
			},
		}),
		day("2025-06-02", 10, 8, map[model.Breakdown][]model.Entity{
			model.BreakdownChatEditors: {
				{Name: "vscode", EngagedUsers: 6, CopyEvents: 9},
			},
		}),
	}

	agg := Aggregate(snaps)
	ed := agg.Breakdown(model.BreakdownChatEditors)["vscode"]
	if ed.Chats != 40 || ed.CopyEvents != 9 {
		t.Errorf("merged entity = chats %d, copies %d; want 40, 9", ed.Chats, ed.CopyEvents)
	}
	if ed.EngagedUsers != 11 {
		t.Errorf("engaged users = %d, want 11 (summed across days)", ed.EngagedUsers)
	}
}

func TestAggregateKeysNeverCrossBreakdowns(t *testing.T) {
	// The same name under two views stays two records.
	snaps := []model.Snapshot{
		day("2025-06-01", 10, 8, map[model.Breakdown][]model.Entity{
			model.BreakdownCompletionModels: {{Name: "default", Suggestions: 100}},
			model.BreakdownChatModels:       {{Name: "default", Chats: 50}},
		}),
	}

	agg := Aggregate(snaps)
	completion := agg.Breakdown(model.BreakdownCompletionModels)["default"]
	chat := agg.Breakdown(model.BreakdownChatModels)["default"]
	if completion.Chats != 0 {
		t.Errorf("completion record absorbed chat counts: %d", completion.Chats)
	}
	if chat.Suggestions != 0 {
		t.Errorf("chat record absorbed completion counts: %d", chat.Suggestions)
	}
}

func TestAggregateUserCountsUseWindowMax(t *testing.T) {
	snaps := []model.Snapshot{
		day("2025-06-01", 50, 40, nil),
		day("2025-06-02", 64, 45, nil),
		day("2025-06-03", 48, 30, nil),
	}

	agg := Aggregate(snaps)
	if agg.ActiveUsers != 64 {
		t.Errorf("active users = %d, want 64 (window max)", agg.ActiveUsers)
	}
	if agg.EngagedUsers != 45 {
		t.Errorf("engaged users = %d, want 45 (window max)", agg.EngagedUsers)
	}
	if agg.Days != 3 {
		t.Errorf("days = %d, want 3", agg.Days)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := day("2025-06-01", 50, 40, map[model.Breakdown][]model.Entity{
		model.BreakdownLanguages: {{Name: "go", Suggestions: 70, Acceptances: 30}},
	})
	b := day("2025-06-02", 55, 42, map[model.Breakdown][]model.Entity{
		model.BreakdownLanguages: {{Name: "go", Suggestions: 30, Acceptances: 10}},
	})

	fwd := Aggregate([]model.Snapshot{a, b})
	rev := Aggregate([]model.Snapshot{b, a})

	if !reflect.DeepEqual(fwd, rev) {
		t.Error("aggregate differs between input orderings")
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	snaps := []model.Snapshot{
		day("2025-06-01", 50, 40, map[model.Breakdown][]model.Entity{
			model.BreakdownLanguages: {{Name: "go", Suggestions: 70}},
		}),
	}
	before := snaps[0].Entities(model.BreakdownLanguages)[0]

	_ = Aggregate(snaps)
	_ = Aggregate(snaps) // run twice; the result must not feed back

	after := snaps[0].Entities(model.BreakdownLanguages)[0]
	if !reflect.DeepEqual(before, after) {
		t.Errorf("input mutated: %+v -> %+v", before, after)
	}
}

func TestAggregateEmptyWindow(t *testing.T) {
	agg := Aggregate(nil)
	if !agg.IsEmpty() {
		t.Fatal("empty window should report IsEmpty")
	}
	if agg.AcceptanceRate != 0 || agg.LinesAcceptanceRate != 0 {
		t.Errorf("empty window rates = %d/%d, want 0/0",
			agg.AcceptanceRate, agg.LinesAcceptanceRate)
	}
}

func TestAggregateAbsentGroup(t *testing.T) {
	// A window whose feed never carried the PR group still exposes the view.
	agg := Aggregate([]model.Snapshot{day("2025-06-01", 10, 5, nil)})
	if agg.Breakdown(model.BreakdownRepositories) == nil {
		t.Fatal("repositories breakdown is nil, want empty map")
	}
	if got := len(agg.Breakdown(model.BreakdownRepositories)); got != 0 {
		t.Errorf("repositories entries = %d, want 0", got)
	}
	if got := TopN(agg.Breakdown(model.BreakdownRepositories), 5); len(got) != 0 {
		t.Errorf("TopN over absent group = %d entries, want 0", len(got))
	}
}
