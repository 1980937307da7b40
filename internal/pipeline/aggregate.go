// Package pipeline is the aggregation engine: it normalizes raw telemetry,
// reduces daily KPIs, merges entity breakdowns across a window, ranks
// entities, and reconciles premium-request billing. Everything here is pure
// computation; retrieval and caching live in their own packages.
package pipeline

import "github.com/copgauge/copgauge/internal/model"

// Aggregate folds a window of normalized snapshots into period totals and the
// per-breakdown entity mapping. A single linear pass covers every snapshot
// and every entity record; the input may arrive in any order and is never
// mutated. An empty window yields an Aggregate with Days == 0, not an error.
func Aggregate(snapshots []model.Snapshot) model.Aggregate {
	agg := model.Aggregate{
		Days:     len(snapshots),
		Entities: make(map[model.Breakdown]map[string]model.Entity, len(model.AllBreakdowns())),
	}
	for _, b := range model.AllBreakdowns() {
		agg.Entities[b] = make(map[string]model.Entity)
	}

	for _, s := range snapshots {
		dm := ReduceDay(s)
		agg.Suggestions += dm.Suggestions
		agg.Acceptances += dm.Acceptances
		agg.LinesSuggested += dm.LinesSuggested
		agg.LinesAccepted += dm.LinesAccepted
		agg.Chats += dm.Chats
		agg.ChatCopyEvents += dm.ChatCopyEvents
		agg.ChatInsertions += dm.ChatInsertions
		agg.PRSummaries += dm.PRSummaries

		// User counts are not summed across days; a user active on several
		// days would be counted repeatedly. The window reports the richest
		// day instead.
		agg.ActiveUsers = maxInt(agg.ActiveUsers, s.TotalActiveUsers)
		agg.EngagedUsers = maxInt(agg.EngagedUsers, s.TotalEngagedUsers)
		agg.CompletionUsers = maxInt(agg.CompletionUsers, s.CompletionUsers)
		agg.IDEChatUsers = maxInt(agg.IDEChatUsers, s.IDEChatUsers)
		agg.PlatformChatUsers = maxInt(agg.PlatformChatUsers, s.PlatformChatUsers)
		agg.PRUsers = maxInt(agg.PRUsers, s.PRUsers)

		for _, b := range model.AllBreakdowns() {
			dst := agg.Entities[b]
			for _, e := range s.Entities(b) {
				acc := dst[e.Name]
				if acc.Name == "" {
					acc.Name = e.Name
				}
				acc.Add(e)
				dst[e.Name] = acc
			}
		}
	}

	agg.AcceptanceRate = Rate(agg.Acceptances, agg.Suggestions)
	agg.LinesAcceptanceRate = Rate(agg.LinesAccepted, agg.LinesSuggested)

	return agg
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
