package pipeline

import "github.com/copgauge/copgauge/internal/model"

// ReduceDay extracts the scalar KPIs of one normalized snapshot. Counts that
// exist only per entity are summed across the day's entities; nothing crosses
// day boundaries here.
func ReduceDay(s model.Snapshot) model.DailyMetrics {
	dm := model.DailyMetrics{
		Date:         s.Date,
		ActiveUsers:  s.TotalActiveUsers,
		EngagedUsers: s.TotalEngagedUsers,
	}

	// The language view carries the authoritative completion counts; the
	// editor and model views hold the same events bucketed differently.
	for _, e := range s.Entities(model.BreakdownLanguages) {
		dm.Suggestions += e.Suggestions
		dm.Acceptances += e.Acceptances
		dm.LinesSuggested += e.LinesSuggested
		dm.LinesAccepted += e.LinesAccepted
	}

	for _, e := range s.Entities(model.BreakdownChatEditors) {
		dm.Chats += e.Chats
		dm.ChatCopyEvents += e.CopyEvents
		dm.ChatInsertions += e.InsertionEvents
	}
	for _, e := range s.Entities(model.BreakdownDotcomChatModels) {
		dm.Chats += e.Chats
	}

	for _, e := range s.Entities(model.BreakdownRepositories) {
		dm.PRSummaries += e.PRSummaries
	}

	return dm
}
