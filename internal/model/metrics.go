package model

// DailyMetrics holds the scalar KPIs of a single day, reduced from one
// normalized snapshot.
type DailyMetrics struct {
	Date string

	ActiveUsers  int
	EngagedUsers int

	Suggestions    int64
	Acceptances    int64
	LinesSuggested int64
	LinesAccepted  int64

	Chats          int64
	ChatCopyEvents int64
	ChatInsertions int64

	PRSummaries int64
}

// Aggregate is the engine's complete output for one window: scalar totals,
// weighted rates, and the accumulated entity mapping per breakdown. It is
// built fresh per call and holds no references back to the input snapshots.
type Aggregate struct {
	Days int

	// Window-level user counts are the maximum of the per-day pre-aggregated
	// fields, not a cross-day sum: the upstream feed de-duplicates users
	// within a day but not across days.
	ActiveUsers  int
	EngagedUsers int

	CompletionUsers   int
	IDEChatUsers      int
	PlatformChatUsers int
	PRUsers           int

	Suggestions    int64
	Acceptances    int64
	LinesSuggested int64
	LinesAccepted  int64

	// Whole-percent weighted rates, computed from window totals.
	AcceptanceRate      int
	LinesAcceptanceRate int

	Chats          int64
	ChatCopyEvents int64
	ChatInsertions int64
	PRSummaries    int64

	Entities map[Breakdown]map[string]Entity
}

// IsEmpty reports whether the window contained no snapshots at all. Callers
// render an explicit "no data" state for empty windows instead of zeros.
func (a Aggregate) IsEmpty() bool {
	return a.Days == 0
}

// Breakdown returns the accumulated entity mapping for one breakdown view.
// The map is never nil for a non-empty aggregate.
func (a Aggregate) Breakdown(b Breakdown) map[string]Entity {
	return a.Entities[b]
}

// DateRange is the inclusive span covered by a snapshot window.
type DateRange struct {
	Start string
	End   string
	Days  int // distinct calendar days, not End-Start
}

// QualityReport counts per-record anomalies recovered during normalization.
// These are diagnostics, not errors: processing always continues.
type QualityReport struct {
	SkippedSnapshots int // records without a date
	DroppedEntities  int // breakdown entries without a name
}
