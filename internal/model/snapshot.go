// Package model defines domain types for copgauge metrics and billing.
package model

// Group identifies one of the Copilot metric groups in a daily snapshot.
type Group string

const (
	GroupCompletions  Group = "completions"
	GroupIDEChat      Group = "ide_chat"
	GroupPlatformChat Group = "platform_chat"
	GroupPRSummaries  Group = "pr_summaries"
)

// Breakdown identifies one entity-keyed view inside a metric group.
// Entities are merged by name within a breakdown and never across breakdowns,
// so a model showing up under both completions and chat stays two records.
type Breakdown int

const (
	BreakdownLanguages Breakdown = iota
	BreakdownEditors
	BreakdownCompletionModels
	BreakdownChatEditors
	BreakdownChatModels
	BreakdownDotcomChatModels
	BreakdownRepositories
	BreakdownPRModels

	numBreakdowns
)

var breakdownNames = [numBreakdowns]string{
	"languages",
	"editors",
	"completion_models",
	"chat_editors",
	"chat_models",
	"dotcom_chat_models",
	"repositories",
	"pr_models",
}

var breakdownGroups = [numBreakdowns]Group{
	GroupCompletions,
	GroupCompletions,
	GroupCompletions,
	GroupIDEChat,
	GroupIDEChat,
	GroupPlatformChat,
	GroupPRSummaries,
	GroupPRSummaries,
}

func (b Breakdown) String() string {
	if b < 0 || b >= numBreakdowns {
		return "unknown"
	}
	return breakdownNames[b]
}

// Group returns the metric group this breakdown belongs to.
func (b Breakdown) Group() Group {
	if b < 0 || b >= numBreakdowns {
		return ""
	}
	return breakdownGroups[b]
}

// AllBreakdowns lists every breakdown view in declaration order.
func AllBreakdowns() []Breakdown {
	out := make([]Breakdown, 0, numBreakdowns)
	for b := Breakdown(0); b < numBreakdowns; b++ {
		out = append(out, b)
	}
	return out
}

// Entity is one named element of a breakdown (a language, editor, model, or
// repository) with its accumulated counts. Only the fields relevant to the
// entity's breakdown are populated; the rest stay zero.
type Entity struct {
	Name string

	EngagedUsers int

	Suggestions    int64
	Acceptances    int64
	LinesSuggested int64
	LinesAccepted  int64

	Chats           int64
	CopyEvents      int64
	InsertionEvents int64

	PRSummaries int64
}

// Add accumulates every numeric field of o into e. Summation is the only
// accumulation operator used across days.
func (e *Entity) Add(o Entity) {
	e.EngagedUsers += o.EngagedUsers
	e.Suggestions += o.Suggestions
	e.Acceptances += o.Acceptances
	e.LinesSuggested += o.LinesSuggested
	e.LinesAccepted += o.LinesAccepted
	e.Chats += o.Chats
	e.CopyEvents += o.CopyEvents
	e.InsertionEvents += o.InsertionEvents
	e.PRSummaries += o.PRSummaries
}

// Snapshot is one fully-normalized day of telemetry. Every numeric field is
// populated (absent upstream data is zero) and every breakdown slice exists,
// so downstream stages never check for missing pieces.
type Snapshot struct {
	Date string // "2006-01-02", unique within a window

	TotalActiveUsers  int
	TotalEngagedUsers int

	// Per-group engaged user counts from the group headers.
	CompletionUsers   int
	IDEChatUsers      int
	PlatformChatUsers int
	PRUsers           int

	// Breakdowns holds every entity view, keyed by breakdown. Slices are
	// sorted by entity name so identical input always yields identical output.
	Breakdowns map[Breakdown][]Entity
}

// Entities returns the snapshot's entities for one breakdown view.
func (s Snapshot) Entities(b Breakdown) []Entity {
	return s.Breakdowns[b]
}
