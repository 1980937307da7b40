package github

// MetricsDay is one raw day from the org metrics feed. Every nested group and
// array is optional upstream; only the normalizer consumes this type, so the
// pointer/nil handling stays in one place.
type MetricsDay struct {
	Date              string `json:"date"`
	TotalActiveUsers  int    `json:"total_active_users"`
	TotalEngagedUsers int    `json:"total_engaged_users"`

	IDECodeCompletions *CodeCompletions    `json:"copilot_ide_code_completions"`
	IDEChat            *IDEChat            `json:"copilot_ide_chat"`
	DotcomChat         *DotcomChat         `json:"copilot_dotcom_chat"`
	DotcomPullRequests *DotcomPullRequests `json:"copilot_dotcom_pull_requests"`
}

// CodeCompletions is the code-completion metric group.
type CodeCompletions struct {
	TotalEngagedUsers int                `json:"total_engaged_users"`
	Languages         []LanguageUsage    `json:"languages"`
	Editors           []CompletionEditor `json:"editors"`
}

// LanguageUsage carries per-language completion counts. At the group's top
// level only the engaged-user count is populated; the suggestion counts come
// from the per-editor, per-model entries.
type LanguageUsage struct {
	Name                    string `json:"name"`
	TotalEngagedUsers       int    `json:"total_engaged_users"`
	TotalCodeSuggestions    int64  `json:"total_code_suggestions"`
	TotalCodeAcceptances    int64  `json:"total_code_acceptances"`
	TotalCodeLinesSuggested int64  `json:"total_code_lines_suggested"`
	TotalCodeLinesAccepted  int64  `json:"total_code_lines_accepted"`
}

// CompletionEditor is one editor under the code-completion group.
type CompletionEditor struct {
	Name              string            `json:"name"`
	TotalEngagedUsers int               `json:"total_engaged_users"`
	Models            []CompletionModel `json:"models"`
}

// CompletionModel is one model under an editor, with its per-language counts.
type CompletionModel struct {
	Name              string          `json:"name"`
	IsCustomModel     bool            `json:"is_custom_model"`
	TotalEngagedUsers int             `json:"total_engaged_users"`
	Languages         []LanguageUsage `json:"languages"`
}

// IDEChat is the IDE chat metric group.
type IDEChat struct {
	TotalEngagedUsers int          `json:"total_engaged_users"`
	Editors           []ChatEditor `json:"editors"`
}

// ChatEditor is one editor under the IDE chat group.
type ChatEditor struct {
	Name              string      `json:"name"`
	TotalEngagedUsers int         `json:"total_engaged_users"`
	Models            []ChatModel `json:"models"`
}

// ChatModel carries chat interaction counts for one model.
type ChatModel struct {
	Name                     string `json:"name"`
	IsCustomModel            bool   `json:"is_custom_model"`
	TotalEngagedUsers        int    `json:"total_engaged_users"`
	TotalChats               int64  `json:"total_chats"`
	TotalChatInsertionEvents int64  `json:"total_chat_insertion_events"`
	TotalChatCopyEvents      int64  `json:"total_chat_copy_events"`
}

// DotcomChat is the platform (github.com) chat metric group.
type DotcomChat struct {
	TotalEngagedUsers int         `json:"total_engaged_users"`
	Models            []ChatModel `json:"models"`
}

// DotcomPullRequests is the pull-request summary metric group.
type DotcomPullRequests struct {
	TotalEngagedUsers int            `json:"total_engaged_users"`
	Repositories      []PRRepository `json:"repositories"`
}

// PRRepository is one repository under the PR summary group.
type PRRepository struct {
	Name              string    `json:"name"`
	TotalEngagedUsers int       `json:"total_engaged_users"`
	Models            []PRModel `json:"models"`
}

// PRModel carries PR summary counts for one model.
type PRModel struct {
	Name                    string `json:"name"`
	IsCustomModel           bool   `json:"is_custom_model"`
	TotalEngagedUsers       int    `json:"total_engaged_users"`
	TotalPRSummariesCreated int64  `json:"total_pr_summaries_created"`
}

// PremiumUsage is the raw premium-request billing feed for one month.
type PremiumUsage struct {
	TimePeriod *TimePeriod         `json:"timePeriod"`
	UsageItems []PremiumUsageItem  `json:"usageItems"`
}

// TimePeriod labels the billing period of a premium usage response.
type TimePeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// PremiumUsageItem is one metered premium-request line item. A netAmount may
// be present upstream but is never trusted; net is always recomputed as
// gross minus discount. Multiplier is pricing-tier metadata about the rate the
// biller already applied; absent means 1.
type PremiumUsageItem struct {
	Date           string   `json:"date"`
	Model          string   `json:"model"`
	RequestCount   int64    `json:"requestCount"`
	GrossAmount    float64  `json:"grossAmount"`
	DiscountAmount float64  `json:"discountAmount"`
	NetAmount      float64  `json:"netAmount"`
	Multiplier     *float64 `json:"multiplier"`
}
