package tui

import (
	"fmt"
	"strings"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"
	"github.com/copgauge/copgauge/internal/tui/components"
)

func (a App) renderLanguagesTab(cw int) string {
	if a.loadErr != nil {
		return fmt.Sprintf("\n  Could not load metrics: %s\n", a.loadErr)
	}
	if a.agg.IsEmpty() {
		return noDataMessage(a.opts.Org)
	}

	top := pipeline.TopN(a.agg.Breakdown(model.BreakdownLanguages), a.topN())
	if len(top) == 0 {
		return "\n  No language data in the selected window.\n"
	}

	return components.ContentCard(
		fmt.Sprintf("Top Languages (%dd)", a.opts.Days),
		completionRankingBody(top, cw),
		cw,
	)
}

func (a App) renderEditorsTab(cw int) string {
	if a.loadErr != nil {
		return fmt.Sprintf("\n  Could not load metrics: %s\n", a.loadErr)
	}
	if a.agg.IsEmpty() {
		return noDataMessage(a.opts.Org)
	}

	var b strings.Builder
	n := a.topN()

	if top := pipeline.TopN(a.agg.Breakdown(model.BreakdownEditors), n); len(top) > 0 {
		b.WriteString(components.ContentCard("Completions by Editor", completionRankingBody(top, cw), cw))
		b.WriteString("\n")
	}
	if top := pipeline.TopN(a.agg.Breakdown(model.BreakdownChatEditors), n); len(top) > 0 {
		b.WriteString(components.ContentCard("Chat by Editor", chatRankingBody(top), cw))
	}

	if b.Len() == 0 {
		return "\n  No editor data in the selected window.\n"
	}
	return b.String()
}

func (a App) renderModelsTab(cw int) string {
	if a.loadErr != nil {
		return fmt.Sprintf("\n  Could not load metrics: %s\n", a.loadErr)
	}
	if a.agg.IsEmpty() {
		return noDataMessage(a.opts.Org)
	}

	var b strings.Builder
	n := a.topN()

	if top := pipeline.TopN(a.agg.Breakdown(model.BreakdownCompletionModels), n); len(top) > 0 {
		b.WriteString(components.ContentCard("Completion Models", completionRankingBody(top, cw), cw))
		b.WriteString("\n")
	}
	if top := pipeline.TopN(a.agg.Breakdown(model.BreakdownChatModels), n); len(top) > 0 {
		b.WriteString(components.ContentCard("IDE Chat Models", chatRankingBody(top), cw))
		b.WriteString("\n")
	}
	if top := pipeline.TopN(a.agg.Breakdown(model.BreakdownDotcomChatModels), n); len(top) > 0 {
		b.WriteString(components.ContentCard("GitHub.com Chat Models", chatRankingBody(top), cw))
	}

	if b.Len() == 0 {
		return "\n  No model data in the selected window.\n"
	}
	return b.String()
}

// completionRankingBody renders ranked completion entities with an inline
// acceptance-rate bar per row.
func completionRankingBody(entities []model.Entity, cw int) string {
	nameW := maxNameWidth(entities)
	barW := components.CardInnerWidth(cw) - nameW - 40
	if barW > 30 {
		barW = 30
	}

	var b strings.Builder
	for i, e := range entities {
		rate := pipeline.AcceptanceRate(e)
		line := fmt.Sprintf("%2d. %-*s  %7s users  %4s  %s",
			i+1, nameW, e.Name,
			cli.FormatNumber(int64(e.EngagedUsers)),
			cli.FormatRate(rate),
			cli.FormatRatio(e.Acceptances, e.Suggestions),
		)
		if barW >= 10 {
			line = fmt.Sprintf("%2d. %-*s  %7s users  %s %4s  %s",
				i+1, nameW, e.Name,
				cli.FormatNumber(int64(e.EngagedUsers)),
				components.ProgressBar(float64(rate)/100, barW),
				cli.FormatRate(rate),
				cli.FormatRatio(e.Acceptances, e.Suggestions),
			)
		}
		b.WriteString(line)
		if i < len(entities)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func chatRankingBody(entities []model.Entity) string {
	nameW := maxNameWidth(entities)

	var b strings.Builder
	for i, e := range entities {
		fmt.Fprintf(&b, "%2d. %-*s  %7s users  %9s chats",
			i+1, nameW, e.Name,
			cli.FormatNumber(int64(e.EngagedUsers)),
			cli.FormatNumber(e.Chats),
		)
		if i < len(entities)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func maxNameWidth(entities []model.Entity) int {
	w := 8
	for _, e := range entities {
		if len(e.Name) > w {
			w = len(e.Name)
		}
	}
	if w > 28 {
		w = 28
	}
	return w
}
