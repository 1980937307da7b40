package pipeline

import (
	"errors"
	"sort"

	"github.com/copgauge/copgauge/internal/github"
	"github.com/copgauge/copgauge/internal/model"
)

// ErrInvalidSnapshot marks a raw day record without a date. The record is
// excluded from aggregation; the condition is surfaced as a skip count, never
// as a failure of the whole window.
var ErrInvalidSnapshot = errors.New("pipeline: snapshot missing date")

// entityAcc merges same-named entries within a single day.
type entityAcc struct {
	byName map[string]*model.Entity
}

func newEntityAcc() *entityAcc {
	return &entityAcc{byName: make(map[string]*model.Entity)}
}

func (a *entityAcc) get(name string) *model.Entity {
	e, ok := a.byName[name]
	if !ok {
		e = &model.Entity{Name: name}
		a.byName[name] = e
	}
	return e
}

// entities returns the accumulated entries sorted by name, so a normalized
// snapshot is byte-identical for identical input.
func (a *entityAcc) entities() []model.Entity {
	out := make([]model.Entity, 0, len(a.byName))
	for _, e := range a.byName {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// mergeEngaged records the largest engaged-user count seen for an entity that
// repeats within the same day, whether at several nesting levels (a language
// at the group top level and under a model) or under several siblings (a
// model under two editors). The repeated entries describe overlapping sets of
// the same users, so summing would double-count anyone active in both.
func mergeEngaged(e *model.Entity, n int) {
	if n > e.EngagedUsers {
		e.EngagedUsers = n
	}
}

// Normalize converts one raw day into a fully-populated Snapshot. Absent
// groups and arrays become empty, absent numerics become zero, and entries
// without a name are dropped and counted. The only fatal condition is a
// missing date.
func Normalize(raw github.MetricsDay) (model.Snapshot, int, error) {
	if raw.Date == "" {
		return model.Snapshot{}, 0, ErrInvalidSnapshot
	}

	snap := model.Snapshot{
		Date:              raw.Date,
		TotalActiveUsers:  raw.TotalActiveUsers,
		TotalEngagedUsers: raw.TotalEngagedUsers,
	}

	accs := make(map[model.Breakdown]*entityAcc, len(model.AllBreakdowns()))
	for _, b := range model.AllBreakdowns() {
		accs[b] = newEntityAcc()
	}
	dropped := 0

	if cc := raw.IDECodeCompletions; cc != nil {
		snap.CompletionUsers = cc.TotalEngagedUsers

		for _, l := range cc.Languages {
			if l.Name == "" {
				dropped++
				continue
			}
			e := accs[model.BreakdownLanguages].get(l.Name)
			mergeEngaged(e, l.TotalEngagedUsers)
			addLanguageCounts(e, l)
		}

		for _, ed := range cc.Editors {
			if ed.Name == "" {
				dropped++
				continue
			}
			ee := accs[model.BreakdownEditors].get(ed.Name)
			mergeEngaged(ee, ed.TotalEngagedUsers)

			for _, m := range ed.Models {
				if m.Name == "" {
					dropped++
					continue
				}
				me := accs[model.BreakdownCompletionModels].get(m.Name)
				mergeEngaged(me, m.TotalEngagedUsers)

				for _, l := range m.Languages {
					if l.Name == "" {
						dropped++
						continue
					}
					// The per-model language entries carry the actual
					// suggestion counts; they roll up to the language,
					// editor, and model views alike.
					le := accs[model.BreakdownLanguages].get(l.Name)
					mergeEngaged(le, l.TotalEngagedUsers)
					addLanguageCounts(le, l)
					addLanguageCounts(ee, l)
					addLanguageCounts(me, l)
				}
			}
		}
	}

	if ch := raw.IDEChat; ch != nil {
		snap.IDEChatUsers = ch.TotalEngagedUsers

		for _, ed := range ch.Editors {
			if ed.Name == "" {
				dropped++
				continue
			}
			ee := accs[model.BreakdownChatEditors].get(ed.Name)
			mergeEngaged(ee, ed.TotalEngagedUsers)

			for _, m := range ed.Models {
				if m.Name == "" {
					dropped++
					continue
				}
				me := accs[model.BreakdownChatModels].get(m.Name)
				mergeEngaged(me, m.TotalEngagedUsers)
				addChatCounts(me, m)
				addChatCounts(ee, m)
			}
		}
	}

	if dc := raw.DotcomChat; dc != nil {
		snap.PlatformChatUsers = dc.TotalEngagedUsers

		for _, m := range dc.Models {
			if m.Name == "" {
				dropped++
				continue
			}
			me := accs[model.BreakdownDotcomChatModels].get(m.Name)
			mergeEngaged(me, m.TotalEngagedUsers)
			addChatCounts(me, m)
		}
	}

	if pr := raw.DotcomPullRequests; pr != nil {
		snap.PRUsers = pr.TotalEngagedUsers

		for _, repo := range pr.Repositories {
			if repo.Name == "" {
				dropped++
				continue
			}
			re := accs[model.BreakdownRepositories].get(repo.Name)
			mergeEngaged(re, repo.TotalEngagedUsers)

			for _, m := range repo.Models {
				if m.Name == "" {
					dropped++
					continue
				}
				me := accs[model.BreakdownPRModels].get(m.Name)
				mergeEngaged(me, m.TotalEngagedUsers)
				me.PRSummaries += m.TotalPRSummariesCreated
				re.PRSummaries += m.TotalPRSummariesCreated
			}
		}
	}

	snap.Breakdowns = make(map[model.Breakdown][]model.Entity, len(accs))
	for b, acc := range accs {
		snap.Breakdowns[b] = acc.entities()
	}

	return snap, dropped, nil
}

// NormalizeAll normalizes a window of raw days, skipping invalid records and
// counting anomalies. It never fails: a fully broken window just yields zero
// snapshots.
func NormalizeAll(raws []github.MetricsDay) ([]model.Snapshot, model.QualityReport) {
	snaps := make([]model.Snapshot, 0, len(raws))
	var report model.QualityReport

	for _, raw := range raws {
		snap, dropped, err := Normalize(raw)
		report.DroppedEntities += dropped
		if err != nil {
			report.SkippedSnapshots++
			continue
		}
		snaps = append(snaps, snap)
	}

	return snaps, report
}

func addLanguageCounts(e *model.Entity, l github.LanguageUsage) {
	e.Suggestions += l.TotalCodeSuggestions
	e.Acceptances += l.TotalCodeAcceptances
	e.LinesSuggested += l.TotalCodeLinesSuggested
	e.LinesAccepted += l.TotalCodeLinesAccepted
}

func addChatCounts(e *model.Entity, m github.ChatModel) {
	e.Chats += m.TotalChats
	e.CopyEvents += m.TotalChatCopyEvents
	e.InsertionEvents += m.TotalChatInsertionEvents
}
