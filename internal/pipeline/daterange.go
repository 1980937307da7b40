package pipeline

import "github.com/copgauge/copgauge/internal/model"

// ResolveDateRange returns the minimum and maximum date label of a snapshot
// window plus the count of distinct calendar days. The input may be unordered
// and may repeat dates. The second return is false for an empty window;
// callers must check it before rendering the range.
func ResolveDateRange(snapshots []model.Snapshot) (model.DateRange, bool) {
	if len(snapshots) == 0 {
		return model.DateRange{}, false
	}

	seen := make(map[string]struct{}, len(snapshots))
	r := model.DateRange{Start: snapshots[0].Date, End: snapshots[0].Date}

	for _, s := range snapshots {
		// Date labels are ISO "2006-01-02", so ordinal comparison orders them.
		if s.Date < r.Start {
			r.Start = s.Date
		}
		if s.Date > r.End {
			r.End = s.Date
		}
		seen[s.Date] = struct{}{}
	}

	r.Days = len(seen)
	return r, true
}
