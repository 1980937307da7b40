package pipeline

import (
	"math"
	"sort"

	"github.com/copgauge/copgauge/internal/model"
)

// DefaultTopN is the ranked-list length used when the caller passes n <= 0.
const DefaultTopN = 5

// TopN returns at most n entities from one accumulated breakdown, ordered by
// engaged users descending with ties broken by name ascending (ordinal,
// case-sensitive). The ordering is deterministic regardless of map iteration.
func TopN(entities map[string]model.Entity, n int) []model.Entity {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]model.Entity, 0, len(entities))
	for _, e := range entities {
		ranked = append(ranked, e)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].EngagedUsers != ranked[j].EngagedUsers {
			return ranked[i].EngagedUsers > ranked[j].EngagedUsers
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Rate computes a whole-percent weighted rate, rounded half-up. A zero
// denominator yields 0, never NaN: rates are always sum/sum over the window,
// never an average of per-day percentages.
func Rate(numerator, denominator int64) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(numerator) / float64(denominator)))
}

// AcceptanceRate is the suggestion acceptance percentage for one accumulated
// entity.
func AcceptanceRate(e model.Entity) int {
	return Rate(e.Acceptances, e.Suggestions)
}

// AdoptionRate is the share of active users engaging a feature, in whole
// percent.
func AdoptionRate(featureUsers, activeUsers int) int {
	return Rate(int64(featureUsers), int64(activeUsers))
}
