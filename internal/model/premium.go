package model

// UnknownModel is the reserved bucket for premium usage items that arrive
// without a model name. Cost must never silently disappear, so such items are
// grouped here instead of being dropped.
const UnknownModel = "unknown"

// ModelCost is the accumulated premium-request cost for one model.
type ModelCost struct {
	Model    string
	Requests int64

	Gross    float64
	Discount float64
	Net      float64 // always Gross - Discount, recomputed
}

// PremiumReport is the reduced premium-request billing feed for one period.
type PremiumReport struct {
	Requests         int64
	IncludedRequests int64 // fully covered by the plan discount
	BilledRequests   int64 // requests that carried a net cost

	Gross    float64
	Discount float64
	Net      float64

	// Models is sorted by gross amount descending, then name ascending.
	Models []ModelCost
}

// IsEmpty reports whether the billing feed contained no items at all.
func (r PremiumReport) IsEmpty() bool {
	return len(r.Models) == 0 && r.Requests == 0
}
