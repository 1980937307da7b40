package pipeline

import (
	"sort"

	"github.com/copgauge/copgauge/internal/github"
	"github.com/copgauge/copgauge/internal/model"
)

// AggregatePremium reduces a billing feed of premium-request line items into
// period totals and a per-model cost breakdown. Net amounts are always
// recomputed as gross minus discount — a netAmount supplied upstream is
// ignored. Items without a model name land in the reserved "unknown" bucket
// so no cost disappears, and zero-request items are retained.
//
// The multiplier field is informational metadata about the rate the biller
// applied; the amounts arrive already priced, so it never enters the sums.
func AggregatePremium(items []github.PremiumUsageItem) model.PremiumReport {
	var report model.PremiumReport
	byModel := make(map[string]*model.ModelCost)

	for _, item := range items {
		name := item.Model
		if name == "" {
			name = model.UnknownModel
		}

		net := item.GrossAmount - item.DiscountAmount

		report.Requests += item.RequestCount
		report.Gross += item.GrossAmount
		report.Discount += item.DiscountAmount
		if net > 0 {
			report.BilledRequests += item.RequestCount
		} else {
			report.IncludedRequests += item.RequestCount
		}

		row, ok := byModel[name]
		if !ok {
			row = &model.ModelCost{Model: name}
			byModel[name] = row
		}
		row.Requests += item.RequestCount
		row.Gross += item.GrossAmount
		row.Discount += item.DiscountAmount
	}

	report.Net = report.Gross - report.Discount

	report.Models = make([]model.ModelCost, 0, len(byModel))
	for _, row := range byModel {
		row.Net = row.Gross - row.Discount
		report.Models = append(report.Models, *row)
	}
	sort.Slice(report.Models, func(i, j int) bool {
		if report.Models[i].Gross != report.Models[j].Gross {
			return report.Models[i].Gross > report.Models[j].Gross
		}
		return report.Models[i].Model < report.Models[j].Model
	})

	return report
}
