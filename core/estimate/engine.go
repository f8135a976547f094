// Package estimate - Project cost aggregation
// Folds a project's task-phase line items, project-level services, and
// crew/equipment/aircraft day rates into a CostBreakdown. Like the line
// rater, the aggregator is pure and total: it never errors, and surfaces
// incomplete pricing as counts rather than failures.
package estimate

import (
	"github.com/shopspring/decimal"

	"fieldops-cost/core/rating"
	"fieldops-cost/core/types"
)

// Estimate computes a fresh cost breakdown for a project. The breakdown
// is a derived view; the project is the source of truth and is not
// modified.
func Estimate(project *types.Project, currency types.Currency) *types.CostBreakdown {
	breakdown := types.NewCostBreakdown(currency)
	if project == nil {
		return breakdown
	}
	breakdown.ProjectID = project.ID

	addTasks(breakdown.Category(types.CategoryPreFieldTasks), project.PreFieldTasks)
	addItems(breakdown.Category(types.CategoryServices), project.Services)

	days := project.EstimatedFieldDays
	addResources(breakdown.Category(types.CategoryFieldCrew), project.Crew, days)
	addResources(breakdown.Category(types.CategoryFieldEquipment), project.Equipment, days)
	addResources(breakdown.Category(types.CategoryFieldAircraft), project.Aircraft, days)

	addTasks(breakdown.Category(types.CategoryPostFieldTasks), project.PostFieldTasks)

	breakdown.Summarize()
	return breakdown
}

// addTasks folds every task's line items into one category
func addTasks(summary *types.CategorySummary, tasks []types.Task) {
	for _, task := range tasks {
		addItems(summary, task.Items)
	}
}

// addItems rates each line item and tracks incompleteness. An unpriced
// item counts as missing-rate; a priced item that legitimately computes
// to zero (say, quantity still empty mid-edit) does not.
func addItems(summary *types.CategorySummary, items []types.LineItem) {
	for _, item := range items {
		summary.ItemCount++
		if !item.IsPriced() {
			summary.MissingRate++
			continue
		}
		total := rating.LineTotal(item)
		if total.Sign() > 0 {
			summary.WithCost++
		}
		summary.Subtotal = summary.Subtotal.Add(total)
	}
}

// addResources bills day-rate resources at dailyRate x estimated field
// days. A priced resource with zero field days contributes zero and
// flags the category as "days not set", which is distinct from a
// resource with no rate at all.
func addResources(summary *types.CategorySummary, resources []types.DayRateResource, days decimal.Decimal) {
	for _, r := range resources {
		summary.ItemCount++
		if !r.DailyRate.IsPositive() {
			summary.MissingRate++
			continue
		}
		if days.Sign() <= 0 {
			summary.DaysNotSet = true
			continue
		}
		summary.WithCost++
		summary.Subtotal = summary.Subtotal.Add(r.DailyRate.Mul(days))
	}
}
