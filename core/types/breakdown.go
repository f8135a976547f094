// Package types - Cost breakdown types
package types

import "github.com/shopspring/decimal"

// CostCategory identifies one bucket of a project cost breakdown
type CostCategory string

const (
	CategoryPreFieldTasks  CostCategory = "pre_field_tasks"
	CategoryServices       CostCategory = "services"
	CategoryFieldCrew      CostCategory = "field_crew"
	CategoryFieldEquipment CostCategory = "field_equipment"
	CategoryFieldAircraft  CostCategory = "field_aircraft"
	CategoryPostFieldTasks CostCategory = "post_field_tasks"
)

// String returns the string representation
func (c CostCategory) String() string {
	return string(c)
}

// Label returns a human-readable category name
func (c CostCategory) Label() string {
	switch c {
	case CategoryPreFieldTasks:
		return "Pre-field tasks"
	case CategoryServices:
		return "Services"
	case CategoryFieldCrew:
		return "Field crew"
	case CategoryFieldEquipment:
		return "Field equipment"
	case CategoryFieldAircraft:
		return "Field aircraft"
	case CategoryPostFieldTasks:
		return "Post-field tasks"
	default:
		return string(c)
	}
}

// AllCategories lists every category in breakdown display order
func AllCategories() []CostCategory {
	return []CostCategory{
		CategoryPreFieldTasks,
		CategoryServices,
		CategoryFieldCrew,
		CategoryFieldEquipment,
		CategoryFieldAircraft,
		CategoryPostFieldTasks,
	}
}

// CategorySummary is one category's slice of the breakdown
type CategorySummary struct {
	// Subtotal is the category total
	Subtotal decimal.Decimal `json:"subtotal"`

	// ItemCount is how many items the category holds
	ItemCount int `json:"item_count"`

	// WithCost is how many items contributed a positive amount
	WithCost int `json:"with_cost"`

	// MissingRate counts items present but contributing zero because no
	// rate was ever set, distinct from a legitimately-zero line
	MissingRate int `json:"missing_rate"`

	// DaysNotSet flags day-rate categories whose resources are priced
	// but contribute zero because estimated field days is zero
	DaysNotSet bool `json:"days_not_set,omitempty"`
}

// CostBreakdown is the aggregator's output: per-category subtotals with
// incompleteness signals plus a grand total. It is a derived view,
// constructed fresh on every recomputation and never persisted as the
// source of truth.
type CostBreakdown struct {
	// ProjectID links back to the estimated project
	ProjectID string `json:"project_id,omitempty"`

	// Categories holds one summary per category
	Categories map[CostCategory]*CategorySummary `json:"categories"`

	// GrandTotal is the sum of all category subtotals
	GrandTotal decimal.Decimal `json:"grand_total"`

	// Currency is the breakdown currency
	Currency Currency `json:"currency"`
}

// NewCostBreakdown creates an empty breakdown with every category present
func NewCostBreakdown(currency Currency) *CostBreakdown {
	b := &CostBreakdown{
		Categories: make(map[CostCategory]*CategorySummary, 6),
		Currency:   currency,
	}
	for _, c := range AllCategories() {
		b.Categories[c] = &CategorySummary{}
	}
	return b
}

// Category returns the summary for a category, creating it if absent
func (b *CostBreakdown) Category(c CostCategory) *CategorySummary {
	s, ok := b.Categories[c]
	if !ok {
		s = &CategorySummary{}
		b.Categories[c] = s
	}
	return s
}

// Summarize recalculates the grand total from the category subtotals
func (b *CostBreakdown) Summarize() {
	total := decimal.Zero
	for _, c := range AllCategories() {
		if s, ok := b.Categories[c]; ok {
			total = total.Add(s.Subtotal)
		}
	}
	b.GrandTotal = total
}

// Incomplete reports whether any category has items with no usable rate
// or day-rate resources blocked on an unset field duration
func (b *CostBreakdown) Incomplete() bool {
	for _, s := range b.Categories {
		if s.MissingRate > 0 || s.DaysNotSet {
			return true
		}
	}
	return false
}
