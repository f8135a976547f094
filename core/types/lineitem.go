// Package types - Line item types
package types

import "github.com/shopspring/decimal"

// LineItem is one priced entry attached to a project or task: a service,
// a crew day, an equipment day, or a fixed cost. It embeds a snapshot of
// its source RateSet taken at attach time and is exclusively owned by its
// parent collection.
type LineItem struct {
	// ID uniquely identifies the line item within its parent
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// SourceID references the catalog entry this line was created from,
	// for display only; pricing always comes from the embedded snapshot
	SourceID string `json:"source_id,omitempty"`

	// SelectedRateKind is the active pricing basis
	SelectedRateKind RateKind `json:"selected_rate_kind"`

	// Quantity is the billed quantity in the selected kind's unit
	// (hours, days, weeks, or units; ignored for fixed)
	Quantity decimal.Decimal `json:"quantity"`

	// RateSet is the snapshot of the source's priced attributes
	RateSet

	// VolumeTiers holds graduated per-unit brackets; when present and the
	// selected kind is per-unit, they replace the flat unit rate
	VolumeTiers []VolumeTier `json:"volume_tiers,omitempty"`

	// BaseFee is a flat mobilization/setup charge, always additive
	BaseFee decimal.Decimal `json:"base_fee"`

	// MinimumCharge is the floor below which a non-zero total is raised
	MinimumCharge decimal.Decimal `json:"minimum_charge"`

	// Deliverables is the add-on catalog for this line
	Deliverables []Deliverable `json:"deliverables,omitempty"`

	// SelectedDeliverableIDs lists the chosen add-ons
	SelectedDeliverableIDs []string `json:"selected_deliverable_ids,omitempty"`

	// Modifiers are the multiplicative adjustments applied to this line
	Modifiers []Modifier `json:"modifiers,omitempty"`
}

// IsPriced reports whether any pricing was ever set on this line: an
// available rate kind, a base fee, or a priced selectable deliverable.
// An unpriced line contributes zero to its category and is surfaced as
// "missing rate" rather than a legitimately-zero line.
func (li LineItem) IsPriced() bool {
	if li.RateSet.IsPriced() || li.BaseFee.IsPositive() {
		return true
	}
	for _, t := range li.VolumeTiers {
		if t.Rate.IsPositive() {
			return true
		}
	}
	for _, d := range li.Deliverables {
		if !d.Included && d.Price.IsPositive() {
			return true
		}
	}
	return false
}

// DeliverableSelected reports whether the given deliverable id is chosen
func (li LineItem) DeliverableSelected(id string) bool {
	for _, sel := range li.SelectedDeliverableIDs {
		if sel == id {
			return true
		}
	}
	return false
}

// Money returns a decimal rounded to cents for display-stable totals
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
