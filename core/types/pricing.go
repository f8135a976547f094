// Package types - Tier, deliverable, and modifier types
package types

import "github.com/shopspring/decimal"

// VolumeTier is one quantity bracket in graduated per-unit pricing.
// Quantity in (previous tier's UpTo, this UpTo] is charged at Rate per
// unit. A nil UpTo means the tier is unbounded and must sort last.
type VolumeTier struct {
	// UpTo is the inclusive upper bound of this bracket (nil = unbounded)
	UpTo *decimal.Decimal `json:"up_to,omitempty"`

	// Rate is the per-unit price inside this bracket
	Rate decimal.Decimal `json:"rate"`
}

// Unbounded reports whether this tier has no upper bound
func (t VolumeTier) Unbounded() bool {
	return t.UpTo == nil
}

// Deliverable is an optional add-on attached to a priced line item.
// Included deliverables are bundled at no extra charge; the rest add
// Price only when selected.
type Deliverable struct {
	// ID uniquely identifies the deliverable within its line item
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Price is the add-on price when selected and not included
	Price decimal.Decimal `json:"price"`

	// Included marks the deliverable as bundled with the base rate
	Included bool `json:"included"`
}

// Modifier is a multiplicative percentage adjustment applied to a line's
// pre-modifier cost. Multipliers above 1 are surcharges, below 1 are
// discounts. Modifiers compose multiplicatively, never additively.
type Modifier struct {
	// ID uniquely identifies the modifier within its line item
	ID string `json:"id"`

	// Name is the display name (e.g., "Rush", "Repeat client")
	Name string `json:"name"`

	// Multiplier is the scale factor; 1.0 is a no-op, 0 is treated as unset
	Multiplier decimal.Decimal `json:"multiplier"`
}
