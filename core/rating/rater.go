// Package rating - Pure line-item rating engine
// Turns a heterogeneous priced line item (time-based, per-unit with
// volume tiers, fixed-fee, add-on deliverables, percentage modifiers,
// minimum charges) into a single deterministic total.
//
// The engine is total over its input domain: it never errors or panics
// on partial or malformed input, because it feeds a live cost preview
// that recomputes on every edit. Missing fields are zero values and
// compute as zero; negative intermediates are allowed through the math
// and the final total is clamped at zero.
package rating

import (
	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

// SelectedRate returns the single rate applicable to the line's selected
// kind, zero when that kind was never priced. Callers are responsible
// for offering only available kinds as selectable.
func SelectedRate(item types.LineItem) decimal.Decimal {
	return item.RateSet.Rate(item.SelectedRateKind)
}

// LineTotal computes one line item's total cost, in fixed order:
// base cost, plus base fee, plus selected deliverables, times the
// composed modifiers, then the minimum-charge floor.
//
// The floor only protects an active line from under-billing: a
// naturally-zero total stays zero and is never forced up to the minimum.
func LineTotal(item types.LineItem) decimal.Decimal {
	total := baseCost(item)
	total = total.Add(item.BaseFee)
	total = total.Add(DeliverablesTotal(item))
	total = total.Mul(ComposeModifiers(item.Modifiers))

	if item.MinimumCharge.IsPositive() && total.Sign() > 0 && total.LessThan(item.MinimumCharge) {
		total = item.MinimumCharge
	}
	if total.Sign() < 0 {
		return decimal.Zero
	}
	return total
}

// baseCost resolves the quantity-dependent part of the line
func baseCost(item types.LineItem) decimal.Decimal {
	switch item.SelectedRateKind {
	case types.RateFixed:
		return item.FixedRate
	case types.RatePerUnit:
		if len(item.VolumeTiers) > 0 && item.Quantity.Sign() > 0 {
			return TieredCost(item.Quantity, item.VolumeTiers)
		}
		return item.Quantity.Mul(item.UnitRate)
	default:
		return item.Quantity.Mul(SelectedRate(item))
	}
}
