// Package rating - Modifier composition
package rating

import (
	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

// ComposeModifiers combines a list of adjustments into one scalar: the
// product of the multipliers, 1 for an empty list. Composition is
// multiplicative, never additive: +25% and +50% together scale by
// 1.25 x 1.50 = 1.875, not 1.75. Order does not matter.
//
// A zero multiplier is treated as unset rather than "multiply by zero";
// missing numeric input coerces to zero and must not wipe out a line.
func ComposeModifiers(modifiers []types.Modifier) decimal.Decimal {
	scale := decimal.NewFromInt(1)
	for _, m := range modifiers {
		if m.Multiplier.IsZero() {
			continue
		}
		scale = scale.Mul(m.Multiplier)
	}
	return scale
}
