// Package rating - Volume tier accumulation
package rating

import (
	"sort"

	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

// sortTiers returns a copy of tiers ordered ascending by UpTo, unbounded
// tiers last. Storage order is not guaranteed, so every accumulation
// sorts first.
func sortTiers(tiers []types.VolumeTier) []types.VolumeTier {
	sorted := make([]types.VolumeTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Unbounded() {
			return false
		}
		if sorted[j].Unbounded() {
			return true
		}
		return sorted[i].UpTo.LessThan(*sorted[j].UpTo)
	})
	return sorted
}

// TieredCost accumulates a quantity across graduated volume tiers.
// This is a marginal model, like progressive tax brackets: quantity
// inside each bracket is charged at that bracket's rate only. Callers
// with no tiers fall back to flat quantity x unit rate.
//
// The highest tier extends to infinity by convention: quantity past the
// last finite bound is charged at the last tier's rate rather than
// silently dropped.
func TieredCost(quantity decimal.Decimal, tiers []types.VolumeTier) decimal.Decimal {
	if quantity.Sign() <= 0 || len(tiers) == 0 {
		return decimal.Zero
	}

	sorted := sortTiers(tiers)

	total := decimal.Zero
	remaining := quantity
	prevUpTo := decimal.Zero

	for _, tier := range sorted {
		if remaining.Sign() <= 0 {
			break
		}
		if tier.Unbounded() {
			total = total.Add(remaining.Mul(tier.Rate))
			remaining = decimal.Zero
			break
		}
		capacity := tier.UpTo.Sub(prevUpTo)
		if capacity.Sign() <= 0 {
			// duplicate or out-of-order bound, nothing to consume
			continue
		}
		consumed := decimal.Min(remaining, capacity)
		total = total.Add(consumed.Mul(tier.Rate))
		remaining = remaining.Sub(consumed)
		prevUpTo = *tier.UpTo
	}

	if remaining.Sign() > 0 {
		last := sorted[len(sorted)-1]
		total = total.Add(remaining.Mul(last.Rate))
	}

	return total
}
