// Package rating - Volume tier tests
package rating

import (
	"testing"

	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tier(upTo, rate string) types.VolumeTier {
	t := types.VolumeTier{Rate: dec(rate)}
	if upTo != "" {
		bound := dec(upTo)
		t.UpTo = &bound
	}
	return t
}

func TestTieredCostMarginalAccumulation(t *testing.T) {
	// 12 acres across [0,10] at 100 and above at 80:
	// 10x100 + 2x80 = 1160, not 12x80 (cliff pricing)
	tiers := []types.VolumeTier{tier("10", "100"), tier("", "80")}

	cost := TieredCost(dec("12"), tiers)
	if !cost.Equal(dec("1160")) {
		t.Errorf("Expected 1160 for 12 units, got %s", cost)
	}
}

func TestTieredCostZeroQuantity(t *testing.T) {
	tiers := []types.VolumeTier{tier("10", "100"), tier("", "80")}

	if cost := TieredCost(decimal.Zero, tiers); !cost.IsZero() {
		t.Errorf("Expected 0 for zero quantity, got %s", cost)
	}
	if cost := TieredCost(dec("-5"), tiers); !cost.IsZero() {
		t.Errorf("Expected 0 for negative quantity, got %s", cost)
	}
}

func TestTieredCostNoTiers(t *testing.T) {
	if cost := TieredCost(dec("12"), nil); !cost.IsZero() {
		t.Errorf("Expected 0 with no tiers, got %s", cost)
	}
}

func TestTieredCostExactBoundary(t *testing.T) {
	// At a tier boundary the cost is each bracket's full capacity x rate
	tiers := []types.VolumeTier{tier("10", "100"), tier("25", "90"), tier("", "80")}

	cost := TieredCost(dec("25"), tiers)
	want := dec("2350") // 10x100 + 15x90
	if !cost.Equal(want) {
		t.Errorf("Expected %s at boundary 25, got %s", want, cost)
	}
}

func TestTieredCostSortsUnorderedTiers(t *testing.T) {
	// Storage order is not guaranteed; unbounded tier listed first
	tiers := []types.VolumeTier{tier("", "80"), tier("25", "90"), tier("10", "100")}

	cost := TieredCost(dec("30"), tiers)
	want := dec("2750") // 10x100 + 15x90 + 5x80
	if !cost.Equal(want) {
		t.Errorf("Expected %s with unordered tiers, got %s", want, cost)
	}
}

func TestTieredCostMonotonic(t *testing.T) {
	tiers := []types.VolumeTier{tier("10", "100"), tier("25", "90"), tier("", "80")}

	prev := decimal.Zero
	for q := 0; q <= 40; q++ {
		cost := TieredCost(decimal.NewFromInt(int64(q)), tiers)
		if cost.LessThan(prev) {
			t.Fatalf("Cost decreased at quantity %d: %s < %s", q, cost, prev)
		}
		prev = cost
	}
}

func TestTieredCostLastTierExtends(t *testing.T) {
	// No unbounded tail: excess past the last finite bound is charged at
	// the last tier's rate instead of being dropped
	tiers := []types.VolumeTier{tier("10", "100"), tier("20", "90")}

	cost := TieredCost(dec("30"), tiers)
	want := dec("2800") // 10x100 + 10x90 + 10x90
	if !cost.Equal(want) {
		t.Errorf("Expected %s with excess past last bound, got %s", want, cost)
	}
}

func TestTieredCostFractionalQuantity(t *testing.T) {
	tiers := []types.VolumeTier{tier("10", "100"), tier("", "80")}

	cost := TieredCost(dec("10.5"), tiers)
	want := dec("1040") // 10x100 + 0.5x80
	if !cost.Equal(want) {
		t.Errorf("Expected %s for fractional quantity, got %s", want, cost)
	}
}

func TestTieredCostDuplicateBounds(t *testing.T) {
	// A duplicate bound has zero capacity and must not consume quantity
	tiers := []types.VolumeTier{tier("10", "100"), tier("10", "50"), tier("", "80")}

	cost := TieredCost(dec("12"), tiers)
	want := dec("1160") // 10x100 + 2x80
	if !cost.Equal(want) {
		t.Errorf("Expected %s with duplicate bound, got %s", want, cost)
	}
}
