// Package rating - Deliverable selection
package rating

import (
	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

// DeliverablesTotal sums the prices of the line's selected add-on
// deliverables. Included deliverables are already covered by the base
// rate and contribute zero even when selected, so they are never
// double-charged.
func DeliverablesTotal(item types.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, d := range item.Deliverables {
		if d.Included {
			continue
		}
		if !item.DeliverableSelected(d.ID) {
			continue
		}
		total = total.Add(d.Price)
	}
	return total
}
