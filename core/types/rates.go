// Package types - Rate and pricing basis types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// RateKind identifies which pricing basis is active for a line item
type RateKind string

const (
	RateFixed   RateKind = "fixed"
	RateHourly  RateKind = "hourly"
	RateDaily   RateKind = "daily"
	RateWeekly  RateKind = "weekly"
	RatePerUnit RateKind = "per_unit"
)

// String returns the string representation
func (k RateKind) String() string {
	return string(k)
}

// AllRateKinds lists every rate kind in display order
func AllRateKinds() []RateKind {
	return []RateKind{RateFixed, RateHourly, RateDaily, RateWeekly, RatePerUnit}
}

// RateSet holds the priced attributes of something sellable or billable:
// a library service, a rate-card item, or an ad-hoc entry. Any subset of
// rates may be set; a kind is "available" when its rate is positive.
//
// A RateSet is immutable once loaded from its source. Line items embed a
// value copy, so later edits to the source never change existing lines.
type RateSet struct {
	// FixedRate is a flat price independent of quantity
	FixedRate decimal.Decimal `json:"fixed_rate"`

	// HourlyRate is the price per hour
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// DailyRate is the price per day
	DailyRate decimal.Decimal `json:"daily_rate"`

	// WeeklyRate is the price per week
	WeeklyRate decimal.Decimal `json:"weekly_rate"`

	// UnitRate is the price per unit of UnitType
	UnitRate decimal.Decimal `json:"unit_rate"`

	// UnitType names the billing unit (e.g., "acre", "mile", "sample")
	UnitType string `json:"unit_type,omitempty"`
}

// Rate returns the rate value for a kind, zero when the kind is unknown
func (rs RateSet) Rate(kind RateKind) decimal.Decimal {
	switch kind {
	case RateFixed:
		return rs.FixedRate
	case RateHourly:
		return rs.HourlyRate
	case RateDaily:
		return rs.DailyRate
	case RateWeekly:
		return rs.WeeklyRate
	case RatePerUnit:
		return rs.UnitRate
	default:
		return decimal.Zero
	}
}

// AvailableRateKinds returns the kinds with a positive rate, in display order.
// Callers should compute this once when a RateSet is loaded and offer only
// these kinds as selectable.
func (rs RateSet) AvailableRateKinds() []RateKind {
	kinds := make([]RateKind, 0, 5)
	for _, k := range AllRateKinds() {
		if rs.Rate(k).IsPositive() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// IsPriced reports whether any rate kind is available
func (rs RateSet) IsPriced() bool {
	for _, k := range AllRateKinds() {
		if rs.Rate(k).IsPositive() {
			return true
		}
	}
	return false
}
