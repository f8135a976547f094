// Package catalog - Catalog tests
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func surveyEntry() Entry {
	return Entry{
		ID:   "aerial_survey",
		Name: "Aerial survey",
		Rates: types.RateSet{
			HourlyRate: dec("250"),
			UnitRate:   dec("100"),
			UnitType:   "acre",
		},
		BaseFee:       dec("50"),
		MinimumCharge: dec("500"),
		Deliverables: []types.Deliverable{
			{ID: "raw", Name: "Raw imagery", Included: true},
			{ID: "ortho", Name: "Orthomosaic", Price: dec("75")},
		},
	}
}

func TestPutComputesAvailableKinds(t *testing.T) {
	cat := New()
	cat.Put(surveyEntry())

	e, ok := cat.Lookup("aerial_survey")
	if !ok {
		t.Fatal("Entry not found after Put")
	}
	if len(e.Kinds) != 2 || e.Kinds[0] != types.RateHourly || e.Kinds[1] != types.RatePerUnit {
		t.Errorf("Expected kinds [hourly per_unit], got %v", e.Kinds)
	}
}

func TestMergeOverridesWinEntryByEntry(t *testing.T) {
	defaults := New()
	defaults.Put(surveyEntry())
	defaults.Put(Entry{ID: "mobilization", Name: "Mobilization", Rates: types.RateSet{FixedRate: dec("300")}})

	overrides := New()
	override := surveyEntry()
	override.Rates.HourlyRate = dec("275")
	overrides.Put(override)

	merged := Merge(defaults, overrides)

	if merged.Len() != 2 {
		t.Fatalf("Expected 2 merged entries, got %d", merged.Len())
	}
	e, _ := merged.Lookup("aerial_survey")
	if !e.Rates.HourlyRate.Equal(dec("275")) {
		t.Errorf("Expected override rate 275, got %s", e.Rates.HourlyRate)
	}
	m, ok := merged.Lookup("mobilization")
	if !ok || !m.Rates.FixedRate.Equal(dec("300")) {
		t.Error("Default-only entry lost in merge")
	}
}

func TestAttachSnapshotsPricing(t *testing.T) {
	cat := New()
	cat.Put(surveyEntry())

	item, ok := cat.Attach("aerial_survey", "line-1")
	if !ok {
		t.Fatal("Attach failed for existing entry")
	}
	if item.SelectedRateKind != types.RateHourly {
		t.Errorf("Expected first available kind pre-selected, got %s", item.SelectedRateKind)
	}
	if !item.MinimumCharge.Equal(dec("500")) {
		t.Errorf("Expected minimum charge copied, got %s", item.MinimumCharge)
	}

	// Later catalog edits must not change the attached line
	updated := surveyEntry()
	updated.Rates.HourlyRate = dec("999")
	updated.Deliverables[1].Price = dec("999")
	cat.Put(updated)

	if !item.HourlyRate.Equal(dec("250")) {
		t.Errorf("Catalog edit leaked into attached line: %s", item.HourlyRate)
	}
	if !item.Deliverables[1].Price.Equal(dec("75")) {
		t.Errorf("Catalog edit leaked into attached deliverables: %s", item.Deliverables[1].Price)
	}
}

func TestAttachUnknownEntry(t *testing.T) {
	cat := New()
	if _, ok := cat.Attach("missing", "line-1"); ok {
		t.Error("Attach succeeded for unknown entry")
	}
}

func TestHydrateFillsOnlyUnpricedItems(t *testing.T) {
	cat := New()
	cat.Put(surveyEntry())

	unpriced := types.LineItem{ID: "l1", SourceID: "aerial_survey"}
	if !cat.Hydrate(&unpriced) {
		t.Fatal("Expected unpriced item to hydrate")
	}
	if !unpriced.HourlyRate.Equal(dec("250")) || unpriced.SelectedRateKind != types.RateHourly {
		t.Errorf("Hydration incomplete: rate=%s kind=%s", unpriced.HourlyRate, unpriced.SelectedRateKind)
	}

	// An already-priced item keeps its snapshot
	priced := types.LineItem{
		ID:       "l2",
		SourceID: "aerial_survey",
		RateSet:  types.RateSet{HourlyRate: dec("180")},
	}
	if cat.Hydrate(&priced) {
		t.Error("Priced item must not be re-hydrated")
	}
	if !priced.HourlyRate.Equal(dec("180")) {
		t.Errorf("Snapshot overwritten: %s", priced.HourlyRate)
	}
}

func TestHydrateProject(t *testing.T) {
	cat := New()
	cat.Put(surveyEntry())

	p := &types.Project{
		Services: []types.LineItem{{ID: "s1", SourceID: "aerial_survey"}},
		PostFieldTasks: []types.Task{
			{ID: "t1", Items: []types.LineItem{{ID: "i1", SourceID: "aerial_survey"}}},
		},
	}

	if filled := cat.HydrateProject(p); filled != 2 {
		t.Errorf("Expected 2 hydrated items, got %d", filled)
	}
	if !p.Services[0].IsPriced() || !p.PostFieldTasks[0].Items[0].IsPriced() {
		t.Error("Hydrated items still unpriced")
	}
}

func TestIDsPreserveInsertionOrder(t *testing.T) {
	cat := New()
	cat.Put(Entry{ID: "b"})
	cat.Put(Entry{ID: "a"})
	cat.Put(Entry{ID: "b"}) // replace, keeps position

	ids := cat.IDs()
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
		t.Errorf("Expected [b a], got %v", ids)
	}
}
