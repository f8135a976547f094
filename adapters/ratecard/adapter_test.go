// Package ratecard - Rate-card parsing tests
package ratecard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

const sampleCard = `
rate_card "aerial_survey" {
  name      = "Aerial survey"
  category  = "survey"
  unit_rate = 100
  unit_type = "acre"

  base_fee       = 50
  minimum_charge = 500

  tier {
    up_to = 10
    rate  = 100
  }
  tier {
    rate = 80
  }

  deliverable "raw" {
    name     = "Raw imagery"
    included = true
  }
  deliverable "ortho" {
    name  = "Orthomosaic map"
    price = 75
  }
}

rate_card "mobilization" {
  fixed_rate = 300
}
`

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseRateCards(t *testing.T) {
	cat, err := NewLoader().Parse([]byte(sampleCard), "rates.hcl")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", cat.Len())
	}

	e, ok := cat.Lookup("aerial_survey")
	if !ok {
		t.Fatal("aerial_survey not found")
	}
	if e.Name != "Aerial survey" || e.Category != "survey" {
		t.Errorf("Metadata wrong: %+v", e)
	}
	if !e.Rates.UnitRate.Equal(dec("100")) || e.Rates.UnitType != "acre" {
		t.Errorf("Unit rate wrong: %s %s", e.Rates.UnitRate, e.Rates.UnitType)
	}
	if !e.BaseFee.Equal(dec("50")) || !e.MinimumCharge.Equal(dec("500")) {
		t.Errorf("Fees wrong: base=%s min=%s", e.BaseFee, e.MinimumCharge)
	}
	if len(e.Kinds) != 1 || e.Kinds[0] != types.RatePerUnit {
		t.Errorf("Expected kinds [per_unit], got %v", e.Kinds)
	}

	if len(e.Tiers) != 2 {
		t.Fatalf("Expected 2 tiers, got %d", len(e.Tiers))
	}
	if e.Tiers[0].UpTo == nil || !e.Tiers[0].UpTo.Equal(dec("10")) {
		t.Errorf("First tier bound wrong: %+v", e.Tiers[0])
	}
	if !e.Tiers[1].Unbounded() || !e.Tiers[1].Rate.Equal(dec("80")) {
		t.Errorf("Second tier should be unbounded at 80: %+v", e.Tiers[1])
	}

	if len(e.Deliverables) != 2 {
		t.Fatalf("Expected 2 deliverables, got %d", len(e.Deliverables))
	}
	if !e.Deliverables[0].Included || !e.Deliverables[0].Price.IsZero() {
		t.Errorf("Included deliverable wrong: %+v", e.Deliverables[0])
	}
	if e.Deliverables[1].Included || !e.Deliverables[1].Price.Equal(dec("75")) {
		t.Errorf("Priced deliverable wrong: %+v", e.Deliverables[1])
	}

	m, _ := cat.Lookup("mobilization")
	if m.Name != "mobilization" {
		t.Errorf("Name should default to id, got %q", m.Name)
	}
	if len(m.Kinds) != 1 || m.Kinds[0] != types.RateFixed {
		t.Errorf("Expected kinds [fixed], got %v", m.Kinds)
	}
}

func TestParseInvalidHCL(t *testing.T) {
	if _, err := NewLoader().Parse([]byte(`rate_card "x" {`), "broken.hcl"); err == nil {
		t.Error("Expected error for unterminated block")
	}
}

func TestParseUnknownAttributeRejected(t *testing.T) {
	src := []byte(`
rate_card "x" {
  hourly_rate = 10
  bogus       = true
}
`)
	if _, err := NewLoader().Parse(src, "rates.hcl"); err == nil {
		t.Error("Expected error for unknown attribute")
	}
}

func TestLoadPathWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`rate_card "a" { hourly_rate = 10 }`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`rate_card "b" { daily_rate = 80 }`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := NewLoader().LoadPath(dir)
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Expected 2 entries from directory, got %d", cat.Len())
	}
}
