// Package ratecard provides rate-card catalog loading from HCL files.
//
// A rate-card file holds one or more rate_card blocks:
//
//	rate_card "aerial_survey" {
//	  name      = "Aerial survey"
//	  category  = "survey"
//	  unit_rate = 100
//	  unit_type = "acre"
//
//	  base_fee       = 50
//	  minimum_charge = 500
//
//	  tier {
//	    up_to = 10
//	    rate  = 100
//	  }
//	  tier {
//	    rate = 80
//	  }
//
//	  deliverable "orthomosaic" {
//	    name  = "Orthomosaic map"
//	    price = 75
//	  }
//	}
package ratecard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"fieldops-cost/core/catalog"
	"fieldops-cost/core/types"
	"fieldops-cost/internal/errors"
)

// Loader parses rate-card HCL into a catalog
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new rate-card loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// LoadPath loads a catalog from a file or from every .hcl file in a
// directory tree
func (l *Loader) LoadPath(path string) (*catalog.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.RateCard(fmt.Sprintf("cannot read rate cards at %s", path), err)
	}
	if !info.IsDir() {
		return l.LoadFile(path)
	}

	merged := catalog.New()
	err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || !strings.HasSuffix(p, ".hcl") {
			return nil
		}
		cat, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		merged = catalog.Merge(merged, cat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadFile loads a catalog from a single rate-card file
func (l *Loader) LoadFile(path string) (*catalog.Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.RateCard(fmt.Sprintf("failed to read %s", path), err)
	}
	return l.Parse(src, path)
}

// Parse parses rate-card HCL source
func (l *Loader) Parse(src []byte, filename string) (*catalog.Catalog, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.RateCard(fmt.Sprintf("invalid rate-card file %s", filename), diags)
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "rate_card", LabelNames: []string{"id"}},
		},
	})
	if diags.HasErrors() {
		return nil, errors.RateCard(fmt.Sprintf("invalid rate-card file %s", filename), diags)
	}

	cat := catalog.New()
	for _, block := range content.Blocks {
		if len(block.Labels) < 1 || block.Labels[0] == "" {
			return nil, errors.New(errors.TypeRateCard,
				fmt.Sprintf("rate_card block without id in %s", filename))
		}
		entry, err := l.parseEntry(block)
		if err != nil {
			return nil, err
		}
		cat.Put(entry)
	}
	return cat, nil
}

// entrySchema lists the attributes and nested blocks of a rate_card block
var entrySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "category"},
		{Name: "fixed_rate"},
		{Name: "hourly_rate"},
		{Name: "daily_rate"},
		{Name: "weekly_rate"},
		{Name: "unit_rate"},
		{Name: "unit_type"},
		{Name: "base_fee"},
		{Name: "minimum_charge"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "tier"},
		{Type: "deliverable", LabelNames: []string{"id"}},
	},
}

var tierSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "up_to"},
		{Name: "rate"},
	},
}

var deliverableSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "price"},
		{Name: "included"},
	},
}

func (l *Loader) parseEntry(block *hcl.Block) (catalog.Entry, error) {
	content, diags := block.Body.Content(entrySchema)
	if diags.HasErrors() {
		return catalog.Entry{}, errors.RateCard(
			fmt.Sprintf("invalid rate_card %q", block.Labels[0]), diags)
	}

	attrs := content.Attributes
	entry := catalog.Entry{
		ID:       block.Labels[0],
		Name:     attrString(attrs, "name"),
		Category: attrString(attrs, "category"),
		Rates: types.RateSet{
			FixedRate:  attrDecimal(attrs, "fixed_rate"),
			HourlyRate: attrDecimal(attrs, "hourly_rate"),
			DailyRate:  attrDecimal(attrs, "daily_rate"),
			WeeklyRate: attrDecimal(attrs, "weekly_rate"),
			UnitRate:   attrDecimal(attrs, "unit_rate"),
			UnitType:   attrString(attrs, "unit_type"),
		},
		BaseFee:       attrDecimal(attrs, "base_fee"),
		MinimumCharge: attrDecimal(attrs, "minimum_charge"),
	}
	if entry.Name == "" {
		entry.Name = entry.ID
	}

	for _, inner := range content.Blocks {
		switch inner.Type {
		case "tier":
			tier, err := l.parseTier(inner)
			if err != nil {
				return catalog.Entry{}, err
			}
			entry.Tiers = append(entry.Tiers, tier)
		case "deliverable":
			d, err := l.parseDeliverable(inner)
			if err != nil {
				return catalog.Entry{}, err
			}
			entry.Deliverables = append(entry.Deliverables, d)
		}
	}
	return entry, nil
}

func (l *Loader) parseTier(block *hcl.Block) (types.VolumeTier, error) {
	content, diags := block.Body.Content(tierSchema)
	if diags.HasErrors() {
		return types.VolumeTier{}, errors.RateCard("invalid tier block", diags)
	}
	tier := types.VolumeTier{
		Rate: attrDecimal(content.Attributes, "rate"),
	}
	if _, ok := content.Attributes["up_to"]; ok {
		upTo := attrDecimal(content.Attributes, "up_to")
		tier.UpTo = &upTo
	}
	return tier, nil
}

func (l *Loader) parseDeliverable(block *hcl.Block) (types.Deliverable, error) {
	content, diags := block.Body.Content(deliverableSchema)
	if diags.HasErrors() {
		return types.Deliverable{}, errors.RateCard("invalid deliverable block", diags)
	}
	d := types.Deliverable{
		ID:       block.Labels[0],
		Name:     attrString(content.Attributes, "name"),
		Price:    attrDecimal(content.Attributes, "price"),
		Included: attrBool(content.Attributes, "included"),
	}
	if d.Name == "" {
		d.Name = d.ID
	}
	return d, nil
}

// attrDecimal evaluates a numeric attribute. Absent, non-numeric, or
// unknown values coerce to zero, matching the engine's treatment of
// unset rates.
func attrDecimal(attrs hcl.Attributes, name string) decimal.Decimal {
	attr, ok := attrs[name]
	if !ok {
		return decimal.Zero
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || v.IsNull() || !v.IsKnown() {
		return decimal.Zero
	}
	switch v.Type() {
	case cty.Number:
		d, err := decimal.NewFromString(v.AsBigFloat().Text('f', -1))
		if err != nil {
			return decimal.Zero
		}
		return d
	case cty.String:
		d, err := decimal.NewFromString(v.AsString())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// attrString evaluates a string attribute, empty when absent
func attrString(attrs hcl.Attributes, name string) string {
	attr, ok := attrs[name]
	if !ok {
		return ""
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
		return ""
	}
	return v.AsString()
}

// attrBool evaluates a bool attribute, false when absent
func attrBool(attrs hcl.Attributes, name string) bool {
	attr, ok := attrs[name]
	if !ok {
		return false
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || v.IsNull() || !v.IsKnown() || v.Type() != cty.Bool {
		return false
	}
	return v.True()
}
