// Package catalog - Rate-card catalog
// Holds the priced entries a project can attach: library services,
// rate-card items, day-rate resources. The catalog is an explicit lookup
// passed to callers, never ambient module state, and organization
// overrides merge over defaults entry-by-entry.
package catalog

import (
	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
)

// Entry is one priced catalog record. Available kinds are computed once
// at load time so callers never re-sniff rate fields.
type Entry struct {
	// ID uniquely identifies the entry across the catalog
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Category groups entries for pickers (e.g., "survey", "application")
	Category string `json:"category,omitempty"`

	// Rates holds the entry's priced attributes
	Rates types.RateSet `json:"rates"`

	// Kinds caches the available rate kinds, computed at load
	Kinds []types.RateKind `json:"kinds,omitempty"`

	// Tiers are the default volume tiers for per-unit pricing
	Tiers []types.VolumeTier `json:"tiers,omitempty"`

	// BaseFee is the default mobilization/setup charge
	BaseFee decimal.Decimal `json:"base_fee"`

	// MinimumCharge is the default line floor
	MinimumCharge decimal.Decimal `json:"minimum_charge"`

	// Deliverables is the entry's add-on catalog
	Deliverables []types.Deliverable `json:"deliverables,omitempty"`
}

// clone returns a deep value copy so attached snapshots never alias
// catalog-owned slices
func (e Entry) clone() Entry {
	c := e
	c.Kinds = append([]types.RateKind(nil), e.Kinds...)
	c.Tiers = append([]types.VolumeTier(nil), e.Tiers...)
	c.Deliverables = append([]types.Deliverable(nil), e.Deliverables...)
	return c
}

// Catalog is an ordered collection of rate-card entries
type Catalog struct {
	entries map[string]Entry
	order   []string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Put adds or replaces an entry, recomputing its cached kinds
func (c *Catalog) Put(e Entry) {
	e.Kinds = e.Rates.AvailableRateKinds()
	if _, exists := c.entries[e.ID]; !exists {
		c.order = append(c.order, e.ID)
	}
	c.entries[e.ID] = e
}

// Lookup returns a value copy of an entry
func (c *Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// IDs returns entry ids in insertion order
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Merge layers overrides on top of defaults into a new catalog. Either
// argument may be nil.
func Merge(defaults, overrides *Catalog) *Catalog {
	merged := New()
	if defaults != nil {
		for _, id := range defaults.order {
			merged.Put(defaults.entries[id])
		}
	}
	if overrides != nil {
		for _, id := range overrides.order {
			merged.Put(overrides.entries[id])
		}
	}
	return merged
}

// Attach builds a line item from a catalog entry, embedding a snapshot
// of the entry's pricing. Later edits to the catalog never change the
// returned line; this is the copy-on-add semantic project history relies
// on. The first available rate kind is pre-selected.
func (c *Catalog) Attach(entryID, lineID string) (types.LineItem, bool) {
	e, ok := c.Lookup(entryID)
	if !ok {
		return types.LineItem{}, false
	}
	item := types.LineItem{
		ID:            lineID,
		Name:          e.Name,
		SourceID:      e.ID,
		RateSet:       e.Rates,
		VolumeTiers:   e.Tiers,
		BaseFee:       e.BaseFee,
		MinimumCharge: e.MinimumCharge,
		Deliverables:  e.Deliverables,
	}
	if len(e.Kinds) > 0 {
		item.SelectedRateKind = e.Kinds[0]
	}
	return item, true
}

// Hydrate fills an unpriced line item from its source entry. Picker
// output sometimes carries only a source reference; hydration performs
// the snapshot copy that attaching normally does. Items that already
// carry pricing are left untouched, preserving their snapshot.
func (c *Catalog) Hydrate(item *types.LineItem) bool {
	if item == nil || item.SourceID == "" || item.IsPriced() {
		return false
	}
	e, ok := c.Lookup(item.SourceID)
	if !ok {
		return false
	}
	item.RateSet = e.Rates
	item.BaseFee = e.BaseFee
	item.MinimumCharge = e.MinimumCharge
	if len(item.VolumeTiers) == 0 {
		item.VolumeTiers = e.Tiers
	}
	if len(item.Deliverables) == 0 {
		item.Deliverables = e.Deliverables
	}
	if item.Name == "" {
		item.Name = e.Name
	}
	if item.SelectedRateKind == "" && len(e.Kinds) > 0 {
		item.SelectedRateKind = e.Kinds[0]
	}
	return true
}

// HydrateProject hydrates every unpriced line item in a project and
// returns how many were filled
func (c *Catalog) HydrateProject(p *types.Project) int {
	if p == nil {
		return 0
	}
	filled := 0
	for i := range p.Services {
		if c.Hydrate(&p.Services[i]) {
			filled++
		}
	}
	for t := range p.PreFieldTasks {
		for i := range p.PreFieldTasks[t].Items {
			if c.Hydrate(&p.PreFieldTasks[t].Items[i]) {
				filled++
			}
		}
	}
	for t := range p.PostFieldTasks {
		for i := range p.PostFieldTasks[t].Items {
			if c.Hydrate(&p.PostFieldTasks[t].Items[i]) {
				filled++
			}
		}
	}
	return filled
}
