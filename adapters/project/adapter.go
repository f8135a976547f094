// Package project provides project estimate input loading from JSON.
//
// Input comes from editors and pickers that may hold partial,
// in-progress state, so decoding is tolerant: missing, null, empty, or
// non-numeric fields coerce to zero instead of failing (the engine must
// compute something defensible mid-edit). Only malformed JSON itself is
// an error.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"fieldops-cost/core/types"
	"fieldops-cost/internal/errors"
)

// Number is a tolerant numeric field. JSON numbers, numeric strings,
// null, and empty strings all decode; unusable values coerce to zero.
type Number struct {
	decimal.Decimal
}

// UnmarshalJSON implements tolerant numeric decoding
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		n.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}

// Wire mirrors of the core types with tolerant numerics. Unknown extra
// fields are ignored by the decoder.

type tierJSON struct {
	UpTo *Number `json:"up_to"`
	Rate Number  `json:"rate"`
}

type deliverableJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Number `json:"price"`
	Included bool   `json:"included"`
}

type modifierJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Multiplier Number `json:"multiplier"`
}

type lineItemJSON struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	SourceID               string            `json:"source_id"`
	SelectedRateKind       string            `json:"selected_rate_kind"`
	Quantity               Number            `json:"quantity"`
	FixedRate              Number            `json:"fixed_rate"`
	HourlyRate             Number            `json:"hourly_rate"`
	DailyRate              Number            `json:"daily_rate"`
	WeeklyRate             Number            `json:"weekly_rate"`
	UnitRate               Number            `json:"unit_rate"`
	UnitType               string            `json:"unit_type"`
	VolumeTiers            []tierJSON        `json:"volume_tiers"`
	BaseFee                Number            `json:"base_fee"`
	MinimumCharge          Number            `json:"minimum_charge"`
	Deliverables           []deliverableJSON `json:"deliverables"`
	SelectedDeliverableIDs []string          `json:"selected_deliverable_ids"`
	Modifiers              []modifierJSON    `json:"modifiers"`
}

type resourceJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	DailyRate Number `json:"daily_rate"`
}

type taskJSON struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []lineItemJSON `json:"items"`
}

type projectJSON struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	EstimatedFieldDays Number         `json:"estimated_field_days"`
	PreFieldTasks      []taskJSON     `json:"pre_field_tasks"`
	Services           []lineItemJSON `json:"services"`
	Crew               []resourceJSON `json:"crew"`
	Equipment          []resourceJSON `json:"equipment"`
	Aircraft           []resourceJSON `json:"aircraft"`
	PostFieldTasks     []taskJSON     `json:"post_field_tasks"`
}

// Load reads and parses a project file
func Load(path string) (*types.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, fmt.Sprintf("failed to read %s", path), err)
	}
	return Parse(data)
}

// Parse decodes a project estimate input
func Parse(data []byte) (*types.Project, error) {
	var raw projectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parsing("invalid project JSON", err)
	}
	return convertProject(raw), nil
}

// ParseLineItem decodes a single line item, for one-off rating
func ParseLineItem(data []byte) (types.LineItem, error) {
	var raw lineItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.LineItem{}, errors.Parsing("invalid line item JSON", err)
	}
	return convertLineItem(raw), nil
}

// ParseModifiers decodes a modifier list, for one-off composition
func ParseModifiers(data []byte) ([]types.Modifier, error) {
	var raw []modifierJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parsing("invalid modifier JSON", err)
	}
	mods := make([]types.Modifier, 0, len(raw))
	for _, m := range raw {
		mods = append(mods, types.Modifier{ID: m.ID, Name: m.Name, Multiplier: m.Multiplier.Decimal})
	}
	return mods, nil
}

func convertProject(raw projectJSON) *types.Project {
	p := &types.Project{
		ID:                 raw.ID,
		Name:               raw.Name,
		EstimatedFieldDays: raw.EstimatedFieldDays.Decimal,
	}
	for _, t := range raw.PreFieldTasks {
		p.PreFieldTasks = append(p.PreFieldTasks, convertTask(t))
	}
	for _, li := range raw.Services {
		p.Services = append(p.Services, convertLineItem(li))
	}
	p.Crew = convertResources(raw.Crew, types.ResourceCrew)
	p.Equipment = convertResources(raw.Equipment, types.ResourceEquipment)
	p.Aircraft = convertResources(raw.Aircraft, types.ResourceAircraft)
	for _, t := range raw.PostFieldTasks {
		p.PostFieldTasks = append(p.PostFieldTasks, convertTask(t))
	}
	return p
}

func convertTask(raw taskJSON) types.Task {
	t := types.Task{ID: raw.ID, Name: raw.Name}
	for _, li := range raw.Items {
		t.Items = append(t.Items, convertLineItem(li))
	}
	return t
}

func convertResources(raw []resourceJSON, fallback types.ResourceKind) []types.DayRateResource {
	if len(raw) == 0 {
		return nil
	}
	out := make([]types.DayRateResource, 0, len(raw))
	for _, r := range raw {
		kind := types.ResourceKind(r.Kind)
		if kind == "" {
			kind = fallback
		}
		out = append(out, types.DayRateResource{
			ID:        r.ID,
			Name:      r.Name,
			Kind:      kind,
			DailyRate: r.DailyRate.Decimal,
		})
	}
	return out
}

func convertLineItem(raw lineItemJSON) types.LineItem {
	item := types.LineItem{
		ID:               raw.ID,
		Name:             raw.Name,
		SourceID:         raw.SourceID,
		SelectedRateKind: types.RateKind(raw.SelectedRateKind),
		Quantity:         raw.Quantity.Decimal,
		RateSet: types.RateSet{
			FixedRate:  raw.FixedRate.Decimal,
			HourlyRate: raw.HourlyRate.Decimal,
			DailyRate:  raw.DailyRate.Decimal,
			WeeklyRate: raw.WeeklyRate.Decimal,
			UnitRate:   raw.UnitRate.Decimal,
			UnitType:   raw.UnitType,
		},
		BaseFee:                raw.BaseFee.Decimal,
		MinimumCharge:          raw.MinimumCharge.Decimal,
		SelectedDeliverableIDs: raw.SelectedDeliverableIDs,
	}
	for _, t := range raw.VolumeTiers {
		tier := types.VolumeTier{Rate: t.Rate.Decimal}
		if t.UpTo != nil {
			upTo := t.UpTo.Decimal
			tier.UpTo = &upTo
		}
		item.VolumeTiers = append(item.VolumeTiers, tier)
	}
	for _, d := range raw.Deliverables {
		item.Deliverables = append(item.Deliverables, types.Deliverable{
			ID:       d.ID,
			Name:     d.Name,
			Price:    d.Price.Decimal,
			Included: d.Included,
		})
	}
	for _, m := range raw.Modifiers {
		item.Modifiers = append(item.Modifiers, types.Modifier{
			ID:         m.ID,
			Name:       m.Name,
			Multiplier: m.Multiplier.Decimal,
		})
	}
	return item
}
