// Package types - Project estimation input types
package types

import "github.com/shopspring/decimal"

// ResourceKind identifies a day-rate resource category
type ResourceKind string

const (
	ResourceCrew      ResourceKind = "crew"
	ResourceEquipment ResourceKind = "equipment"
	ResourceAircraft  ResourceKind = "aircraft"
)

// String returns the string representation
func (k ResourceKind) String() string {
	return string(k)
}

// DayRateResource is a crew member, equipment unit, or aircraft assigned
// to a project's field phase. These bill on a simple day-count model
// (daily rate x estimated field days), not full line-item rating.
type DayRateResource struct {
	// ID uniquely identifies the assignment
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Kind is the resource category
	Kind ResourceKind `json:"kind"`

	// DailyRate is the per-field-day charge
	DailyRate decimal.Decimal `json:"daily_rate"`
}

// Task is a pre-field or post-field work phase holding its own line items
type Task struct {
	// ID uniquely identifies the task
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Items are the priced entries attached to this task
	Items []LineItem `json:"items,omitempty"`
}

// Project is the complete estimation input: task-phase line items,
// project-level services, and day-rate field resources. It is plain data;
// persistence and presentation are the caller's concern.
type Project struct {
	// ID uniquely identifies the project
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// EstimatedFieldDays is the planned field duration used to bill
	// day-rate resources
	EstimatedFieldDays decimal.Decimal `json:"estimated_field_days"`

	// PreFieldTasks are planning/preparation phases
	PreFieldTasks []Task `json:"pre_field_tasks,omitempty"`

	// Services are project-level priced line items
	Services []LineItem `json:"services,omitempty"`

	// Crew are the assigned field crew members
	Crew []DayRateResource `json:"crew,omitempty"`

	// Equipment are the assigned field equipment units
	Equipment []DayRateResource `json:"equipment,omitempty"`

	// Aircraft are the assigned aircraft
	Aircraft []DayRateResource `json:"aircraft,omitempty"`

	// PostFieldTasks are processing/reporting phases
	PostFieldTasks []Task `json:"post_field_tasks,omitempty"`
}
