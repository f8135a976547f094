// Package api - Request and response types
package api

import (
	"fieldops-cost/core/types"
)

// EstimateResponse is the body of POST /v1/estimate
type EstimateResponse struct {
	// Breakdown is the computed project cost breakdown
	Breakdown *types.CostBreakdown `json:"breakdown"`

	// Incomplete reports whether any category has unpriced items
	Incomplete bool `json:"incomplete"`

	// Metadata contains execution context
	Metadata ResponseMetadata `json:"metadata"`
}

// RateResponse is the body of POST /v1/rate
type RateResponse struct {
	// Total is the line item's computed total
	Total string `json:"total"`

	// Currency is the total's currency
	Currency types.Currency `json:"currency"`
}

// ModifiersResponse is the body of POST /v1/modifiers
type ModifiersResponse struct {
	// Scale is the composed multiplier, for display as "x1.25"
	Scale string `json:"scale"`
}

// ResponseMetadata contains execution context
type ResponseMetadata struct {
	// Timestamp is when the computation ran
	Timestamp string `json:"timestamp"`

	// Duration is how long it took
	Duration string `json:"duration"`

	// Version is the server version
	Version string `json:"version"`
}

// ErrorResponse is the error envelope for every non-2xx response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
