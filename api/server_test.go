// Package api - Handler tests
package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"fieldops-cost/core/types"
)

func newTestServer() *Server {
	return NewServer("test", types.CurrencyUSD)
}

func TestHandleRate(t *testing.T) {
	body := `{
		"selected_rate_kind": "fixed",
		"fixed_rate": 500,
		"base_fee": 50,
		"deliverables": [{"id": "report", "price": 75}],
		"selected_deliverable_ids": ["report"],
		"modifiers": [{"id": "rush", "multiplier": 1.2}]
	}`

	req := httptest.NewRequest("POST", "/v1/rate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp RateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if resp.Total != "750.00" {
		t.Errorf("Expected total 750.00, got %s", resp.Total)
	}
	if resp.Currency != types.CurrencyUSD {
		t.Errorf("Expected USD, got %s", resp.Currency)
	}
}

func TestHandleEstimate(t *testing.T) {
	body := `{
		"id": "p1",
		"estimated_field_days": 0,
		"crew": [
			{"id": "a", "daily_rate": 400},
			{"id": "b", "daily_rate": 400},
			{"id": "c", "daily_rate": 400}
		]
	}`

	req := httptest.NewRequest("POST", "/v1/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if !resp.Incomplete {
		t.Error("Expected incomplete flag for zero field days with priced crew")
	}
	crew := resp.Breakdown.Category(types.CategoryFieldCrew)
	if !crew.Subtotal.IsZero() || !crew.DaysNotSet {
		t.Errorf("Expected zero crew subtotal flagged days-not-set, got %+v", crew)
	}
	if resp.Metadata.Version != "test" {
		t.Errorf("Expected version test, got %s", resp.Metadata.Version)
	}
}

func TestHandleEstimateInvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/estimate", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	if rec.Code != 400 {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid error envelope: %v", err)
	}
	if resp.Error.Code != "INVALID_JSON" {
		t.Errorf("Expected INVALID_JSON, got %s", resp.Error.Code)
	}
}

func TestHandleModifiers(t *testing.T) {
	body := `[{"id": "rush", "multiplier": 1.25}, {"id": "repeat", "multiplier": 0.9}]`

	req := httptest.NewRequest("POST", "/v1/modifiers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp ModifiersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if resp.Scale != "1.125" {
		t.Errorf("Expected scale 1.125, got %s", resp.Scale)
	}
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Expected ok, got %s", resp.Status)
	}
}
