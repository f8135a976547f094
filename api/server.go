// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine invocation,
// and output serialization. It never performs cost logic.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fieldops-cost/adapters/project"
	"fieldops-cost/core/estimate"
	"fieldops-cost/core/rating"
	"fieldops-cost/core/types"
	"fieldops-cost/internal/logging"
)

// maxBodyBytes caps request bodies; estimate inputs are small documents
const maxBodyBytes = 4 << 20

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	version  string
	currency types.Currency
}

// NewServer creates a new API server
func NewServer(version string, currency types.Currency) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		version:  version,
		currency: currency,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /v1/estimate", s.handleEstimate)
	s.mux.HandleFunc("POST /v1/rate", s.handleRate)
	s.mux.HandleFunc("POST /v1/modifiers", s.handleModifiers)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate computes a full project cost breakdown
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := readBody(r)
	if err != nil {
		s.writeError(w, "READ_ERROR", err.Error(), http.StatusBadRequest)
		return
	}
	proj, err := project.Parse(body)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	breakdown := estimate.Estimate(proj, s.currency)

	logging.Info("estimate computed",
		zap.String("project_id", proj.ID),
		zap.String("grand_total", breakdown.GrandTotal.String()),
		zap.Bool("incomplete", breakdown.Incomplete()))

	s.writeJSON(w, http.StatusOK, EstimateResponse{
		Breakdown:  breakdown,
		Incomplete: breakdown.Incomplete(),
		Metadata: ResponseMetadata{
			Timestamp: start.UTC().Format(time.RFC3339),
			Duration:  time.Since(start).String(),
			Version:   s.version,
		},
	})
}

// handleRate computes a single line item total
func (s *Server) handleRate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.writeError(w, "READ_ERROR", err.Error(), http.StatusBadRequest)
		return
	}
	item, err := project.ParseLineItem(body)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	total := rating.LineTotal(item)
	s.writeJSON(w, http.StatusOK, RateResponse{
		Total:    types.Money(total).StringFixed(2),
		Currency: s.currency,
	})
}

// handleModifiers composes a modifier list into one scalar
func (s *Server) handleModifiers(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.writeError(w, "READ_ERROR", err.Error(), http.StatusBadRequest)
		return
	}
	mods, err := project.ParseModifiers(body)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, ModifiersResponse{
		Scale: rating.ComposeModifiers(mods).String(),
	})
}

// handleHealth reports server health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

// handleVersion reports the server version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
