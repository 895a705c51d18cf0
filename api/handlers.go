/*
handlers.go - HTTP API handlers for the cohort projection engine

PURPOSE:
  Exposes the projection engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Projections:
    POST   /api/projections            Project an ad hoc plan

  Scenarios:
    GET    /api/scenarios              List catalog scenarios
    GET    /api/scenarios/current      Currently loaded scenario
    GET    /api/scenarios/{id}         Get one scenario
    GET    /api/scenarios/{id}/projection  Project a catalog scenario
    POST   /api/scenarios/load         Mark a scenario as current

  Operations:
    GET    /metrics                    Prometheus exposition

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Catalog: Named scenarios (builtins plus the operator's file)
  - Planner: JSON plan to engine config conversion
  - Metrics: Request counters for the /metrics endpoint

REQUEST FLOW:
  1. Parse HTTP request
  2. Convert plan JSON to an engine config
  3. Run the projection
  4. Serialize the labeled matrices
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, invalid plan values
  - 404: Unknown scenario id
  - 500: Internal errors
  Config errors also carry a machine-readable code naming the failed
  rule (invalid_dimension, invalid_rate, invalid_hire_count,
  invalid_ramp_type).

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Scenario endpoints
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/warp/cohort-engine/catalog"
	"github.com/warp/cohort-engine/cohort"
	"github.com/warp/cohort-engine/factory"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Catalog *catalog.Catalog
	Planner *factory.PlanFactory
	Metrics *Metrics

	// Track the currently selected scenario. Handlers run concurrently,
	// so reads and writes go through the mutex.
	mu              sync.RWMutex
	currentScenario string
}

// NewHandler creates a new handler backed by the given catalog.
func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{
		Catalog: cat,
		Planner: factory.NewPlanFactory(),
		Metrics: NewMetrics(),
	}
}

// =============================================================================
// PROJECTION HANDLERS
// =============================================================================

// CreateProjection projects an ad hoc plan.
// POST /api/projections
func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cfg, err := h.Planner.FromJSON(req.Plan)
	if err != nil {
		h.Metrics.ProjectionErrors.Add(1)
		h.writeProjectionError(w, err)
		return
	}

	dto, err := h.project(cfg)
	if err != nil {
		h.writeProjectionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// project runs the engine and shapes the response. Counters are bumped
// on both outcomes.
func (h *Handler) project(cfg cohort.Config) (ProjectionDTO, error) {
	proj, err := cohort.Project(cfg)
	if err != nil {
		h.Metrics.ProjectionErrors.Add(1)
		return ProjectionDTO{}, err
	}

	h.Metrics.Projections.Add(1)
	return ProjectionDTO{
		RunID:    uuid.NewString(),
		Plan:     h.Planner.ToJSON(proj.Config()),
		Matrices: projectionMatrices(proj),
	}, nil
}

// writeProjectionError maps engine errors to HTTP responses. Config
// errors are the client's fault; everything else is ours.
func (h *Handler) writeProjectionError(w http.ResponseWriter, err error) {
	if cohort.IsConfigError(err) {
		resp := ErrorResponse{
			Error:   "Invalid plan",
			Code:    configErrorCode(err),
			Details: err.Error(),
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeError(w, http.StatusBadRequest, "Failed to project plan", err)
}

// configErrorCode names the validation rule a config error tripped.
func configErrorCode(err error) string {
	switch {
	case errors.Is(err, cohort.ErrInvalidDimension):
		return "invalid_dimension"
	case errors.Is(err, cohort.ErrInvalidRate):
		return "invalid_rate"
	case errors.Is(err, cohort.ErrInvalidHireCount):
		return "invalid_hire_count"
	case errors.Is(err, cohort.ErrInvalidRampType):
		return "invalid_ramp_type"
	default:
		return ""
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
