/*
scenarios.go - Catalog scenario endpoints

PURPOSE:
  Serves the scenario catalog over HTTP: listing, lookup, projection of
  a stored scenario, and selection of the "current" scenario the
  dashboard highlights.

SCENARIO SOURCES:
  - Builtin presets seeded by the catalog
  - The operator's scenario YAML file, reloaded live by the watcher

CURRENT SCENARIO:
  "Current" is a UI convenience, not engine state. The engine itself is
  stateless; loading a scenario only records which id clients should
  treat as selected.

SEE ALSO:
  - catalog: Scenario storage and file reloading
  - handlers.go: Projection plumbing and error mapping
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns every catalog scenario.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	entries := h.Catalog.List()

	dtos := make([]ScenarioDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toScenarioDTO(e, h.Planner)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns one scenario by id.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, ok := h.Catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}
	writeJSON(w, http.StatusOK, toScenarioDTO(entry, h.Planner))
}

// GetScenarioProjection projects a stored scenario.
// GET /api/scenarios/{id}/projection
func (h *Handler) GetScenarioProjection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, ok := h.Catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	dto, err := h.project(entry.Config)
	if err != nil {
		// Catalog entries were validated on load, so a failure here is
		// not the client's fault.
		writeError(w, http.StatusInternalServerError, "Failed to project scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// LoadScenario marks a catalog scenario as the current one.
// POST /api/scenarios/load
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, ok := h.Catalog.Get(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	h.mu.Lock()
	h.currentScenario = entry.ID
	h.mu.Unlock()
	h.Metrics.ScenarioLoads.Add(1)

	writeJSON(w, http.StatusOK, toScenarioDTO(entry, h.Planner))
}

// GetCurrentScenario returns the currently loaded scenario, if any.
// GET /api/scenarios/current
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	current := h.currentScenario
	h.mu.RUnlock()

	if current == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	entry, ok := h.Catalog.Get(current)
	if !ok {
		// A file reload can drop the selected scenario. Report no
		// current rather than a stale one; the selection is kept in
		// case a later reload brings the id back.
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, toScenarioDTO(entry, h.Planner))
}
