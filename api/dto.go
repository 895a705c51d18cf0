/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal matrix model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific shaping (labeled tables instead of raw matrices)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Projections:
    ProjectionRequest, ProjectionDTO, MatrixDTO

  Scenarios:
    ScenarioDTO, LoadScenarioRequest

VALIDATION:
  Validation is done by the engine at projection time, not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/plan.go: PlanJSON type
*/
package api

import (
	"github.com/warp/cohort-engine/catalog"
	"github.com/warp/cohort-engine/cohort"
	"github.com/warp/cohort-engine/factory"
	"github.com/warp/cohort-engine/grid"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ProjectionRequest asks the engine to project one plan.
type ProjectionRequest struct {
	Plan factory.PlanJSON `json:"plan"`
}

// MatrixDTO is one named, labeled matrix in a projection response.
// The embedded table contributes row_labels, column_labels, and cells.
type MatrixDTO struct {
	Name string `json:"name"`
	grid.Table
}

// ProjectionDTO is the full result of one projection run. Plan carries
// the effective values the engine actually used, after defaulting,
// hire padding, and shape correction.
type ProjectionDTO struct {
	RunID    string           `json:"run_id"`
	Plan     factory.PlanJSON `json:"plan"`
	Matrices []MatrixDTO      `json:"matrices"`
}

// ScenarioDTO represents a catalog scenario in API responses.
type ScenarioDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Builtin     bool             `json:"builtin"`
	Plan        factory.PlanJSON `json:"plan"`
}

// LoadScenarioRequest selects a catalog scenario as the current one.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// projectionMatrices lists the matrices a projection response carries,
// in pipeline order. The intermediate masks stay internal.
func projectionMatrices(p *cohort.Projection) []MatrixDTO {
	named := []struct {
		name string
		m    grid.Matrix
	}{
		{"productivity", p.Productivity()},
		{"raw_headcount", p.RawHeadcount()},
		{"attrition", p.AttritionMask()},
		{"retained_headcount", p.RetainedHeadcount()},
		{"retained_fte_factored", p.RetainedFTEFactored()},
		{"revenue", p.Revenue()},
	}

	dtos := make([]MatrixDTO, len(named))
	for i, nm := range named {
		dtos[i] = MatrixDTO{Name: nm.name, Table: p.LabeledTable(nm.m)}
	}
	return dtos
}

func toScenarioDTO(e catalog.Entry, planner *factory.PlanFactory) ScenarioDTO {
	return ScenarioDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Builtin:     e.Builtin,
		Plan:        planner.ToJSON(e.Config),
	}
}
