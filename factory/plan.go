/*
Package factory provides JSON and YAML to Go plan conversion.

PURPOSE:
  Converts serialized hiring plan definitions into validated cohort.Config
  values. This enables plan configuration without code changes - analysts
  can define scenarios in JSON or YAML, and the factory creates the proper
  Go structs.

WHY SERIALIZED PLANS?
  - Non-developers can sketch hiring scenarios
  - Easy integration with dashboards and HTTP clients
  - Version control for scenario files
  - Scenario catalogs loaded from disk

JSON SCHEMA:
  {
    "id": "baseline-growth",
    "name": "Baseline Growth",
    "description": "Steady hiring with moderate attrition",
    "forecast_period": 5,
    "ramp_years": 3,
    "hires_per_year": [10, 12, 15, 18, 20],
    "revenue_goal": 250000,
    "annual_attrition": 0.10,
    "ramp_type": "linear",
    "beta": 0.3,
    "shift": 3,
    "first_year_full_hire": true,
    "attrition_y0": false
  }

KEY FEATURES:
  - Omitted attrition, beta, and shift take the engine defaults
  - Unknown ramp types pass through so validation can name the bad value
  - Everything funnels into cohort.Config.Validate before use

USAGE:
  f := factory.NewPlanFactory()

  // From a JSON string
  cfg, err := f.ParsePlan(jsonString)

  // From a preset (recommended)
  cfg, err := f.FromJSON(factory.BaselineGrowthPlan())

  // Project
  proj, err := cohort.Project(cfg)

SEE ALSO:
  - presets.go: Ready-made scenario plans
  - cohort/config.go: The target type and its validation
  - catalog: Loads files of these plans
*/
package factory

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/warp/cohort-engine/cohort"
)

// =============================================================================
// PLAN SCHEMA
// =============================================================================

// PlanJSON is the serialized representation of a hiring plan. The same
// shape serves JSON and YAML. Optional numerics are pointers so an omitted
// key is distinguishable from an explicit zero.
type PlanJSON struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	ForecastPeriod    int       `json:"forecast_period" yaml:"forecast_period"`
	RampYears         int       `json:"ramp_years" yaml:"ramp_years"`
	HiresPerYear      []float64 `json:"hires_per_year" yaml:"hires_per_year"`
	RevenueGoal       float64   `json:"revenue_goal" yaml:"revenue_goal"`
	AnnualAttrition   *float64  `json:"annual_attrition,omitempty" yaml:"annual_attrition,omitempty"`
	RampType          string    `json:"ramp_type,omitempty" yaml:"ramp_type,omitempty"`
	Beta              *float64  `json:"beta,omitempty" yaml:"beta,omitempty"`
	Shift             *float64  `json:"shift,omitempty" yaml:"shift,omitempty"`
	FirstYearFullHire bool      `json:"first_year_full_hire,omitempty" yaml:"first_year_full_hire,omitempty"`
	AttritionYearZero bool      `json:"attrition_y0,omitempty" yaml:"attrition_y0,omitempty"`
}

// =============================================================================
// PLAN FACTORY
// =============================================================================

// PlanFactory converts serialized plans to cohort configs.
type PlanFactory struct{}

// NewPlanFactory creates a new plan factory.
func NewPlanFactory() *PlanFactory {
	return &PlanFactory{}
}

// ParsePlan parses a JSON string into a validated cohort.Config.
func (f *PlanFactory) ParsePlan(jsonStr string) (cohort.Config, error) {
	var pj PlanJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return cohort.Config{}, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	return f.FromJSON(pj)
}

// ParsePlanYAML parses YAML bytes into a validated cohort.Config.
func (f *PlanFactory) ParsePlanYAML(data []byte) (cohort.Config, error) {
	var pj PlanJSON
	if err := yaml.Unmarshal(data, &pj); err != nil {
		return cohort.Config{}, fmt.Errorf("failed to parse plan YAML: %w", err)
	}
	return f.FromJSON(pj)
}

// FromJSON converts a PlanJSON to a cohort.Config: defaults for omitted
// fields, then full validation. The hires slice is copied.
func (f *PlanFactory) FromJSON(pj PlanJSON) (cohort.Config, error) {
	cfg := cohort.Config{
		ForecastPeriod:    pj.ForecastPeriod,
		RampYears:         pj.RampYears,
		HiresPerYear:      append([]float64(nil), pj.HiresPerYear...),
		RevenueGoal:       pj.RevenueGoal,
		AnnualAttrition:   cohort.DefaultAttrition,
		RampType:          parseRampType(pj.RampType),
		Beta:              cohort.DefaultBeta,
		Shift:             cohort.DefaultShift,
		FirstYearFullHire: pj.FirstYearFullHire,
		AttritionYearZero: pj.AttritionYearZero,
	}

	if pj.AnnualAttrition != nil {
		cfg.AnnualAttrition = *pj.AnnualAttrition
	}
	if pj.Beta != nil {
		cfg.Beta = *pj.Beta
	}
	if pj.Shift != nil {
		cfg.Shift = *pj.Shift
	}

	if err := cfg.Validate(); err != nil {
		return cohort.Config{}, err
	}
	return cfg, nil
}

// ToJSON converts a cohort.Config back to its serialized form. Identity
// fields (id, name, description) are left for the caller to fill.
func (f *PlanFactory) ToJSON(cfg cohort.Config) PlanJSON {
	attrition := cfg.AnnualAttrition
	beta := cfg.Beta
	shift := cfg.Shift
	return PlanJSON{
		ForecastPeriod:    cfg.ForecastPeriod,
		RampYears:         cfg.RampYears,
		HiresPerYear:      append([]float64(nil), cfg.HiresPerYear...),
		RevenueGoal:       cfg.RevenueGoal,
		AnnualAttrition:   &attrition,
		RampType:          string(cfg.RampType),
		Beta:              &beta,
		Shift:             &shift,
		FirstYearFullHire: cfg.FirstYearFullHire,
		AttritionYearZero: cfg.AttritionYearZero,
	}
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

// parseRampType maps the known curve names. Unknown names pass through
// unchanged so validation can report them instead of silently picking one.
func parseRampType(s string) cohort.RampType {
	switch s {
	case "sigmoid":
		return cohort.RampSigmoid
	case "linear", "":
		return cohort.RampLinear
	default:
		return cohort.RampType(s)
	}
}
