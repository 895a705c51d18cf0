/*
presets.go - Pre-built hiring plan configurations

PURPOSE:
  Provides ready-to-use plans for common forecasting questions. These are
  convenience functions that set up a full PlanJSON according to typical
  workforce planning patterns.

AVAILABLE PLANS:
  BaselineGrowthPlan:    Steady hiring, moderate attrition, linear ramp
  SigmoidRampPlan:       Same hiring with a slow-start S-curve ramp
  HighAttritionPlan:     Stress case at 30% annual attrition
  AggressiveHiringPlan:  Front-loaded doubling headcount plan
  SteadyStatePlan:       Flat hiring with the default attrition

CUSTOMIZATION:
  These are starting points. Real scenario files usually tweak:
  - The hiring plan year by year
  - Ramp length to match role complexity
  - The first-year full-hire flag for January cohorts

EXAMPLE:
  plan := factory.BaselineGrowthPlan()
  cfg, err := factory.NewPlanFactory().FromJSON(plan)

SEE ALSO:
  - plan.go: Schema and conversion
  - catalog: Seeds its builtin entries from these
*/
package factory

// =============================================================================
// COMMON SCENARIO PLANS
// =============================================================================

// BaselineGrowthPlan returns a five-year plan with steadily growing hiring
// and moderate attrition.
func BaselineGrowthPlan() PlanJSON {
	attrition := 0.10
	return PlanJSON{
		ID:                "baseline-growth",
		Name:              "Baseline Growth",
		Description:       "Steady hiring growth with 10% attrition and a three-year linear ramp",
		ForecastPeriod:    5,
		RampYears:         3,
		HiresPerYear:      []float64{10, 12, 15, 18, 20},
		RevenueGoal:       250000,
		AnnualAttrition:   &attrition,
		RampType:          "linear",
		FirstYearFullHire: true,
	}
}

// SigmoidRampPlan returns the baseline hiring plan on an S-curve ramp:
// slower first year, faster catch-up.
func SigmoidRampPlan() PlanJSON {
	attrition := 0.10
	beta := 0.3
	shift := 3.0
	return PlanJSON{
		ID:                "sigmoid-ramp",
		Name:              "Sigmoid Ramp",
		Description:       "Baseline hiring with a logistic ramp-up profile",
		ForecastPeriod:    5,
		RampYears:         3,
		HiresPerYear:      []float64{10, 12, 15, 18, 20},
		RevenueGoal:       250000,
		AnnualAttrition:   &attrition,
		RampType:          "sigmoid",
		Beta:              &beta,
		Shift:             &shift,
		FirstYearFullHire: true,
	}
}

// HighAttritionPlan returns a stress scenario: every year loses 30% of
// each cohort, starting in the hire year itself.
func HighAttritionPlan() PlanJSON {
	attrition := 0.30
	return PlanJSON{
		ID:                "high-attrition",
		Name:              "High Attrition",
		Description:       "Stress case losing 30% of each cohort per year from the hire year on",
		ForecastPeriod:    5,
		RampYears:         3,
		HiresPerYear:      []float64{10, 12, 15, 18, 20},
		RevenueGoal:       250000,
		AnnualAttrition:   &attrition,
		AttritionYearZero: true,
	}
}

// AggressiveHiringPlan returns a front-loaded plan that roughly doubles
// headcount in the first two years.
func AggressiveHiringPlan() PlanJSON {
	attrition := 0.15
	return PlanJSON{
		ID:              "aggressive-hiring",
		Name:            "Aggressive Hiring",
		Description:     "Front-loaded hiring wave over a seven-year window",
		ForecastPeriod:  7,
		RampYears:       2,
		HiresPerYear:    []float64{40, 35, 20, 10, 10, 10, 10},
		RevenueGoal:     180000,
		AnnualAttrition: &attrition,
	}
}

// SteadyStatePlan returns flat hiring with the default attrition rate.
func SteadyStatePlan() PlanJSON {
	return PlanJSON{
		ID:             "steady-state",
		Name:           "Steady State",
		Description:    "Flat hiring at 15 per year with default attrition",
		ForecastPeriod: 6,
		RampYears:      3,
		HiresPerYear:   []float64{15, 15, 15, 15, 15, 15},
		RevenueGoal:    200000,
	}
}
