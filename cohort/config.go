/*
Package cohort models how yearly hiring cohorts ramp to full productivity
and generate revenue across a multi-year forecast window.

PURPOSE:
  One hiring cohort starts each forecast year. Each cohort ramps toward
  full productivity, loses a share of its people to attrition every year,
  and earns only half a year of credit in its hire year (people arrive
  mid-year on average). The engine decomposes projected revenue into those
  drivers as a family of square matrices: one row per cohort, one column
  per forecast year.

KEY CONCEPTS IN THIS FILE (config.go):
  - Config: The complete input to one projection run
  - RampType: Linear ramp or logistic S-curve
  - Validation: Every constraint checked before any matrix is built
  - Normalization: Hiring plan sized to the window, shape parameters
    corrected to defaults when out of range

DESIGN PRINCIPLES:
  1. Fail at construction: A built Projection can no longer fail
  2. Silent correction: Out-of-range beta/shift are substituted, not rejected
  3. Isolation: Caller-owned slices are copied; later mutation is invisible
  4. Precision: All matrix math runs on decimal.Decimal, so the same config
     always produces identical cells

USAGE:
  proj, err := cohort.Project(cohort.Config{
      ForecastPeriod:  5,
      RampYears:       3,
      HiresPerYear:    []float64{10, 12, 15, 18, 20},
      RevenueGoal:     250_000,
      AnnualAttrition: 0.10,
  })

SEE ALSO:
  - ramp.go: Productivity curves
  - attrition.go: Survival mask
  - projection.go: The pipeline and result bundle
*/
package cohort

import (
	"fmt"
	"math"
)

// =============================================================================
// RAMP TYPE
// =============================================================================

type RampType string

const (
	RampLinear  RampType = "linear"
	RampSigmoid RampType = "sigmoid"
)

// =============================================================================
// DEFAULTS - Substituted for omitted or out-of-range values
// =============================================================================

const (
	// DefaultAttrition is the share of a cohort lost per year when a plan
	// omits the rate.
	DefaultAttrition = 0.15

	// DefaultBeta is the sigmoid steepness, substituted when beta falls
	// outside (0.1, 1].
	DefaultBeta = 0.3

	// DefaultShift is the sigmoid horizontal shift, substituted when shift
	// falls outside [-10, 10].
	DefaultShift = 3.0
)

// Recommended sigmoid shape ranges. The beta range is open at the bottom:
// beta = 0.1 itself is corrected.
const (
	minBeta  = 0.1
	maxBeta  = 1.0
	minShift = -10.0
	maxShift = 10.0
)

// =============================================================================
// CONFIG
// =============================================================================

// Config is the complete input to one projection run. The zero value is not
// usable; ForecastPeriod and RampYears must be positive.
type Config struct {
	// ForecastPeriod is the number of years modeled. It fixes the matrix
	// size: one cohort row and one year column per forecast year.
	ForecastPeriod int

	// RampYears is how many years a cohort needs to reach full
	// productivity.
	RampYears int

	// HiresPerYear is the hiring plan: entry i is the headcount hired at
	// the start of year i. Normalized to exactly ForecastPeriod entries
	// (truncate or zero-pad) before any matrix is built.
	HiresPerYear []float64

	// RevenueGoal is the annual revenue a fully ramped, fully retained
	// person is expected to generate.
	RevenueGoal float64

	// AnnualAttrition is the share of a cohort lost each year, in [0, 1].
	AnnualAttrition float64

	// RampType selects the productivity curve shape. Empty means linear.
	RampType RampType

	// Beta is the sigmoid steepness. Recommended (0.1, 1]; out-of-range
	// values are replaced with DefaultBeta when the sigmoid ramp runs.
	Beta float64

	// Shift slides the sigmoid along its sampling window. Recommended
	// [-10, 10]; out-of-range values are replaced with DefaultShift.
	Shift float64

	// FirstYearFullHire credits the very first cohort a full first year
	// instead of the mid-year half credit.
	FirstYearFullHire bool

	// AttritionYearZero starts attrition in a cohort's hire year rather
	// than the year after.
	AttritionYearZero bool
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks every constraint the pipeline relies on. Beta and Shift
// are deliberately absent: out-of-range shape parameters are corrected, not
// rejected.
func (c Config) Validate() error {
	if c.ForecastPeriod < 1 {
		return newConfigError(ErrInvalidDimension, "forecast_period", c.ForecastPeriod, "must be at least 1")
	}
	if c.RampYears < 1 {
		return newConfigError(ErrInvalidDimension, "ramp_years", c.RampYears, "must be at least 1")
	}
	if !finite(c.AnnualAttrition) || c.AnnualAttrition < 0 || c.AnnualAttrition > 1 {
		return newConfigError(ErrInvalidRate, "annual_attrition", c.AnnualAttrition, "must be within [0, 1]")
	}
	if !finite(c.RevenueGoal) || c.RevenueGoal < 0 {
		return newConfigError(ErrInvalidRate, "revenue_goal", c.RevenueGoal, "must be a non-negative number")
	}
	switch c.RampType {
	case RampLinear, RampSigmoid, "":
	default:
		return newConfigError(ErrInvalidRampType, "ramp_type", string(c.RampType), `must be "linear" or "sigmoid"`)
	}
	for i, h := range c.normalizedHires() {
		if !finite(h) || h < 0 {
			return newConfigError(ErrInvalidHireCount, fmt.Sprintf("hires_per_year[%d]", i), h, "must be a non-negative number")
		}
	}
	return nil
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// normalized returns a copy ready for the pipeline: hiring plan sized to
// exactly ForecastPeriod entries, empty ramp type resolved to linear, and
// out-of-range sigmoid shape parameters replaced with their defaults. The
// receiver is never modified.
func (c Config) normalized() Config {
	out := c
	out.HiresPerYear = c.normalizedHires()
	if out.RampType == "" {
		out.RampType = RampLinear
	}
	if out.RampType == RampSigmoid {
		out.Beta, out.Shift = correctedShape(out.Beta, out.Shift)
	}
	return out
}

// normalizedHires sizes the hiring plan to the forecast period: truncate
// when longer, zero-pad when shorter. Always a fresh slice. Call only
// after the dimension check has passed.
func (c Config) normalizedHires() []float64 {
	out := make([]float64, c.ForecastPeriod)
	copy(out, c.HiresPerYear)
	return out
}

// finite reports whether v is a usable number (not NaN, not infinite).
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
