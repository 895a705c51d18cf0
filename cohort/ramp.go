/*
ramp.go - Productivity ramp curves

PURPOSE:
  A ramp curve describes what share of full productivity a cohort reaches
  in each year after hire: curve[0] in the hire year, curve[1] the year
  after, and so on. Two shapes are supported: a straight climb reaching
  full productivity after the ramp years, and a logistic S-curve with a
  slow start and steep middle.

CURVE CONTRACT:
  - Length exactly matches the forecast period
  - Values are shares of full productivity (the sigmoid sits strictly
    inside (0, 1), the linear ramp hits 0 and 1 exactly)
  - Beyond the ramp window the curve holds at full productivity

SEE ALSO:
  - config.go: Shape parameter defaults and recommended ranges
  - projection.go: Places the curve into the productivity matrix
*/
package cohort

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/warp/cohort-engine/grid"
)

// Ramp produces a productivity curve of the requested length.
type Ramp interface {
	// Curve returns one productivity share per forecast year, starting at
	// the hire year.
	Curve(length int) []decimal.Decimal
}

// rampFor selects the ramp implementation for a normalized config.
func rampFor(cfg Config) Ramp {
	if cfg.RampType == RampSigmoid {
		return SigmoidRamp{Years: cfg.RampYears, Beta: cfg.Beta, Shift: cfg.Shift}
	}
	return LinearRamp{Years: cfg.RampYears}
}

// =============================================================================
// LINEAR RAMP
// =============================================================================

// LinearRamp climbs in equal steps: 0/N in the hire year, 1/N the year
// after, capped at full productivity from year N on.
type LinearRamp struct {
	Years int
}

func (r LinearRamp) Curve(length int) []decimal.Decimal {
	years := decimal.NewFromInt(int64(r.Years))
	out := make([]decimal.Decimal, length)
	for n := 0; n < length; n++ {
		if n >= r.Years {
			out[n] = one
			continue
		}
		out[n] = decimal.NewFromInt(int64(n)).Div(years)
	}
	return out
}

// =============================================================================
// SIGMOID RAMP
// =============================================================================

// The logistic is always sampled across [-10, 10]. Shift slides the curve
// within that window rather than widening it.
const (
	sigmoidDomainMin = -10.0
	sigmoidDomainMax = 10.0
)

// SigmoidRamp follows a logistic S-curve: slow start, steep middle,
// asymptotic finish. Beta controls steepness, Shift slides the curve left
// (productive earlier) or right. Out-of-range shape parameters are
// corrected to the defaults at curve time, silently.
type SigmoidRamp struct {
	Years int
	Beta  float64
	Shift float64
}

func (r SigmoidRamp) Curve(length int) []decimal.Decimal {
	beta, shift := correctedShape(r.Beta, r.Shift)

	// One sample per ramp year; past the ramp the cohort holds at full
	// productivity, so the fill value is 1.
	xs := grid.Linspace(sigmoidDomainMin, sigmoidDomainMax, r.Years)
	samples := make([]decimal.Decimal, len(xs))
	for k, x := range xs {
		samples[k] = decimal.NewFromFloat(logistic(x, beta, shift))
	}
	return grid.SizeTo(samples, length, one)
}

// logistic evaluates 1 / (1 + e^(beta * (-x - shift))).
func logistic(x, beta, shift float64) float64 {
	return 1 / (1 + math.Exp(beta*(-x-shift)))
}

// correctedShape replaces out-of-range shape parameters with the defaults.
// No error: the effective values are visible on the projection's config.
// The comparison keeps NaN out as well.
func correctedShape(beta, shift float64) (float64, float64) {
	if !(beta > minBeta && beta <= maxBeta) {
		beta = DefaultBeta
	}
	if !(shift >= minShift && shift <= maxShift) {
		shift = DefaultShift
	}
	return beta, shift
}
