/*
params.go - Editable plan parameters

PURPOSE:
  Describes the parameter rows of the dashboard side panel: how each is
  labeled, displayed, and stepped. The bounds match the reference
  ranges for each input (forecast 1-15 years, ramp 1-10 years,
  attrition 0-1, beta 0.1-1, shift -10 to 10).

  The curve parameters only appear while the sigmoid ramp is active,
  which is why the row set is rebuilt on every render.

SEE ALSO:
  - model.go: Selection and stepping
  - views.go: Panel rendering
*/
package tui

import (
	"fmt"
	"math"

	"github.com/warp/cohort-engine/cohort"
)

// param is one editable row in the parameter panel.
type param struct {
	name   string
	value  func(m *Model) string
	adjust func(m *Model, dir int)
}

// params returns the parameter rows for the current plan. The sigmoid
// curve rows come and go with the ramp type.
func (m *Model) params() []param {
	rows := []param{
		{
			name:  "Forecast Period",
			value: func(m *Model) string { return fmt.Sprintf("%d years", m.cfg.ForecastPeriod) },
			adjust: func(m *Model, dir int) {
				m.cfg.ForecastPeriod = clampInt(m.cfg.ForecastPeriod+dir, 1, 15)
			},
		},
		{
			name:  "Productivity Ramp",
			value: func(m *Model) string { return fmt.Sprintf("%d years", m.cfg.RampYears) },
			adjust: func(m *Model, dir int) {
				m.cfg.RampYears = clampInt(m.cfg.RampYears+dir, 1, 10)
			},
		},
		{
			name:  "Annual Attrition",
			value: func(m *Model) string { return pct(m.cfg.AnnualAttrition) },
			adjust: func(m *Model, dir int) {
				m.cfg.AnnualAttrition = stepFloat(m.cfg.AnnualAttrition, 0.01*float64(dir), 0, 1)
			},
		},
		{
			name:  "Revenue Goal",
			value: func(m *Model) string { return money(m.cfg.RevenueGoal) },
			adjust: func(m *Model, dir int) {
				m.cfg.RevenueGoal = stepFloat(m.cfg.RevenueGoal, 10000*float64(dir), 0, math.MaxFloat64)
			},
		},
	}

	if m.cfg.RampType == cohort.RampSigmoid {
		rows = append(rows,
			param{
				name:  "Curve Beta",
				value: func(m *Model) string { return fmt.Sprintf("%.1f", m.cfg.Beta) },
				adjust: func(m *Model, dir int) {
					m.cfg.Beta = stepFloat(m.cfg.Beta, 0.1*float64(dir), 0.1, 1)
				},
			},
			param{
				name:  "Curve Shift",
				value: func(m *Model) string { return fmt.Sprintf("%.0f", m.cfg.Shift) },
				adjust: func(m *Model, dir int) {
					m.cfg.Shift = stepFloat(m.cfg.Shift, float64(dir), -10, 10)
				},
			},
		)
	}

	return rows
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stepFloat applies one step and snaps the result to two decimals so
// repeated steps do not accumulate float drift.
func stepFloat(v, step, lo, hi float64) float64 {
	next := math.Round((v+step)*100) / 100
	if next < lo {
		return lo
	}
	if next > hi {
		return hi
	}
	return next
}
