/*
projection.go - One-shot projection pipeline

PURPOSE:
  Turns a validated Config into the full bundle of cohort matrices in a
  single construction call. There is no incremental mode: change an input,
  project again. The same config always yields cell-for-cell identical
  matrices.

MATRIX CONVENTION:
  Row i is the cohort hired at the start of year i; column j is absolute
  forecast year j. Both indexes are zero-based. Quantity matrices are zero
  strictly below the diagonal (a cohort contributes nothing before it
  exists). The two masks hold 1 there instead, keeping them neutral under
  elementwise multiplication.

PIPELINE:
  1. Validate, then normalize the config
  2. Generate the ramp curve
  3. Productivity: the curve placed along each cohort's row
  4. Raw headcount: hires broadcast across each cohort's row
  5. Attrition mask applied to raw headcount -> retained headcount
  6. Midpoint mask applied to retained -> retained FTE
  7. Productivity applied to FTE -> factored FTE
  8. Revenue goal applied to factored FTE -> revenue

EXAMPLE:
  proj, err := cohort.Project(cfg)
  if err != nil {
      // every failure is a ConfigError; see errors.go
  }
  total := proj.Revenue().ColumnSums()

SEE ALSO:
  - config.go: Validation and normalization
  - ramp.go: Curve shapes
  - attrition.go: Survival mask
*/
package cohort

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/cohort-engine/grid"
)

var (
	zero = decimal.Zero
	one  = decimal.NewFromInt(1)
	half = decimal.NewFromFloat(0.5)
)

// =============================================================================
// PROJECTION - Immutable result bundle
// =============================================================================

// Projection holds every matrix derived from one config. All accessors
// return value types or fresh copies; nothing handed out can change the
// bundle after construction.
type Projection struct {
	cfg Config

	productivity        grid.Matrix
	rawHeadcount        grid.Matrix
	attritionMask       grid.Matrix
	retainedHeadcount   grid.Matrix
	midpointMask        grid.Matrix
	retainedFTE         grid.Matrix
	retainedFTEFactored grid.Matrix
	revenue             grid.Matrix
}

// Project runs the whole pipeline once. Every invalid input is reported
// here; a returned Projection can no longer fail.
func Project(cfg Config) (*Projection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	f := cfg.ForecastPeriod
	hires := grid.Decimals(cfg.HiresPerYear)

	// 1. Ramp curve, one productivity share per forecast year.
	curve := rampFor(cfg).Curve(f)

	// 2. Productivity: cohort i starts the curve at its hire year.
	productivity := grid.Build(f, func(i, j int) decimal.Decimal {
		if j < i {
			return zero
		}
		return curve[j-i]
	})

	// 3. Raw headcount: the year-i hires carried across row i.
	rawHeadcount := grid.Build(f, func(i, j int) decimal.Decimal {
		if j < i {
			return zero
		}
		return hires[i]
	})

	// 4. Survival compounding from the first attritable year.
	attrition := attritionMask(f, cfg.AnnualAttrition, cfg.AttritionYearZero)
	retained := rawHeadcount.MulElem(attrition)

	// 5. Mid-year hiring: a cohort's first year counts half. The full-hire
	//    flag restores cell (0, 0) only; later cohorts keep the half credit.
	midpoint := grid.Build(f, func(i, j int) decimal.Decimal {
		if i == j {
			return half
		}
		return one
	})
	if cfg.FirstYearFullHire {
		midpoint = midpoint.WithCell(0, 0, one)
	}
	fte := retained.MulElem(midpoint)

	// 6. Productivity share, then the per-person revenue goal.
	factored := fte.MulElem(productivity)
	revenue := factored.Scale(decimal.NewFromFloat(cfg.RevenueGoal))

	return &Projection{
		cfg:                 cfg,
		productivity:        productivity,
		rawHeadcount:        rawHeadcount,
		attritionMask:       attrition,
		retainedHeadcount:   retained,
		midpointMask:        midpoint,
		retainedFTE:         fte,
		retainedFTEFactored: factored,
		revenue:             revenue,
	}, nil
}

// Config returns the effective configuration: the hiring plan normalized
// to the forecast period and any corrected sigmoid shape parameters. The
// hires slice is copied on every call.
func (p *Projection) Config() Config {
	out := p.cfg
	out.HiresPerYear = append([]float64(nil), p.cfg.HiresPerYear...)
	return out
}

func (p *Projection) Productivity() grid.Matrix        { return p.productivity }
func (p *Projection) RawHeadcount() grid.Matrix        { return p.rawHeadcount }
func (p *Projection) AttritionMask() grid.Matrix       { return p.attritionMask }
func (p *Projection) RetainedHeadcount() grid.Matrix   { return p.retainedHeadcount }
func (p *Projection) MidpointMask() grid.Matrix        { return p.midpointMask }
func (p *Projection) RetainedFTE() grid.Matrix         { return p.retainedFTE }
func (p *Projection) RetainedFTEFactored() grid.Matrix { return p.retainedFTEFactored }
func (p *Projection) Revenue() grid.Matrix             { return p.revenue }

// =============================================================================
// DISPLAY LABELS
// =============================================================================

// CohortLabels returns "Cohort 1" through "Cohort F" for matrix rows.
// Display labels are one-based; matrix indexes stay zero-based.
func (p *Projection) CohortLabels() []string {
	return numberedLabels("Cohort", p.cfg.ForecastPeriod)
}

// YearLabels returns "Year 1" through "Year F" for matrix columns.
func (p *Projection) YearLabels() []string {
	return numberedLabels("Year", p.cfg.ForecastPeriod)
}

// LabeledTable converts any of the bundle's matrices to a labeled grid
// with cohorts on rows and forecast years on columns.
func (p *Projection) LabeledTable(m grid.Matrix) grid.Table {
	return m.Table(p.CohortLabels(), p.YearLabels())
}

func numberedLabels(prefix string, n int) []string {
	out := make([]string, n)
	for k := range out {
		out[k] = fmt.Sprintf("%s %d", prefix, k+1)
	}
	return out
}
