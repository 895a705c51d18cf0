/*
attrition.go - Cohort survival mask

PURPOSE:
  Attrition thins a cohort by a fixed share every year. The mask holds,
  for each cohort row, the fraction still employed in each forecast year,
  compounding year over year. Raw headcount times the mask is retained
  headcount.

TIMING:
  By default a cohort's hire year is attrition-free and survival starts
  compounding the following year. With AttritionYearZero, the hire year
  itself is already thinned.

SEE ALSO:
  - projection.go: Applies the mask to raw headcount
*/
package cohort

import (
	"github.com/shopspring/decimal"

	"github.com/warp/cohort-engine/grid"
)

// attritionMask builds the survival mask for an n-year window. Cells
// before a cohort's attrition window hold 1, which keeps them neutral
// under the later elementwise product.
func attritionMask(n int, annualAttrition float64, attritionYearZero bool) grid.Matrix {
	survival := one.Sub(decimal.NewFromFloat(annualAttrition))

	startOffset := 1
	if attritionYearZero {
		startOffset = 0
	}

	// 1. Seed every attritable cell with the per-year survival share and
	//    everything before the window with 1.
	seeded := grid.Build(n, func(i, j int) decimal.Decimal {
		if j-i >= startOffset {
			return survival
		}
		return one
	})

	// 2. Compound along each row: cell (i, j) becomes survival raised to
	//    the number of attritable years the cohort has been through by
	//    year j.
	return seeded.CumProdRows()
}
