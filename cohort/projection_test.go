package cohort_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/cohort-engine/cohort"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func baseConfig() cohort.Config {
	return cohort.Config{
		ForecastPeriod:  5,
		RampYears:       3,
		HiresPerYear:    []float64{10, 12, 15, 18, 20},
		RevenueGoal:     250000,
		AnnualAttrition: 0.10,
	}
}

func mustProject(t *testing.T, cfg cohort.Config) *cohort.Projection {
	t.Helper()
	proj, err := cohort.Project(cfg)
	if err != nil {
		t.Fatalf("unexpected projection error: %v", err)
	}
	return proj
}

// =============================================================================
// PIPELINE WIRING
// =============================================================================

func TestProject_MatrixSize_MatchesForecastPeriod(t *testing.T) {
	proj := mustProject(t, baseConfig())

	if got := proj.Revenue().Size(); got != 5 {
		t.Errorf("expected 5x5 revenue matrix, got %dx%d", got, got)
	}
	if got := proj.AttritionMask().Size(); got != 5 {
		t.Errorf("expected 5x5 attrition mask, got %dx%d", got, got)
	}
}

func TestProject_RetainedHeadcount_IsRawTimesSurvival(t *testing.T) {
	// GIVEN: 10 hires in year 0 with 10% annual attrition
	// WHEN: Projecting
	// THEN: Year 1 of cohort 1 retains 10 * 0.9, year 2 retains 10 * 0.81

	cfg := baseConfig()
	proj := mustProject(t, cfg)

	retained := proj.RetainedHeadcount()
	if !retained.At(0, 0).Equal(d(10)) {
		t.Errorf("expected hire year untouched at 10, got %v", retained.At(0, 0))
	}
	if !retained.At(0, 1).Equal(d(9)) {
		t.Errorf("expected 9 retained after one year, got %v", retained.At(0, 1))
	}
	if !retained.At(0, 2).Equal(d(8.1)) {
		t.Errorf("expected 8.1 retained after two years, got %v", retained.At(0, 2))
	}
}

func TestProject_Revenue_IsFactoredFTETimesGoal(t *testing.T) {
	proj := mustProject(t, baseConfig())

	factored := proj.RetainedFTEFactored()
	revenue := proj.Revenue()

	want := factored.At(1, 3).Mul(d(250000))
	if !revenue.At(1, 3).Equal(want) {
		t.Errorf("expected revenue cell %v, got %v", want, revenue.At(1, 3))
	}
}

func TestProject_MidpointMask_HalvesEveryHireYear(t *testing.T) {
	proj := mustProject(t, baseConfig())

	midpoint := proj.MidpointMask()
	for i := 0; i < 5; i++ {
		if !midpoint.At(i, i).Equal(d(0.5)) {
			t.Errorf("expected diagonal cell (%d,%d) = 0.5, got %v", i, i, midpoint.At(i, i))
		}
	}
	if !midpoint.At(0, 3).Equal(d(1)) {
		t.Errorf("expected off-diagonal cell = 1, got %v", midpoint.At(0, 3))
	}
}

func TestProject_FirstYearFullHire_RestoresOnlyTopLeftCell(t *testing.T) {
	// GIVEN: The full-hire flag set
	// WHEN: Projecting
	// THEN: Cell (0,0) reads 1 while every later cohort keeps its half credit

	cfg := baseConfig()
	cfg.FirstYearFullHire = true
	proj := mustProject(t, cfg)

	midpoint := proj.MidpointMask()
	if !midpoint.At(0, 0).Equal(d(1)) {
		t.Errorf("expected cell (0,0) = 1 with full first-year hire, got %v", midpoint.At(0, 0))
	}
	for i := 1; i < 5; i++ {
		if !midpoint.At(i, i).Equal(d(0.5)) {
			t.Errorf("expected cell (%d,%d) to keep 0.5, got %v", i, i, midpoint.At(i, i))
		}
	}
}

func TestProject_AttritionTiming_DefaultSparesHireYear(t *testing.T) {
	cfg := baseConfig()
	proj := mustProject(t, cfg)

	mask := proj.AttritionMask()
	if !mask.At(0, 0).Equal(d(1)) {
		t.Errorf("expected hire year attrition-free, got %v", mask.At(0, 0))
	}
	if !mask.At(0, 1).Equal(d(0.9)) {
		t.Errorf("expected 0.9 survival after one year, got %v", mask.At(0, 1))
	}
}

func TestProject_AttritionYearZero_ThinsHireYear(t *testing.T) {
	cfg := baseConfig()
	cfg.AttritionYearZero = true
	proj := mustProject(t, cfg)

	mask := proj.AttritionMask()
	if !mask.At(0, 0).Equal(d(0.9)) {
		t.Errorf("expected hire year already thinned to 0.9, got %v", mask.At(0, 0))
	}
	if !mask.At(0, 1).Equal(d(0.81)) {
		t.Errorf("expected 0.81 survival in year 1, got %v", mask.At(0, 1))
	}
}

// =============================================================================
// IMMUTABILITY AND DETERMINISM
// =============================================================================

func TestProject_SameConfigTwice_IdenticalCells(t *testing.T) {
	// GIVEN: One config
	// WHEN: Projecting twice
	// THEN: Every matrix matches cell for cell, exactly

	cfg := baseConfig()
	cfg.RampType = cohort.RampSigmoid
	cfg.Beta = 0.4
	cfg.Shift = 2

	first := mustProject(t, cfg)
	second := mustProject(t, cfg)

	if !first.Revenue().Equal(second.Revenue()) {
		t.Error("expected identical revenue matrices from the same config")
	}
	if !first.Productivity().Equal(second.Productivity()) {
		t.Error("expected identical productivity matrices from the same config")
	}
	if !first.AttritionMask().Equal(second.AttritionMask()) {
		t.Error("expected identical attrition masks from the same config")
	}
}

func TestProject_CallerMutatesHiresAfterwards_ResultUnaffected(t *testing.T) {
	// GIVEN: A projection built from a caller-owned hires slice
	// WHEN: The caller overwrites the slice
	// THEN: The projection still reads the original values

	hires := []float64{10, 12, 15, 18, 20}
	cfg := baseConfig()
	cfg.HiresPerYear = hires

	proj := mustProject(t, cfg)
	hires[0] = 9999

	if !proj.RawHeadcount().At(0, 0).Equal(d(10)) {
		t.Errorf("expected raw headcount to keep 10, got %v", proj.RawHeadcount().At(0, 0))
	}
	if got := proj.Config().HiresPerYear[0]; got != 10 {
		t.Errorf("expected effective config to keep 10, got %v", got)
	}
}

func TestProject_ConfigAccessor_ReturnsFreshSlice(t *testing.T) {
	proj := mustProject(t, baseConfig())

	first := proj.Config()
	first.HiresPerYear[0] = -1

	second := proj.Config()
	if second.HiresPerYear[0] != 10 {
		t.Errorf("expected fresh hires copy to read 10, got %v", second.HiresPerYear[0])
	}
}

func TestProject_ConfigReportsEffectiveValues(t *testing.T) {
	// GIVEN: A sigmoid config with out-of-range shape parameters and a
	//        short hiring plan
	// WHEN: Projecting
	// THEN: The reported config carries the substituted defaults and the
	//       padded plan

	cfg := baseConfig()
	cfg.RampType = cohort.RampSigmoid
	cfg.Beta = 7.5
	cfg.Shift = -40
	cfg.HiresPerYear = []float64{10, 12}

	proj := mustProject(t, cfg)
	effective := proj.Config()

	if effective.Beta != cohort.DefaultBeta {
		t.Errorf("expected beta corrected to %v, got %v", cohort.DefaultBeta, effective.Beta)
	}
	if effective.Shift != cohort.DefaultShift {
		t.Errorf("expected shift corrected to %v, got %v", cohort.DefaultShift, effective.Shift)
	}
	if len(effective.HiresPerYear) != 5 {
		t.Fatalf("expected hires normalized to 5 entries, got %d", len(effective.HiresPerYear))
	}
	if effective.HiresPerYear[4] != 0 {
		t.Errorf("expected padded hire year to read 0, got %v", effective.HiresPerYear[4])
	}
}

// =============================================================================
// DISPLAY LABELS
// =============================================================================

func TestProject_Labels_OneBasedForDisplay(t *testing.T) {
	proj := mustProject(t, baseConfig())

	cohorts := proj.CohortLabels()
	years := proj.YearLabels()

	if cohorts[0] != "Cohort 1" || cohorts[4] != "Cohort 5" {
		t.Errorf("expected cohort labels 1 through 5, got %v", cohorts)
	}
	if years[0] != "Year 1" || years[4] != "Year 5" {
		t.Errorf("expected year labels 1 through 5, got %v", years)
	}
}

func TestProject_LabeledTable_CohortRowsYearColumns(t *testing.T) {
	proj := mustProject(t, baseConfig())

	table := proj.LabeledTable(proj.Revenue())

	if table.RowLabels[0] != "Cohort 1" {
		t.Errorf("expected first row labeled Cohort 1, got %q", table.RowLabels[0])
	}
	if table.ColumnLabels[0] != "Year 1" {
		t.Errorf("expected first column labeled Year 1, got %q", table.ColumnLabels[0])
	}
	if len(table.Cells) != 5 || len(table.Cells[0]) != 5 {
		t.Errorf("expected 5x5 cells, got %dx%d", len(table.Cells), len(table.Cells[0]))
	}
}
