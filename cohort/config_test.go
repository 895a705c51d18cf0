package cohort_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/warp/cohort-engine/cohort"
)

// =============================================================================
// VALIDATION - Every invalid input is rejected at construction
// =============================================================================

func TestProject_ZeroForecastPeriod_InvalidDimension(t *testing.T) {
	cfg := baseConfig()
	cfg.ForecastPeriod = 0

	_, err := cohort.Project(cfg)

	if !errors.Is(err, cohort.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestProject_ZeroRampYears_InvalidDimension(t *testing.T) {
	cfg := baseConfig()
	cfg.RampYears = 0

	_, err := cohort.Project(cfg)

	if !errors.Is(err, cohort.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestProject_AttritionAboveOne_InvalidRate(t *testing.T) {
	cfg := baseConfig()
	cfg.AnnualAttrition = 1.01

	_, err := cohort.Project(cfg)

	if !errors.Is(err, cohort.ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate, got %v", err)
	}
}

func TestProject_NegativeAttrition_InvalidRate(t *testing.T) {
	cfg := baseConfig()
	cfg.AnnualAttrition = -0.1

	_, err := cohort.Project(cfg)

	if !errors.Is(err, cohort.ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate, got %v", err)
	}
}

func TestProject_NegativeRevenueGoal_InvalidRate(t *testing.T) {
	cfg := baseConfig()
	cfg.RevenueGoal = -1

	_, err := cohort.Project(cfg)

	if !errors.Is(err, cohort.ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate, got %v", err)
	}
}

func TestProject_NegativeHire_InvalidHireCount(t *testing.T) {
	// GIVEN: A hiring plan with one negative entry inside the window
	// WHEN: Projecting
	// THEN: Rejected, and the error names the offending entry

	cfg := baseConfig()
	cfg.HiresPerYear = []float64{10, -3, 15, 18, 20}

	_, err := cohort.Project(cfg)

	if !errors.Is(err, cohort.ErrInvalidHireCount) {
		t.Fatalf("expected ErrInvalidHireCount, got %v", err)
	}

	var cfgErr *cohort.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a *ConfigError, got %T", err)
	}
	if cfgErr.Field != "hires_per_year[1]" {
		t.Errorf("expected field hires_per_year[1], got %q", cfgErr.Field)
	}
}

func TestProject_NegativeHireBeyondWindow_TruncatedAway(t *testing.T) {
	// GIVEN: A negative entry past the forecast period
	// WHEN: Projecting with a shorter window
	// THEN: Normalization drops the entry before validation sees it

	cfg := baseConfig()
	cfg.ForecastPeriod = 2
	cfg.HiresPerYear = []float64{10, 12, -5}

	if _, err := cohort.Project(cfg); err != nil {
		t.Errorf("expected truncated plan to project cleanly, got %v", err)
	}
}

func TestProject_UnknownRampType_Rejected(t *testing.T) {
	cfg := baseConfig()
	cfg.RampType = "exponential"

	_, err := cohort.Project(cfg)

	if !errors.Is(err, cohort.ErrInvalidRampType) {
		t.Errorf("expected ErrInvalidRampType, got %v", err)
	}
}

func TestProject_EmptyRampType_DefaultsToLinear(t *testing.T) {
	cfg := baseConfig()
	cfg.RampType = ""

	proj := mustProject(t, cfg)

	if got := proj.Config().RampType; got != cohort.RampLinear {
		t.Errorf("expected effective ramp type linear, got %q", got)
	}
}

func TestProject_OutOfRangeBeta_NotAnError(t *testing.T) {
	// Out-of-range shape parameters are corrected, never rejected.
	cfg := baseConfig()
	cfg.RampType = cohort.RampSigmoid
	cfg.Beta = 42

	if _, err := cohort.Project(cfg); err != nil {
		t.Errorf("expected silent correction, got error %v", err)
	}
}

func TestValidate_WellFormedConfig_NoError(t *testing.T) {
	if err := baseConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

// =============================================================================
// ERROR SHAPE
// =============================================================================

func TestConfigError_MessageNamesFieldAndReason(t *testing.T) {
	cfg := baseConfig()
	cfg.AnnualAttrition = 2

	_, err := cohort.Project(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "annual_attrition") {
		t.Errorf("expected message to name the field, got %q", msg)
	}
	if !strings.Contains(msg, "invalid configuration") {
		t.Errorf("expected invalid configuration prefix, got %q", msg)
	}
}

func TestIsConfigError_CoversAllSentinels(t *testing.T) {
	bad := []cohort.Config{}

	dim := baseConfig()
	dim.ForecastPeriod = -1
	bad = append(bad, dim)

	rate := baseConfig()
	rate.AnnualAttrition = 5
	bad = append(bad, rate)

	hires := baseConfig()
	hires.HiresPerYear = []float64{-1}
	bad = append(bad, hires)

	ramp := baseConfig()
	ramp.RampType = "step"
	bad = append(bad, ramp)

	for k, cfg := range bad {
		_, err := cohort.Project(cfg)
		if !cohort.IsConfigError(err) {
			t.Errorf("case %d: expected IsConfigError true, got false for %v", k, err)
		}
	}

	if cohort.IsConfigError(nil) {
		t.Error("expected IsConfigError(nil) to be false")
	}
	if cohort.IsConfigError(errors.New("unrelated")) {
		t.Error("expected unrelated error to not count as config error")
	}
}
