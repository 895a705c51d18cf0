/*
errors.go - Configuration error types for the cohort engine

PURPOSE:
  All construction-time failures in one place. Every invalid input is
  rejected before any matrix is built; once a Projection exists, nothing
  about it can fail.

ERROR CATEGORIES:
  1. Dimension errors - forecast period or ramp years below 1
  2. Rate errors - attrition outside [0, 1], negative revenue goal
  3. Hire count errors - negative entries in the hiring plan
  4. Ramp type errors - unrecognized ramp curve name

NOT ERRORS:
  Out-of-range sigmoid shape parameters (beta, shift) are corrected
  silently: the default is substituted and the effective value is visible
  on the projection's config. See ramp.go.

USAGE:
  if errors.Is(err, cohort.ErrInvalidRate) { ... }

  var cfgErr *cohort.ConfigError
  if errors.As(err, &cfgErr) {
      fmt.Println(cfgErr.Field, cfgErr.Reason)
  }

SEE ALSO:
  - config.go: Validation that produces these errors
  - projection.go: Construction entry point
*/
package cohort

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDimension is returned when forecast_period or ramp_years is
	// below 1. Both define matrix geometry and must be positive.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidRate is returned when annual_attrition falls outside [0, 1]
	// or revenue_goal is negative.
	ErrInvalidRate = errors.New("invalid rate")

	// ErrInvalidHireCount is returned when the normalized hiring plan
	// contains a negative entry.
	ErrInvalidHireCount = errors.New("invalid hire count")

	// ErrInvalidRampType is returned when ramp_type names an unknown curve.
	ErrInvalidRampType = errors.New("invalid ramp type")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConfigError reports which configuration field was rejected and why.
// Unwraps to one of the sentinel errors above.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
	kind   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s = %v (%s)", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.kind
}

func newConfigError(kind error, field string, value any, reason string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: reason, kind: kind}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConfigError returns true if the error stems from rejected configuration.
// These are client errors: projecting the same config again fails the same
// way.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidDimension) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidHireCount) ||
		errors.Is(err, ErrInvalidRampType)
}
