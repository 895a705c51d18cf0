package grid

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SEQUENCE NORMALIZATION - Fit a slice to a fixed length
// =============================================================================

// SizeTo returns a copy of seq adjusted to exactly length entries: longer
// input is truncated, shorter input is right-padded with fill. The input
// slice is never modified. A non-positive length yields an empty slice.
func SizeTo(seq []decimal.Decimal, length int, fill decimal.Decimal) []decimal.Decimal {
	if length <= 0 {
		return []decimal.Decimal{}
	}
	out := make([]decimal.Decimal, length)
	for k := 0; k < length; k++ {
		if k < len(seq) {
			out[k] = seq[k]
		} else {
			out[k] = fill
		}
	}
	return out
}

// Decimals converts a float64 slice to decimal form.
func Decimals(values []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for k, v := range values {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}

// =============================================================================
// SAMPLING
// =============================================================================

// Linspace returns n evenly spaced samples over [start, stop], endpoints
// included. n = 1 returns just the start point. n < 1 returns nil.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(n-1)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = start + float64(k)*step
	}
	return out
}
