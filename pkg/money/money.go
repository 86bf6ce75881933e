// Package money provides exact arithmetic for commission calculation.
//
// Amounts at rest are int64 minor currency units (paise, cents). Rates are
// decimal fractions in [0, 1]. All intermediate math uses decimal arithmetic;
// rounding back to minor units happens exactly once, at the end of a
// calculation, under an explicit rounding mode. Keeping a single rounding
// point is what prevents cumulative drift across a settlement period.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a fractional minor-unit amount is resolved.
type RoundingMode string

const (
	RoundNearest RoundingMode = "nearest"
	RoundUp      RoundingMode = "up"
	RoundDown    RoundingMode = "down"
)

// ValidRoundingMode reports whether s names a known mode.
func ValidRoundingMode(s string) bool {
	switch RoundingMode(s) {
	case RoundNearest, RoundUp, RoundDown:
		return true
	}
	return false
}

// FromMinorUnits lifts an int64 amount into decimal space.
func FromMinorUnits(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// ApplyRate multiplies a minor-unit amount by a fractional rate without
// rounding. Callers round the final result with Round.
func ApplyRate(amount int64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(amount).Mul(rate)
}

// Round resolves d to whole minor units under mode.
func Round(d decimal.Decimal, mode RoundingMode) (int64, error) {
	switch mode {
	case RoundNearest:
		return d.Round(0).IntPart(), nil
	case RoundUp:
		return d.Ceil().IntPart(), nil
	case RoundDown:
		return d.Floor().IntPart(), nil
	default:
		return 0, fmt.Errorf("unknown rounding mode %q", mode)
	}
}

// RateInRange reports whether rate is a valid fraction in [0, 1].
func RateInRange(rate decimal.Decimal) bool {
	return rate.GreaterThanOrEqual(decimal.Zero) && rate.LessThanOrEqual(decimal.NewFromInt(1))
}
