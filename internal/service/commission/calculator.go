// Package commission computes and records the platform's cut of every
// captured transaction.
package commission

import (
	"github.com/shopspring/decimal"

	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/money"
)

// Channel discriminates the two revenue paths.
type Channel string

const (
	ChannelOnline Channel = "online"
	ChannelCash   Channel = "cash"
)

// Breakdown is the calculator's output: amounts plus the policy snapshot
// that produced them. Identical inputs always yield an identical Breakdown,
// which is what makes capture retry-safe.
type Breakdown struct {
	GrossAmount      int64
	CommissionAmount int64
	FacilityShare    int64

	SnapshotRate     decimal.Decimal
	SnapshotTaxRate  decimal.Decimal
	SnapshotCashType string
	Rounding         money.RoundingMode
}

// Compute derives the commission breakdown for one transaction under the
// given policy. Pure: no storage, no clock, no side effects. Intermediate
// arithmetic stays in decimal space; rounding happens once at the end.
func Compute(channel Channel, grossAmount int64, pol policy.Policy) (Breakdown, error) {
	if grossAmount <= 0 {
		return Breakdown{}, &policy.PolicyError{Field: "gross_amount", Reason: "must be positive"}
	}

	b := Breakdown{
		GrossAmount:      grossAmount,
		SnapshotTaxRate:  decimal.Zero,
		SnapshotCashType: "none",
		Rounding:         pol.RoundingMode,
	}

	var commission decimal.Decimal

	switch channel {
	case ChannelOnline:
		margin := pol.OnlineMarginRate()
		if margin.IsNegative() {
			return Breakdown{}, &policy.PolicyError{
				Field:  "gateway_mdr_rate",
				Reason: "gateway rate exceeds platform rate",
			}
		}
		if !money.RateInRange(margin) {
			return Breakdown{}, &policy.PolicyError{Field: "platform_mdr_rate", Reason: "margin outside [0, 1]"}
		}

		commission = money.ApplyRate(grossAmount, margin)
		b.SnapshotRate = margin

		if pol.TaxOnCommission {
			commission = commission.Add(commission.Mul(pol.TaxRate))
			b.SnapshotTaxRate = pol.TaxRate
		}

	case ChannelCash:
		if !pol.CashCommissionEnabled {
			b.SnapshotRate = decimal.Zero
			b.CommissionAmount = 0
			b.FacilityShare = grossAmount
			return b, nil
		}

		switch pol.CashCommissionType {
		case policy.CashPercentage:
			commission = money.ApplyRate(grossAmount, pol.CashCommissionValue)
			b.SnapshotRate = pol.CashCommissionValue
			b.SnapshotCashType = string(policy.CashPercentage)
		case policy.CashFixed:
			// Fixed fee never exceeds the transaction amount.
			gross := money.FromMinorUnits(grossAmount)
			commission = decimal.Min(pol.CashCommissionValue, gross)
			b.SnapshotRate = pol.CashCommissionValue
			b.SnapshotCashType = string(policy.CashFixed)
		default:
			return Breakdown{}, &policy.PolicyError{Field: "cash_commission_type", Reason: "unknown type"}
		}

	default:
		return Breakdown{}, &policy.PolicyError{Field: "channel", Reason: "must be online or cash"}
	}

	rounded, err := money.Round(commission, pol.RoundingMode)
	if err != nil {
		return Breakdown{}, &policy.PolicyError{Field: "rounding_mode", Reason: err.Error()}
	}
	if rounded < 0 {
		return Breakdown{}, &policy.PolicyError{Field: "commission", Reason: "computed commission is negative"}
	}
	if rounded > grossAmount {
		rounded = grossAmount
	}

	b.CommissionAmount = rounded
	b.FacilityShare = grossAmount - rounded
	return b, nil
}
