package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func cashPolicy(rate string, mode money.RoundingMode) policy.Policy {
	return policy.Policy{
		CashCommissionEnabled: true,
		CashCommissionType:    policy.CashPercentage,
		CashCommissionValue:   dec(rate),
		RoundingMode:          mode,
	}
}

func TestComputeCashPercentage(t *testing.T) {
	// 5000 at 2% → commission 100, facility keeps 4900.
	b, err := Compute(ChannelCash, 5000, cashPolicy("0.02", money.RoundNearest))
	require.NoError(t, err)
	assert.Equal(t, int64(100), b.CommissionAmount)
	assert.Equal(t, int64(4900), b.FacilityShare)
	assert.Equal(t, "percentage", b.SnapshotCashType)
}

func TestComputeRoundingModes(t *testing.T) {
	// 1000 × 1.15% = 11.5 exactly on the rounding boundary.
	tests := []struct {
		mode money.RoundingMode
		want int64
	}{
		{money.RoundNearest, 12},
		{money.RoundUp, 12},
		{money.RoundDown, 11},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			b, err := Compute(ChannelCash, 1000, cashPolicy("0.0115", tt.mode))
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.CommissionAmount)
			assert.Equal(t, 1000-tt.want, b.FacilityShare)
		})
	}
}

func TestComputeOnlineMargin(t *testing.T) {
	// Platform MDR 1.20%, gateway MDR 1.10% → platform keeps the 0.10% margin.
	pol := policy.Policy{
		PlatformMDRRate: dec("0.012"),
		GatewayMDRRate:  dec("0.011"),
		RoundingMode:    money.RoundNearest,
	}

	b, err := Compute(ChannelOnline, 100000, pol)
	require.NoError(t, err)
	assert.Equal(t, int64(100), b.CommissionAmount)
	assert.Equal(t, int64(99900), b.FacilityShare)
	assert.True(t, b.SnapshotRate.Equal(dec("0.001")))
}

func TestComputeOnlineWithTax(t *testing.T) {
	// 18% tax on top of the commission, rounded once at the end.
	pol := policy.Policy{
		PlatformMDRRate: dec("0.012"),
		GatewayMDRRate:  dec("0.011"),
		TaxOnCommission: true,
		TaxRate:         dec("0.18"),
		RoundingMode:    money.RoundNearest,
	}

	b, err := Compute(ChannelOnline, 100000, pol)
	require.NoError(t, err)
	// 100 margin + 18 tax = 118
	assert.Equal(t, int64(118), b.CommissionAmount)
	assert.Equal(t, int64(99882), b.FacilityShare)
	assert.True(t, b.SnapshotTaxRate.Equal(dec("0.18")))
}

func TestComputeCashDisabled(t *testing.T) {
	pol := policy.Policy{
		CashCommissionEnabled: false,
		RoundingMode:          money.RoundNearest,
	}

	b, err := Compute(ChannelCash, 7000, pol)
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.CommissionAmount)
	assert.Equal(t, int64(7000), b.FacilityShare)
}

func TestComputeCashFixedCapped(t *testing.T) {
	pol := policy.Policy{
		CashCommissionEnabled: true,
		CashCommissionType:    policy.CashFixed,
		CashCommissionValue:   dec("500"),
		RoundingMode:          money.RoundNearest,
	}

	t.Run("fee below gross", func(t *testing.T) {
		b, err := Compute(ChannelCash, 7000, pol)
		require.NoError(t, err)
		assert.Equal(t, int64(500), b.CommissionAmount)
		assert.Equal(t, int64(6500), b.FacilityShare)
	})

	t.Run("fee capped at gross", func(t *testing.T) {
		b, err := Compute(ChannelCash, 300, pol)
		require.NoError(t, err)
		assert.Equal(t, int64(300), b.CommissionAmount)
		assert.Equal(t, int64(0), b.FacilityShare)
	})
}

func TestComputePolicyErrors(t *testing.T) {
	t.Run("gateway rate above platform rate", func(t *testing.T) {
		pol := policy.Policy{
			PlatformMDRRate: dec("0.01"),
			GatewayMDRRate:  dec("0.02"),
			RoundingMode:    money.RoundNearest,
		}
		_, err := Compute(ChannelOnline, 1000, pol)
		require.Error(t, err)
		assert.True(t, policy.IsPolicyError(err))
	})

	t.Run("non-positive gross", func(t *testing.T) {
		_, err := Compute(ChannelCash, 0, cashPolicy("0.02", money.RoundNearest))
		require.Error(t, err)
		assert.True(t, policy.IsPolicyError(err))
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, err := Compute(Channel("card"), 1000, cashPolicy("0.02", money.RoundNearest))
		require.Error(t, err)
		assert.True(t, policy.IsPolicyError(err))
	})
}

func TestComputeDeterministic(t *testing.T) {
	pol := cashPolicy("0.0175", money.RoundNearest)
	a, err := Compute(ChannelCash, 12345, pol)
	require.NoError(t, err)
	b, err := Compute(ChannelCash, 12345, pol)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
