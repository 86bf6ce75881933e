package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name  string
		value string
		mode  RoundingMode
		want  int64
	}{
		{"half rounds up under nearest", "11.5", RoundNearest, 12},
		{"below half rounds down under nearest", "11.4", RoundNearest, 11},
		{"up always ceils", "11.01", RoundUp, 12},
		{"down always floors", "11.99", RoundDown, 11},
		{"whole value unchanged", "42", RoundNearest, 42},
		{"zero", "0", RoundDown, 0},
		{"negative half under nearest", "-11.5", RoundNearest, -12},
		{"negative floors toward more negative", "-11.1", RoundDown, -12},
		{"negative ceils toward zero", "-11.9", RoundUp, -11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)

			got, err := Round(d, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundUnknownMode(t *testing.T) {
	_, err := Round(decimal.NewFromInt(1), RoundingMode("banker"))
	assert.Error(t, err)
}

func TestApplyRate(t *testing.T) {
	// 1000 × 1.15% = 11.5 exactly, no float drift
	rate, _ := decimal.NewFromString("0.0115")
	got := ApplyRate(1000, rate)
	assert.True(t, got.Equal(decimal.RequireFromString("11.5")), "got %s", got)

	nearest, err := Round(got, RoundNearest)
	require.NoError(t, err)
	assert.Equal(t, int64(12), nearest)

	down, err := Round(got, RoundDown)
	require.NoError(t, err)
	assert.Equal(t, int64(11), down)
}

func TestRateInRange(t *testing.T) {
	assert.True(t, RateInRange(decimal.Zero))
	assert.True(t, RateInRange(decimal.NewFromInt(1)))
	assert.True(t, RateInRange(decimal.RequireFromString("0.0115")))
	assert.False(t, RateInRange(decimal.RequireFromString("1.01")))
	assert.False(t, RateInRange(decimal.RequireFromString("-0.01")))
}

func TestValidRoundingMode(t *testing.T) {
	assert.True(t, ValidRoundingMode("nearest"))
	assert.True(t, ValidRoundingMode("up"))
	assert.True(t, ValidRoundingMode("down"))
	assert.False(t, ValidRoundingMode("half-even"))
}
