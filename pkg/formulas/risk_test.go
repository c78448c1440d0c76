package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopLossPrice(t *testing.T) {
	assert.InDelta(t, 90.0, StopLossPrice(100, 0.1), 1e-9)
	assert.InDelta(t, 100.0, StopLossPrice(100, 0), 1e-9)
}

func TestTakeProfitPrice(t *testing.T) {
	assert.InDelta(t, 110.0, TakeProfitPrice(100, 0.1), 1e-9)
	assert.InDelta(t, 100.0, TakeProfitPrice(100, 0), 1e-9)
}

func TestPositionSize(t *testing.T) {
	size, err := PositionSize(10000, 0.02, 50)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, size, 1e-9)
}

func TestPositionSize_ZeroStopLoss(t *testing.T) {
	_, err := PositionSize(10000, 0.02, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRiskRewardRatio(t *testing.T) {
	ratio, err := RiskRewardRatio(200, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ratio, 1e-9)
}

func TestRiskRewardRatio_ZeroProfit(t *testing.T) {
	_, err := RiskRewardRatio(0, 100)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
