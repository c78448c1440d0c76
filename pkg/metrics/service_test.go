package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/finmetrics/pkg/formulas"
	"github.com/aristath/finmetrics/pkg/logger"
)

func testService() *Service {
	log := logger.New(logger.Config{Level: "error"})
	return New(Options{Log: log})
}

func TestNew_AppliesDefaults(t *testing.T) {
	svc := testService()

	// Default Bollinger period is 20: a 20-value series works, 19 does not.
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 50
	}

	bands, err := svc.BollingerBands(prices)
	require.NoError(t, err)
	assert.InDelta(t, 50, bands.Middle, 1e-9)
	assert.InDelta(t, 50, bands.Upper, 1e-9)
	assert.InDelta(t, 50, bands.Lower, 1e-9)

	_, err = svc.BollingerBands(prices[:19])
	assert.ErrorIs(t, err, formulas.ErrInvalidArgument)
}

func TestService_RSI(t *testing.T) {
	svc := testService()

	rsi, err := svc.RSI([]float64{1, 2, 3, 2})
	require.NoError(t, err)
	assert.InDelta(t, 100-100.0/3.0, rsi, 1e-9)

	_, err = svc.RSI([]float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, formulas.ErrDivisionByZero)
}

func TestService_MovingAveragesAndCrossover(t *testing.T) {
	svc := testService()

	sma, ema, err := svc.MovingAverages([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, sma, 1e-9)
	assert.Len(t, ema, 3)

	signal, err := svc.Crossover([]float64{5, 5, 5, 5}, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, formulas.SignalHold, signal)
}

func TestService_RiskFunctions(t *testing.T) {
	svc := testService()

	assert.InDelta(t, 90.0, svc.StopLossPrice(100, 0.1), 1e-9)
	assert.InDelta(t, 110.0, svc.TakeProfitPrice(100, 0.1), 1e-9)

	size, err := svc.PositionSize(10000, 0.02, 50)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, size, 1e-9)

	_, err = svc.PositionSize(10000, 0.02, 0)
	assert.ErrorIs(t, err, formulas.ErrDivisionByZero)

	_, err = svc.RiskRewardRatio(0, 100)
	assert.ErrorIs(t, err, formulas.ErrDivisionByZero)

	dd, err := svc.MaxDrawdown([]float64{100, 50})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dd, 1e-9)
}

func TestService_PortfolioFunctions(t *testing.T) {
	svc := testService()

	amounts := svc.AllocationRatios(1000, map[string]float64{"A": 0.5, "B": 0.5})
	assert.Equal(t, map[string]float64{"A": 500.0, "B": 500.0}, amounts)

	rebalanced := svc.RebalancePortfolio(
		map[string]float64{"A": 100, "B": 300},
		map[string]float64{"A": 0.25, "B": 0.75},
	)
	assert.Equal(t, map[string]float64{"A": 100.0, "B": 300.0}, rebalanced)
}

func TestService_SustainabilityFunctions(t *testing.T) {
	svc := testService()

	assert.InDelta(t, 500.0, svc.CarbonFootprint(1000, 0.5), 1e-9)

	report, err := svc.EnergyConsumptionReport(map[string][]float64{
		"Electricity": {100, 200},
		"Gas":         {50, 50},
	})
	require.NoError(t, err)
	assert.InDelta(t, 400, report.Annual.Total, 1e-9)

	_, err = svc.WaterUsageReport(map[string][]float64{
		"Municipal": {30, 40},
		"Rainwater": {5},
	})
	assert.ErrorIs(t, err, formulas.ErrInvalidArgument)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("FINMETRICS_LOG_LEVEL", "error")
	t.Setenv("FINMETRICS_BOLLINGER_PERIOD", "2")

	svc, err := NewFromEnv()
	require.NoError(t, err)

	// The configured period of 2 accepts a series the default 20 would not.
	bands, err := svc.BollingerBands([]float64{10, 10})
	require.NoError(t, err)
	assert.InDelta(t, 10, bands.Middle, 1e-9)
}

func TestNewFromEnv_InvalidConfig(t *testing.T) {
	t.Setenv("FINMETRICS_RSI_PERIOD", "not-a-number")

	_, err := NewFromEnv()
	assert.Error(t, err)
}
