// Package metrics exposes the metric catalog behind a single facade with
// configured defaults and structured logging. The underlying computations
// live in pkg/formulas and pkg/sustainability and can be called directly;
// the facade only fills in default indicator parameters and logs.
package metrics

import (
	"github.com/rs/zerolog"

	"github.com/aristath/finmetrics/internal/config"
	"github.com/aristath/finmetrics/pkg/formulas"
	"github.com/aristath/finmetrics/pkg/logger"
	"github.com/aristath/finmetrics/pkg/sustainability"
)

// Options configures a Service. Zero values fall back to the library
// defaults (RSI 14, Bollinger 20 / 2.0).
type Options struct {
	Log             zerolog.Logger
	RSIPeriod       int
	BollingerPeriod int
	BollingerStdDev float64
}

// Service is the metric catalog. It holds no market data between calls and
// is safe for concurrent use.
type Service struct {
	log             zerolog.Logger
	rsiPeriod       int
	bollingerPeriod int
	bollingerStdDev float64
}

// New creates a metrics service with the given options.
func New(opts Options) *Service {
	if opts.RSIPeriod < 1 {
		opts.RSIPeriod = config.DefaultRSIPeriod
	}
	if opts.BollingerPeriod < 1 {
		opts.BollingerPeriod = config.DefaultBollingerPeriod
	}
	if opts.BollingerStdDev <= 0 {
		opts.BollingerStdDev = config.DefaultBollingerStdDev
	}

	return &Service{
		log:             opts.Log.With().Str("service", "metrics").Logger(),
		rsiPeriod:       opts.RSIPeriod,
		bollingerPeriod: opts.BollingerPeriod,
		bollingerStdDev: opts.BollingerStdDev,
	}
}

// NewFromEnv creates a metrics service configured from the environment.
func NewFromEnv() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	return New(Options{
		Log:             log,
		RSIPeriod:       cfg.RSIPeriod,
		BollingerPeriod: cfg.BollingerPeriod,
		BollingerStdDev: cfg.BollingerStdDev,
	}), nil
}

// MovingAverages calculates the simple and exponential moving averages over
// the leading period prices.
func (s *Service) MovingAverages(prices []float64, period int) (float64, []float64, error) {
	sma, ema, err := formulas.MovingAverages(prices, period)
	if err != nil {
		return 0, nil, err
	}
	s.log.Debug().Int("period", period).Float64("sma", sma).Msg("calculated moving averages")
	return sma, ema, nil
}

// RSI calculates the Relative Strength Index using the configured period.
func (s *Service) RSI(prices []float64) (float64, error) {
	rsi, err := formulas.RSI(prices, s.rsiPeriod)
	if err != nil {
		return 0, err
	}
	s.log.Debug().Int("period", s.rsiPeriod).Float64("rsi", rsi).Msg("calculated rsi")
	return rsi, nil
}

// BollingerBands calculates the band envelope using the configured period
// and standard deviation multiplier.
func (s *Service) BollingerBands(prices []float64) (formulas.Bands, error) {
	bands, err := formulas.BollingerBands(prices, s.bollingerPeriod, s.bollingerStdDev)
	if err != nil {
		return formulas.Bands{}, err
	}
	s.log.Debug().
		Int("period", s.bollingerPeriod).
		Float64("upper", bands.Upper).
		Float64("lower", bands.Lower).
		Msg("calculated bollinger bands")
	return bands, nil
}

// Crossover compares short- and long-period simple moving averages.
func (s *Service) Crossover(prices []float64, shortPeriod, longPeriod int) (formulas.Signal, error) {
	signal, err := formulas.Crossover(prices, shortPeriod, longPeriod)
	if err != nil {
		return "", err
	}
	s.log.Debug().
		Int("short_period", shortPeriod).
		Int("long_period", longPeriod).
		Str("signal", string(signal)).
		Msg("calculated crossover")
	return signal, nil
}

// Volatility calculates the dispersion score of the series returns.
func (s *Service) Volatility(prices []float64, period int) (float64, error) {
	return formulas.Volatility(prices, period)
}

// LookbackWindow returns the trailing period elements of the series.
func (s *Service) LookbackWindow(prices []float64, period int) ([]float64, error) {
	return formulas.LookbackWindow(prices, period)
}

// StopLossPrice calculates the exit price that caps a loss.
func (s *Service) StopLossPrice(entryPrice, stopLossPct float64) float64 {
	return formulas.StopLossPrice(entryPrice, stopLossPct)
}

// TakeProfitPrice calculates the exit price that locks in a gain.
func (s *Service) TakeProfitPrice(entryPrice, takeProfitPct float64) float64 {
	return formulas.TakeProfitPrice(entryPrice, takeProfitPct)
}

// PositionSize calculates trade size from the account risk budget and stop
// loss distance.
func (s *Service) PositionSize(accountBalance, riskPerTrade, stopLossAmount float64) (float64, error) {
	return formulas.PositionSize(accountBalance, riskPerTrade, stopLossAmount)
}

// RiskRewardRatio calculates the loss-to-profit ratio of a prospective trade.
func (s *Service) RiskRewardRatio(potentialProfit, potentialLoss float64) (float64, error) {
	return formulas.RiskRewardRatio(potentialProfit, potentialLoss)
}

// MaxDrawdown calculates the largest peak-to-trough decline of the series.
func (s *Service) MaxDrawdown(values []float64) (float64, error) {
	return formulas.MaxDrawdown(values)
}

// AllocationRatios splits capital across assets by target ratio.
func (s *Service) AllocationRatios(totalCapital float64, allocations map[string]float64) map[string]float64 {
	return formulas.AllocationRatios(totalCapital, allocations)
}

// RebalancePortfolio computes target values per asset from current holdings
// and target ratios.
func (s *Service) RebalancePortfolio(portfolio, targetRatios map[string]float64) map[string]float64 {
	return formulas.RebalancePortfolio(portfolio, targetRatios)
}

// CarbonFootprint calculates emissions from activity data and its emission
// factor.
func (s *Service) CarbonFootprint(activityData, emissionFactor float64) float64 {
	return sustainability.CarbonFootprint(activityData, emissionFactor)
}

// EnergyConsumptionReport validates the readings and aggregates them into an
// energy consumption report.
func (s *Service) EnergyConsumptionReport(energyData map[string][]float64) (*sustainability.Report, error) {
	ledger, err := sustainability.NewLedger(energyData)
	if err != nil {
		return nil, err
	}
	report, err := sustainability.EnergyConsumptionReport(ledger)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int("categories", len(report.Categories)).
		Int("periods", len(report.Rows)).
		Float64("annual_total", report.Annual.Total).
		Msg("built energy consumption report")
	return report, nil
}

// WaterUsageReport validates the readings and aggregates them into a water
// usage report.
func (s *Service) WaterUsageReport(waterUsageData map[string][]float64) (*sustainability.Report, error) {
	ledger, err := sustainability.NewLedger(waterUsageData)
	if err != nil {
		return nil, err
	}
	report, err := sustainability.WaterUsageReport(ledger)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int("categories", len(report.Categories)).
		Int("periods", len(report.Rows)).
		Float64("annual_total", report.Annual.Total).
		Msg("built water usage report")
	return report, nil
}
