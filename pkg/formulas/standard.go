package formulas

import (
	"fmt"
	"math"

	"github.com/markcheno/go-talib"
)

// Standard trailing-window indicator variants. The plain functions in this
// package keep the legacy leading-window and whole-series arithmetic for
// compatibility with existing consumers; these compute the textbook trailing
// forms and return the most recent value.

// StandardSMA calculates the trailing simple moving average and returns its
// latest value.
func StandardSMA(prices []float64, period int) (float64, error) {
	if err := checkWindow(prices, period, period); err != nil {
		return 0, err
	}
	sma := talib.Sma(prices, period)
	return lastValue(sma)
}

// StandardEMA calculates the trailing exponential moving average and returns
// its latest value.
func StandardEMA(prices []float64, period int) (float64, error) {
	if err := checkWindow(prices, period, period); err != nil {
		return 0, err
	}
	ema := talib.Ema(prices, period)
	return lastValue(ema)
}

// StandardRSI calculates the Relative Strength Index over a trailing window
// with Wilder smoothing and returns its latest value. A series with no
// losing steps yields 100 rather than an error.
func StandardRSI(prices []float64, period int) (float64, error) {
	if err := checkWindow(prices, period, period+1); err != nil {
		return 0, err
	}
	rsi := talib.Rsi(prices, period)
	return lastValue(rsi)
}

// StandardBollingerBands calculates the textbook Bollinger Band envelope: a
// trailing simple moving average with the standard deviation taken over the
// same window.
func StandardBollingerBands(prices []float64, period int, numStdDev float64) (Bands, error) {
	if err := checkWindow(prices, period, period); err != nil {
		return Bands{}, err
	}

	upper, middle, lower := talib.BBands(prices, period, numStdDev, numStdDev, talib.SMA)
	u, err := lastValue(upper)
	if err != nil {
		return Bands{}, err
	}
	m, err := lastValue(middle)
	if err != nil {
		return Bands{}, err
	}
	l, err := lastValue(lower)
	if err != nil {
		return Bands{}, err
	}
	return Bands{Upper: u, Middle: m, Lower: l}, nil
}

func checkWindow(prices []float64, period, minLen int) error {
	if period < 1 {
		return fmt.Errorf("%w: period must be positive, got %d", ErrInvalidArgument, period)
	}
	if len(prices) < minLen {
		return fmt.Errorf("%w: need at least %d prices, got %d", ErrInvalidArgument, minLen, len(prices))
	}
	return nil
}

func lastValue(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("%w: empty result series", ErrInvalidArgument)
	}
	last := series[len(series)-1]
	if math.IsNaN(last) {
		return 0, fmt.Errorf("%w: insufficient data for indicator window", ErrInvalidArgument)
	}
	return last, nil
}
