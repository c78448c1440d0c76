package formulas

import "fmt"

// MovingAverages calculates the simple and exponential moving averages of a
// price series.
//
// SMA Formula:
//
//	SMA = mean of the leading period prices
//
// EMA Formula:
//
//	multiplier = 2 / (period + 1)
//	EMA_0 = SMA × multiplier
//	EMA_i = (Price_i − EMA_{i−1}) × multiplier + EMA_{i−1}
//
// Both averages run over the leading period prices of the series, not a
// trailing window. The returned EMA series has period+1 entries: the seed
// followed by one step per price.
func MovingAverages(prices []float64, period int) (float64, []float64, error) {
	if period < 1 {
		return 0, nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidArgument, period)
	}
	if len(prices) < period {
		return 0, nil, fmt.Errorf("%w: need at least %d prices, got %d", ErrInvalidArgument, period, len(prices))
	}

	window := prices[:period]
	sma := Mean(window)

	multiplier := 2.0 / float64(period+1)
	ema := make([]float64, 0, period+1)
	ema = append(ema, sma*multiplier)
	for _, price := range window {
		prev := ema[len(ema)-1]
		ema = append(ema, (price-prev)*multiplier+prev)
	}

	return sma, ema, nil
}

// LookbackWindow returns the trailing period elements of a price series, the
// slice a windowed calculation or decision would analyse.
func LookbackWindow(prices []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidArgument, period)
	}
	if period > len(prices) {
		return nil, fmt.Errorf("%w: period %d exceeds series length %d", ErrInvalidArgument, period, len(prices))
	}
	return prices[len(prices)-period:], nil
}
