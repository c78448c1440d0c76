package formulas

import "fmt"

// Volatility calculates a dispersion score for a price series: the sum of
// squared deviations of its simple returns from their mean return.
//
// The score aggregates every return in the series; period is validated but
// does not window the computation. Because the result is a raw sum rather
// than a variance, it grows with series length.
func Volatility(prices []float64, period int) (float64, error) {
	if period < 1 {
		return 0, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidArgument, period)
	}
	if len(prices) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInvalidArgument, len(prices))
	}

	returns := Returns(prices)
	mean := Mean(returns)

	var sum float64
	for _, r := range returns {
		dev := r - mean
		sum += dev * dev
	}
	return sum, nil
}
