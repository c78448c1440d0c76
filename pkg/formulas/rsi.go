package formulas

import "fmt"

// RSI calculates the Relative Strength Index of a price series.
//
// RSI Formula:
//
//	RSI = 100 − (100 / (1 + RS))
//	where RS = Average Gain / Average Loss
//
// Gains and losses are taken from every price step in the series and
// averaged over the full delta count; period is validated but does not bound
// the computation to a trailing window. A series with no losing steps has a
// zero average loss and fails with ErrDivisionByZero.
func RSI(prices []float64, period int) (float64, error) {
	if period < 1 {
		return 0, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidArgument, period)
	}
	if len(prices) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInvalidArgument, len(prices))
	}

	var gains, losses float64
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains += delta
		} else {
			losses -= delta
		}
	}

	steps := float64(len(prices) - 1)
	avgGain := gains / steps
	avgLoss := losses / steps
	if avgLoss == 0 {
		return 0, fmt.Errorf("%w: average loss is zero", ErrDivisionByZero)
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}
