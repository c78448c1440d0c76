package formulas

import "fmt"

// MaxDrawdown calculates the maximum peak-to-trough decline of a value
// series.
//
// Drawdown Formula:
//
//	Drawdown = (Peak Value − Current Value) / Peak Value
//
// The peak is tracked left to right starting from the first value, and the
// result is the largest drawdown observed, as a positive fraction
// (0.25 = 25% loss from peak).
func MaxDrawdown(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: empty value series", ErrInvalidArgument)
	}

	peak := values[0]
	if peak <= 0 {
		return 0, fmt.Errorf("%w: initial peak must be positive, got %g", ErrInvalidArgument, peak)
	}

	maxDrawdown := 0.0
	for _, value := range values {
		if value > peak {
			peak = value
		}
		drawdown := (peak - value) / peak
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}
	return maxDrawdown, nil
}
