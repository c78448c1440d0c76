package formulas

// Signal is a trade signal derived from comparing moving averages.
type Signal string

const (
	SignalBuy  Signal = "Buy"
	SignalSell Signal = "Sell"
	SignalHold Signal = "Hold"
)

// Crossover compares the short-period and long-period simple moving averages
// of a price series.
//
// Returns SignalBuy when the short average is above the long average,
// SignalSell when it is below, and SignalHold when the two are equal.
func Crossover(prices []float64, shortPeriod, longPeriod int) (Signal, error) {
	shortMA, _, err := MovingAverages(prices, shortPeriod)
	if err != nil {
		return "", err
	}
	longMA, _, err := MovingAverages(prices, longPeriod)
	if err != nil {
		return "", err
	}

	switch {
	case shortMA > longMA:
		return SignalBuy, nil
	case shortMA < longMA:
		return SignalSell, nil
	}
	return SignalHold, nil
}
