package formulas

import (
	"fmt"
	"math"
)

// Bands holds a Bollinger Band envelope around a simple moving average.
type Bands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// BollingerBands calculates a Bollinger Band envelope for a price series.
//
// Formula:
//
//	Middle = SMA over the leading period prices
//	σ      = population standard deviation of the trailing period prices,
//	         measured against that middle value
//	Upper  = Middle + numStdDev × σ
//	Lower  = Middle − numStdDev × σ
//
// The middle band reads the leading window of the series while the spread
// reads the trailing one.
func BollingerBands(prices []float64, period int, numStdDev float64) (Bands, error) {
	sma, _, err := MovingAverages(prices, period)
	if err != nil {
		return Bands{}, fmt.Errorf("bollinger bands: %w", err)
	}

	var sum float64
	for _, price := range prices[len(prices)-period:] {
		dev := price - sma
		sum += dev * dev
	}
	sigma := math.Sqrt(sum / float64(period))

	return Bands{
		Upper:  sma + numStdDev*sigma,
		Middle: sma,
		Lower:  sma - numStdDev*sigma,
	}, nil
}
