package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossover(t *testing.T) {
	tests := []struct {
		name        string
		prices      []float64
		shortPeriod int
		longPeriod  int
		want        Signal
	}{
		{
			// Leading-window averages: short mean 4, long mean 3.5.
			name:        "short above long",
			prices:      []float64{4, 3, 2, 1},
			shortPeriod: 1,
			longPeriod:  2,
			want:        SignalBuy,
		},
		{
			// Leading-window averages: short mean 1, long mean 1.5.
			name:        "short below long",
			prices:      []float64{1, 2, 3, 4},
			shortPeriod: 1,
			longPeriod:  2,
			want:        SignalSell,
		},
		{
			name:        "equal averages",
			prices:      []float64{5, 5, 5, 5},
			shortPeriod: 2,
			longPeriod:  4,
			want:        SignalHold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal, err := Crossover(tt.prices, tt.shortPeriod, tt.longPeriod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, signal)
		})
	}
}

func TestCrossover_Errors(t *testing.T) {
	_, err := Crossover([]float64{1, 2}, 1, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Crossover([]float64{1, 2}, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
