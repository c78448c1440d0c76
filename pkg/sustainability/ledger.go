// Package sustainability aggregates per-period resource readings into
// organisation-level consumption reports and emission figures.
package sustainability

import (
	"fmt"
	"sort"

	"github.com/aristath/finmetrics/pkg/formulas"
)

// Ledger holds per-category resource readings, one value per period (for
// example twelve monthly meter readings per energy source). Every category
// carries the same number of readings.
type Ledger struct {
	categories []string
	series     map[string][]float64
	periods    int
}

// NewLedger validates and wraps per-category readings. Categories iterate in
// sorted order so derived reports are deterministic.
func NewLedger(series map[string][]float64) (*Ledger, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: ledger has no categories", formulas.ErrInvalidArgument)
	}

	categories := make([]string, 0, len(series))
	for category := range series {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	periods := len(series[categories[0]])
	if periods == 0 {
		return nil, fmt.Errorf("%w: category %q has no readings", formulas.ErrInvalidArgument, categories[0])
	}
	for _, category := range categories {
		if len(series[category]) != periods {
			return nil, fmt.Errorf("%w: category %q has %d readings, want %d",
				formulas.ErrInvalidArgument, category, len(series[category]), periods)
		}
	}

	// Copy the readings so later caller mutations cannot skew reports.
	copied := make(map[string][]float64, len(series))
	for category, readings := range series {
		copied[category] = append([]float64(nil), readings...)
	}

	return &Ledger{categories: categories, series: copied, periods: periods}, nil
}

// Categories returns the category names in sorted order.
func (l *Ledger) Categories() []string {
	return append([]string(nil), l.categories...)
}

// Periods returns the number of readings per category.
func (l *Ledger) Periods() int {
	return l.periods
}

// Readings returns the period readings for one category, or nil when the
// category is not in the ledger.
func (l *Ledger) Readings(category string) []float64 {
	readings, ok := l.series[category]
	if !ok {
		return nil
	}
	return append([]float64(nil), readings...)
}
