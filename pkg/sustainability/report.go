package sustainability

import (
	"fmt"

	"github.com/aristath/finmetrics/pkg/formulas"
)

// Column and row labels used by the derived reports.
const (
	TotalEnergyLabel = "Total Energy Consumption (kWh)"
	TotalWaterLabel  = "Total Water Usage (cubic meters)"
	AnnualTotalLabel = "Annual Total"
)

// Row is one period of a consumption report: the per-category values in
// Categories order plus the derived row-wise total.
type Row struct {
	Values []float64 `json:"values"`
	Total  float64   `json:"total"`
}

// Report is a tabular consumption summary: one row per period with a derived
// total column, closed by an annual row holding the column-wise sums. The
// annual row's total is the sum of the per-period totals.
type Report struct {
	Categories []string `json:"categories"`
	TotalLabel string   `json:"total_label"`
	Rows       []Row    `json:"rows"`
	Annual     Row      `json:"annual"`
}

// EnergyConsumptionReport aggregates an energy ledger into per-period and
// annual consumption totals in kWh.
func EnergyConsumptionReport(energyData *Ledger) (*Report, error) {
	return buildReport(energyData, TotalEnergyLabel)
}

// WaterUsageReport aggregates a water ledger into per-period and annual
// usage totals in cubic meters.
func WaterUsageReport(waterUsageData *Ledger) (*Report, error) {
	return buildReport(waterUsageData, TotalWaterLabel)
}

func buildReport(ledger *Ledger, totalLabel string) (*Report, error) {
	if ledger == nil {
		return nil, fmt.Errorf("%w: nil ledger", formulas.ErrInvalidArgument)
	}

	annual := Row{Values: make([]float64, len(ledger.categories))}
	rows := make([]Row, ledger.periods)
	for p := 0; p < ledger.periods; p++ {
		row := Row{Values: make([]float64, len(ledger.categories))}
		for c, category := range ledger.categories {
			value := ledger.series[category][p]
			row.Values[c] = value
			row.Total += value
			annual.Values[c] += value
		}
		annual.Total += row.Total
		rows[p] = row
	}

	return &Report{
		Categories: ledger.Categories(),
		TotalLabel: totalLabel,
		Rows:       rows,
		Annual:     annual,
	}, nil
}
