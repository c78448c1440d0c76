package formulas

// AllocationRatios splits total capital across assets according to their
// target ratios. Each asset maps to totalCapital × ratio.
func AllocationRatios(totalCapital float64, allocations map[string]float64) map[string]float64 {
	amounts := make(map[string]float64, len(allocations))
	for asset, ratio := range allocations {
		amounts[asset] = totalCapital * ratio
	}
	return amounts
}

// RebalancePortfolio computes the target value per asset after spreading the
// portfolio's total value across the target ratios.
//
// Only assets named in targetRatios appear in the result; holdings without a
// target ratio do not carry over.
func RebalancePortfolio(portfolio, targetRatios map[string]float64) map[string]float64 {
	var total float64
	for _, value := range portfolio {
		total += value
	}

	targets := make(map[string]float64, len(targetRatios))
	for asset, ratio := range targetRatios {
		targets[asset] = total * ratio
	}
	return targets
}
