package formulas

import "fmt"

// StopLossPrice calculates the price at which a position is closed to cap a
// loss: entryPrice × (1 − stopLossPct).
func StopLossPrice(entryPrice, stopLossPct float64) float64 {
	return entryPrice * (1 - stopLossPct)
}

// TakeProfitPrice calculates the price at which a position is closed to lock
// in a gain: entryPrice × (1 + takeProfitPct).
func TakeProfitPrice(entryPrice, takeProfitPct float64) float64 {
	return entryPrice * (1 + takeProfitPct)
}

// PositionSize calculates how many units to trade so that hitting the stop
// loss costs the account no more than its risk budget.
//
// Formula:
//
//	Size = (Account Balance × Risk Per Trade) / Stop Loss Amount
func PositionSize(accountBalance, riskPerTrade, stopLossAmount float64) (float64, error) {
	if stopLossAmount == 0 {
		return 0, fmt.Errorf("%w: stop loss amount is zero", ErrDivisionByZero)
	}
	return accountBalance * riskPerTrade / stopLossAmount, nil
}

// RiskRewardRatio calculates the ratio of potential loss to potential profit
// for a prospective trade.
func RiskRewardRatio(potentialProfit, potentialLoss float64) (float64, error) {
	if potentialProfit == 0 {
		return 0, fmt.Errorf("%w: potential profit is zero", ErrDivisionByZero)
	}
	return potentialLoss / potentialProfit, nil
}
