package math

// MinimumBalanceAdjustment is the deposit needed for a bank account to stay at or above
// a minimum balance once its outstanding checks clear.
type MinimumBalanceAdjustment struct {
	Dollars int
	Cents   int
}

// ToCents expresses the amount in just cents.
func (m *MinimumBalanceAdjustment) ToCents() int {
	return (m.Dollars * 100) + m.Cents
}

// CalculateMinimumBalanceAdjustment returns the deposit needed so that the given account balance,
// less the outstanding checks, stays at or above the given minimum balance. All amounts are in cents.
func CalculateMinimumBalanceAdjustment(
	accountBalance int,
	outstanding *OutstandingBalance,
	minimumAccountBalance int,
) *MinimumBalanceAdjustment {
	effectiveBalance := accountBalance
	if outstanding != nil {
		effectiveBalance -= outstanding.ToCents()
	}

	if effectiveBalance >= minimumAccountBalance {
		return &MinimumBalanceAdjustment{}
	}

	adjustmentTotalCents := minimumAccountBalance - effectiveBalance
	adjustmentRemainingCents := adjustmentTotalCents % 100
	adjustmentDollars := (adjustmentTotalCents - adjustmentRemainingCents) / 100

	return &MinimumBalanceAdjustment{
		Dollars: adjustmentDollars,
		Cents:   adjustmentRemainingCents,
	}
}
