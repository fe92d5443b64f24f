package math

import (
	"fmt"
	"time"

	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/currency"
)

// OutstandingBalance is the total of the issued checks written against a bank account.
type OutstandingBalance struct {
	Dollars int
	Cents   int
	Count   int
}

// ToCents expresses the amount in just cents.
func (o *OutstandingBalance) ToCents() int {
	return (o.Dollars * 100) + o.Cents
}

func (o *OutstandingBalance) String() string {
	return currency.ToDisplayString(int64(o.ToCents()))
}

// CalculateOutstandingBalances totals, per bank account, the issued checks dated
// within the given start and end date (inclusive) for the given bank account IDs.
// Drafts and void checks are not counted.
func CalculateOutstandingBalances(
	accountIDs []string,
	checks []*check.Check,
	startDate time.Time,
	endDate time.Time,
) (map[string]*OutstandingBalance, error) {
	filteredByAccount := filterToAccountIDs(checks, accountIDs)

	filteredByDate, err := filterChecksByDateRange(filteredByAccount, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to filter checks by date range: %w", err)
	}

	issuedOnly := filterToIssuedOnly(filteredByDate)

	grouped := groupChecksByAccountID(accountIDs, issuedOnly)

	balances := make(map[string]*OutstandingBalance)
	for accountID, accountChecks := range grouped {
		dollars, cents := toDollarsAndCents(sumChecks(accountChecks))
		balances[accountID] = &OutstandingBalance{
			Dollars: dollars,
			Cents:   cents,
			Count:   len(accountChecks),
		}
	}

	return balances, nil
}

func sumChecks(checks []*check.Check) int64 {
	var summed int64
	for _, c := range checks {
		summed += c.Amount
	}
	return summed
}

func toDollarsAndCents(amount int64) (int, int) {
	cents := amount % 100
	dollars := (amount - cents) / 100

	return int(dollars), int(cents)
}
