package ynab

import (
	"fmt"
	"sort"

	"github.com/davidsteinsland/ynab-go/ynab"

	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/currency"
)

// CreateTransactions builds the YNAB transactions that record the given printed or emailed checks
// as outflows from the YNAB accounts mapped to their bank accounts.
// Checks in any other status are skipped.
func CreateTransactions(
	checks []*check.Check,
	ynabAccountIDsByBankAccountID map[string]string,
) ([]ynab.SaveTransaction, error) {
	var recordable []*check.Check
	for _, c := range checks {
		if c.Status != check.StatusPrinted && c.Status != check.StatusEmailed {
			continue
		}

		recordable = append(recordable, c)
	}

	// Get some kind of consistency in ordering, if just to help tests
	sort.Slice(recordable, func(i, j int) bool {
		if recordable[i].BankAccountID != recordable[j].BankAccountID {
			return recordable[i].BankAccountID < recordable[j].BankAccountID
		}
		return recordable[i].Number < recordable[j].Number
	})

	transactions := make([]ynab.SaveTransaction, 0, len(recordable))
	for _, c := range recordable {
		ynabAccountID, hasID := ynabAccountIDsByBankAccountID[c.BankAccountID]
		if !hasID {
			return nil, fmt.Errorf("unable to resolve YNAB account for bank account ID '%s' of check #%d", c.BankAccountID, c.Number)
		}

		transactions = append(transactions, ynab.SaveTransaction{
			AccountId: ynabAccountID,
			// YNAB expresses amounts in milliunits, and checks are outflows
			Amount: int(c.Amount) * -10,
			Date:   c.Date,
			Memo:   buildCheckMemo(c),
		})
	}

	return transactions, nil
}

func buildCheckMemo(c *check.Check) string {
	memo := fmt.Sprintf("Check #%d to %s (%s)", c.Number, c.Payee, currency.FormatCents(int(c.Amount)))
	if c.Memo == "" {
		return memo
	}

	return fmt.Sprintf("%s: %s", memo, c.Memo)
}
