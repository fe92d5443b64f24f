package math

import (
	"fmt"
	"time"

	"github.com/jrh3k5/checkwriter/check"
)

// filterToAccountIDs will filter the given checks to only include those for the given bank account IDs
func filterToAccountIDs(checks []*check.Check, accountIDs []string) []*check.Check {
	var included []*check.Check

	for _, c := range checks {
		include := false
		for _, accountID := range accountIDs {
			if accountID == c.BankAccountID {
				include = true
				break
			}
		}

		if !include {
			continue
		}

		included = append(included, c)
	}

	return included
}

func filterToIssuedOnly(checks []*check.Check) []*check.Check {
	var included []*check.Check

	for _, c := range checks {
		if !c.Status.IsIssued() {
			continue
		}

		included = append(included, c)
	}

	return included
}

func filterChecksByDateRange(checks []*check.Check, startDate time.Time, endDate time.Time) ([]*check.Check, error) {
	var included []*check.Check

	for _, c := range checks {
		date, parseErr := c.ParsedDate()
		if parseErr != nil {
			return nil, fmt.Errorf("failed to read date of check to payee '%s': %w", c.Payee, parseErr)
		}

		if date.Before(startDate) || date.After(endDate) {
			continue
		}

		included = append(included, c)
	}

	return included, nil
}

func groupChecksByAccountID(accountIDs []string, checks []*check.Check) map[string][]*check.Check {
	grouped := make(map[string][]*check.Check)
	for _, accountID := range accountIDs {
		grouped[accountID] = make([]*check.Check, 0)
	}

	for _, c := range checks {
		grouped[c.BankAccountID] = append(grouped[c.BankAccountID], c)
	}

	return grouped
}
