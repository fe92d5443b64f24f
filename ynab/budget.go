package ynab

import (
	"fmt"

	"github.com/davidsteinsland/ynab-go/ynab"
)

// GetBudget returns the budget with the given name, or nil if there is none.
func GetBudget(ynabClient *ynab.Client, budgetName string) (*ynab.BudgetSummary, error) {
	budgets, err := ynabClient.BudgetService.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	for _, budget := range budgets {
		if budget.Name == budgetName {
			return &budget, nil
		}
	}

	return nil, nil
}

// MapAccountIDsByName maps each of the given YNAB account names to the ID of the account with that name.
// Names that do not match an account are left out.
func MapAccountIDsByName(ynabClient *ynab.Client, budgetID string, accountNames []string) (map[string]string, error) {
	accounts, err := ynabClient.AccountsService.List(budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	mapped := make(map[string]string)
	for _, account := range accounts {
		for _, accountName := range accountNames {
			if account.Name == accountName {
				mapped[accountName] = account.Id
				break
			}
		}
	}

	return mapped, nil
}
