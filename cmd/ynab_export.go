package main

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/davidsteinsland/ynab-go/ynab"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrh3k5/checkwriter/check"
	cliynab "github.com/jrh3k5/checkwriter/ynab"
)

func newYNABExportCommand(a *app) *cobra.Command {
	var accessToken string

	export := &cobra.Command{
		Use:   "ynab-export",
		Short: "List the YNAB transactions that record printed checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ynabConfig := a.config.YNAB
			if ynabConfig == nil || ynabConfig.BudgetName == "" {
				return fmt.Errorf("the 'ynab' section of the configuration needs a budget_name")
			}

			if accessToken == "" {
				return fmt.Errorf("--access-token is required")
			}

			ynabURL, err := url.Parse("https://api.ynab.com/v1/")
			if err != nil {
				return fmt.Errorf("unable to parse hard-coded YNAB URL: %w", err)
			}
			ynabClient := ynab.NewClient(ynabURL, http.DefaultClient, accessToken)

			budget, err := cliynab.GetBudget(ynabClient, ynabConfig.BudgetName)
			if err != nil {
				return fmt.Errorf("failed to get budget: %w", err)
			} else if budget == nil {
				return fmt.Errorf("no budget found for name '%s'", ynabConfig.BudgetName)
			}

			ynabAccountNames := make([]string, 0, len(ynabConfig.Accounts))
			for _, ynabAccountName := range ynabConfig.Accounts {
				ynabAccountNames = append(ynabAccountNames, ynabAccountName)
			}

			ynabAccountIDsByName, err := cliynab.MapAccountIDsByName(ynabClient, budget.Id, ynabAccountNames)
			if err != nil {
				return fmt.Errorf("failed to map YNAB accounts by name: %w", err)
			}

			ynabAccountIDsByBankAccountID := make(map[string]string)
			for bankAccountName, ynabAccountName := range ynabConfig.Accounts {
				account, err := a.store.FindAccount(ctx, bankAccountName)
				if err != nil {
					return fmt.Errorf("failed to resolve bank account '%s' from the YNAB configuration: %w", bankAccountName, err)
				}

				ynabAccountID, hasID := ynabAccountIDsByName[ynabAccountName]
				if !hasID {
					return fmt.Errorf("no YNAB account named '%s' in budget '%s'", ynabAccountName, ynabConfig.BudgetName)
				}

				ynabAccountIDsByBankAccountID[account.ID] = ynabAccountID
			}

			checks, err := a.checks.List(ctx, check.Filter{Statuses: []check.Status{check.StatusPrinted, check.StatusEmailed}})
			if err != nil {
				return err
			}

			transactions, err := cliynab.CreateTransactions(checks, ynabAccountIDsByBankAccountID)
			if err != nil {
				return fmt.Errorf("failed to create YNAB transactions: %w", err)
			}

			a.logger.Info("built YNAB transactions", zap.String("budgetID", budget.Id), zap.Int("count", len(transactions)))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tYNAB ACCOUNT\tAMOUNT (MILLIUNITS)\tMEMO")
			for _, transaction := range transactions {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", transaction.Date, transaction.AccountId, transaction.Amount, transaction.Memo)
			}

			return w.Flush()
		},
	}

	export.Flags().StringVar(&accessToken, "access-token", "", "the personal access token used to interact with YNAB's APIs")

	return export
}
