package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrh3k5/checkwriter/bank"
	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/currency"
	"github.com/jrh3k5/checkwriter/math"
)

func newTotalsCommand(a *app) *cobra.Command {
	var accountRef, from, to, balanceInput, minimumInput string

	totals := &cobra.Command{
		Use:   "totals",
		Short: "Total the outstanding checks per bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			now := time.Now().UTC()
			startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			endDate := startDate.AddDate(0, 1, -1)

			var err error
			if from != "" {
				if startDate, err = time.Parse(check.DateLayout, from); err != nil {
					return fmt.Errorf("failed to parse --from '%s': %w", from, err)
				}
			}

			if to != "" {
				if endDate, err = time.Parse(check.DateLayout, to); err != nil {
					return fmt.Errorf("failed to parse --to '%s': %w", to, err)
				}
			}

			var accounts []*bank.Account
			if accountRef != "" {
				account, err := a.store.FindAccount(ctx, accountRef)
				if err != nil {
					return err
				}
				accounts = []*bank.Account{account}
			} else if accounts, err = a.store.ListAccounts(ctx); err != nil {
				return fmt.Errorf("failed to list bank accounts: %w", err)
			}

			accountIDs := make([]string, 0, len(accounts))
			for _, account := range accounts {
				accountIDs = append(accountIDs, account.ID)
			}

			checks, err := a.checks.List(ctx, check.Filter{})
			if err != nil {
				return err
			}

			balances, err := math.CalculateOutstandingBalances(accountIDs, checks, startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to calculate outstanding balances: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Outstanding checks for [%s, %s]:\n", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACCOUNT\tCHECKS\tOUTSTANDING")
			for _, account := range accounts {
				balance := balances[account.ID]
				fmt.Fprintf(w, "%s\t%d\t%s\n", account.Name, balance.Count, balance)
			}

			if err := w.Flush(); err != nil {
				return err
			}

			if balanceInput == "" {
				return nil
			}

			if len(accounts) != 1 {
				return fmt.Errorf("--balance needs a single bank account; choose one with --account")
			}

			accountBalance, err := currency.ParseAmount(balanceInput)
			if err != nil {
				return fmt.Errorf("enter a valid --balance: %w", err)
			}

			var minimumBalance int64
			if minimumInput != "" {
				if minimumBalance, err = currency.ParseAmount(minimumInput); err != nil {
					return fmt.Errorf("enter a valid --minimum: %w", err)
				}
			}

			adjustment := math.CalculateMinimumBalanceAdjustment(int(accountBalance), balances[accounts[0].ID], int(minimumBalance))
			if adjustment.ToCents() == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "'%s' covers its outstanding checks\n", accounts[0].Name)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deposit %s into '%s' to cover its outstanding checks\n", currency.ToDisplayString(int64(adjustment.ToCents())), accounts[0].Name)

			return nil
		},
	}

	totals.Flags().StringVar(&accountRef, "account", "", "only total this bank account (name or ID)")
	totals.Flags().StringVar(&from, "from", "", "the first check date to include (YYYY-MM-DD); defaults to the start of this month")
	totals.Flags().StringVar(&to, "to", "", "the last check date to include (YYYY-MM-DD); defaults to the end of this month")
	totals.Flags().StringVar(&balanceInput, "balance", "", "the account's current balance, to work out any deposit needed")
	totals.Flags().StringVar(&minimumInput, "minimum", "", "the balance the account must keep once its checks clear")

	return totals
}
