package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrh3k5/checkwriter/bank"
)

func newAccountsCommand(a *app) *cobra.Command {
	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the bank accounts checks are drawn on",
	}

	var name, routingNumber, accountNumber, address string
	var startingCheckNumber int

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.caps.RequireWrite(); err != nil {
				return err
			}

			account, err := bank.NewAccount(name, routingNumber, accountNumber, address, startingCheckNumber)
			if err != nil {
				return err
			}

			if err := a.store.SaveAccount(cmd.Context(), account); err != nil {
				return fmt.Errorf("failed to save bank account: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added bank account '%s' (%s)\n", account.Name, account.ID)

			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "the name of the account")
	add.Flags().StringVar(&routingNumber, "routing", "", "the nine-digit routing number")
	add.Flags().StringVar(&accountNumber, "number", "", "the account number")
	add.Flags().StringVar(&address, "address", "", "the bank's address, printed on the check")
	add.Flags().IntVar(&startingCheckNumber, "start", bank.MinimumCheckNumber, "the first check number")

	list := &cobra.Command{
		Use:   "list",
		Short: "List bank accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.store.ListAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list bank accounts: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROUTING\tACCOUNT\tNEXT CHECK\tID")
			for _, account := range all {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", account.Name, account.RoutingNumber, account.MaskedAccountNumber(), account.NextCheckNumber, account.ID)
			}

			return w.Flush()
		},
	}

	update := &cobra.Command{
		Use:   "update <account>",
		Short: "Change a bank account, found by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.caps.RequireWrite(); err != nil {
				return err
			}

			account, err := a.store.FindAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				account.Name = strings.TrimSpace(name)
			}
			if flags.Changed("routing") {
				account.RoutingNumber = strings.TrimSpace(routingNumber)
			}
			if flags.Changed("number") {
				account.AccountNumber = strings.TrimSpace(accountNumber)
			}
			if flags.Changed("address") {
				account.Address = strings.TrimSpace(address)
			}
			if flags.Changed("start") {
				account.StartingCheckNumber = startingCheckNumber
				if account.NextCheckNumber < startingCheckNumber {
					account.NextCheckNumber = startingCheckNumber
				}
			}

			if err := account.Validate(); err != nil {
				return err
			}

			if err := a.store.SaveAccount(cmd.Context(), account); err != nil {
				return fmt.Errorf("failed to save bank account: %w", err)
			}

			a.logger.Info("updated bank account", zap.String("bankAccountID", account.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated bank account '%s' (%s)\n", account.Name, account.ID)

			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "the name of the account")
	update.Flags().StringVar(&routingNumber, "routing", "", "the nine-digit routing number")
	update.Flags().StringVar(&accountNumber, "number", "", "the account number")
	update.Flags().StringVar(&address, "address", "", "the bank's address, printed on the check")
	update.Flags().IntVar(&startingCheckNumber, "start", bank.MinimumCheckNumber, "the first check number")

	remove := &cobra.Command{
		Use:   "delete <account>",
		Short: "Delete a bank account that no checks have been written on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.caps.RequireWrite(); err != nil {
				return err
			}

			account, err := a.store.FindAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := a.store.DeleteAccount(cmd.Context(), account.ID); err != nil {
				return fmt.Errorf("failed to delete bank account '%s': %w", account.Name, err)
			}

			a.logger.Info("deleted bank account", zap.String("bankAccountID", account.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted bank account '%s'\n", account.Name)

			return nil
		},
	}

	accounts.AddCommand(add, list, update, remove)

	return accounts
}
