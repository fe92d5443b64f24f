package main

import (
	"context"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/jrh3k5/checkwriter/bank"
	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/currency"
)

// promptDraft asks for whatever the draft is missing.
func (a *app) promptDraft(ctx context.Context, out io.Writer, draft *check.Draft) error {
	if draft.BankAccountID == "" {
		account, err := a.promptAccount(ctx)
		if err != nil {
			return err
		}
		draft.BankAccountID = account.ID
	}

	if draft.VendorID == "" && draft.Payee == "" {
		if err := a.promptVendor(ctx, draft); err != nil {
			return err
		}
	}

	if draft.VendorID == "" && draft.Payee == "" {
		payee, err := (&promptui.Prompt{Label: "Pay to the order of"}).Run()
		if err != nil {
			return fmt.Errorf("failed to prompt for payee: %w", err)
		}
		draft.Payee = payee
	}

	if draft.AmountInput == "" {
		amountPrompt := &promptui.Prompt{
			Label: "Amount",
			Validate: func(input string) error {
				cents, err := currency.ParseAmount(input)
				if err != nil {
					return err
				}

				if cents == 0 {
					return fmt.Errorf("amount must be greater than 0")
				}

				return nil
			},
		}

		amount, err := amountPrompt.Run()
		if err != nil {
			return fmt.Errorf("failed to prompt for amount: %w", err)
		}
		draft.AmountInput = amount

		// The prompt has already validated the amount.
		cents, _ := currency.ParseAmount(amount)
		if words, err := currency.ToWords(cents); err == nil {
			fmt.Fprintf(out, "Amount in words: %s\n", words)
		}
	}

	return nil
}

func (a *app) promptAccount(ctx context.Context) (*bank.Account, error) {
	accounts, err := a.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	if len(accounts) == 0 {
		return nil, fmt.Errorf("no bank accounts exist; add one with 'accounts add'")
	}

	names := make([]string, 0, len(accounts))
	for _, account := range accounts {
		names = append(names, fmt.Sprintf("%s (%s)", account.Name, account.MaskedAccountNumber()))
	}

	index, _, err := (&promptui.Select{Label: "Bank account", Items: names}).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to prompt for bank account: %w", err)
	}

	return accounts[index], nil
}

func (a *app) promptVendor(ctx context.Context, draft *check.Draft) error {
	vendors, err := a.store.ListVendors(ctx)
	if err != nil {
		return fmt.Errorf("failed to list vendors: %w", err)
	}

	if len(vendors) == 0 {
		return nil
	}

	const otherPayee = "Someone else"
	names := make([]string, 0, len(vendors)+1)
	for _, v := range vendors {
		names = append(names, v.Name)
	}
	names = append(names, otherPayee)

	index, _, err := (&promptui.Select{Label: "Vendor", Items: names}).Run()
	if err != nil {
		return fmt.Errorf("failed to prompt for vendor: %w", err)
	}

	if index < len(vendors) {
		draft.VendorID = vendors[index].ID
	}

	return nil
}
