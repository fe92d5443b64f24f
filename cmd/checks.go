package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mdp/qrterminal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/currency"
	"github.com/jrh3k5/checkwriter/preview"
	"github.com/jrh3k5/checkwriter/qr"
)

func newComposeCommand(a *app) *cobra.Command {
	var accountRef, vendorRef string
	draft := check.Draft{}

	compose := &cobra.Command{
		Use:   "compose",
		Short: "Write a new check; anything not given as a flag is prompted for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := a.caps.RequireWrite(); err != nil {
				return err
			}

			if accountRef != "" {
				account, err := a.store.FindAccount(ctx, accountRef)
				if err != nil {
					return err
				}
				draft.BankAccountID = account.ID
			}

			if vendorRef != "" {
				v, err := a.store.FindVendor(ctx, vendorRef)
				if err != nil {
					return err
				}
				draft.VendorID = v.ID
			}

			if err := a.promptDraft(ctx, cmd.OutOrStdout(), &draft); err != nil {
				return err
			}

			created, err := a.checks.Create(ctx, a.caps, draft)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved check #%d as a draft (%s)\n", created.Number, created.ID)

			return a.renderCheck(ctx, cmd.OutOrStdout(), created)
		},
	}

	compose.Flags().StringVar(&accountRef, "account", "", "the bank account (name or ID) to draw the check on")
	compose.Flags().StringVar(&vendorRef, "vendor", "", "the vendor (name or ID) to pay")
	compose.Flags().StringVar(&draft.Payee, "payee", "", "the payee, if not the vendor's name")
	compose.Flags().StringVar(&draft.AmountInput, "amount", "", "the amount, e.g. 1500.75")
	compose.Flags().StringVar(&draft.Date, "date", "", "the date of the check (YYYY-MM-DD); defaults to today")
	compose.Flags().StringVar(&draft.Memo, "memo", "", "the memo, if not the vendor's default memo")

	return compose
}

func newListCommand(a *app) *cobra.Command {
	var accountRef string
	var statuses []string

	list := &cobra.Command{
		Use:   "list",
		Short: "List checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			filter := check.Filter{}
			for _, s := range statuses {
				status, err := check.ParseStatus(s)
				if err != nil {
					return err
				}
				filter.Statuses = append(filter.Statuses, status)
			}

			if accountRef != "" {
				account, err := a.store.FindAccount(ctx, accountRef)
				if err != nil {
					return err
				}
				filter.BankAccountID = account.ID
			}

			checks, err := a.checks.List(ctx, filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NO.\tDATE\tPAYEE\tAMOUNT\tSTATUS\tID")
			for _, c := range checks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", c.Number, c.Date, c.Payee, currency.ToDisplayString(c.Amount), c.Status, c.ID)
			}

			return w.Flush()
		},
	}

	list.Flags().StringVar(&accountRef, "account", "", "only list checks on this bank account (name or ID)")
	list.Flags().StringSliceVar(&statuses, "status", nil, "only list checks in these statuses")

	return list
}

func newShowCommand(a *app) *cobra.Command {
	var accountRef string

	show := &cobra.Command{
		Use:   "show <check ID or number>",
		Short: "Preview a check as it was written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := a.resolveCheck(ctx, args[0], accountRef)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Check #%d (%s), %s\n", c.Number, c.ID, c.Status)

			return a.renderCheck(ctx, cmd.OutOrStdout(), c)
		},
	}

	show.Flags().StringVar(&accountRef, "account", "", "the bank account (name or ID) when giving a check number")

	return show
}

func newPrintCommand(a *app) *cobra.Command {
	var accountRef string
	var showQR bool
	var qrCodeType string

	printCommand := &cobra.Command{
		Use:   "print <check ID or number>",
		Short: "Render a check for printing and mark it printed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := a.resolveCheck(ctx, args[0], accountRef)
			if err != nil {
				return err
			}

			// reprinting, e.g. after a jam, renders the record as it stands
			printed := c
			if c.Status == check.StatusPrinted {
				a.logger.Info("reprinting check", zap.String("checkID", c.ID), zap.Int("checkNumber", c.Number))
			} else {
				printed, err = a.checks.MarkPrinted(ctx, a.caps, c.ID)
				if err != nil {
					return err
				}
			}

			if err := a.renderCheck(ctx, cmd.OutOrStdout(), printed); err != nil {
				return err
			}

			if !showQR {
				return nil
			}

			return a.renderQRCode(ctx, cmd.OutOrStdout(), printed, qrCodeType)
		},
	}

	printCommand.Flags().StringVar(&accountRef, "account", "", "the bank account (name or ID) when giving a check number")
	printCommand.Flags().BoolVar(&showQR, "qr", false, "also render a QR code for verifying the check")
	printCommand.Flags().StringVar(&qrCodeType, "qr-type", "summary", "the QR code contents: summary or verification")

	return printCommand
}

func newStatusCommand(a *app) *cobra.Command {
	var accountRef string

	statusCommand := &cobra.Command{
		Use:   "status <check ID or number> <status>",
		Short: "Move a check to another status (" + joinStatuses() + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			status, err := check.ParseStatus(args[1])
			if err != nil {
				return err
			}

			c, err := a.resolveCheck(ctx, args[0], accountRef)
			if err != nil {
				return err
			}

			moved, err := a.checks.Transition(ctx, a.caps, c.ID, status)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Check #%d is now %s\n", moved.Number, moved.Status)

			return nil
		},
	}

	statusCommand.Flags().StringVar(&accountRef, "account", "", "the bank account (name or ID) when giving a check number")

	return statusCommand
}

func newVoidCommand(a *app) *cobra.Command {
	var accountRef string

	void := &cobra.Command{
		Use:   "void <check ID or number>",
		Short: "Void a check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := a.resolveCheck(ctx, args[0], accountRef)
			if err != nil {
				return err
			}

			voided, err := a.checks.Void(ctx, a.caps, c.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Voided check #%d\n", voided.Number)

			return nil
		},
	}

	void.Flags().StringVar(&accountRef, "account", "", "the bank account (name or ID) when giving a check number")

	return void
}

func newDeleteCommand(a *app) *cobra.Command {
	var accountRef string

	deleteCommand := &cobra.Command{
		Use:   "delete <check ID or number>",
		Short: "Delete a draft or void check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := a.resolveCheck(ctx, args[0], accountRef)
			if err != nil {
				return err
			}

			if err := a.checks.Delete(ctx, a.caps, c.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted check #%d\n", c.Number)

			return nil
		},
	}

	deleteCommand.Flags().StringVar(&accountRef, "account", "", "the bank account (name or ID) when giving a check number")

	return deleteCommand
}

func (a *app) renderCheck(ctx context.Context, out io.Writer, c *check.Check) error {
	account, err := a.store.GetAccount(ctx, c.BankAccountID)
	if err != nil {
		return fmt.Errorf("failed to get bank account of check #%d: %w", c.Number, err)
	}

	return preview.Render(out, preview.NewLayout(c, account))
}

func (a *app) renderQRCode(ctx context.Context, out io.Writer, c *check.Check, qrCodeType string) error {
	account, err := a.store.GetAccount(ctx, c.BankAccountID)
	if err != nil {
		return fmt.Errorf("failed to get bank account of check #%d: %w", c.Number, err)
	}

	var urlGenerator qr.URLGenerator
	switch qrCodeType {
	case "summary":
		urlGenerator = qr.NewSummaryGenerator()
	case "verification":
		if a.config.VerificationBaseURL == "" {
			return fmt.Errorf("verification QR codes need verification_base_url in the configuration")
		}
		urlGenerator = qr.NewVerificationURLGenerator(a.config.VerificationBaseURL)
	default:
		return fmt.Errorf("unsupported QR code type: %s", qrCodeType)
	}

	qrDetails := &qr.Details{
		CheckNumber:   c.Number,
		RoutingNumber: account.RoutingNumber,
		AccountLast4:  account.LastFour(),
		AmountCents:   c.Amount,
		Date:          c.Date,
	}

	text, err := urlGenerator.Generate(ctx, qrDetails)
	if err != nil {
		return fmt.Errorf("failed to generate QR code contents: %w", err)
	}

	qrterminal.Generate(text, qrterminal.M, out)

	return nil
}

func joinStatuses() string {
	names := make([]string, 0, len(check.Statuses))
	for _, status := range check.Statuses {
		names = append(names, string(status))
	}

	return strings.Join(names, ", ")
}
