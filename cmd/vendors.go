package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrh3k5/checkwriter/vendors"
)

func newVendorsCommand(a *app) *cobra.Command {
	vendorsCommand := &cobra.Command{
		Use:   "vendors",
		Short: "Manage the vendors checks are written to",
	}

	var name, address, email, defaultMemo string

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.caps.RequireWrite(); err != nil {
				return err
			}

			v, err := vendors.New(name, address, email, defaultMemo)
			if err != nil {
				return err
			}

			if err := a.store.SaveVendor(cmd.Context(), v); err != nil {
				return fmt.Errorf("failed to save vendor: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added vendor '%s' (%s)\n", v.Name, v.ID)

			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "the vendor's name, used as the payee")
	add.Flags().StringVar(&address, "address", "", "the vendor's mailing address")
	add.Flags().StringVar(&email, "email", "", "the vendor's email address")
	add.Flags().StringVar(&defaultMemo, "memo", "", "the memo to use on checks to this vendor")

	list := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.store.ListVendors(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list vendors: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEMAIL\tDEFAULT MEMO\tID")
			for _, v := range all {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Name, v.Email, v.DefaultMemo, v.ID)
			}

			return w.Flush()
		},
	}

	update := &cobra.Command{
		Use:   "update <vendor>",
		Short: "Change a vendor, found by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.caps.RequireWrite(); err != nil {
				return err
			}

			v, err := a.store.FindVendor(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				v.Name = strings.TrimSpace(name)
			}
			if flags.Changed("address") {
				v.Address = strings.TrimSpace(address)
			}
			if flags.Changed("email") {
				v.Email = strings.TrimSpace(email)
			}
			if flags.Changed("memo") {
				v.DefaultMemo = strings.TrimSpace(defaultMemo)
			}

			if err := v.Validate(); err != nil {
				return err
			}

			if err := a.store.SaveVendor(cmd.Context(), v); err != nil {
				return fmt.Errorf("failed to save vendor: %w", err)
			}

			a.logger.Info("updated vendor", zap.String("vendorID", v.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated vendor '%s' (%s)\n", v.Name, v.ID)

			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "the vendor's name, used as the payee")
	update.Flags().StringVar(&address, "address", "", "the vendor's mailing address")
	update.Flags().StringVar(&email, "email", "", "the vendor's email address")
	update.Flags().StringVar(&defaultMemo, "memo", "", "the memo to use on checks to this vendor")

	remove := &cobra.Command{
		Use:   "delete <vendor>",
		Short: "Delete a vendor; checks already written keep their payee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.caps.RequireWrite(); err != nil {
				return err
			}

			v, err := a.store.FindVendor(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := a.store.DeleteVendor(cmd.Context(), v.ID); err != nil {
				return fmt.Errorf("failed to delete vendor '%s': %w", v.Name, err)
			}

			a.logger.Info("deleted vendor", zap.String("vendorID", v.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted vendor '%s'\n", v.Name)

			return nil
		},
	}

	vendorsCommand.AddCommand(add, list, update, remove)

	return vendorsCommand
}
