package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jrh3k5/checkwriter/currency"
)

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Write out an amount the way it appears on a check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cents, err := currency.ParseAmount(args[0])
			if err != nil {
				return fmt.Errorf("enter a valid amount: %w", err)
			}

			words, err := currency.ToWords(cents)
			if err != nil {
				return fmt.Errorf("failed to write out amount: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", currency.ToDisplayString(cents), words)

			return nil
		},
	}
}
