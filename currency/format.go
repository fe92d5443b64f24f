package currency

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.AmericanEnglish)

// ToDisplayString formats the given amount of cents for display, e.g. 150075 becomes "$1,500.75".
func ToDisplayString(amountCents int64) string {
	sign := ""
	if amountCents < 0 {
		sign = "-"
	}

	dollars := amountCents / 100
	cents := amountCents % 100
	if amountCents < 0 {
		dollars = -dollars
		cents = -cents
	}

	return fmt.Sprintf("%s$%s.%02d", sign, displayPrinter.Sprintf("%d", dollars), cents)
}

// FormatCents formats the given expression of USD in cents to a dollar-and-cents string.
func FormatCents(cents int) string {
	remainderCents := cents % 100
	dollars := (cents - remainderCents) / 100

	return FormatDollarsAndCents(dollars, remainderCents)
}

// FormatDollarsAndCents formats the given USD dollars and cents to a dollar-and-cents string.
func FormatDollarsAndCents(dollars, cents int) string {
	absoluteDollars := abs(dollars)
	absoluteCents := abs(cents)

	formattedDollars := fmt.Sprintf("$%d.%02d", absoluteDollars, absoluteCents)

	if dollars < 0 || cents < 0 {
		return "-" + formattedDollars
	}

	return formattedDollars
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
