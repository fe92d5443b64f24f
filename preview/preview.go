// Package preview renders a plain-text rendition of a check for review before printing.
package preview

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jrh3k5/checkwriter/bank"
	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/currency"
)

// Width is the number of columns a rendered check occupies.
const Width = 72

const wordsSuffix = " DOLLARS"

// Layout holds everything printed on the face of a check.
type Layout struct {
	BankName      string
	BankAddress   string
	CheckNumber   int
	Date          string
	Payee         string
	AmountCents   int64
	AmountWords   string
	Memo          string
	MaskedAccount string
	Void          bool
}

// NewLayout lays out the given check drawn on the given bank account.
// The amount's words are taken from the check as stored.
func NewLayout(c *check.Check, account *bank.Account) Layout {
	return Layout{
		BankName:      account.Name,
		BankAddress:   account.Address,
		CheckNumber:   c.Number,
		Date:          c.Date,
		Payee:         c.Payee,
		AmountCents:   c.Amount,
		AmountWords:   c.AmountWords,
		Memo:          c.Memo,
		MaskedAccount: account.MaskedAccountNumber(),
		Void:          c.Status == check.StatusVoid,
	}
}

// Render writes the check to the given writer.
func Render(w io.Writer, layout Layout) error {
	var b strings.Builder

	border := "+" + strings.Repeat("-", Width-2) + "+\n"
	b.WriteString(border)
	writeRow(&b, layout.BankName, fmt.Sprintf("No. %d", layout.CheckNumber))
	writeRow(&b, layout.BankAddress, "Date "+layout.Date)
	writeRow(&b, "", "")
	writeRow(&b, "PAY TO THE", "")
	writeRow(&b, "ORDER OF  "+layout.Payee, currency.ToDisplayString(layout.AmountCents))
	writeRow(&b, "", "")
	for _, line := range wordsLines(layout.AmountWords) {
		writeRow(&b, line, "")
	}
	writeRow(&b, "", "")
	if layout.Void {
		writeRow(&b, centered("*** VOID ***"), "")
	} else {
		writeRow(&b, "", "")
	}
	writeRow(&b, "MEMO  "+layout.Memo, "Acct "+layout.MaskedAccount)
	b.WriteString(border)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write check preview: %w", err)
	}

	return nil
}

// writeRow writes left- and right-aligned text inside the check's border.
func writeRow(b *strings.Builder, left, right string) {
	inner := Width - 4
	gap := inner - columns(left) - columns(right)
	if gap < 1 {
		left = truncate(left, inner-columns(right)-1)
		gap = inner - columns(left) - columns(right)
	}

	b.WriteString("| ")
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(right)
	b.WriteString(" |\n")
}

// wordsLines wraps the amount's words to fit the check and fills the rest of the last line with
// asterisks up to the DOLLARS label so nothing can be written in after the amount.
func wordsLines(words string) []string {
	inner := Width - 4
	var lines []string
	var current string

	for _, word := range strings.Fields(words) {
		switch {
		case current == "":
			current = word
		case columns(current)+1+columns(word) <= inner:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}

	if columns(current)+columns(wordsSuffix) > inner {
		lines = append(lines, current)
		current = ""
	}

	fill := inner - columns(current) - columns(wordsSuffix)
	lines = append(lines, current+strings.Repeat("*", fill)+wordsSuffix)

	return lines
}

func centered(text string) string {
	inner := Width - 4
	if columns(text) >= inner {
		return text
	}

	return strings.Repeat(" ", (inner-columns(text))/2) + text
}

// columns counts characters, not bytes, so names like "Café" line up with the border.
func columns(s string) int {
	return utf8.RuneCountInString(s)
}

func truncate(s string, length int) string {
	if length <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	return string(runes[:length])
}
