package currency

import (
	"fmt"
	"strings"
)

// MaxCents is the largest amount, in cents, that can be written out in words.
// Scale words stop at "billion", so this is 999,999,999,999 dollars and 99 cents.
const MaxCents int64 = 99_999_999_999_999

var onesWords = [...]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scaleWords = [...]string{"", "thousand", "million", "billion"}

// ToWords writes out the given amount of cents the way it appears on the amount line of a check,
// e.g. 150075 becomes "One thousand five hundred dollars and 75/100".
//
// "dollars" is always plural, including for exactly one dollar; printed checks already carry that wording.
func ToWords(amountCents int64) (string, error) {
	if amountCents < 0 {
		return "", fmt.Errorf("%w: %d cents is negative", ErrInvalidAmount, amountCents)
	}

	if amountCents > MaxCents {
		return "", fmt.Errorf("%w: %d cents exceeds the maximum of %d cents", ErrMagnitudeOverflow, amountCents, MaxCents)
	}

	if amountCents == 0 {
		return "Zero dollars and 00/100", nil
	}

	dollars := amountCents / 100
	cents := amountCents % 100

	dollarWords := dollarsToWords(dollars)
	if dollarWords == "" {
		dollarWords = "zero"
	}

	return fmt.Sprintf("%s dollars and %02d/100", capitalizeFirst(dollarWords), cents), nil
}

func dollarsToWords(dollars int64) string {
	var words string

	for scale := 0; dollars > 0; scale++ {
		chunk := int(dollars % 1000)
		dollars /= 1000

		if chunk == 0 {
			continue
		}

		chunkText := chunkToWords(chunk)
		if scaleWords[scale] != "" {
			chunkText += " " + scaleWords[scale]
		}

		if words == "" {
			words = chunkText
		} else {
			words = chunkText + " " + words
		}
	}

	return words
}

// chunkToWords converts a value in [0, 999] into words.
func chunkToWords(chunk int) string {
	var builder strings.Builder

	if chunk >= 100 {
		builder.WriteString(onesWords[chunk/100])
		builder.WriteString(" hundred ")
		chunk %= 100
	}

	switch {
	case chunk >= 20:
		builder.WriteString(tensWords[chunk/10])
		if ones := chunk % 10; ones > 0 {
			builder.WriteString("-")
			builder.WriteString(onesWords[ones])
		}
	case chunk > 0:
		builder.WriteString(onesWords[chunk])
	}

	return strings.TrimSpace(builder.String())
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
