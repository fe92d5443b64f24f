package currency

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.New(MaxCents, -2)

// plainAmountPattern matches digits with at most one decimal point. Signs and exponents are not amounts.
var plainAmountPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// ParseAmount reads a user-typed dollar amount, such as "1,500.75" or "$12", into cents.
// Fractions of a cent are rounded to the nearest cent, with halves rounded up.
func ParseAmount(input string) (int64, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if cleaned == "" {
		return 0, fmt.Errorf("%w: no amount given", ErrInvalidAmount)
	}

	if strings.HasPrefix(cleaned, "-") {
		return 0, fmt.Errorf("%w: '%s' is negative", ErrInvalidAmount, input)
	}

	if !plainAmountPattern.MatchString(cleaned) {
		return 0, fmt.Errorf("%w: '%s' is not a number", ErrInvalidAmount, input)
	}

	cleaned = strings.TrimSuffix(cleaned, ".")
	if strings.HasPrefix(cleaned, ".") {
		cleaned = "0" + cleaned
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not a number", ErrInvalidAmount, input)
	}

	// anything at or past a whole cent above the maximum cannot round back under it
	if amount.GreaterThanOrEqual(maxAmount.Add(decimal.New(1, -2))) {
		return 0, fmt.Errorf("%w: '%s' exceeds %s", ErrMagnitudeOverflow, input, ToDisplayString(MaxCents))
	}

	rounded := amount.Round(2)
	if rounded.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: '%s' exceeds %s", ErrMagnitudeOverflow, input, ToDisplayString(MaxCents))
	}

	return rounded.Shift(2).IntPart(), nil
}
