package qr

import (
	"context"
	"fmt"

	"github.com/jrh3k5/checkwriter/currency"
)

// SummaryGenerator is a generator that just generates a plain-text summary
// of the check. This is useful for scanners that only expect text in the QR code,
// rather than full-formed URLs.
type SummaryGenerator struct {
}

func NewSummaryGenerator() *SummaryGenerator {
	return &SummaryGenerator{}
}

func (*SummaryGenerator) Generate(ctx context.Context, qrDetails *Details) (string, error) {
	return fmt.Sprintf("CHECK %d | %s | %s | ****%s",
		qrDetails.CheckNumber,
		currency.ToDisplayString(qrDetails.AmountCents),
		qrDetails.Date,
		qrDetails.AccountLast4,
	), nil
}
