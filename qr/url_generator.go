package qr

import "context"

// URLGenerator is used to generate the text encoded in a check's QR code.
type URLGenerator interface {
	// Generate generates the text to be presented for a QR code
	Generate(ctx context.Context, qrDetails *Details) (string, error)
}

// Details describes the check a QR code is generated for.
type Details struct {
	CheckNumber   int
	RoutingNumber string
	AccountLast4  string
	AmountCents   int64
	Date          string
}
