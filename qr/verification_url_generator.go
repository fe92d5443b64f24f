package qr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// VerificationURLGenerator generates a URL that a payee's bank can follow
// to confirm a check was issued as printed.
type VerificationURLGenerator struct {
	baseURL string
}

// NewVerificationURLGenerator builds a generator for the given verification endpoint.
func NewVerificationURLGenerator(baseURL string) *VerificationURLGenerator {
	return &VerificationURLGenerator{baseURL: baseURL}
}

func (v *VerificationURLGenerator) Generate(ctx context.Context, qrDetails *Details) (string, error) {
	verifyURL, err := url.Parse(v.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse verification base URL '%s': %w", v.baseURL, err)
	}

	if verifyURL.Scheme == "" || verifyURL.Host == "" {
		return "", fmt.Errorf("verification base URL '%s' must be absolute", v.baseURL)
	}

	query := verifyURL.Query()
	query.Set("check", strconv.Itoa(qrDetails.CheckNumber))
	query.Set("routing", qrDetails.RoutingNumber)
	query.Set("account", qrDetails.AccountLast4)
	query.Set("amount", strconv.FormatInt(qrDetails.AmountCents, 10))
	query.Set("date", qrDetails.Date)
	verifyURL.RawQuery = query.Encode()

	return verifyURL.String(), nil
}
