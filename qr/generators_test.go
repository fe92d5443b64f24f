package qr_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/checkwriter/qr"
)

var _ = Describe("Generators", func() {
	var ctx context.Context
	var details *qr.Details

	BeforeEach(func() {
		ctx = context.Background()
		details = &qr.Details{
			CheckNumber:   1001,
			RoutingNumber: "123456789",
			AccountLast4:  "4321",
			AmountCents:   150075,
			Date:          "2026-10-19",
		}
	})

	Context("VerificationURLGenerator", func() {
		It("generates a verification URL", func() {
			generator := qr.NewVerificationURLGenerator("https://checks.example.com/verify")

			url, err := generator.Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the URL should not fail")
			Expect(url).To(Equal("https://checks.example.com/verify?account=4321&amount=150075&check=1001&date=2026-10-19&routing=123456789"), "the correct URL should be generated")
		})

		It("rejects a relative base URL", func() {
			generator := qr.NewVerificationURLGenerator("/verify")

			_, err := generator.Generate(ctx, details)
			Expect(err).To(HaveOccurred(), "a relative base URL cannot be scanned")
		})
	})

	Context("SummaryGenerator", func() {
		It("generates a plain-text summary", func() {
			summary, err := qr.NewSummaryGenerator().Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the summary should not fail")
			Expect(summary).To(Equal("CHECK 1001 | $1,500.75 | 2026-10-19 | ****4321"), "the correct summary should be generated")
		})
	})
})
