package currency_test

import (
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/checkwriter/currency"
)

var _ = Describe("Format", func() {
	Context("ToDisplayString", func() {
		DescribeTable("formats amounts for display",
			func(cents int64, expected string) {
				Expect(currency.ToDisplayString(cents)).To(Equal(expected), "%d cents should be displayed correctly", cents)
			},
			Entry("zero", int64(0), "$0.00"),
			Entry("cents only", int64(7), "$0.07"),
			Entry("under a thousand dollars", int64(99999), "$999.99"),
			Entry("thousands", int64(150075), "$1,500.75"),
			Entry("billions", int64(100000000000), "$1,000,000,000.00"),
			Entry("negative", int64(-150075), "-$1,500.75"),
		)

		It("agrees with the words on the whole-dollar part", func() {
			for cents := int64(0); cents < 50_000_000_000; cents = cents*3 + 101 {
				display := currency.ToDisplayString(cents)

				dollarText, centText, found := strings.Cut(strings.TrimPrefix(display, "$"), ".")
				Expect(found).To(BeTrue(), "'%s' should have a decimal point", display)

				dollars, err := strconv.ParseInt(strings.ReplaceAll(dollarText, ",", ""), 10, 64)
				Expect(err).ToNot(HaveOccurred(), "the dollars of '%s' should parse", display)
				Expect(dollars).To(Equal(cents/100), "the dollars of '%s' should match the amount", display)
				Expect(centText).To(HaveLen(2), "the cents of '%s' should be two digits", display)
			}
		})
	})

	Context("FormatCents", func() {
		It("formats positive amounts", func() {
			Expect(currency.FormatCents(42069)).To(Equal("$420.69"), "the amount should be formatted without grouping")
		})

		It("formats negative amounts", func() {
			Expect(currency.FormatCents(-123)).To(Equal("-$1.23"), "the sign should lead the dollar sign")
		})
	})
})
