package math_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/checkwriter/math"
)

var _ = Describe("Balance", func() {
	Context("CalculateMinimumBalanceAdjustment", func() {
		When("there are no outstanding checks", func() {
			It("calculates the amount needed to adjust the existing balance up to the minimum balance", func() {
				adjustment := math.CalculateMinimumBalanceAdjustment(
					300, // 3.00 USD
					nil,
					1000, // 10.00 USD
				)

				Expect(adjustment.ToCents()).To(Equal(700), "the minimum balance adjustment should be the amount needed to adjust the existing balance up to the minimum balance")
			})
		})

		When("the balance after outstanding checks meets or exceeds the minimum balance", func() {
			It("returns no adjustment", func() {
				adjustment := math.CalculateMinimumBalanceAdjustment(
					20000, // 200.00 USD
					&math.OutstandingBalance{Dollars: 1},
					1000, // 10.00 USD
				)

				Expect(adjustment.ToCents()).To(Equal(0), "there should be no adjustment necessary to reach the minimum balance")
			})
		})

		When("the balance after outstanding checks is below the minimum balance", func() {
			It("calculates the amount needed to adjust the existing balance up to the minimum balance", func() {
				adjustment := math.CalculateMinimumBalanceAdjustment(
					2000, // 20.00 USD
					&math.OutstandingBalance{Dollars: 15, Cents: 50},
					1000, // 10.00 USD
				)

				Expect(adjustment.Dollars).To(Equal(5), "the dollars of the adjustment should cover the shortfall")
				Expect(adjustment.Cents).To(Equal(50), "the cents of the adjustment should cover the shortfall")
			})
		})
	})
})
