package ynab_test

import (
	"github.com/davidsteinsland/ynab-go/ynab"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/checkwriter/check"
	cliynab "github.com/jrh3k5/checkwriter/ynab"
)

var _ = Describe("Transactions", func() {
	Context("CreateTransactions", func() {
		var checks []*check.Check
		var ynabAccountIDsByBankAccountID map[string]string

		BeforeEach(func() {
			checks = []*check.Check{
				{BankAccountID: "checking", Number: 1002, Payee: "Tech World Inc.", Amount: 99999, Date: "2026-10-20", Status: check.StatusEmailed},
				{BankAccountID: "checking", Number: 1001, Payee: "Acme Supplies", Amount: 25050, Date: "2026-10-19", Memo: "Office supplies", Status: check.StatusPrinted},
				{BankAccountID: "checking", Number: 1003, Payee: "Drafty", Amount: 100, Date: "2026-10-21", Status: check.StatusDraft},
				{BankAccountID: "checking", Number: 1004, Payee: "Voidy", Amount: 100, Date: "2026-10-21", Status: check.StatusVoid},
			}

			ynabAccountIDsByBankAccountID = map[string]string{
				"checking": "ynab-checking",
			}
		})

		It("records printed and emailed checks as outflows", func() {
			transactions, err := cliynab.CreateTransactions(checks, ynabAccountIDsByBankAccountID)
			Expect(err).ToNot(HaveOccurred(), "creating the transactions should not fail")
			Expect(transactions).To(HaveLen(2), "only printed and emailed checks should be recorded")

			first := transactions[0]
			Expect(first.AccountId).To(Equal("ynab-checking"), "the check should be recorded in the mapped YNAB account")
			Expect(first.Amount).To(Equal(-250500), "the amount should be a milliunit outflow")
			Expect(first.Date).To(Equal("2026-10-19"), "the check's date should be used")
			Expect(first.Memo).To(Equal("Check #1001 to Acme Supplies ($250.50): Office supplies"), "the memo should describe the check")

			second := transactions[1]
			Expect(second.Memo).To(Equal("Check #1002 to Tech World Inc. ($999.99)"), "checks without a memo should only be described")
		})

		When("a bank account has no YNAB account", func() {
			It("fails", func() {
				_, err := cliynab.CreateTransactions(checks, map[string]string{})
				Expect(err).To(HaveOccurred(), "an unmapped bank account should fail")
			})
		})

		When("there is nothing to record", func() {
			It("returns no transactions", func() {
				transactions, err := cliynab.CreateTransactions(checks[2:], ynabAccountIDsByBankAccountID)
				Expect(err).ToNot(HaveOccurred(), "creating the transactions should not fail")
				Expect(transactions).To(BeEmpty(), "drafts and void checks should not be recorded")
				Expect(transactions).To(BeAssignableToTypeOf([]ynab.SaveTransaction{}), "the result should be YNAB transactions")
			})
		})
	})
})
